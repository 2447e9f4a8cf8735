/*package analyze computes aggregates over event stores. The same quantity
can be computed through each of the three access paths the event package
offers, with identical semantics and different cost profiles.
*/
package analyze

import (
	"runtime"
	"sync"

	"github.com/phil-mansfield/hepevent/event"
)

// SumEnergy sums the energy of every final-state particle with the given
// type code, traversing the object graph in store order with a sequential
// scalar accumulator.
func SumEnergy(ev *event.Event, pid int32) float64 {
	sum := 0.0
	for i := 0; i < ev.NParticles(); i++ {
		p := ev.Particle(event.ParticleID(i))
		if p.PID == pid && p.Status == event.FinalState {
			sum += p.E
		}
	}
	return sum
}

// SumEnergyData computes the same quantity as SumEnergy over a detached
// columnar copy: a selection mask over the type-code column is intersected
// with a final-state mask and the energy column is summed under it.
func SumEnergyData(d *event.Data, pid int32) float64 {
	m := EqInt32(nil, d.PID, pid)
	m = AndEqInt32(m, d.Status, event.FinalState)
	return MaskedSum(d.E, m)
}

// SumEnergyColumns computes the same quantity as SumEnergy over a zero-copy
// view. The mask intersection is fused into a single pass so that repeated
// calls allocate nothing.
//
// The accumulation order is the store order, the same as SumEnergy's, but
// callers should still compare paths with a tolerance rather than exact
// equality.
func SumEnergyColumns(c event.Columns, pid int32) float64 {
	pids := c.PID()
	status := c.Status()
	es := c.E()

	sum := 0.0
	for i := range pids {
		if pids[i] == pid && status[i] == event.FinalState {
			sum += es[i]
		}
	}
	return sum
}

// SumEnergyParallel computes the same quantity as SumEnergyColumns with one
// partial accumulator per worker, merged in worker order. Useful only for
// very large events; the partial sums make its rounding differ from the
// sequential paths in the last bits.
func SumEnergyParallel(c event.Columns, pid int32, workers int) float64 {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pids := c.PID()
	status := c.Status()
	es := c.E()

	n := len(pids)
	if n < workers*workerMin {
		return SumEnergyColumns(c, pid)
	}

	partials := make([]float64, workers)
	chunk := n / workers

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		low, high := w*chunk, (w+1)*chunk
		if w == workers-1 {
			high = n
		}

		wg.Add(1)
		go func(w, low, high int) {
			defer wg.Done()
			sum := 0.0
			for i := low; i < high; i++ {
				if pids[i] == pid && status[i] == event.FinalState {
					sum += es[i]
				}
			}
			partials[w] = sum
		}(w, low, high)
	}
	wg.Wait()

	sum := 0.0
	for _, p := range partials {
		sum += p
	}
	return sum
}

// Below this many particles per worker the goroutine overhead swamps the
// arithmetic.
const workerMin = 1 << 10
