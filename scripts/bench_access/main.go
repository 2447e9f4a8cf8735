/*bench_access times the three access paths over synthetic events of
increasing size and writes a matplotlib figure comparing them.

The object path walks the particle graph, the data path pays a full columnar
copy on every call, and the columns path sums over a zero-copy view. Usage:

    $ bench_access out.png
*/
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/hepevent/analyze"
	"github.com/phil-mansfield/hepevent/event"
	"github.com/phil-mansfield/hepevent/pdg"
)

const (
	reps = 200
)

var sizes = []int{23, 100, 316, 1000, 2661, 10000, 31600, 100000}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Required file use: $ %s out_file", os.Args[0])
	}
	outFile := os.Args[1]

	ns := make([]float64, len(sizes))
	objTimes := make([]float64, len(sizes))
	dataTimes := make([]float64, len(sizes))
	colTimes := make([]float64, len(sizes))

	gen := rand.New(rand.NewSource(0))
	d := &event.Data{}

	for i, n := range sizes {
		ev := syntheticEvent(gen, n)
		ns[i] = float64(n)

		objTimes[i] = timePerCall(func() {
			analyze.SumEnergy(ev, pdg.Proton)
		})
		dataTimes[i] = timePerCall(func() {
			ev.WriteData(d)
			analyze.SumEnergyData(d, pdg.Proton)
		})
		colTimes[i] = timePerCall(func() {
			analyze.SumEnergyColumns(ev.Columns(), pdg.Proton)
		})

		fmt.Printf(
			"n = %6d: object %8.3g s, data %8.3g s, columns %8.3g s\n",
			n, objTimes[i], dataTimes[i], colTimes[i],
		)
	}

	plt.Reset()
	plt.Figure()

	plt.Plot(ns, objTimes, "k", plt.LW(2))
	plt.Plot(ns, dataTimes, "r", plt.LW(2))
	plt.Plot(ns, colTimes, "b", plt.LW(2))

	plt.Title("Access paths: object (black), data (red), columns (blue)")
	plt.XLabel("Particles per event", plt.FontSize(16))
	plt.YLabel("Time per call [s]", plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.Grid(plt.Axis("both"), plt.Which("both"))
	plt.SaveFig(outFile)

	plt.Execute()
}

func timePerCall(f func()) float64 {
	t0 := time.Now()
	for i := 0; i < reps; i++ {
		f()
	}
	return time.Since(t0).Seconds() / reps
}

// syntheticEvent builds an event with n particles, roughly a quarter of
// which are final-state protons, hanging off a single interaction vertex.
func syntheticEvent(gen *rand.Rand, n int) *event.Event {
	ev := event.NewEvent(n)
	ev.EventNumber = int64(n)

	in := []event.ParticleID{
		ev.AddParticle(beamParticle(1, 6500)),
		ev.AddParticle(beamParticle(2, -6500)),
	}

	out := []event.ParticleID{}
	for i := 2; i < n; i++ {
		p := event.Particle{
			ID:         int64(i + 1),
			Status:     event.FinalState,
			Px:         gen.NormFloat64(),
			Py:         gen.NormFloat64(),
			Pz:         gen.NormFloat64() * 10,
			E:          1 + gen.Float64()*100,
			ProdVertex: event.NilVertex,
			EndVertex:  event.NilVertex,
		}
		switch gen.Intn(4) {
		case 0:
			p.PID = pdg.Proton
		case 1:
			p.PID = pdg.PiPlus
		case 2:
			p.PID = -pdg.PiPlus
		default:
			p.PID = pdg.Gamma
		}
		out = append(out, ev.AddParticle(p))
	}

	ev.AddVertex(event.Vertex{ID: 1, In: in, Out: out})
	return ev
}

func beamParticle(id int64, pz float64) event.Particle {
	return event.Particle{
		ID: id, PID: pdg.Proton, Status: 4,
		Pz: pz, E: 6500,
		ProdVertex: event.NilVertex, EndVertex: event.NilVertex,
	}
}
