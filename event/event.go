/*package event stores the particles and vertices of a single recorded
collision and exposes three read paths over them: indexed object access,
detached columnar snapshots (Data), and zero-copy columnar views (Columns).

An Event owns one dense array per field rather than one struct per particle,
so the object graph is navigated through integer handles (ParticleID,
VertexID) instead of pointers. Readers populate an Event once through
AddParticle/AddVertex and the store is treated as immutable afterwards.
*/
package event

import (
	"fmt"
)

// Status code conventions. Only FinalState has meaning to this package
// itself; everything else is pass-through from the generator that produced
// the event.
const (
	FinalState int32 = 1
)

// ParticleID and VertexID are handles into the arrays owned by a single
// Event. They are only meaningful together with the Event that issued them.
type ParticleID int32
type VertexID int32

const (
	NilParticle ParticleID = -1
	NilVertex   VertexID   = -1
)

// Particle is a value record for one particle. ProdVertex and EndVertex are
// weak references: handles into the owning Event, NilVertex if unset.
type Particle struct {
	ID     int64 // Unique within one event
	PID    int32 // Particle type code (PDG numbering)
	Status int32 // 1 = final state

	Px, Py, Pz, E float64 // Four-momentum
	Mass          float64 // Generated mass, if the reader supplied one

	ProdVertex, EndVertex VertexID
}

// Vertex is a value record for one interaction vertex. In and Out list the
// particles entering and leaving the vertex, as handles into the owning
// Event.
type Vertex struct {
	ID         int64
	X, Y, Z, T float64

	In, Out []ParticleID
}

// Event owns every particle and vertex of one collision. Fields are stored
// as one contiguous array per field so that Columns can alias them without
// copying.
type Event struct {
	// Event-level attributes, set directly by readers.
	EventNumber   int64
	XSec, XSecErr float64
	Weights       []float64

	pID     []int64
	pPID    []int32
	pStatus []int32
	pPx     []float64
	pPy     []float64
	pPz     []float64
	pE      []float64
	pMass   []float64
	pProd   []VertexID
	pEnd    []VertexID

	vID  []int64
	vX   []float64
	vY   []float64
	vZ   []float64
	vT   []float64
	vIn  [][]ParticleID
	vOut [][]ParticleID

	// Incremented on every structural mutation. Outstanding Columns views
	// compare against it and refuse to read after a mismatch.
	version uint32
}

// NewEvent creates an empty Event with room for n particles.
func NewEvent(n int) *Event {
	ev := &Event{}
	ev.reserve(n)
	return ev
}

func (ev *Event) reserve(n int) {
	if cap(ev.pID) >= n {
		return
	}
	ev.pID = append(make([]int64, 0, n), ev.pID...)
	ev.pPID = append(make([]int32, 0, n), ev.pPID...)
	ev.pStatus = append(make([]int32, 0, n), ev.pStatus...)
	ev.pPx = append(make([]float64, 0, n), ev.pPx...)
	ev.pPy = append(make([]float64, 0, n), ev.pPy...)
	ev.pPz = append(make([]float64, 0, n), ev.pPz...)
	ev.pE = append(make([]float64, 0, n), ev.pE...)
	ev.pMass = append(make([]float64, 0, n), ev.pMass...)
	ev.pProd = append(make([]VertexID, 0, n), ev.pProd...)
	ev.pEnd = append(make([]VertexID, 0, n), ev.pEnd...)
}

// NParticles returns the number of particles in the event.
func (ev *Event) NParticles() int { return len(ev.pID) }

// NVertices returns the number of vertices in the event.
func (ev *Event) NVertices() int { return len(ev.vID) }

// Particle materializes the value record of particle i. The handle must have
// been issued by this Event: an out of range handle is a broken invariant in
// whatever built the event, so it panics instead of returning an error.
func (ev *Event) Particle(i ParticleID) Particle {
	if i < 0 || int(i) >= len(ev.pID) {
		panic(fmt.Sprintf("ParticleID %d out of range for event with %d "+
			"particles.", i, len(ev.pID)))
	}
	return Particle{
		ID: ev.pID[i], PID: ev.pPID[i], Status: ev.pStatus[i],
		Px: ev.pPx[i], Py: ev.pPy[i], Pz: ev.pPz[i], E: ev.pE[i],
		Mass:       ev.pMass[i],
		ProdVertex: ev.pProd[i], EndVertex: ev.pEnd[i],
	}
}

// Vertex materializes the value record of vertex i. The returned In and Out
// slices are internal buffers: don't append to them or write through them.
func (ev *Event) Vertex(i VertexID) Vertex {
	if i < 0 || int(i) >= len(ev.vID) {
		panic(fmt.Sprintf("VertexID %d out of range for event with %d "+
			"vertices.", i, len(ev.vID)))
	}
	return Vertex{
		ID: ev.vID[i],
		X:  ev.vX[i], Y: ev.vY[i], Z: ev.vZ[i], T: ev.vT[i],
		In: ev.vIn[i], Out: ev.vOut[i],
	}
}

// AddParticle appends a particle to the event and returns its handle.
// p.ProdVertex and p.EndVertex must be NilVertex or handles to vertices
// already in the event.
func (ev *Event) AddParticle(p Particle) ParticleID {
	ev.checkVertexRef(p.ProdVertex)
	ev.checkVertexRef(p.EndVertex)

	ev.pID = append(ev.pID, p.ID)
	ev.pPID = append(ev.pPID, p.PID)
	ev.pStatus = append(ev.pStatus, p.Status)
	ev.pPx = append(ev.pPx, p.Px)
	ev.pPy = append(ev.pPy, p.Py)
	ev.pPz = append(ev.pPz, p.Pz)
	ev.pE = append(ev.pE, p.E)
	ev.pMass = append(ev.pMass, p.Mass)
	ev.pProd = append(ev.pProd, p.ProdVertex)
	ev.pEnd = append(ev.pEnd, p.EndVertex)

	ev.version++
	return ParticleID(len(ev.pID) - 1)
}

// AddVertex appends a vertex to the event and returns its handle. Every
// handle in v.In and v.Out must refer to a particle already in the event.
// Particles in v.In get their EndVertex set to the new vertex and particles
// in v.Out get their ProdVertex set, so the two directions of every link
// always agree.
func (ev *Event) AddVertex(v Vertex) VertexID {
	for _, p := range v.In {
		ev.checkParticleRef(p)
	}
	for _, p := range v.Out {
		ev.checkParticleRef(p)
	}

	id := VertexID(len(ev.vID))
	ev.vID = append(ev.vID, v.ID)
	ev.vX = append(ev.vX, v.X)
	ev.vY = append(ev.vY, v.Y)
	ev.vZ = append(ev.vZ, v.Z)
	ev.vT = append(ev.vT, v.T)
	ev.vIn = append(ev.vIn, append([]ParticleID{}, v.In...))
	ev.vOut = append(ev.vOut, append([]ParticleID{}, v.Out...))

	for _, p := range v.In {
		ev.pEnd[p] = id
	}
	for _, p := range v.Out {
		ev.pProd[p] = id
	}

	ev.version++
	return id
}

// Clear empties the event so it can be reused for the next read, keeping
// the underlying arrays. Outstanding Columns views are invalidated.
func (ev *Event) Clear() {
	ev.EventNumber = 0
	ev.XSec, ev.XSecErr = 0, 0
	ev.Weights = ev.Weights[:0]

	ev.pID = ev.pID[:0]
	ev.pPID = ev.pPID[:0]
	ev.pStatus = ev.pStatus[:0]
	ev.pPx = ev.pPx[:0]
	ev.pPy = ev.pPy[:0]
	ev.pPz = ev.pPz[:0]
	ev.pE = ev.pE[:0]
	ev.pMass = ev.pMass[:0]
	ev.pProd = ev.pProd[:0]
	ev.pEnd = ev.pEnd[:0]

	ev.vID = ev.vID[:0]
	ev.vX = ev.vX[:0]
	ev.vY = ev.vY[:0]
	ev.vZ = ev.vZ[:0]
	ev.vT = ev.vT[:0]
	ev.vIn = ev.vIn[:0]
	ev.vOut = ev.vOut[:0]

	ev.version++
}

func (ev *Event) checkVertexRef(v VertexID) {
	if v != NilVertex && (v < 0 || int(v) >= len(ev.vID)) {
		panic(fmt.Sprintf("VertexID %d out of range for event with %d "+
			"vertices.", v, len(ev.vID)))
	}
}

func (ev *Event) checkParticleRef(p ParticleID) {
	if p < 0 || int(p) >= len(ev.pID) {
		panic(fmt.Sprintf("ParticleID %d out of range for event with %d "+
			"particles.", p, len(ev.pID)))
	}
}
