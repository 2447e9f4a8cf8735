package event

import (
	"fmt"
)

// Data is a detached columnar copy of one event: one contiguous array per
// particle and vertex field, plus the vertex/particle linkage packed into
// offset-indexed runs. It is independently owned, so mutating it has no
// effect on the event it was written from, and it survives the event.
//
// A Data is meant to be reused across many WriteData calls. Arrays are
// reallocated only when an event needs more room than the current capacity,
// so reading a long sequence of similarly sized events settles into zero
// allocation per event.
type Data struct {
	EventNumber   int64
	XSec, XSecErr float64
	Weights       []float64

	// Particle columns, indexed in the source event's particle order.
	ID     []int64
	PID    []int32
	Status []int32
	Px     []float64
	Py     []float64
	Pz     []float64
	E      []float64
	Mass   []float64
	Prod   []VertexID
	End    []VertexID

	// Vertex columns.
	VtxID []int64
	X     []float64
	Y     []float64
	Z     []float64
	T     []float64

	// Linkage: the particles entering vertex i are
	// InIdx[InStart[i]:InStart[i+1]], and likewise for Out. InStart and
	// OutStart have NVertices()+1 entries.
	InStart  []int32
	OutStart []int32
	InIdx    []ParticleID
	OutIdx   []ParticleID
}

// NParticles returns the number of particle rows currently held.
func (d *Data) NParticles() int { return len(d.ID) }

// NVertices returns the number of vertex rows currently held.
func (d *Data) NVertices() int { return len(d.VtxID) }

// Resize sets the row counts of every column, reallocating a column only if
// its capacity is too small. nIn and nOut are the total lengths of the
// incoming and outgoing linkage lists summed over all vertices.
func (d *Data) Resize(np, nv, nIn, nOut int) {
	d.ID = resizeInt64(d.ID, np)
	d.PID = resizeInt32(d.PID, np)
	d.Status = resizeInt32(d.Status, np)
	d.Px = resizeFloat64(d.Px, np)
	d.Py = resizeFloat64(d.Py, np)
	d.Pz = resizeFloat64(d.Pz, np)
	d.E = resizeFloat64(d.E, np)
	d.Mass = resizeFloat64(d.Mass, np)
	d.Prod = resizeVertexID(d.Prod, np)
	d.End = resizeVertexID(d.End, np)

	d.VtxID = resizeInt64(d.VtxID, nv)
	d.X = resizeFloat64(d.X, nv)
	d.Y = resizeFloat64(d.Y, nv)
	d.Z = resizeFloat64(d.Z, nv)
	d.T = resizeFloat64(d.T, nv)

	d.InStart = resizeInt32(d.InStart, nv+1)
	d.OutStart = resizeInt32(d.OutStart, nv+1)
	d.InIdx = resizeParticleID(d.InIdx, nIn)
	d.OutIdx = resizeParticleID(d.OutIdx, nOut)
}

// WriteData copies every field of the event into d, reusing d's arrays when
// they are large enough. After the call d is a point in time copy: later
// changes to the event are not reflected in it, and vice versa.
func (ev *Event) WriteData(d *Data) {
	nIn, nOut := 0, 0
	for i := range ev.vIn {
		nIn += len(ev.vIn[i])
		nOut += len(ev.vOut[i])
	}
	d.Resize(ev.NParticles(), ev.NVertices(), nIn, nOut)

	d.EventNumber = ev.EventNumber
	d.XSec, d.XSecErr = ev.XSec, ev.XSecErr
	d.Weights = append(d.Weights[:0], ev.Weights...)

	copy(d.ID, ev.pID)
	copy(d.PID, ev.pPID)
	copy(d.Status, ev.pStatus)
	copy(d.Px, ev.pPx)
	copy(d.Py, ev.pPy)
	copy(d.Pz, ev.pPz)
	copy(d.E, ev.pE)
	copy(d.Mass, ev.pMass)
	copy(d.Prod, ev.pProd)
	copy(d.End, ev.pEnd)

	copy(d.VtxID, ev.vID)
	copy(d.X, ev.vX)
	copy(d.Y, ev.vY)
	copy(d.Z, ev.vZ)
	copy(d.T, ev.vT)

	in, out := 0, 0
	for i := range ev.vIn {
		d.InStart[i], d.OutStart[i] = int32(in), int32(out)
		in += copy(d.InIdx[in:in+len(ev.vIn[i])], ev.vIn[i])
		out += copy(d.OutIdx[out:out+len(ev.vOut[i])], ev.vOut[i])
	}
	d.InStart[len(ev.vIn)], d.OutStart[len(ev.vOut)] = int32(in), int32(out)
}

// ReadData rebuilds the event from a columnar copy, replacing its previous
// contents. It is the inverse of WriteData. Linkage handles in d must be in
// range for d's own row counts: files are validated before this is called,
// so an out of range handle here is a program defect and panics.
func (ev *Event) ReadData(d *Data) {
	ev.Clear()
	ev.reserve(d.NParticles())

	ev.EventNumber = d.EventNumber
	ev.XSec, ev.XSecErr = d.XSec, d.XSecErr
	ev.Weights = append(ev.Weights[:0], d.Weights...)

	ev.pID = append(ev.pID[:0], d.ID...)
	ev.pPID = append(ev.pPID[:0], d.PID...)
	ev.pStatus = append(ev.pStatus[:0], d.Status...)
	ev.pPx = append(ev.pPx[:0], d.Px...)
	ev.pPy = append(ev.pPy[:0], d.Py...)
	ev.pPz = append(ev.pPz[:0], d.Pz...)
	ev.pE = append(ev.pE[:0], d.E...)
	ev.pMass = append(ev.pMass[:0], d.Mass...)
	ev.pProd = append(ev.pProd[:0], d.Prod...)
	ev.pEnd = append(ev.pEnd[:0], d.End...)

	for _, v := range ev.pProd {
		ev.checkDataVertexRef(v, d.NVertices())
	}
	for _, v := range ev.pEnd {
		ev.checkDataVertexRef(v, d.NVertices())
	}

	ev.vID = append(ev.vID[:0], d.VtxID...)
	ev.vX = append(ev.vX[:0], d.X...)
	ev.vY = append(ev.vY[:0], d.Y...)
	ev.vZ = append(ev.vZ[:0], d.Z...)
	ev.vT = append(ev.vT[:0], d.T...)

	for i := 0; i < d.NVertices(); i++ {
		in := d.InIdx[d.InStart[i]:d.InStart[i+1]]
		out := d.OutIdx[d.OutStart[i]:d.OutStart[i+1]]
		for _, p := range in {
			ev.checkParticleRef(p)
		}
		for _, p := range out {
			ev.checkParticleRef(p)
		}
		ev.vIn = append(ev.vIn, append([]ParticleID{}, in...))
		ev.vOut = append(ev.vOut, append([]ParticleID{}, out...))
	}

	ev.version++
}

func (ev *Event) checkDataVertexRef(v VertexID, nv int) {
	if v != NilVertex && (v < 0 || int(v) >= nv) {
		panic(fmt.Sprintf("VertexID %d out of range for data with %d "+
			"vertices.", v, nv))
	}
}

// Field returns the particle column with the given name as an untyped
// slice, for callers that address columns by name rather than through the
// typed fields. Valid names are id, pid, status, px, py, pz, e, and mass.
func (d *Data) Field(name string) (interface{}, bool) {
	switch name {
	case "id":
		return d.ID, true
	case "pid":
		return d.PID, true
	case "status":
		return d.Status, true
	case "px":
		return d.Px, true
	case "py":
		return d.Py, true
	case "pz":
		return d.Pz, true
	case "e":
		return d.E, true
	case "mass":
		return d.Mass, true
	}
	return nil, false
}

func resizeInt64(s []int64, n int) []int64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int64, n)
}

func resizeInt32(s []int32, n int) []int32 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int32, n)
}

func resizeFloat64(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}

func resizeVertexID(s []VertexID, n int) []VertexID {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]VertexID, n)
}

func resizeParticleID(s []ParticleID, n int) []ParticleID {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]ParticleID, n)
}
