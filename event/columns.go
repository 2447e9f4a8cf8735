package event

import (
	"fmt"
)

// Columns is a read-only, zero-copy view of an event's particle and vertex
// columns. The slices it returns alias the event's own backing arrays, so
// obtaining a view and reading any number of columns allocates nothing.
//
// A view is valid only while the event it came from is alive and unmodified.
// Every accessor rechecks the event's version and panics if the event has
// been structurally modified since the view was created: a stale view is a
// program defect and failing loudly beats returning reseated memory.
//
// Callers must not write through the returned slices.
type Columns struct {
	ev      *Event
	version uint32
}

// Columns returns a zero-copy view of the event's current contents.
func (ev *Event) Columns() Columns {
	return Columns{ev: ev, version: ev.version}
}

func (c Columns) check() {
	if c.ev == nil {
		panic("Use of zero-valued event.Columns.")
	}
	if c.ev.version != c.version {
		panic(fmt.Sprintf("Stale columnar view: event modified since view "+
			"creation (version %d, now %d).", c.version, c.ev.version))
	}
}

// Valid reports whether the view still matches its event. Accessors panic
// on a stale view; Valid lets callers that hold views across event reuse
// check first.
func (c Columns) Valid() bool {
	return c.ev != nil && c.ev.version == c.version
}

// NParticles returns the number of particles in the viewed event.
func (c Columns) NParticles() int { c.check(); return len(c.ev.pID) }

// ID returns the particle identifier column.
func (c Columns) ID() []int64 { c.check(); return c.ev.pID }

// PID returns the particle type code column.
func (c Columns) PID() []int32 { c.check(); return c.ev.pPID }

// Status returns the status code column.
func (c Columns) Status() []int32 { c.check(); return c.ev.pStatus }

// Px returns the x momentum column.
func (c Columns) Px() []float64 { c.check(); return c.ev.pPx }

// Py returns the y momentum column.
func (c Columns) Py() []float64 { c.check(); return c.ev.pPy }

// Pz returns the z momentum column.
func (c Columns) Pz() []float64 { c.check(); return c.ev.pPz }

// E returns the energy column.
func (c Columns) E() []float64 { c.check(); return c.ev.pE }

// Mass returns the generated mass column.
func (c Columns) Mass() []float64 { c.check(); return c.ev.pMass }

// Prod returns the production vertex handle column.
func (c Columns) Prod() []VertexID { c.check(); return c.ev.pProd }

// End returns the end vertex handle column.
func (c Columns) End() []VertexID { c.check(); return c.ev.pEnd }

// NVertices returns the number of vertices in the viewed event.
func (c Columns) NVertices() int { c.check(); return len(c.ev.vID) }

// VtxID returns the vertex identifier column.
func (c Columns) VtxID() []int64 { c.check(); return c.ev.vID }

// X returns the vertex x position column.
func (c Columns) X() []float64 { c.check(); return c.ev.vX }

// Y returns the vertex y position column.
func (c Columns) Y() []float64 { c.check(); return c.ev.vY }

// Z returns the vertex z position column.
func (c Columns) Z() []float64 { c.check(); return c.ev.vZ }

// T returns the vertex time column.
func (c Columns) T() []float64 { c.check(); return c.ev.vT }

// Field returns the particle column with the given name, with the same
// names as Data.Field.
func (c Columns) Field(name string) (interface{}, bool) {
	switch name {
	case "id":
		return c.ID(), true
	case "pid":
		return c.PID(), true
	case "status":
		return c.Status(), true
	case "px":
		return c.Px(), true
	case "py":
		return c.Py(), true
	case "pz":
		return c.Pz(), true
	case "e":
		return c.E(), true
	case "mass":
		return c.Mass(), true
	}
	return nil, false
}
