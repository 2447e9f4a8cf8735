package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoVertexEvent builds a small event by hand:
//
//	p0, p1 -> v0 -> p2, p3 -> v1 -> p4
//
// p2 is an intermediate, p3 and p4 are final state.
func twoVertexEvent() *Event {
	ev := NewEvent(5)
	ev.EventNumber = 17
	ev.XSec, ev.XSecErr = 41.3, 0.7
	ev.Weights = []float64{1.0}

	p0 := ev.AddParticle(Particle{
		ID: 1, PID: 2212, Status: 4, Pz: 6500, E: 6500,
		ProdVertex: NilVertex, EndVertex: NilVertex,
	})
	p1 := ev.AddParticle(Particle{
		ID: 2, PID: 2212, Status: 4, Pz: -6500, E: 6500,
		ProdVertex: NilVertex, EndVertex: NilVertex,
	})
	p2 := ev.AddParticle(Particle{
		ID: 3, PID: 23, Status: 2, E: 91.2, Mass: 91.1876,
		ProdVertex: NilVertex, EndVertex: NilVertex,
	})
	p3 := ev.AddParticle(Particle{
		ID: 4, PID: 2212, Status: 1, Px: 0.3, E: 12.5, Mass: 0.938272,
		ProdVertex: NilVertex, EndVertex: NilVertex,
	})
	p4 := ev.AddParticle(Particle{
		ID: 5, PID: 11, Status: 1, Py: -1.1, E: 45.6,
		ProdVertex: NilVertex, EndVertex: NilVertex,
	})

	ev.AddVertex(Vertex{
		ID: 1, T: 0.1, In: []ParticleID{p0, p1}, Out: []ParticleID{p2, p3},
	})
	ev.AddVertex(Vertex{
		ID: 2, X: 0.2, In: []ParticleID{p2}, Out: []ParticleID{p4},
	})

	return ev
}

func TestEventCounts(t *testing.T) {
	ev := twoVertexEvent()
	assert.Equal(t, 5, ev.NParticles())
	assert.Equal(t, 2, ev.NVertices())
}

func TestParticleRoundTrip(t *testing.T) {
	ev := twoVertexEvent()

	p := ev.Particle(3)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, int32(2212), p.PID)
	assert.Equal(t, FinalState, p.Status)
	assert.Equal(t, 0.3, p.Px)
	assert.Equal(t, 12.5, p.E)
	assert.Equal(t, 0.938272, p.Mass)
}

func TestVertexLinksBackReferences(t *testing.T) {
	ev := twoVertexEvent()

	// AddVertex must have set both directions of every link.
	assert.Equal(t, VertexID(0), ev.Particle(0).EndVertex)
	assert.Equal(t, VertexID(0), ev.Particle(1).EndVertex)
	assert.Equal(t, VertexID(0), ev.Particle(2).ProdVertex)
	assert.Equal(t, VertexID(1), ev.Particle(2).EndVertex)
	assert.Equal(t, VertexID(0), ev.Particle(3).ProdVertex)
	assert.Equal(t, VertexID(1), ev.Particle(4).ProdVertex)

	v := ev.Vertex(0)
	assert.Equal(t, []ParticleID{0, 1}, v.In)
	assert.Equal(t, []ParticleID{2, 3}, v.Out)
}

func TestVertexNavigation(t *testing.T) {
	ev := twoVertexEvent()

	// Walk from the intermediate particle to its decay product.
	p2 := ev.Particle(2)
	decay := ev.Vertex(p2.EndVertex)
	assert.Equal(t, 1, len(decay.Out))
	assert.Equal(t, int64(5), ev.Particle(decay.Out[0]).ID)
}

func TestAddVertexCopiesLinkLists(t *testing.T) {
	ev := NewEvent(1)
	p := ev.AddParticle(Particle{
		ID: 1, Status: 1, ProdVertex: NilVertex, EndVertex: NilVertex,
	})

	out := []ParticleID{p}
	v := ev.AddVertex(Vertex{ID: 1, Out: out})
	out[0] = 999

	assert.Equal(t, []ParticleID{p}, ev.Vertex(v).Out)
}

func TestInvalidReferencesPanic(t *testing.T) {
	ev := twoVertexEvent()

	assert.Panics(t, func() { ev.Particle(5) })
	assert.Panics(t, func() { ev.Particle(-1) })
	assert.Panics(t, func() { ev.Vertex(2) })
	assert.Panics(t, func() {
		ev.AddParticle(Particle{ProdVertex: 10, EndVertex: NilVertex})
	})
	assert.Panics(t, func() {
		ev.AddVertex(Vertex{In: []ParticleID{40}})
	})
}

func TestClearKeepsCapacity(t *testing.T) {
	ev := twoVertexEvent()
	ev.Clear()

	assert.Equal(t, 0, ev.NParticles())
	assert.Equal(t, 0, ev.NVertices())
	assert.Equal(t, 0, len(ev.Weights))

	// The store is immediately reusable.
	p := ev.AddParticle(Particle{
		ID: 1, Status: 1, ProdVertex: NilVertex, EndVertex: NilVertex,
	})
	assert.Equal(t, ParticleID(0), p)
}

func BenchmarkParticle(b *testing.B) {
	ev := twoVertexEvent()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.Particle(ParticleID(i % ev.NParticles()))
	}
}
