package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDataRoundTrip(t *testing.T) {
	ev := twoVertexEvent()
	d := &Data{}
	ev.WriteData(d)

	assert.Equal(t, ev.NParticles(), d.NParticles())
	assert.Equal(t, ev.NVertices(), d.NVertices())
	assert.Equal(t, ev.EventNumber, d.EventNumber)
	assert.Equal(t, ev.XSec, d.XSec)
	assert.Equal(t, ev.Weights, d.Weights)

	// Direct field copies must be bit-for-bit.
	for i := 0; i < ev.NParticles(); i++ {
		p := ev.Particle(ParticleID(i))
		assert.Equal(t, p.ID, d.ID[i])
		assert.Equal(t, p.PID, d.PID[i])
		assert.Equal(t, p.Status, d.Status[i])
		assert.Equal(t, p.Px, d.Px[i])
		assert.Equal(t, p.Py, d.Py[i])
		assert.Equal(t, p.Pz, d.Pz[i])
		assert.Equal(t, p.E, d.E[i])
		assert.Equal(t, p.Mass, d.Mass[i])
		assert.Equal(t, p.ProdVertex, d.Prod[i])
		assert.Equal(t, p.EndVertex, d.End[i])
	}

	for i := 0; i < ev.NVertices(); i++ {
		v := ev.Vertex(VertexID(i))
		assert.Equal(t, v.ID, d.VtxID[i])
		assert.Equal(t, v.T, d.T[i])
		assert.Equal(t, v.In, d.InIdx[d.InStart[i]:d.InStart[i+1]])
		assert.Equal(t, v.Out, d.OutIdx[d.OutStart[i]:d.OutStart[i+1]])
	}
}

func TestWriteDataIdempotent(t *testing.T) {
	ev := twoVertexEvent()
	d1, d2 := &Data{}, &Data{}
	ev.WriteData(d1)
	ev.WriteData(d2)
	assert.Equal(t, d1, d2)

	// Rewriting into the same Data gives the same arrays again.
	ev.WriteData(d1)
	assert.Equal(t, d2, d1)
}

func TestWriteDataIsDetached(t *testing.T) {
	ev := twoVertexEvent()
	d := &Data{}
	ev.WriteData(d)

	d.E[0] = -1
	d.PID[0] = 0
	assert.Equal(t, 6500.0, ev.Particle(0).E)
	assert.Equal(t, int32(2212), ev.Particle(0).PID)
}

func TestWriteDataReusesStorage(t *testing.T) {
	big := NewEvent(64)
	for i := 0; i < 64; i++ {
		big.AddParticle(Particle{
			ID: int64(i), Status: 1,
			ProdVertex: NilVertex, EndVertex: NilVertex,
		})
	}

	d := &Data{}
	big.WriteData(d)
	p0 := &d.E[0]

	// A smaller event must fit into the same allocation.
	small := twoVertexEvent()
	small.WriteData(d)
	assert.Equal(t, small.NParticles(), d.NParticles())
	assert.Same(t, p0, &d.E[0])

	// And growing back must still be correct.
	big.WriteData(d)
	assert.Equal(t, 64, d.NParticles())
}

func TestWriteDataEmptyEvent(t *testing.T) {
	ev := NewEvent(0)
	d := &Data{}
	ev.WriteData(d)

	assert.Equal(t, 0, d.NParticles())
	assert.Equal(t, 0, d.NVertices())
	assert.Equal(t, []int32{0}, d.InStart)
	assert.Equal(t, []int32{0}, d.OutStart)
}

func TestReadDataInvertsWriteData(t *testing.T) {
	ev := twoVertexEvent()
	d := &Data{}
	ev.WriteData(d)

	ev2 := NewEvent(0)
	ev2.ReadData(d)

	assert.Equal(t, ev.NParticles(), ev2.NParticles())
	assert.Equal(t, ev.NVertices(), ev2.NVertices())
	assert.Equal(t, ev.EventNumber, ev2.EventNumber)
	for i := 0; i < ev.NParticles(); i++ {
		assert.Equal(t, ev.Particle(ParticleID(i)), ev2.Particle(ParticleID(i)))
	}
	for i := 0; i < ev.NVertices(); i++ {
		assert.Equal(t, ev.Vertex(VertexID(i)), ev2.Vertex(VertexID(i)))
	}
}

func TestReadDataInvalidLinkagePanics(t *testing.T) {
	ev := twoVertexEvent()
	d := &Data{}
	ev.WriteData(d)
	d.Prod[0] = 40

	ev2 := NewEvent(0)
	assert.Panics(t, func() { ev2.ReadData(d) })
}

func TestDataField(t *testing.T) {
	ev := twoVertexEvent()
	d := &Data{}
	ev.WriteData(d)

	e, ok := d.Field("e")
	assert.True(t, ok)
	assert.Equal(t, d.E, e)

	_, ok = d.Field("vx")
	assert.False(t, ok)
}

func BenchmarkWriteData(b *testing.B) {
	ev := NewEvent(1000)
	for i := 0; i < 1000; i++ {
		ev.AddParticle(Particle{
			ID: int64(i), Status: 1, E: float64(i),
			ProdVertex: NilVertex, EndVertex: NilVertex,
		})
	}

	d := &Data{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.WriteData(d)
	}
}
