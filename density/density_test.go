package density

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNormal(t *testing.T) {
	assert := assert.New(t)

	n, err := NewNormal(1.0, 2.0, 0.5)
	assert.NotNil(n)
	assert.NoError(err)

	n, err = NewNormal(1.0, 0.0, 0.5)
	assert.Nil(n)
	assert.Error(err)

	n, err = NewNormal(1.0, -1.0, 0.5)
	assert.Nil(n)
	assert.Error(err)

	n, err = NewNormal(1.0, 2.0, -0.5)
	assert.Nil(n)
	assert.Error(err)
}

func TestNormalStats(t *testing.T) {
	assert := assert.New(t)

	loc, scale, weight := 1.0, 2.0, 0.5
	n, err := NewNormal(loc, scale, weight)
	assert.NotNil(n)
	assert.NoError(err)

	assert.Equal(loc, n.Mean())
	assert.Equal(scale, n.StdDev())
	assert.Equal(weight, n.Weight())

	// peak density of a normal distribution
	peak := 1.0 / (scale * math.Sqrt(2.0*math.Pi))
	assert.InDelta(peak, n.Prob(loc), 1e-12)
	assert.InDelta(math.Log(peak), n.LogProb(loc), 1e-12)
	assert.InDelta(0.5, n.CDF(loc), 1e-12)
}

func TestNormalSample(t *testing.T) {
	assert := assert.New(t)

	n, err := NewNormal(0.0, 1.0, 1.0)
	assert.NotNil(n)
	assert.NoError(err)

	var mean float64
	count := 1000
	for i := 0; i < count; i++ {
		s := n.Sample()
		assert.False(math.IsNaN(s))
		mean += s
	}
	mean /= float64(count)

	assert.InDelta(0.0, mean, 0.3)
}

func TestNewMixture(t *testing.T) {
	assert := assert.New(t)

	a, err := NewNormal(0.0, 1.0, 0.3)
	assert.NoError(err)
	b, err := NewNormal(2.0, 1.0, 0.7)
	assert.NoError(err)

	m, err := NewMixture(1.0, a, b)
	assert.NotNil(m)
	assert.NoError(err)
	assert.Equal(1.0, m.Weight())
	assert.Equal(2, len(m.Components()))

	m, err = NewMixture(-1.0, a, b)
	assert.Nil(m)
	assert.Error(err)

	m, err = NewMixture(1.0)
	assert.Nil(m)
	assert.Error(err)

	m, err = NewMixture(1.0, a, nil)
	assert.Nil(m)
	assert.Error(err)

	// all-zero component weights leave nothing to sample from
	z1, err := NewNormal(0.0, 1.0, 0.0)
	assert.NoError(err)
	z2, err := NewNormal(2.0, 1.0, 0.0)
	assert.NoError(err)

	m, err = NewMixture(1.0, z1, z2)
	assert.Nil(m)
	assert.Error(err)
}

func TestMixtureProbMean(t *testing.T) {
	assert := assert.New(t)

	a, err := NewNormal(0.0, 1.0, 0.3)
	assert.NoError(err)
	b, err := NewNormal(2.0, 1.0, 0.7)
	assert.NoError(err)

	m, err := NewMixture(1.0, a, b)
	assert.NotNil(m)
	assert.NoError(err)

	for _, x := range []float64{-1.0, 0.0, 1.0, 2.5} {
		p := 0.3*a.Prob(x) + 0.7*b.Prob(x)
		assert.InDelta(p, m.Prob(x), 1e-12)
		assert.InDelta(math.Log(p), m.LogProb(x), 1e-12)
	}

	assert.InDelta(1.4, m.Mean(), 1e-12)
}

func TestMixtureSample(t *testing.T) {
	assert := assert.New(t)

	a, err := NewNormal(0.0, 0.1, 0.0)
	assert.NoError(err)
	b, err := NewNormal(100.0, 0.1, 1.0)
	assert.NoError(err)
	c, err := NewNormal(-50.0, 0.1, 0.0)
	assert.NoError(err)

	m, err := NewMixture(1.0, a, b, c)
	assert.NotNil(m)
	assert.NoError(err)

	// only component b carries any mass
	for i := 0; i < 100; i++ {
		assert.InDelta(100.0, m.Sample(), 50.0)
	}
}
