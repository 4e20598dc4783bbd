package rnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouletteDrawN(t *testing.T) {
	assert := assert.New(t)

	indices, err := RouletteDrawN(nil, 10)
	assert.Nil(indices)
	assert.Error(err)

	indices, err = RouletteDrawN([]float64{}, 10)
	assert.Nil(indices)
	assert.Error(err)

	// zero total mass must not yield out-of-range indices
	indices, err = RouletteDrawN([]float64{0.0, 0.0, 0.0}, 10)
	assert.Nil(indices)
	assert.Error(err)

	// all mass on the middle index
	indices, err = RouletteDrawN([]float64{0.0, 1.0, 0.0}, 10)
	assert.NoError(err)
	assert.Equal(10, len(indices))
	for _, idx := range indices {
		assert.Equal(1, idx)
	}

	// uniform weights: indices stay within range
	p := []float64{1.0, 1.0, 1.0, 1.0}
	indices, err = RouletteDrawN(p, 100)
	assert.NoError(err)
	assert.Equal(100, len(indices))
	for _, idx := range indices {
		assert.True(idx >= 0 && idx < len(p))
	}
}
