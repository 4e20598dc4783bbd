package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milosgajdos/go-pursuit/density"
)

func TestNewDensityPlot(t *testing.T) {
	assert := assert.New(t)

	n, err := density.NewNormal(0.0, 1.0, 1.0)
	assert.NoError(err)

	p, err := NewDensityPlot(n, -5.0, 5.0, 100)
	assert.NotNil(p)
	assert.NoError(err)

	p, err = NewDensityPlot(nil, -5.0, 5.0, 100)
	assert.Nil(p)
	assert.Error(err)

	p, err = NewDensityPlot(n, 5.0, -5.0, 100)
	assert.Nil(p)
	assert.Error(err)

	p, err = NewDensityPlot(n, -5.0, 5.0, 1)
	assert.Nil(p)
	assert.Error(err)
}
