package rnd

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// RouletteDrawN draws n indices at random from the probability mass function
// defined by the weights in p: the chance of drawing an index is proportional
// to its weight. This is what selects a mixture component when sampling from
// a composite density.
// It returns a slice of n indices into the vector p.
// It returns error if p is empty or carries no positive mass.
func RouletteDrawN(p []float64, n int) ([]int, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("invalid probability weights: %v", p)
	}

	// cumulative mass of p; ascending since weights are non-negative
	cdf := make([]float64, len(p))
	floats.CumSum(cdf, p)

	total := cdf[len(cdf)-1]
	if total <= 0 {
		return nil, fmt.Errorf("no positive probability mass: %v", p)
	}

	var val float64
	indices := make([]int, n)
	for i := range indices {
		// draw uniformly from [0, total) rather than normalizing p
		val = distuv.UnitUniform.Rand() * total
		// the first cumulative bin exceeding the draw is the chosen index
		indices[i] = sort.Search(len(cdf), func(i int) bool { return cdf[i] > val })
	}

	return indices, nil
}
