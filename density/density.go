package density

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/milosgajdos/go-pursuit/rnd"
)

// Normal is a weighted univariate normal (aka Gaussian) density.
type Normal struct {
	// dist is the underlying normal distribution
	dist distuv.Normal
	// w is the density weight in its enclosing ensemble
	w float64
}

// NewNormal creates new Normal density with the given location, scale and weight.
// It returns error if scale is not positive or if weight is negative.
func NewNormal(loc, scale, weight float64) (*Normal, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", scale)
	}

	if weight < 0 {
		return nil, fmt.Errorf("invalid weight: %v", weight)
	}

	seed := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	return &Normal{
		dist: distuv.Normal{Mu: loc, Sigma: scale, Src: seed},
		w:    weight,
	}, nil
}

// Prob returns the density at x.
func (n *Normal) Prob(x float64) float64 {
	return n.dist.Prob(x)
}

// LogProb returns the natural logarithm of the density at x.
func (n *Normal) LogProb(x float64) float64 {
	return n.dist.LogProb(x)
}

// CDF returns the cumulative probability at x.
func (n *Normal) CDF(x float64) float64 {
	return n.dist.CDF(x)
}

// Mean returns the density location.
func (n *Normal) Mean() float64 {
	return n.dist.Mu
}

// StdDev returns the density scale.
func (n *Normal) StdDev() float64 {
	return n.dist.Sigma
}

// Weight returns the density weight.
func (n *Normal) Weight() float64 {
	return n.w
}

// Sample returns a random sample drawn from the density.
func (n *Normal) Sample() float64 {
	return n.dist.Rand()
}

// String implements the Stringer interface.
func (n *Normal) String() string {
	return fmt.Sprintf("Normal{\nLoc=%v\nScale=%v\nWeight=%v\n}", n.dist.Mu, n.dist.Sigma, n.w)
}

// Mixture is a weighted composite of Normal densities.
// Component weights are non-negative; they are not renormalized here.
type Mixture struct {
	// comps are mixture components
	comps []*Normal
	// w is the mixture weight in its enclosing ensemble
	w float64
}

// NewMixture creates new Mixture with the given outer weight and components.
// It returns error if weight is negative, no components are given, any
// component is nil or the component weights carry no positive mass.
func NewMixture(weight float64, comps ...*Normal) (*Mixture, error) {
	if weight < 0 {
		return nil, fmt.Errorf("invalid weight: %v", weight)
	}

	if len(comps) == 0 {
		return nil, fmt.Errorf("no mixture components given")
	}

	var mass float64
	for i, c := range comps {
		if c == nil {
			return nil, fmt.Errorf("invalid mixture component: %d", i)
		}
		mass += c.Weight()
	}

	if mass <= 0 {
		return nil, fmt.Errorf("no positive component mass: %v", mass)
	}

	m := make([]*Normal, len(comps))
	copy(m, comps)

	return &Mixture{
		comps: m,
		w:     weight,
	}, nil
}

// Components returns the mixture components.
func (m *Mixture) Components() []*Normal {
	comps := make([]*Normal, len(m.comps))
	copy(comps, m.comps)

	return comps
}

// Prob returns the weighted sum of component densities at x.
func (m *Mixture) Prob(x float64) float64 {
	var p float64
	for _, c := range m.comps {
		p += c.Weight() * c.Prob(x)
	}

	return p
}

// LogProb returns the natural logarithm of the mixture density at x.
func (m *Mixture) LogProb(x float64) float64 {
	return math.Log(m.Prob(x))
}

// Mean returns the weighted mean of the mixture components.
func (m *Mixture) Mean() float64 {
	var mean float64
	for _, c := range m.comps {
		mean += c.Weight() * c.Mean()
	}

	return mean
}

// Weight returns the mixture weight.
func (m *Mixture) Weight() float64 {
	return m.w
}

// Sample draws a component index proportionally to the component weights
// and returns a random sample from the chosen component.
func (m *Mixture) Sample() float64 {
	weights := make([]float64, len(m.comps))
	for i, c := range m.comps {
		weights[i] = c.Weight()
	}

	// NewMixture guarantees at least one component with positive mass
	idx, _ := rnd.RouletteDrawN(weights, 1)

	return m.comps[idx[0]].Sample()
}

// String implements the Stringer interface.
func (m *Mixture) String() string {
	s := fmt.Sprintf("Mixture{\nWeight=%v\n", m.w)
	for _, c := range m.comps {
		s += c.String() + "\n"
	}

	return s + "}"
}
