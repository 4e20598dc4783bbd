package field

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	// emptyVariance is the field variance sentinel for an empty field.
	// High variance signals low threat i.e. high uncertainty.
	emptyVariance = 10.0
	// singleVariance is the field variance sentinel for a single threat.
	// A one-element field must not signal artificial certainty.
	singleVariance = 1.0
)

// Field tracks the last known position of each threat agent.
// Only the most recent position per threat identifier is retained.
type Field struct {
	// positions maps threat identifier to its last known position
	positions map[string]float64
}

// New creates new empty Field and returns it.
func New() *Field {
	return &Field{
		positions: make(map[string]float64),
	}
}

// Observe records pos as the last known position of the threat with the given id.
// Any previously recorded position for id is overwritten.
func (f *Field) Observe(id string, pos float64) {
	f.positions[id] = pos
}

// Size returns the number of tracked threats.
func (f *Field) Size() int {
	return len(f.positions)
}

// Positions returns the last known threat positions ordered by threat identifier.
func (f *Field) Positions() []float64 {
	ids := make([]string, 0, len(f.positions))
	for id := range f.positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	positions := make([]float64, len(ids))
	for i, id := range ids {
		positions[i] = f.positions[id]
	}

	return positions
}

// Variance returns the population variance of the threat positions.
// It returns sentinel values for degenerate fields: 10.0 when the field
// is empty and 1.0 when it holds a single threat.
func (f *Field) Variance() float64 {
	switch len(f.positions) {
	case 0:
		return emptyVariance
	case 1:
		return singleVariance
	}

	return stat.PopVariance(f.Positions(), nil)
}

// Closest returns the threat position with the minimum absolute distance to pos.
// It returns false if the field is empty.
// Distance ties are broken by threat identifier order.
func (f *Field) Closest(pos float64) (float64, bool) {
	if len(f.positions) == 0 {
		return 0, false
	}

	closest, minDist := 0.0, math.Inf(1)
	for _, p := range f.Positions() {
		if dist := math.Abs(p - pos); dist < minDist {
			closest, minDist = p, dist
		}
	}

	return closest, true
}

// Repulsion returns the unit direction pointing away from the threat closest to pos:
// +1, -1 or 0 when pos coincides with the closest threat.
// It returns 0 if the field is empty.
func (f *Field) Repulsion(pos float64) float64 {
	closest, ok := f.Closest(pos)
	if !ok {
		return 0
	}

	return sign(pos - closest)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}
