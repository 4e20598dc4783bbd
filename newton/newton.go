package newton

import (
	"fmt"

	pursuit "github.com/milosgajdos/go-pursuit"
	"github.com/milosgajdos/go-pursuit/density"
	"github.com/milosgajdos/go-pursuit/field"
	"github.com/milosgajdos/go-pursuit/window"
)

const (
	// warmupLen is the minimum history length required for a full mixture prediction
	warmupLen = 5
	// warmupScale is the conservative spread of the warmup density
	warmupScale = 2.0
	// flowScaleBase is the base spread of the inertial component
	flowScaleBase = 0.2
	// flowScaleGain scales the inertial spread with field variance
	flowScaleGain = 0.1
	// snapScale is the tight spread of the evasive component
	snapScale = 0.15
	// snapGain scales the evasive weight with field cohesion
	snapGain = 0.8
	// crashScale is the wide spread of the chaos component
	crashScale = 4.0
	// crashWeight is the mass always reserved for the chaos component
	crashWeight = 0.05
	// cohesionDamp keeps the cohesion index finite for a zero-variance field
	cohesionDamp = 0.1
)

// Engine is a Newtonian mixture-density state estimator.
// It tracks a signal agent through a bounded window of noisy position
// observations and a field of threat agent positions, and predicts the
// next signal position as a three-component normal mixture:
// an inertial component extrapolating constant-acceleration motion,
// an evasive component pointing away from the closest threat and
// a wide chaos component anchored at the last known position.
//
// Engine is not safe for concurrent use: the caller must serialize
// Tick and Predict calls.
type Engine struct {
	// c is engine configuration
	c Config
	// path is the signal position history
	path *window.Window
	// threats is the threat position field
	threats *field.Field
	// lastPos is the most recently observed signal position
	lastPos float64
}

// New creates new Engine with the given configuration and returns it.
// It returns error if the configuration is invalid.
func New(c Config) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %v", err)
	}

	path, err := window.New(c.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create signal window: %v", err)
	}

	return &Engine{
		c:       c,
		path:    path,
		threats: field.New(),
	}, nil
}

// Tick updates the engine state from the given observation.
// A present signal position becomes the new last known position and is
// appended to the signal history, evicting the oldest sample when the
// history is full. A present threat position with a non-empty threat
// identifier overwrites that threat's entry in the threat field.
// Absent fields are silently skipped; the observation metrics are
// accepted for host instrumentation and are not read.
func (e *Engine) Tick(obs pursuit.Observation) {
	if obs.Signal != nil {
		e.lastPos = *obs.Signal
		e.path.Append(*obs.Signal)
	}

	if obs.Threat != nil && obs.ThreatID != "" {
		e.threats.Observe(obs.ThreatID, *obs.Threat)
	}
}

// Predict estimates the density of the next signal position.
// Until the signal history holds at least 5 samples it returns a single
// conservative normal density centered at the last known position.
// Once warm it returns a three-component mixture with an outer weight of 1.0.
// Predict is deterministic given the current engine state.
// It returns error if it fails to build the density.
func (e *Engine) Predict() (pursuit.Density, error) {
	if e.path.Len() < warmupLen {
		d, err := density.NewNormal(e.lastPos, warmupScale, 1.0)
		if err != nil {
			return nil, fmt.Errorf("failed to create warmup density: %v", err)
		}

		return d, nil
	}

	// constant-acceleration kinematic extrapolation one step ahead
	inertial := e.lastPos + e.path.Velocity() + 0.5*e.path.Acceleration()

	fieldVar := e.threats.Variance()

	wA, wB, wC := mixWeights(cohesion(fieldVar))

	flow, err := density.NewNormal(inertial, flowScaleBase+flowScaleGain*fieldVar, wA)
	if err != nil {
		return nil, fmt.Errorf("failed to create inertial component: %v", err)
	}

	snapLoc, snapSc := flow.Mean(), flow.StdDev()
	if e.threats.Size() > 0 {
		snapLoc = e.lastPos + e.c.EvasionFactor*e.threats.Repulsion(e.lastPos)
		snapSc = snapScale
	}
	snap, err := density.NewNormal(snapLoc, snapSc, wB)
	if err != nil {
		return nil, fmt.Errorf("failed to create evasive component: %v", err)
	}

	crash, err := density.NewNormal(e.lastPos, crashScale, wC)
	if err != nil {
		return nil, fmt.Errorf("failed to create chaos component: %v", err)
	}

	m, err := density.NewMixture(1.0, flow, snap, crash)
	if err != nil {
		return nil, fmt.Errorf("failed to create mixture: %v", err)
	}

	return m, nil
}

// cohesion returns the cohesion index of a threat field with the given variance:
// the clamped inverse variance in [0,1].
// Low variance means an organized field and a high cohesion index.
func cohesion(fieldVar float64) float64 {
	c := 1.0 / (fieldVar + cohesionDamp)
	if c > 1.0 {
		return 1.0
	}
	if c < 0.0 {
		return 0.0
	}

	return c
}

// mixWeights returns the inertial, evasive and chaos component weights
// for the given cohesion index. The evasive weight scales with cohesion,
// the chaos weight is a fixed reserve and the inertial weight takes the rest.
// If the inertial weight goes negative it is clamped to 0 and only the
// evasive weight is re-derived; the chaos reserve is left untouched.
func mixWeights(cohesion float64) (wA, wB, wC float64) {
	wB = cohesion * snapGain
	wC = crashWeight
	wA = 1.0 - wB - wC

	if wA < 0 {
		wA = 0
		wB = 1.0 - wC
	}

	return wA, wB, wC
}
