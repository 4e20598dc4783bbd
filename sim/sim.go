package sim

import (
	"fmt"

	pursuit "github.com/milosgajdos/go-pursuit"
)

// Track generates scalar agent positions for discrete time steps.
type Track interface {
	// Position returns the agent position at the given step
	Position(step int) float64
}

// Kinematic is a constant-acceleration track:
//
//	x[n] = X0 + V*n + 0.5*A*n^2
type Kinematic struct {
	// X0 is the initial position
	X0 float64
	// V is the velocity
	V float64
	// A is the acceleration
	A float64
}

// Position returns the track position at the given step.
func (k *Kinematic) Position(step int) float64 {
	n := float64(step)

	return k.X0 + k.V*n + 0.5*k.A*n*n
}

// Falcon couples a threat identifier with the track it flies.
type Falcon struct {
	// ID is the threat identifier
	ID string
	// Track is the threat flight path
	Track Track
}

// Scenario is a deterministic discrete-time pursuit simulation:
// a signal agent flying a track while zero or more threat agents chase it.
type Scenario struct {
	// dove is the signal agent track
	dove Track
	// falcons are the threat agents
	falcons []Falcon
}

// NewScenario creates new Scenario with the given signal track and threat agents.
// It returns error if the signal track or either of the threat tracks is nil
// or if a threat identifier is empty.
func NewScenario(dove Track, falcons ...Falcon) (*Scenario, error) {
	if dove == nil {
		return nil, fmt.Errorf("invalid signal track: %v", dove)
	}

	for i, f := range falcons {
		if f.Track == nil || f.ID == "" {
			return nil, fmt.Errorf("invalid threat agent: %d", i)
		}
	}

	fs := make([]Falcon, len(falcons))
	copy(fs, falcons)

	return &Scenario{
		dove:    dove,
		falcons: fs,
	}, nil
}

// Run replays the scenario against the given tracker for the given number of steps.
// On every step it feeds the tracker one signal observation and one observation
// per threat agent, then requests a prediction.
// It returns the per-step predictions.
// It returns error if steps is not positive or if the tracker fails to predict.
func (s *Scenario) Run(t pursuit.Tracker, steps int) ([]pursuit.Density, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("invalid number of steps: %d", steps)
	}

	preds := make([]pursuit.Density, 0, steps)
	for step := 0; step < steps; step++ {
		pos := s.dove.Position(step)
		t.Tick(pursuit.Observation{Signal: &pos})

		for _, f := range s.falcons {
			threat := f.Track.Position(step)
			t.Tick(pursuit.Observation{Threat: &threat, ThreatID: f.ID})
		}

		d, err := t.Predict()
		if err != nil {
			return nil, fmt.Errorf("prediction failed at step %d: %v", step, err)
		}
		preds = append(preds, d)
	}

	return preds, nil
}
