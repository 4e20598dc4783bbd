package pursuit

// Observation is a single tick of tracking input.
// All fields are optional: a nil position means no update for that field.
type Observation struct {
	// Signal is the tracked agent position
	Signal *float64
	// Threat is a threat agent position
	Threat *float64
	// ThreatID identifies the threat agent; empty means no threat update
	ThreatID string
	// Metrics is an opaque host instrumentation record, not read by trackers
	Metrics map[string]float64
}

// Density is a univariate probability density
type Density interface {
	// Prob returns the density at x
	Prob(x float64) float64
	// LogProb returns the natural logarithm of the density at x
	LogProb(x float64) float64
	// Mean returns the density mean
	Mean() float64
	// Weight returns the density weight in its enclosing ensemble
	Weight() float64
}

// Sampler draws random samples from a density
type Sampler interface {
	// Sample returns a single random sample
	Sample() float64
}

// Tracker is a real-time state estimator
type Tracker interface {
	// Tick updates tracker state from an observation
	Tick(Observation)
	// Predict estimates the density of the next signal position
	Predict() (Density, error)
}
