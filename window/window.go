package window

import "fmt"

// Window is a bounded FIFO buffer of scalar position samples.
// Once full, appending a new sample evicts the oldest one.
// Window is implemented as a ring buffer: steady-state appends do not allocate.
type Window struct {
	// buf is the ring storage
	buf []float64
	// head is the index of the oldest sample
	head int
	// count is the number of stored samples
	count int
}

// New creates new Window with the given capacity.
// It returns error if capacity is not a positive integer.
func New(capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid window capacity: %d", capacity)
	}

	return &Window{
		buf: make([]float64, capacity),
	}, nil
}

// Append adds x as the most recent sample.
// If the window is full the oldest sample is evicted.
func (w *Window) Append(x float64) {
	if w.count < len(w.buf) {
		w.buf[(w.head+w.count)%len(w.buf)] = x
		w.count++
		return
	}

	w.buf[w.head] = x
	w.head = (w.head + 1) % len(w.buf)
}

// Len returns the number of stored samples.
func (w *Window) Len() int {
	return w.count
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return len(w.buf)
}

// Last returns the most recent sample.
// It returns false if the window is empty.
func (w *Window) Last() (float64, bool) {
	if w.count == 0 {
		return 0, false
	}

	return w.buf[(w.head+w.count-1)%len(w.buf)], true
}

// Values returns the stored samples ordered oldest first.
func (w *Window) Values() []float64 {
	vals := make([]float64, w.count)
	for i := 0; i < w.count; i++ {
		vals[i] = w.buf[(w.head+i)%len(w.buf)]
	}

	return vals
}

// Velocity returns the first-derivative estimate of the sample path
// evaluated at the most recent sample.
// It returns 0 if the window is empty.
func (w *Window) Velocity() float64 {
	g := Gradient(w.Values())
	if len(g) == 0 {
		return 0
	}

	return g[len(g)-1]
}

// Acceleration returns the second-derivative estimate of the sample path
// evaluated at the most recent sample.
// It returns 0 if the window is empty.
func (w *Window) Acceleration() float64 {
	g := Gradient(Gradient(w.Values()))
	if len(g) == 0 {
		return 0
	}

	return g[len(g)-1]
}

// Gradient returns the finite-difference derivative of the discretely sampled path xs
// assuming unit sample spacing: central differences in the interior,
// one-sided differences at both edges.
// A single-sample path has zero derivative; a nil or empty path returns nil.
func Gradient(xs []float64) []float64 {
	n := len(xs)
	if n == 0 {
		return nil
	}

	g := make([]float64, n)
	if n == 1 {
		return g
	}

	g[0] = xs[1] - xs[0]
	g[n-1] = xs[n-1] - xs[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (xs[i+1] - xs[i-1]) / 2
	}

	return g
}
