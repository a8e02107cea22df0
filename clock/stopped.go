package clock

import (
	"fmt"
	"time"
)

// Sample is one scripted response from a Stopped clock's Now.
type Sample struct {
	// At is the time Now returns for this sample.
	At time.Time

	// Effect, if set, runs before the sample is returned. Use it to flip
	// state the operation under test observes on its next attempt.
	Effect func()

	// Err, if set, makes Now panic with it instead of returning a time,
	// simulating an unrecoverable clock failure. The panic is intentionally
	// not recovered anywhere in this module; it aborts the whole session.
	Err error
}

// At builds a plain Sample at sec seconds past the Unix epoch.
func At(sec float64) Sample {
	return Sample{At: Epoch(sec)}
}

// Epoch converts seconds past the Unix epoch to a time.Time.
func Epoch(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}

// Stopped is a deterministic Clock for tests. Now returns scripted samples in
// order; Sleep returns immediately and records the requested duration.
//
//	clk := clock.NewStopped(
//	    clock.At(200),
//	    clock.At(250),
//	    clock.Sample{At: clock.Epoch(300), Effect: func() { ready = true }},
//	    clock.At(350),
//	)
//
// Stopped is not safe for concurrent use; it is meant for single-threaded
// retry sessions.
type Stopped struct {
	samples []Sample
	next    int

	// Slept records every duration passed to Sleep, in order.
	Slept []time.Duration
}

// NewStopped returns a Stopped clock scripted with the given samples.
func NewStopped(samples ...Sample) *Stopped {
	return &Stopped{samples: samples}
}

// SetSamples replaces the script and rewinds the clock to its first sample.
func (c *Stopped) SetSamples(samples ...Sample) {
	c.samples = samples
	c.next = 0
}

// Now returns the next scripted sample. Running past the end of the script is
// a test bug and panics.
func (c *Stopped) Now() time.Time {
	if c.next >= len(c.samples) {
		panic(fmt.Sprintf("clock: Stopped exhausted after %d samples", len(c.samples)))
	}

	sample := c.samples[c.next]
	c.next++

	if sample.Err != nil {
		panic(sample.Err)
	}

	if sample.Effect != nil {
		sample.Effect()
	}

	return sample.At
}

// Sleep records d and returns immediately, so tests run fast.
func (c *Stopped) Sleep(d time.Duration) {
	c.Slept = append(c.Slept, d)
}
