package waitfor

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-wait/clock"
)

// Defaults for the polling loop.
const (
	DefaultTimeout = 600 * time.Second
	DefaultDelay   = 4 * time.Second
)

// Option configures a polling session.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

// options holds the internal configuration for one polling session.
type options struct {
	timeout      time.Duration // Max wall-clock time from the first attempt before giving up
	delay        time.Duration // Sleep between a NotReady result and the next attempt
	startMessage string        // Optional message printed before the first attempt
	silent       bool          // Suppress start, progress, and end output
	clock        clock.Clock   // Time source; nil means the process default
	stdout       io.Writer     // Destination for start, progress, and success output
	stderr       io.Writer     // Destination for failure and giving-up output
	logger       *slog.Logger  // Optional debug logger; nil disables
}

func defaultOptions() *options {
	return &options{
		timeout: DefaultTimeout,
		delay:   DefaultDelay,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithTimeout sets the maximum wall-clock time, measured from the first clock
// sample, before the session gives up on NotReady results. Default 600s.
//
// Example:
//
//	result := waitfor.Do(op, waitfor.WithTimeout(2*time.Minute))
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithDelay sets the fixed sleep between a NotReady result and the next
// attempt. Default 4s. There is no backoff: this is a fixed-delay primitive.
func WithDelay(delay time.Duration) Option {
	return func(o *options) {
		o.delay = delay
	}
}

// WithStartMessage sets a message printed to standard output before the first
// attempt. A {start_time} placeholder, if present, is replaced with the
// session's start time in epoch seconds.
//
// Example:
//
//	waitfor.WithStartMessage("waiting for cluster since {start_time}")
func WithStartMessage(message string) Option {
	return func(o *options) {
		o.startMessage = message
	}
}

// Silent suppresses the start message, progress markers, and end message.
// The final Outcome is still returned as usual.
func Silent() Option {
	return func(o *options) {
		o.silent = true
	}
}

// WithClock sets the time source for this session, overriding the process
// default. Useful for driving the loop with a clock.Stopped in tests.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// WithOutput redirects the session's output streams. stdout receives the
// start message, progress markers, and Success end messages; stderr receives
// Failure and giving-up NotReady end messages. Defaults are os.Stdout and
// os.Stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithLogger enables structured debug logging of each attempt and the final
// outcome. A nil logger disables logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
