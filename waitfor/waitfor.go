// Package waitfor polls an operation until it reports a definitive outcome or
// a deadline elapses. It is a fixed-delay, single-operation retry primitive
// for conditions that become true asynchronously, such as waiting for a
// remote resource to come up, without writing the polling loop by hand.
//
// The operation returns an outcome.Outcome. Success and Failure stop the loop
// immediately; NotReady means "ask again later" and is retried every delay
// until the timeout, after which the last NotReady is returned as the final
// result. All three states are values, never errors: the loop never converts
// a domain outcome into an error or panic.
//
// Basic usage:
//
//	result := waitfor.Do(func() outcome.Outcome {
//	    if clusterGreen() {
//	        return outcome.Success(outcome.Template("green after {total_time} seconds"))
//	    }
//	    return outcome.NotReady(outcome.Template("still waiting after {retries} retries"))
//	}, waitfor.WithTimeout(5*time.Minute), waitfor.WithDelay(10*time.Second))
//
// Wrap builds a reusable operation instead; every call runs a fresh session:
//
//	check := waitfor.Wrap(probeDatabase, waitfor.WithTimeout(time.Minute))
//	result := check()
//
// Deliberately out of scope: exponential backoff, jitter, circuit breaking,
// and retry budgets. An attempt that blocks forever is not preemptible; the
// deadline is only checked between attempts.
package waitfor

import (
	"fmt"
	"time"

	"github.com/amp-labs/amp-wait/clock"
	"github.com/amp-labs/amp-wait/outcome"
	"go.uber.org/atomic"
)

// Operation is the caller-supplied unit of work. It must return an Outcome
// built by outcome.Success, outcome.Failure, or outcome.NotReady; anything
// else is a contract violation and the engine panics.
type Operation func() outcome.Outcome

// processClock holds the process-wide default time source. Sessions resolve
// it at entry, so tests that swap it must do so before invoking the wrapped
// operation.
var processClock = func() *atomic.Pointer[clock.Clock] {
	system := clock.Clock(clock.System{})

	return atomic.NewPointer(&system)
}()

// DefaultClock returns the process-wide default time source used by sessions
// that do not set WithClock.
func DefaultClock() clock.Clock {
	return *processClock.Load()
}

// SetDefaultClock replaces the process-wide default time source and returns
// the previous one. It exists as a substitution point for tests of code that
// calls Do or Wrap without exposing options; prefer WithClock when you can
// pass options through. Concurrent sessions share this default, so tests that
// swap in a clock.Stopped must not run sessions in parallel.
func SetDefaultClock(clk clock.Clock) clock.Clock {
	previous := processClock.Swap(&clk)

	return *previous
}

// session is the per-invocation state of one polling loop.
type session struct {
	start    time.Time
	deadline time.Time
	current  time.Time
	attempts int
}

// Do runs one complete polling session over op and returns its final Outcome
// unchanged. The payload is never mutated; template expansion only affects
// what the reporter prints.
//
// The operation is always invoked at least once, even when the timeout is
// zero or negative and the deadline precedes the first clock sample.
func Do(op Operation, opts ...Option) outcome.Outcome {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	clk := cfg.clock
	if clk == nil {
		clk = DefaultClock()
	}

	rep := &reporter{stdout: cfg.stdout, stderr: cfg.stderr}

	sess := session{start: clk.Now()}
	sess.deadline = sess.start.Add(cfg.timeout)
	sess.current = sess.start

	if cfg.startMessage != "" && !cfg.silent {
		rep.start(cfg.startMessage, sess.start)
	}

	var result outcome.Outcome

	for {
		result = op()
		sess.attempts++

		if cfg.logger != nil {
			cfg.logger.Debug("attempt finished",
				"attempt", sess.attempts,
				"outcome", result.String(),
			)
		}

		if !result.Valid() {
			panic(fmt.Sprintf(
				"waitfor: operation returned an invalid outcome on attempt %d; "+
					"use outcome.Success, outcome.Failure, or outcome.NotReady",
				sess.attempts,
			))
		}

		if !result.IsNotReady() {
			// Success or plain Failure is definitive.
			break
		}

		if !cfg.silent {
			rep.progress()
		}

		clk.Sleep(cfg.delay)

		// Only explicit clock samples count toward elapsed time; time spent
		// inside the operation itself is not separately accounted for.
		sess.current = clk.Now()
		if !sess.current.Before(sess.deadline) {
			// Deadline reached while still NotReady: the last result stands,
			// no extra attempt is made.
			break
		}
	}

	totalTime := sess.current.Sub(sess.start)

	if !cfg.silent {
		rep.end(result, totalTime, sess.attempts)
	}

	if cfg.logger != nil {
		cfg.logger.Debug("session finished",
			"attempts", sess.attempts,
			"total_time", totalTime,
			"outcome", result.String(),
		)
	}

	return result
}

// Wrap returns an Operation that runs op under a polling session each time it
// is invoked. Every call starts from scratch: fresh start time, fresh attempt
// count, nothing carried over from previous calls.
func Wrap(op Operation, opts ...Option) Operation {
	return func() outcome.Outcome {
		return Do(op, opts...)
	}
}
