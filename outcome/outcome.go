// Package outcome provides a three-variant result type for operations whose
// state may not be definitive yet: Success, Failure, and NotReady.
//
// Unlike error-based signaling, all three states are plain values. Success and
// Failure are terminal; NotReady means the operation has not reached a
// definitive state and asking again later may help. NotReady classifies as a
// failure (IsFailure reports true for it) but remains distinguishable so that
// retry loops can treat it differently from a permanent Failure.
//
// Example:
//
//	func checkCluster() outcome.Outcome {
//	    switch state := clusterState(); state {
//	    case "green":
//	        return outcome.Success(outcome.Template("cluster green after {total_time} seconds"))
//	    case "yellow":
//	        return outcome.NotReady(outcome.Template("still yellow after {retries} retries"))
//	    default:
//	        return outcome.Failure("cluster is red")
//	    }
//	}
package outcome

import (
	"fmt"
	"strings"
)

// status is the variant tag. The zero value is deliberately invalid so that an
// uninitialized Outcome{} is detectable as a contract violation.
type status int

const (
	statusSuccess status = iota + 1
	statusFailure
	statusNotReady
)

// Outcome is the result of one invocation of an operation. Construct it with
// Success, Failure, or NotReady; the zero value is invalid.
type Outcome struct {
	status status
	value  any
}

// Success returns an Outcome indicating the operation definitively completed.
func Success(value any) Outcome {
	return Outcome{status: statusSuccess, value: value}
}

// Failure returns an Outcome indicating the operation definitively and
// permanently failed. Retrying will not help.
func Failure(value any) Outcome {
	return Outcome{status: statusFailure, value: value}
}

// NotReady returns an Outcome indicating the operation has not reached a
// definitive state yet. NotReady is failure-like for classification purposes
// but signals a retry loop to try again.
func NotReady(value any) Outcome {
	return Outcome{status: statusNotReady, value: value}
}

// IsSuccess reports whether the Outcome is the Success variant.
func (o Outcome) IsSuccess() bool {
	return o.status == statusSuccess
}

// IsFailure reports whether the Outcome is failure-like. Both Failure and
// NotReady count: NotReady is a specialization of Failure, modeled here as an
// explicit classification rather than a subtype.
func (o Outcome) IsFailure() bool {
	return o.status == statusFailure || o.status == statusNotReady
}

// IsNotReady reports whether the Outcome is the NotReady variant.
func (o Outcome) IsNotReady() bool {
	return o.status == statusNotReady
}

// Valid reports whether the Outcome was built by one of the constructors.
func (o Outcome) Valid() bool {
	return o.status >= statusSuccess && o.status <= statusNotReady
}

// Value returns the payload exactly as it was passed to the constructor.
// Payloads are never mutated; template expansion is a display-time concern.
func (o Outcome) Value() any {
	return o.value
}

// String renders the Outcome for debugging.
func (o Outcome) String() string {
	switch o.status {
	case statusSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case statusFailure:
		return fmt.Sprintf("Failure(%v)", o.value)
	case statusNotReady:
		return fmt.Sprintf("NotReady(%v)", o.value)
	default:
		return "InvalidOutcome"
	}
}

// Template is a message payload that opts in to placeholder expansion. Plain
// strings (or any other payload type) are carried through untouched; only a
// Template is expanded when a reporter renders it.
//
// Placeholders use the form {name}, e.g.
//
//	outcome.Template("ready after {total_time} seconds and {retries} retries")
type Template string

// Expand substitutes each {key} token with its value from vars. Tokens with no
// entry in vars are left verbatim.
func (t Template) Expand(vars map[string]string) string {
	expanded := string(t)
	for key, value := range vars {
		expanded = strings.ReplaceAll(expanded, "{"+key+"}", value)
	}

	return expanded
}
