package waitfor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/amp-labs/amp-wait/outcome"
)

// progressWidth is how many progress markers fit on one line.
const progressWidth = 80

// givingUp is appended to a NotReady end message when the deadline is reached.
const givingUp = "  Giving up."

// reporter renders one session's start, progress, and end notifications.
// The engine only consults it when the session is not silent.
type reporter struct {
	stdout io.Writer
	stderr io.Writer
	ticks  int // cumulative progress markers across the whole session
}

// start prints the configured start message, substituting the {start_time}
// placeholder (epoch seconds) when present.
func (r *reporter) start(message string, startTime time.Time) {
	message = strings.ReplaceAll(message, "{start_time}", epochSeconds(startTime))
	fmt.Fprintln(r.stdout, message)
}

// progress prints one marker per NotReady attempt, breaking the line after
// every 80th cumulative marker so long sessions do not run off the screen.
func (r *reporter) progress() {
	fmt.Fprint(r.stdout, ".")

	r.ticks++
	if r.ticks%progressWidth == 0 {
		fmt.Fprint(r.stdout, "\n")
	}
}

// end terminates the progress line and, for Template payloads, prints the
// expanded end message: Success to stdout, NotReady to stderr with a
// giving-up suffix, plain Failure to stderr as-is.
func (r *reporter) end(result outcome.Outcome, totalTime time.Duration, retries int) {
	fmt.Fprint(r.stdout, "\n")

	tpl, ok := result.Value().(outcome.Template)
	if !ok {
		// Only Template payloads opt in to an end message.
		return
	}

	message := tpl.Expand(map[string]string{
		"total_time": seconds(totalTime),
		"retries":    strconv.Itoa(retries),
	})

	switch {
	case result.IsSuccess():
		fmt.Fprintln(r.stdout, message)
	case result.IsNotReady():
		fmt.Fprintln(r.stderr, message+givingUp)
	default:
		fmt.Fprintln(r.stderr, message)
	}
}

// seconds renders a duration as a shortest-form decimal number of seconds,
// e.g. "300" or "0.25".
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// epochSeconds renders t as seconds past the Unix epoch in the same form.
func epochSeconds(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixNano())/float64(time.Second), 'f', -1, 64)
}
