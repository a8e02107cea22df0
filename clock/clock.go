// Package clock abstracts time sampling and sleeping so that retry loops can
// be driven by a deterministic clock in tests.
package clock

import "time"

// Clock supplies the current time and blocks the caller for a duration.
type Clock interface {
	// Now returns the current time. Implementations must be monotonically
	// non-decreasing across calls within a session.
	Now() time.Time

	// Sleep blocks the calling goroutine for approximately d. Test doubles
	// may return immediately while still advancing logical time.
	Sleep(d time.Duration)
}

// System is the production Clock backed by the time package.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Sleep(d time.Duration) {
	time.Sleep(d)
}
