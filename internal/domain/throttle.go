package domain

import (
	"math"
	"time"
)

// Allowance implements a rolling-window throttle: at most one event per
// window, measured from the most recent qualifying event rather than a
// calendar boundary.
//
// last is the timestamp of the most recent prior event, or nil if none.
// When disallowed, retryAfter is the remaining wait in seconds, rounded to
// the nearest integer and never negative.
func Allowance(last *time.Time, window time.Duration, now time.Time) (ok bool, retryAfter int) {
	if last == nil {
		return true, 0
	}
	remaining := last.Add(window).Sub(now)
	if remaining <= 0 {
		return true, 0
	}
	retryAfter = int(math.Round(remaining.Seconds()))
	if retryAfter < 0 {
		retryAfter = 0
	}
	return false, retryAfter
}
