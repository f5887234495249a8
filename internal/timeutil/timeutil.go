// internal/timeutil/timeutil.go
// ------------------------------
// Helpers for working with millisecond timestamps. The wire protocol and the
// throttle state both express delays in milliseconds, so conversions are
// centralized here.
package timeutil

import "time"

// ToMs converts a time to a UNIX timestamp in milliseconds.
func ToMs(t time.Time) int64 {
	return t.UnixMilli()
}

// MsToDuration converts a millisecond count to a duration.
func MsToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// IsInFuture checks if a timestamp (in ms) is in the future relative to the current time.
func IsInFuture(ms int64) bool {
	return ms > time.Now().UnixMilli()
}
