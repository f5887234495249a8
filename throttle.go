// throttle.go
// ------------
// This file defines the throttleState type, which stores the session's
// advisory-delay bookkeeping: the delay the server last advised and the time
// the last generation response was received. The throttled invoker consults
// it before every request and updates it after responses that carry an
// advisory delay.
package randomrpc

import (
	"sync"
	"time"

	"github.com/openrand/randomrpc/internal/timeutil"
)

type throttleState struct {
	mu sync.Mutex

	advisoryDelayMs int64
	lastResponseMs  int64
}

// requiredWait returns how long the caller must wait before the next request
// may be sent. Zero means the request can proceed immediately.
func (t *throttleState) requiredWait(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := timeutil.ToMs(now) - t.lastResponseMs
	waitMs := t.advisoryDelayMs - elapsed
	if waitMs <= 0 {
		return 0
	}
	return timeutil.MsToDuration(waitMs)
}

// observe records a response that carried an advisory delay. The timestamp
// and the delay value are independent assignments, both gated by the caller
// on the presence of the advisory-delay field.
func (t *throttleState) observe(now time.Time, advisoryDelayMs int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastResponseMs = timeutil.ToMs(now)
	t.advisoryDelayMs = advisoryDelayMs
}

// snapshot returns the current state for inspection.
func (t *throttleState) snapshot() (advisoryDelayMs, lastResponseMs int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advisoryDelayMs, t.lastResponseMs
}
