// invoker.go
// -----------
// The throttled invoker is the heart of the client. It enforces the
// advisory delay before each request, runs the network exchange on its own
// goroutine while the caller blocks, classifies the response, and updates
// the session's throttle state. A per-invoker mutex serializes calls, so a
// single session has at most one request in flight; waiters proceed in lock
// acquisition order.
package randomrpc

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type invoker struct {
	mu          sync.Mutex
	transport   Transport
	throttle    *throttleState
	maxBlocking time.Duration
	logger      *zerolog.Logger
}

type outcome struct {
	resp *ResponseEnvelope
	err  error
}

// invoke blocks until the exchange completes or fails. No error is ever
// retried here; retry policy belongs to the caller.
func (iv *invoker) invoke(ctx context.Context, env *RequestEnvelope) (*ResponseEnvelope, error) {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	wait := iv.throttle.requiredWait(time.Now())
	if wait > 0 {
		if wait > iv.maxBlocking {
			return nil, localErr(ErrThrottleExceeded, "server advises waiting %v, willing to block for at most %v", wait, iv.maxBlocking)
		}
		iv.logger.Debug().Dur("wait", wait).Str("method", env.Method).Msg("honoring advisory delay")
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, wrapErr(ErrInterrupted, ctx.Err(), "canceled during advisory wait")
		case <-timer.C:
		}
	}

	done := make(chan outcome, 1)
	go func() {
		resp, err := iv.transport.RoundTrip(ctx, env)
		done <- outcome{resp: resp, err: err}
	}()

	var out outcome
	select {
	case <-ctx.Done():
		// The in-flight request is allowed to complete; its result is
		// discarded.
		return nil, wrapErr(ErrInterrupted, ctx.Err(), "canceled waiting for response")
	case out = <-done:
	}
	if out.err != nil {
		return nil, out.err
	}
	if err := classifyResponse(out.resp); err != nil {
		return nil, err
	}

	// Only generation methods report an advisory delay; getUsage responses
	// leave the throttle state untouched.
	if delayMs, ok := advisoryDelay(out.resp); ok {
		iv.throttle.observe(time.Now(), delayMs)
	}
	return out.resp, nil
}
