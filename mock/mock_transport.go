package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	randomrpc "github.com/openrand/randomrpc"
)

// MockTransport is a scriptable in-memory Transport. Tests and examples
// queue exchanges up front; each round trip pops the next one and records
// the envelope it was asked to send.
type MockTransport struct {
	mu    sync.Mutex
	queue []Exchange
	sent  []*randomrpc.RequestEnvelope
}

// Exchange is one scripted round trip.
type Exchange struct {
	Resp  *randomrpc.ResponseEnvelope
	Err   error
	Delay time.Duration // simulated network latency
}

// Enqueue appends a scripted response or transport error.
func (m *MockTransport) Enqueue(resp *randomrpc.ResponseEnvelope, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, Exchange{Resp: resp, Err: err})
}

// EnqueueExchange appends a fully specified exchange.
func (m *MockTransport) EnqueueExchange(ex Exchange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, ex)
}

// EnqueueJSON decodes a raw response body and appends it.
func (m *MockTransport) EnqueueJSON(body string) error {
	var resp randomrpc.ResponseEnvelope
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return err
	}
	m.Enqueue(&resp, nil)
	return nil
}

func (m *MockTransport) RoundTrip(ctx context.Context, req *randomrpc.RequestEnvelope) (*randomrpc.ResponseEnvelope, error) {
	m.mu.Lock()
	m.sent = append(m.sent, req)
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return nil, fmt.Errorf("mock transport: no queued exchange for %s", req.Method)
	}
	ex := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()

	if ex.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(ex.Delay):
		}
	}
	return ex.Resp, ex.Err
}

// Sent returns a copy of the envelopes sent so far.
func (m *MockTransport) Sent() []*randomrpc.RequestEnvelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*randomrpc.RequestEnvelope, len(m.sent))
	copy(out, m.sent)
	return out
}

// Calls returns how many round trips were attempted.
func (m *MockTransport) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// GenerationResponse builds a success envelope for a generation method.
func GenerationResponse(data []interface{}, advisoryDelayMs int64, requestsLeft, bitsLeft int) *randomrpc.ResponseEnvelope {
	raw := make([]json.RawMessage, len(data))
	for i, v := range data {
		b, _ := json.Marshal(v)
		raw[i] = b
	}
	return &randomrpc.ResponseEnvelope{
		JSONRPC: "2.0",
		Result: &randomrpc.MethodResult{
			Random:        &randomrpc.RandomData{Data: raw},
			AdvisoryDelay: Int64Ptr(advisoryDelayMs),
			RequestsLeft:  IntPtr(requestsLeft),
			BitsLeft:      IntPtr(bitsLeft),
		},
	}
}

// UsageResponse builds a success envelope for the getUsage method. It
// carries no advisory delay.
func UsageResponse(requestsLeft, bitsLeft int) *randomrpc.ResponseEnvelope {
	return &randomrpc.ResponseEnvelope{
		JSONRPC: "2.0",
		Result: &randomrpc.MethodResult{
			RequestsLeft: IntPtr(requestsLeft),
			BitsLeft:     IntPtr(bitsLeft),
		},
	}
}

// FaultResponse builds an error envelope with the given code and message.
func FaultResponse(code int, message string) *randomrpc.ResponseEnvelope {
	return &randomrpc.ResponseEnvelope{
		JSONRPC: "2.0",
		Error:   &randomrpc.ServerFault{Code: code, Message: message},
	}
}

func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}
