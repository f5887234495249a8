// client.go
// ----------
// The client.go file contains the core Client struct and its methods.
// This is the main entry point of the package for users.
//
// Key functionalities include:
// - Creating a client with NewClient()
// - Requesting true random integers, decimal fractions, Gaussians, strings
//   and UUIDs from the service
// - Reading the session's remaining quota via RequestsLeft(), BitsLeft()
//   and Usage()
//
// The Client relies on a throttled invoker to honor the server's advisory
// delay, so callers never issue requests faster than the server has advised.
// Calls block until a response or a terminal failure is available; none of
// the errors are retried internally.
package randomrpc

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openrand/randomrpc/internal/timeutil"
)

// usageMaxAgeMs is how long a quota snapshot stays fresh before the quota
// accessors trigger a getUsage refresh.
const usageMaxAgeMs = 3600000

// Client is a blocking client for the random.org JSON-RPC API. It is safe
// for concurrent use; calls on the same client are serialized, one request
// in flight at a time.
type Client struct {
	apiKey  string
	invoker *invoker
	logger  *zerolog.Logger

	mu             sync.Mutex
	requestsLeft   *int
	bitsLeft       *int
	usageFetchedMs int64
}

// NewClient builds a client from the given configuration. The API key is
// required; every other field falls back to a default.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, localErr(ErrInvalidArgument, "api key is required")
	}
	cfg = cfg.withDefaults()

	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg.Endpoint, cfg.HTTPClient, cfg.Logger)
	}

	return &Client{
		apiKey: cfg.APIKey,
		logger: cfg.Logger,
		invoker: &invoker{
			transport:   transport,
			throttle:    &throttleState{},
			maxBlocking: cfg.MaxBlockingTime,
			logger:      cfg.Logger,
		},
	}, nil
}

// GenerateIntegers requests req.N true random integers in [req.Min, req.Max].
func (c *Client) GenerateIntegers(ctx context.Context, req IntegerRequest) ([]int, error) {
	env, err := buildIntegerRequest(c.apiKey, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, env)
	if err != nil {
		return nil, err
	}
	return extractInts(resp)
}

// GenerateDecimalFractions requests req.N uniform decimal fractions from
// [0,1] with req.DecimalPlaces decimal places.
func (c *Client) GenerateDecimalFractions(ctx context.Context, req DecimalFractionRequest) ([]float64, error) {
	env, err := buildDecimalFractionRequest(c.apiKey, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, env)
	if err != nil {
		return nil, err
	}
	return extractFloats(resp)
}

// GenerateGaussians requests req.N numbers from a Gaussian distribution with
// the given mean and standard deviation.
func (c *Client) GenerateGaussians(ctx context.Context, req GaussianRequest) ([]float64, error) {
	env, err := buildGaussianRequest(c.apiKey, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, env)
	if err != nil {
		return nil, err
	}
	return extractFloats(resp)
}

// GenerateStrings requests req.N random strings of length req.Length drawn
// from the req.Characters set.
func (c *Client) GenerateStrings(ctx context.Context, req StringRequest) ([]string, error) {
	env, err := buildStringRequest(c.apiKey, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, env)
	if err != nil {
		return nil, err
	}
	return extractStrings(resp)
}

// GenerateUUIDs requests n version-4 UUIDs per RFC 4122 section 4.4.
func (c *Client) GenerateUUIDs(ctx context.Context, n int) ([]uuid.UUID, error) {
	env, err := buildUUIDRequest(c.apiKey, n)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, env)
	if err != nil {
		return nil, err
	}
	return extractUUIDs(resp)
}

// RequestsLeft returns the number of requests remaining on the key's quota,
// refreshing the snapshot with a getUsage call if none exists or the last
// one is older than an hour.
func (c *Client) RequestsLeft(ctx context.Context) (int, error) {
	u, err := c.Usage(ctx)
	if err != nil {
		return 0, err
	}
	return u.RequestsLeft, nil
}

// BitsLeft returns the number of random bits remaining on the key's quota,
// refreshing the snapshot the same way RequestsLeft does.
func (c *Client) BitsLeft(ctx context.Context) (int, error) {
	u, err := c.Usage(ctx)
	if err != nil {
		return 0, err
	}
	return u.BitsLeft, nil
}

// Usage returns both quota counters, refreshing the snapshot if stale.
func (c *Client) Usage(ctx context.Context) (Usage, error) {
	c.mu.Lock()
	fresh := c.requestsLeft != nil && c.bitsLeft != nil &&
		timeutil.IsInFuture(c.usageFetchedMs+usageMaxAgeMs)
	c.mu.Unlock()

	if !fresh {
		if _, err := c.call(ctx, buildUsageRequest(c.apiKey)); err != nil {
			return Usage{}, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.requestsLeft == nil || c.bitsLeft == nil {
		return Usage{}, localErr(ErrMalformedResponse, "usage response is missing quota counters")
	}
	return Usage{RequestsLeft: *c.requestsLeft, BitsLeft: *c.bitsLeft}, nil
}

func (c *Client) call(ctx context.Context, env *RequestEnvelope) (*ResponseEnvelope, error) {
	resp, err := c.invoker.invoke(ctx, env)
	if err != nil {
		return nil, err
	}
	c.recordUsage(resp)
	return resp, nil
}

// recordUsage refreshes the quota snapshot from any successful response that
// carries counters. Generation results carry them too, so a recent
// generation call keeps the snapshot fresh without an extra getUsage round
// trip.
func (c *Client) recordUsage(resp *ResponseEnvelope) {
	if resp == nil || resp.Result == nil {
		return
	}
	if resp.Result.RequestsLeft == nil && resp.Result.BitsLeft == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if resp.Result.RequestsLeft != nil {
		c.requestsLeft = resp.Result.RequestsLeft
	}
	if resp.Result.BitsLeft != nil {
		c.bitsLeft = resp.Result.BitsLeft
	}
	c.usageFetchedMs = timeutil.ToMs(time.Now())
}
