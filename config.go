// config.go
// ----------
// This file defines the Config structure used to construct a Client. Zero
// values are resolved to defaults by NewClient, so callers only need to set
// the API key for typical use.
package randomrpc

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultEndpoint is the fixed JSON-RPC invocation URL of the service.
	DefaultEndpoint = "https://api.random.org/json-rpc/1/invoke"
	// DefaultMaxBlockingTime caps how long a call will sleep to honor the
	// server's advisory delay.
	DefaultMaxBlockingTime = 3000 * time.Millisecond
	// DefaultRequestTimeout bounds the HTTP round trip itself.
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds per-client settings.
type Config struct {
	// APIKey is the opaque service credential. Required.
	APIKey string

	// MaxBlockingTime is the longest advisory wait the client will honor
	// before failing with ErrThrottleExceeded. It does not bound the network
	// round trip; RequestTimeout does.
	MaxBlockingTime time.Duration

	// Endpoint overrides the service URL if set.
	Endpoint string

	// RequestTimeout is the hard deadline on each HTTP exchange.
	RequestTimeout time.Duration

	// HTTPClient overrides the underlying HTTP client if set. Its Timeout is
	// left untouched when provided.
	HTTPClient *http.Client

	// Transport overrides the wire transport entirely. Used by tests.
	Transport Transport

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxBlockingTime == 0 {
		c.MaxBlockingTime = DefaultMaxBlockingTime
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.RequestTimeout}
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
