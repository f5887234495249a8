package randomrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const contentType = "application/json"

// Transport executes a single JSON-RPC exchange against the randomness
// service. Implementations must be safe for use from the invoker's dispatch
// goroutine.
type Transport interface {
	RoundTrip(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error)
}

// HTTPTransport posts envelopes to the service endpoint over HTTPS.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	logger   *zerolog.Logger
}

func NewHTTPTransport(endpoint string, client *http.Client, logger *zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, wrapErr(ErrTransportFailure, err, "encoding request envelope")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, wrapErr(ErrTransportFailure, err, "building HTTP request")
	}
	httpReq.Header.Set("Content-Type", contentType)

	t.logger.Debug().Str("method", req.Method).Int64("id", req.ID).Msg("sending request")
	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, wrapErr(ErrTransportFailure, err, "posting request")
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, wrapErr(ErrTransportFailure, err, "reading response body")
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, localErr(ErrTransportFailure, "unexpected HTTP status %d", httpResp.StatusCode)
	}

	var resp ResponseEnvelope
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, wrapErr(ErrMalformedResponse, err, "decoding response envelope")
	}
	t.logger.Debug().Str("method", req.Method).Int("bytes", len(data)).Msg("response received")
	return &resp, nil
}
