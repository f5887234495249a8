package randomrpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	randomrpc "github.com/openrand/randomrpc"
	"github.com/openrand/randomrpc/mock"
)

const testKey = "00000000-aaaa-bbbb-cccc-dddddddddddd"

func newTestClient(t *testing.T, tr *mock.MockTransport) *randomrpc.Client {
	t.Helper()
	c, err := randomrpc.NewClient(randomrpc.Config{APIKey: testKey, Transport: tr})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := randomrpc.NewClient(randomrpc.Config{})
	require.ErrorIs(t, err, randomrpc.ErrInvalidArgument)
}

func TestGenerateIntegersEndToEnd(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.GenerationResponse([]interface{}{1, 5, 4, 6, 6}, 0, 199, 249984), nil)

	c := newTestClient(t, tr)
	values, err := c.GenerateIntegers(context.Background(), randomrpc.IntegerRequest{N: 5, Min: 1, Max: 6})
	require.NoError(t, err)
	require.Len(t, values, 5)
	for _, v := range values {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
	}

	sent := tr.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "generateIntegers", sent[0].Method)

	// The wire form of every request carries the API key exactly once.
	body, err := json.Marshal(sent[0])
	require.NoError(t, err)
	var envelope struct {
		JSONRPC string `json:"jsonrpc"`
		Params  struct {
			APIKey      string `json:"apiKey"`
			N           int    `json:"n"`
			Replacement bool   `json:"replacement"`
		} `json:"params"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "2.0", envelope.JSONRPC)
	require.Equal(t, testKey, envelope.Params.APIKey)
	require.Equal(t, 5, envelope.Params.N)
	require.True(t, envelope.Params.Replacement)
}

func TestGenerateUUIDsEndToEnd(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.GenerationResponse([]interface{}{
		"47849fd4-b790-4d71-b4c6-8d010c25b050",
		"f1a0d011-4a13-4b23-976b-5ad749dbcca1",
		"38ad3df9-6b25-4b85-9d6c-bc6e35e1ac16",
	}, 0, 198, 248960), nil)

	c := newTestClient(t, tr)
	ids, err := c.GenerateUUIDs(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	require.Equal(t, "generateUUIDs", tr.Sent()[0].Method)
}

func TestServerFaultSurfacesCodeAndMessage(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.FaultResponse(201, "Parameter 'n' is out of range"), nil)

	c := newTestClient(t, tr)
	_, err := c.GenerateIntegers(context.Background(), randomrpc.IntegerRequest{N: 5, Min: 1, Max: 6})
	require.ErrorIs(t, err, randomrpc.ErrInvalidArgument)

	var typed *randomrpc.Error
	require.True(t, errors.As(err, &typed))
	require.Equal(t, 201, typed.Code)
	require.Contains(t, typed.Message, "out of range")
	require.Contains(t, err.Error(), "201")
}

func TestLocalValidationIssuesNoCall(t *testing.T) {
	tr := &mock.MockTransport{}
	c := newTestClient(t, tr)

	_, err := c.GenerateIntegers(context.Background(), randomrpc.IntegerRequest{N: 0, Min: 1, Max: 6})
	require.ErrorIs(t, err, randomrpc.ErrInvalidArgument)

	_, err = c.GenerateStrings(context.Background(), randomrpc.StringRequest{N: 2, Length: 21, Characters: "abc"})
	require.ErrorIs(t, err, randomrpc.ErrInvalidArgument)

	require.Zero(t, tr.Calls())
}

func TestQuotaAccessorsShareOneRefresh(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.UsageResponse(997, 249984), nil)

	c := newTestClient(t, tr)
	requests, err := c.RequestsLeft(context.Background())
	require.NoError(t, err)
	require.Equal(t, 997, requests)
	require.Equal(t, "getUsage", tr.Sent()[0].Method)

	// The snapshot is fresh, so the second accessor reuses it.
	bits, err := c.BitsLeft(context.Background())
	require.NoError(t, err)
	require.Equal(t, 249984, bits)
	require.Equal(t, 1, tr.Calls())
}

func TestGenerationResponseRefreshesQuotaSnapshot(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.GenerationResponse([]interface{}{2, 3}, 0, 42, 1024), nil)

	c := newTestClient(t, tr)
	_, err := c.GenerateIntegers(context.Background(), randomrpc.IntegerRequest{N: 2, Min: 1, Max: 6})
	require.NoError(t, err)

	// No getUsage round trip is needed while the snapshot is fresh.
	u, err := c.Usage(context.Background())
	require.NoError(t, err)
	require.Equal(t, randomrpc.Usage{RequestsLeft: 42, BitsLeft: 1024}, u)
	require.Equal(t, 1, tr.Calls())
}

func TestUnauthorizedFault(t *testing.T) {
	tr := &mock.MockTransport{}
	tr.Enqueue(mock.FaultResponse(400, "API key does not exist"), nil)

	c := newTestClient(t, tr)
	_, err := c.GenerateUUIDs(context.Background(), 1)
	require.ErrorIs(t, err, randomrpc.ErrUnauthorized)
}

func TestDecodedJSONRoundTrip(t *testing.T) {
	tr := &mock.MockTransport{}
	require.NoError(t, tr.EnqueueJSON(`{
		"jsonrpc": "2.0",
		"result": {
			"random": {"data": [0.25, 0.75, 0.5], "completionTime": "2011-10-10 13:19:12Z"},
			"bitsUsed": 16,
			"bitsLeft": 199984,
			"requestsLeft": 9999,
			"advisoryDelay": 0
		},
		"id": 42
	}`))

	c := newTestClient(t, tr)
	values, err := c.GenerateDecimalFractions(context.Background(), randomrpc.DecimalFractionRequest{N: 3, DecimalPlaces: 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.75, 0.5}, values)
}
