package randomrpc

import (
	"encoding/json"

	"github.com/google/uuid"
)

// The extractors descend through result.random.data and convert each raw
// element to its native type. A missing structure or a failed conversion is
// a protocol mismatch, not a usage error, so everything here surfaces as
// ErrMalformedResponse.

func extractInts(resp *ResponseEnvelope) ([]int, error) {
	data, err := unwrapData(resp)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(data))
	for i, raw := range data {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, wrapErr(ErrMalformedResponse, err, "data element is not an integer")
		}
	}
	return out, nil
}

func extractFloats(resp *ResponseEnvelope) ([]float64, error) {
	data, err := unwrapData(resp)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(data))
	for i, raw := range data {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, wrapErr(ErrMalformedResponse, err, "data element is not a number")
		}
	}
	return out, nil
}

func extractStrings(resp *ResponseEnvelope) ([]string, error) {
	data, err := unwrapData(resp)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(data))
	for i, raw := range data {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, wrapErr(ErrMalformedResponse, err, "data element is not a string")
		}
	}
	return out, nil
}

func extractUUIDs(resp *ResponseEnvelope) ([]uuid.UUID, error) {
	values, err := extractStrings(resp)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, wrapErr(ErrMalformedResponse, err, "data element is not a UUID")
		}
		out[i] = id
	}
	return out, nil
}

func unwrapData(resp *ResponseEnvelope) ([]json.RawMessage, error) {
	if resp == nil || resp.Result == nil || resp.Result.Random == nil || resp.Result.Random.Data == nil {
		return nil, localErr(ErrMalformedResponse, "result.random.data is missing")
	}
	return resp.Result.Random.Data, nil
}
