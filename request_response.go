package randomrpc

import "encoding/json"

// RequestEnvelope is the JSON-RPC request sent to the randomness service.
// The ID is generated locally per call and is not correlated by the client.
type RequestEnvelope struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int64       `json:"id"`
}

// ResponseEnvelope is the decoded JSON-RPC response. Exactly one of Result
// and Error is present in a well-formed response.
type ResponseEnvelope struct {
	JSONRPC string        `json:"jsonrpc"`
	Result  *MethodResult `json:"result,omitempty"`
	Error   *ServerFault  `json:"error,omitempty"`
	ID      int64         `json:"id"`
}

// ServerFault is the error payload reported by the service.
type ServerFault struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MethodResult is the success payload. Generation methods populate Random,
// AdvisoryDelay and the quota counters; getUsage populates the counters only.
type MethodResult struct {
	Random        *RandomData `json:"random,omitempty"`
	AdvisoryDelay *int64      `json:"advisoryDelay,omitempty"`
	RequestsLeft  *int        `json:"requestsLeft,omitempty"`
	BitsLeft      *int        `json:"bitsLeft,omitempty"`
	BitsUsed      *int        `json:"bitsUsed,omitempty"`
}

// RandomData is the inner payload of generation results. Data elements stay
// raw until a typed extractor converts them.
type RandomData struct {
	Data           []json.RawMessage `json:"data"`
	CompletionTime string            `json:"completionTime,omitempty"`
}

// IntegerRequest asks for N random integers in [Min, Max].
type IntegerRequest struct {
	N   int
	Min int
	Max int
	// Replacement selects drawing with replacement. Nil means true, the
	// service default.
	Replacement *bool
}

// DecimalFractionRequest asks for N uniform fractions from [0,1] with
// DecimalPlaces decimal places.
type DecimalFractionRequest struct {
	N             int
	DecimalPlaces int
	Replacement   *bool
}

// GaussianRequest asks for N numbers from a Gaussian distribution.
type GaussianRequest struct {
	N                 int
	Mean              float64
	StandardDeviation float64
	SignificantDigits int
}

// StringRequest asks for N strings of the given Length drawn from the
// Characters set.
type StringRequest struct {
	N           int
	Length      int
	Characters  string
	Replacement *bool
}

// Usage is a snapshot of the quota counters for the session's API key.
type Usage struct {
	RequestsLeft int
	BitsLeft     int
}
