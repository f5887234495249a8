package randomrpc

import "math/rand"

const jsonrpcVersion = "2.0"

// Method names fixed by the service protocol.
const (
	methodGenerateIntegers         = "generateIntegers"
	methodGenerateDecimalFractions = "generateDecimalFractions"
	methodGenerateGaussians        = "generateGaussians"
	methodGenerateStrings          = "generateStrings"
	methodGenerateUUIDs            = "generateUUIDs"
	methodGetUsage                 = "getUsage"
)

// Documented parameter bounds of the service.
const (
	maxBatchSize         = 10000
	maxUUIDBatchSize     = 1000
	minIntegerBound      = -1000000000
	maxIntegerBound      = 1000000000
	minDecimalPlaces     = 1
	maxDecimalPlaces     = 20
	minGaussianParam     = -1000000.0
	maxGaussianParam     = 1000000.0
	minSignificantDigits = 2
	maxSignificantDigits = 20
	minStringLength      = 1
	maxStringLength      = 20
	maxCharsetSize       = 80
)

type integerParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement bool   `json:"replacement"`
}

type decimalFractionParams struct {
	APIKey        string `json:"apiKey"`
	N             int    `json:"n"`
	DecimalPlaces int    `json:"decimalPlaces"`
	Replacement   bool   `json:"replacement"`
}

type gaussianParams struct {
	APIKey            string  `json:"apiKey"`
	N                 int     `json:"n"`
	Mean              float64 `json:"mean"`
	StandardDeviation float64 `json:"standardDeviation"`
	SignificantDigits int     `json:"significantDigits"`
}

type stringParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Length      int    `json:"length"`
	Characters  string `json:"characters"`
	Replacement bool   `json:"replacement"`
}

type uuidParams struct {
	APIKey string `json:"apiKey"`
	N      int    `json:"n"`
}

type usageParams struct {
	APIKey string `json:"apiKey"`
}

func buildIntegerRequest(apiKey string, req IntegerRequest) (*RequestEnvelope, error) {
	if req.N < 1 || req.N > maxBatchSize {
		return nil, localErr(ErrInvalidArgument, "n must be within [1,%d], got %d", maxBatchSize, req.N)
	}
	if req.Min < minIntegerBound || req.Min > maxIntegerBound {
		return nil, localErr(ErrInvalidArgument, "min must be within [%d,%d], got %d", minIntegerBound, maxIntegerBound, req.Min)
	}
	if req.Max < minIntegerBound || req.Max > maxIntegerBound {
		return nil, localErr(ErrInvalidArgument, "max must be within [%d,%d], got %d", minIntegerBound, maxIntegerBound, req.Max)
	}
	if req.Min > req.Max {
		return nil, localErr(ErrInvalidArgument, "min %d exceeds max %d", req.Min, req.Max)
	}
	return newEnvelope(methodGenerateIntegers, integerParams{
		APIKey:      apiKey,
		N:           req.N,
		Min:         req.Min,
		Max:         req.Max,
		Replacement: replacementOrDefault(req.Replacement),
	}), nil
}

func buildDecimalFractionRequest(apiKey string, req DecimalFractionRequest) (*RequestEnvelope, error) {
	if req.N < 1 || req.N > maxBatchSize {
		return nil, localErr(ErrInvalidArgument, "n must be within [1,%d], got %d", maxBatchSize, req.N)
	}
	if req.DecimalPlaces < minDecimalPlaces || req.DecimalPlaces > maxDecimalPlaces {
		return nil, localErr(ErrInvalidArgument, "decimalPlaces must be within [%d,%d], got %d", minDecimalPlaces, maxDecimalPlaces, req.DecimalPlaces)
	}
	return newEnvelope(methodGenerateDecimalFractions, decimalFractionParams{
		APIKey:        apiKey,
		N:             req.N,
		DecimalPlaces: req.DecimalPlaces,
		Replacement:   replacementOrDefault(req.Replacement),
	}), nil
}

func buildGaussianRequest(apiKey string, req GaussianRequest) (*RequestEnvelope, error) {
	if req.N < 1 || req.N > maxBatchSize {
		return nil, localErr(ErrInvalidArgument, "n must be within [1,%d], got %d", maxBatchSize, req.N)
	}
	if req.Mean < minGaussianParam || req.Mean > maxGaussianParam {
		return nil, localErr(ErrInvalidArgument, "mean must be within [%g,%g], got %g", minGaussianParam, maxGaussianParam, req.Mean)
	}
	if req.StandardDeviation < minGaussianParam || req.StandardDeviation > maxGaussianParam {
		return nil, localErr(ErrInvalidArgument, "standardDeviation must be within [%g,%g], got %g", minGaussianParam, maxGaussianParam, req.StandardDeviation)
	}
	if req.SignificantDigits < minSignificantDigits || req.SignificantDigits > maxSignificantDigits {
		return nil, localErr(ErrInvalidArgument, "significantDigits must be within [%d,%d], got %d", minSignificantDigits, maxSignificantDigits, req.SignificantDigits)
	}
	return newEnvelope(methodGenerateGaussians, gaussianParams{
		APIKey:            apiKey,
		N:                 req.N,
		Mean:              req.Mean,
		StandardDeviation: req.StandardDeviation,
		SignificantDigits: req.SignificantDigits,
	}), nil
}

func buildStringRequest(apiKey string, req StringRequest) (*RequestEnvelope, error) {
	if req.N < 1 || req.N > maxBatchSize {
		return nil, localErr(ErrInvalidArgument, "n must be within [1,%d], got %d", maxBatchSize, req.N)
	}
	if req.Length < minStringLength || req.Length > maxStringLength {
		return nil, localErr(ErrInvalidArgument, "length must be within [%d,%d], got %d", minStringLength, maxStringLength, req.Length)
	}
	if len(req.Characters) < 1 || len(req.Characters) > maxCharsetSize {
		return nil, localErr(ErrInvalidArgument, "characters must contain between 1 and %d characters, got %d", maxCharsetSize, len(req.Characters))
	}
	return newEnvelope(methodGenerateStrings, stringParams{
		APIKey:      apiKey,
		N:           req.N,
		Length:      req.Length,
		Characters:  req.Characters,
		Replacement: replacementOrDefault(req.Replacement),
	}), nil
}

func buildUUIDRequest(apiKey string, n int) (*RequestEnvelope, error) {
	if n < 1 || n > maxUUIDBatchSize {
		return nil, localErr(ErrInvalidArgument, "n must be within [1,%d], got %d", maxUUIDBatchSize, n)
	}
	return newEnvelope(methodGenerateUUIDs, uuidParams{APIKey: apiKey, N: n}), nil
}

func buildUsageRequest(apiKey string) *RequestEnvelope {
	return newEnvelope(methodGetUsage, usageParams{APIKey: apiKey})
}

func newEnvelope(method string, params interface{}) *RequestEnvelope {
	return &RequestEnvelope{
		JSONRPC: jsonrpcVersion,
		Method:  method,
		Params:  params,
		ID:      rand.Int63(),
	}
}

func replacementOrDefault(r *bool) bool {
	if r == nil {
		return true
	}
	return *r
}
