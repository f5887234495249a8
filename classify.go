package randomrpc

// clientFaultCodes is the closed set of service error codes that indicate a
// problem with caller-supplied parameters or credentials. Anything outside
// this set is treated as a server-side fault.
var clientFaultCodes = map[int]struct{}{
	200: {},
	201: {},
	202: {},
	203: {},
	300: {},
	301: {},
	400: {},
	401: {},
}

// keyFaultCodes is the subset of client-fault codes that concern the API key.
var keyFaultCodes = map[int]struct{}{
	400: {},
	401: {},
}

// classifyResponse validates the envelope shape and maps a reported fault to
// an error category. A nil return means the response is a success.
func classifyResponse(resp *ResponseEnvelope) error {
	if resp == nil {
		return localErr(ErrMalformedResponse, "response is empty")
	}
	if resp.Result != nil && resp.Error != nil {
		return localErr(ErrMalformedResponse, "response carries both result and error")
	}
	if resp.Result == nil && resp.Error == nil {
		return localErr(ErrMalformedResponse, "response carries neither result nor error")
	}
	if resp.Error == nil {
		return nil
	}

	code, message := resp.Error.Code, resp.Error.Message
	if _, ok := keyFaultCodes[code]; ok {
		return serverErr(ErrUnauthorized, code, message)
	}
	if _, ok := clientFaultCodes[code]; ok {
		return serverErr(ErrInvalidArgument, code, message)
	}
	return serverErr(ErrServerError, code, message)
}

// advisoryDelay reports the advisory delay carried by a successful response.
// getUsage responses never carry one.
func advisoryDelay(resp *ResponseEnvelope) (int64, bool) {
	if resp == nil || resp.Result == nil || resp.Result.AdvisoryDelay == nil {
		return 0, false
	}
	return *resp.Result.AdvisoryDelay, true
}
