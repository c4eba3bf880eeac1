package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelopeID is constant: the process is single-shot, so request ids
// need no uniqueness across calls.
const envelopeID = 1

// ParseParams validates a raw --params string. The text must parse as a
// JSON object; arrays, scalars and malformed input fail with
// ErrMalformedParams before any request is sent.
func ParseParams(raw string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedParams, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: params JSON must be an object", ErrMalformedParams)
	}
	return json.RawMessage(trimmed), nil
}

// NewEnvelope builds the request body for an RPC invocation. Params must
// already have passed ParseParams.
func NewEnvelope(method string, params json.RawMessage) Envelope {
	return Envelope{ID: envelopeID, Method: method, Params: params}
}
