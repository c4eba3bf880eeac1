package gateway

import (
	"encoding/json"
	"fmt"
)

// CheckHealth decides whether a /healthz payload reports a live gateway.
// The body must be a JSON object whose ok field is boolean true; every
// structural miss is ErrHealthCheck with a distinguishing message.
func CheckHealth(body json.RawMessage) error {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: healthz payload is not an object", ErrHealthCheck)
	}
	value, present := obj["ok"]
	if !present {
		return fmt.Errorf("%w: healthz payload missing ok field", ErrHealthCheck)
	}
	flag, isBool := value.(bool)
	if !isBool {
		return fmt.Errorf("%w: healthz ok field is not a boolean", ErrHealthCheck)
	}
	if !flag {
		return fmt.Errorf("%w: healthz response missing ok=true", ErrHealthCheck)
	}
	return nil
}

// DecodePayload accepts any syntactically valid JSON body and returns it
// verbatim for rendering. No schema constraints apply.
func DecodePayload(body json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response body is not valid JSON", ErrInvalidPayload)
	}
	return body, nil
}
