package gateway

import (
	"context"
	"encoding/json"
	"fmt"
)

// Run dispatches one parsed command against a gateway client and returns
// the payload to render. Every error is terminal: the first failure from
// envelope building, transport, or validation stops the invocation with
// no further calls.
func Run(ctx context.Context, cmd Command, client Client) (json.RawMessage, error) {
	switch cmd := cmd.(type) {
	case HealthCommand:
		payload, err := client.Healthz(ctx)
		if err != nil {
			return nil, err
		}
		if err := CheckHealth(payload); err != nil {
			return nil, err
		}
		return payload, nil
	case InfoCommand:
		payload, err := client.Info(ctx)
		if err != nil {
			return nil, err
		}
		return DecodePayload(payload)
	case RpcCommand:
		params, err := ParseParams(cmd.Params)
		if err != nil {
			return nil, err
		}
		payload, err := client.Rpc(ctx, cmd.Method, params)
		if err != nil {
			return nil, err
		}
		return DecodePayload(payload)
	default:
		return nil, fmt.Errorf("unknown command %T", cmd)
	}
}
