package gateway

import (
	"encoding/json"
	"errors"
)

// Command is the closed set of operations the CLI can run against a
// gateway. Exactly one variant is produced per process run.
type Command interface {
	isCommand()
}

// HealthCommand probes /healthz and asserts ok=true.
type HealthCommand struct{}

// InfoCommand fetches /info.
type InfoCommand struct{}

// RpcCommand invokes a remote method with a raw params string as
// supplied on the command line. Params are validated lazily, before
// any network call.
type RpcCommand struct {
	Method string
	Params string
}

func (HealthCommand) isCommand() {}
func (InfoCommand) isCommand()   {}
func (RpcCommand) isCommand()    {}

// Envelope models the request body for RPC invocations.
type Envelope struct {
	ID     int             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Sentinel errors for the failure taxonomy. Callers match with errors.Is.
var (
	// ErrInvalidServer marks an unusable server base address.
	ErrInvalidServer = errors.New("invalid server address")

	// ErrMalformedParams marks --params input that is not a JSON object.
	// Raised before any request is sent.
	ErrMalformedParams = errors.New("invalid rpc params")

	// ErrTransport marks a failure of the single outbound request
	// (connection refused, timeout, DNS, TLS). Never retried.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidPayload marks a response body that is not valid JSON,
	// or an unexpected HTTP status.
	ErrInvalidPayload = errors.New("invalid response payload")

	// ErrHealthCheck marks a parseable /healthz payload that failed the
	// ok=true check.
	ErrHealthCheck = errors.New("health check failed")
)
