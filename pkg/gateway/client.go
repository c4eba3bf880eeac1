package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	mathrand "math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/aint-no-code/reclaw-cli/pkg/logging"
)

// traceHeader carries a per-request ULID so a request can be correlated
// with gateway-side logs.
const traceHeader = "X-Reclaw-Trace"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

func newTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Client is the gateway call surface the dispatcher runs against. Each
// method performs exactly one request and returns the raw response
// payload bytes.
type Client interface {
	Healthz(ctx context.Context) (json.RawMessage, error)
	Info(ctx context.Context) (json.RawMessage, error)
	Rpc(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error)
}

// HTTPClient talks to a gateway over HTTP. It holds no state beyond the
// normalized base URL and the underlying http.Client.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logging.Logger
}

// NewHTTPClient validates and normalizes the server base address and
// configures the request timeout. A zero timeout means no limit.
func NewHTTPClient(server string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := normalizeBaseURL(server)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// SetLogger enables per-request logging (method, route, trace id,
// status). Nil disables it.
func (c *HTTPClient) SetLogger(log *logging.Logger) {
	c.log = log
}

// Healthz fetches /healthz.
func (c *HTTPClient) Healthz(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/healthz")
}

// Info fetches /info.
func (c *HTTPClient) Info(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/info")
}

// Rpc posts an invocation envelope to the gateway root route.
func (c *HTTPClient) Rpc(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error) {
	body, err := json.Marshal(NewEnvelope(method, params))
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/", body)
}

func (c *HTTPClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	path = normalizePath(path)
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	trace := newTraceID()
	req.Header.Set(traceHeader, trace)

	if c.log != nil {
		c.log.Printf("-> %s %s trace=%s", method, path, trace)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.Printf("<- %s %s status=%d trace=%s", method, path, resp.StatusCode, trace)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d for %s %s", ErrInvalidPayload, resp.StatusCode, method, path)
	}
	return respBody, nil
}

func normalizeBaseURL(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("%w: server URL cannot be empty", ErrInvalidServer)
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "", fmt.Errorf("%w: server URL must start with http:// or https://", ErrInvalidServer)
	}
	return trimmed, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
