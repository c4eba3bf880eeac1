package gateway

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCheckHealth(t *testing.T) {
	t.Run("ok true succeeds", func(t *testing.T) {
		if err := CheckHealth(json.RawMessage(`{"ok":true}`)); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("ok false fails", func(t *testing.T) {
		err := CheckHealth(json.RawMessage(`{"ok":false}`))
		if !errors.Is(err, ErrHealthCheck) {
			t.Fatalf("expected ErrHealthCheck, got %v", err)
		}
	})

	t.Run("missing ok field fails", func(t *testing.T) {
		err := CheckHealth(json.RawMessage(`{}`))
		if !errors.Is(err, ErrHealthCheck) {
			t.Fatalf("expected ErrHealthCheck, got %v", err)
		}
	})

	t.Run("non-boolean ok fails", func(t *testing.T) {
		err := CheckHealth(json.RawMessage(`{"ok":"true"}`))
		if !errors.Is(err, ErrHealthCheck) {
			t.Fatalf("expected ErrHealthCheck, got %v", err)
		}
	})

	t.Run("non-object payload fails", func(t *testing.T) {
		err := CheckHealth(json.RawMessage(`[true]`))
		if !errors.Is(err, ErrHealthCheck) {
			t.Fatalf("expected ErrHealthCheck, got %v", err)
		}
	})

	t.Run("malformed body fails as invalid payload", func(t *testing.T) {
		err := CheckHealth(json.RawMessage(`{nope`))
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})
}

func TestDecodePayload(t *testing.T) {
	t.Run("valid JSON passes verbatim", func(t *testing.T) {
		body := json.RawMessage(`{"runtime":"reclaw-core","sessions":[1,2]}`)
		got, err := DecodePayload(body)
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if string(got) != string(body) {
			t.Fatalf("payload changed: got %s want %s", got, body)
		}
	})

	t.Run("scalar payload is accepted", func(t *testing.T) {
		if _, err := DecodePayload(json.RawMessage(`42`)); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("malformed body fails", func(t *testing.T) {
		_, err := DecodePayload(json.RawMessage(`<html>`))
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})
}
