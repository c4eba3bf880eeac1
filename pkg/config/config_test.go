package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reclaw.toml")
	cfg := Default()
	cfg.Server = "https://gateway.example:8443"
	cfg.Timeout = 30
	cfg.Logging.Level = "debug"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Server != cfg.Server {
		t.Fatalf("server = %q, want %q", loaded.Server, cfg.Server)
	}
	if loaded.Timeout != 30 {
		t.Fatalf("timeout = %d, want 30", loaded.Timeout)
	}
	if loaded.Logging.Level != "debug" {
		t.Fatalf("level = %q, want debug", loaded.Logging.Level)
	}
	if loaded.RequestTimeout() != 30*time.Second {
		t.Fatalf("request timeout = %v", loaded.RequestTimeout())
	}
}

func TestLoadValidation(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "reclaw.toml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("invalid scheme rejected", func(t *testing.T) {
		path := write(t, `server = "ftp://gateway"`)
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("negative timeout rejected", func(t *testing.T) {
		path := write(t, "timeoutSeconds = -5\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := write(t, `server = "http://10.0.0.5:18789"`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Server != "http://10.0.0.5:18789" {
			t.Fatalf("server = %q", cfg.Server)
		}
		if cfg.Timeout != 10 {
			t.Fatalf("timeout = %d, want default 10", cfg.Timeout)
		}
	})
}
