package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultServer is the gateway address used when neither a flag nor a
// config file supplies one.
const DefaultServer = "http://127.0.0.1:18789"

// LoggingConfig defines basic logging knobs.
type LoggingConfig struct {
	Level       string `toml:"level"`
	FilePath    string `toml:"filePath"`
	FileMaxSize int    `toml:"fileMaxSizeMB"`
}

// ProfileConfig aggregates client configuration. The file carries the
// server base address plus ambient knobs; flags override every field.
type ProfileConfig struct {
	Server  string        `toml:"server"`
	Timeout int           `toml:"timeoutSeconds"`
	Logging LoggingConfig `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *ProfileConfig {
	return &ProfileConfig{
		Server:  DefaultServer,
		Timeout: 10,
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a TOML config from the provided path.
func Load(path string) (*ProfileConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *ProfileConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(buf.String()), 0o600)
}

// RequestTimeout converts the configured timeout to a duration. Zero
// means no limit.
func (cfg *ProfileConfig) RequestTimeout() time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

func (cfg *ProfileConfig) validate() error {
	if cfg.Server == "" {
		return fmt.Errorf("server required")
	}
	if !strings.HasPrefix(cfg.Server, "http://") && !strings.HasPrefix(cfg.Server, "https://") {
		return fmt.Errorf("server must start with http:// or https://")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeoutSeconds must not be negative")
	}
	return nil
}
