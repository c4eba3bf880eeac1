package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aint-no-code/reclaw-cli/pkg/config"
	"github.com/aint-no-code/reclaw-cli/pkg/gateway"
	"github.com/aint-no-code/reclaw-cli/pkg/logging"
)

var (
	flagServer  string
	flagConfig  string
	flagTimeout int
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "reclaw-cli",
	Short:   "Operational client for a reclaw gateway",
	Version: "0.1.0",
	Long: `reclaw-cli talks to a reclaw gateway over HTTP.

It can probe liveness (health), fetch server metadata (info), and
invoke arbitrary remote methods (rpc) for diagnostics or scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", config.DefaultServer, "Gateway base URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML config file (optional)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 10, "Request timeout in seconds (0 = no limit)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Pretty-print the payload as indented JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log requests and trace ids to stderr")
}

// loadConfig resolves configuration with flag > file > default precedence.
func loadConfig(cmd *cobra.Command) (*config.ProfileConfig, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", flagConfig, err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("server") {
		cfg.Server = flagServer
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	return cfg, nil
}

// newClient builds the HTTP gateway client for a subcommand invocation.
func newClient(cmd *cobra.Command) (*gateway.HTTPClient, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	client, err := gateway.NewHTTPClient(cfg.Server, cfg.RequestTimeout())
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		log := logging.New("reclaw-cli")
		if err := log.Configure(cfg.Logging); err != nil {
			return nil, err
		}
		client.SetLogger(log)
	}
	return client, nil
}

// render prints a payload to stdout, verbatim by default or re-indented
// when --json is set.
func render(cmd *cobra.Command, payload json.RawMessage) error {
	if flagJSON {
		var value any
		if err := json.Unmarshal(payload, &value); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(payload)))
	return nil
}
