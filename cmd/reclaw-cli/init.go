package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aint-no-code/reclaw-cli/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			path = "reclaw.toml"
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		cfg := config.Default()
		if cmd.Flags().Changed("server") {
			cfg.Server = flagServer
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = flagTimeout
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "initialized config at %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config if present")
	rootCmd.AddCommand(initCmd)
}
