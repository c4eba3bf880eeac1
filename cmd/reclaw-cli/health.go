package main

import (
	"github.com/spf13/cobra"

	"github.com/aint-no-code/reclaw-cli/pkg/gateway"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query /healthz and assert ok=true",
	Example: `  # Probe the default gateway
  reclaw-cli health

  # Probe a specific gateway
  reclaw-cli --server http://10.0.0.5:18789 health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		payload, err := gateway.Run(cmd.Context(), gateway.HealthCommand{}, client)
		if err != nil {
			return err
		}
		return render(cmd, payload)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
