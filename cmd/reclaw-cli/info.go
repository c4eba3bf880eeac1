package main

import (
	"github.com/spf13/cobra"

	"github.com/aint-no-code/reclaw-cli/pkg/gateway"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Query /info and print the server metadata",
	Example: `  # Fetch gateway metadata
  reclaw-cli info

  # Pretty-printed
  reclaw-cli --json info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		payload, err := gateway.Run(cmd.Context(), gateway.InfoCommand{}, client)
		if err != nil {
			return err
		}
		return render(cmd, payload)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
