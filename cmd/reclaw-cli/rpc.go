package main

import (
	"github.com/spf13/cobra"

	"github.com/aint-no-code/reclaw-cli/pkg/gateway"
)

var rpcParams string

var rpcCmd = &cobra.Command{
	Use:   "rpc <method>",
	Short: "Invoke a remote method on the gateway",
	Long: `Invoke a JSON-RPC style method on the gateway root endpoint.

The --params value must be a JSON object literal; it is validated
locally before any request is sent. The returned payload is printed
verbatim.`,
	Example: `  # Invoke with empty params
  reclaw-cli rpc system.healthz

  # Invoke with params
  reclaw-cli rpc sessions.list --params '{"scope":"node"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		payload, err := gateway.Run(cmd.Context(), gateway.RpcCommand{Method: args[0], Params: rpcParams}, client)
		if err != nil {
			return err
		}
		return render(cmd, payload)
	},
}

func init() {
	rpcCmd.Flags().StringVar(&rpcParams, "params", "{}", "JSON object with method parameters")
	rootCmd.AddCommand(rpcCmd)
}
