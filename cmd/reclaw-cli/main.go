// reclaw-cli is an operational client for a reclaw gateway. It probes
// liveness, fetches server metadata, and invokes remote methods for
// diagnostics or scripting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reclaw-cli failed: %v\n", err)
		os.Exit(1)
	}
}
