// Command idgen computes coursekey IDs and join codes offline.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "idgen",
	Short:         "Compute deterministic course platform IDs",
	Long:          "Compute 12-hex entity IDs and 6-character course join codes without a database.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
