package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reaction-admin",
	Short: "Admin tooling for the commerce catalog",
	Long:  "Drive product, variant and inventory operations against the remote commerce GraphQL API.",
}

// Execute attaches registered custom commands and runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
