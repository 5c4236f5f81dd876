// Package cli wires the boardroom commands.
package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Boardroom meeting display service",
	Long: `Boardroom serves a single-page display with static join links and a
dialog listing the next 24 hours of meetings from a shared Google
calendar, authenticated with service-account credentials.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
