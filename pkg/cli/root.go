// Package cli implements the harreplay command line interface.
package cli

import "github.com/spf13/cobra"

// rootCmd is the top-level harreplay command.
var rootCmd = &cobra.Command{
	Use:   "harreplay",
	Short: "Replay recorded HTTP traffic from HAR captures",
	Long: `harreplay serves HTTP requests from a HAR capture instead of the network.

Point it at a capture recorded during a real session and it will answer
matching requests with the recorded responses, deterministically, entry by
entry. Use "inspect" to see what a capture contains and "check" to find out
how a given request would be answered.`,
	SilenceUsage: true,
}

// Build info, set by main via SetVersionInfo.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// SetVersionInfo records build-time version information for the version
// command.
func SetVersionInfo(v, c, d string) {
	version, commit, buildDate = v, c, d
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
