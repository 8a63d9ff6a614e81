// harreplay CLI - replay recorded HTTP traffic from HAR captures.
package main

import (
	"os"

	"github.com/getmockd/harreplay/pkg/cli"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, Commit, BuildDate)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
