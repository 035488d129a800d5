// Command client is the terminal client of the tracker: it logs in against
// the API, shows the dashboard and runs the demo shop.
package main

import (
	"fmt"
	"os"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the client
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	root := newRootCmd(defaultDeps())
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
