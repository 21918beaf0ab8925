package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set by goreleaser / GitHub Actions via ldflags.
var (
	commit  = "HEAD"
	version = "latest"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(outWriter, "relic %s (%s)\n", version, commit)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
