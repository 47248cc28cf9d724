// Command symspell is a CLI and benchmark harness around the symspell
// fuzzy-matching index: load a dictionary, insert terms, run lookups, and
// optionally serve them over HTTP.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "symspell",
	Short: "Symmetric-delete fuzzy string matching index",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	log.Printf(format, args...)
	os.Exit(1)
}
