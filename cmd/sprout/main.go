// Command sprout initializes new projects from templates.
package main

import (
	"fmt"
	"os"

	"github.com/sproutkit/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
