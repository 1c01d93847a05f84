// Command parsekit is a debug CLI for exercising parsekit grammars: it
// parses a file or inline snippet, prints the resulting AST, and can
// evaluate a single named production in isolation via DebugProductionAt.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", color.New(color.FgRed).Sprint(err.Error()))
		os.Exit(1)
	}
}
