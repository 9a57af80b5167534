// compass is the assessment scoring CLI: score attempts, batch-score
// directories of attempts, validate catalogues and serve the scoring
// engine over MCP.
//
// Usage:
//
//	compass score --input <attempt.yaml> [--rater <rater.yaml>] [--format text|json|yaml]
//	compass batch <attempt...> [--parallel N] [--out <dir>]
//	compass validate [--catalog <path>]
//	compass catalog
//	compass serve
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
