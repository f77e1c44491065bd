// Package main provides the msprojval CLI: validation and repair of
// MS Project XML schedule files.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

// exitCode is set by commands that finish without a hard error but must
// still signal validation failure.
var exitCode = exitSuccess

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitCode)
}
