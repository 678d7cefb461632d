package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Errors are already logged by the failing command.
		os.Exit(1)
	}
}
