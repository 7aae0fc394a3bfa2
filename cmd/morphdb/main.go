// Package main provides the morphdb CLI application.
// morphdb manages a local catalog of botanical morphology records.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
