// Package main is the entry point for the qk CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/querykit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
