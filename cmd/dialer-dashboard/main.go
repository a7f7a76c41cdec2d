// Package main is the entry point for the dialer-dashboard CLI/TUI.
package main

import (
	"os"

	"github.com/eugenc/dialer-dashboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
