// Package main is the entry point for the fragdoc CLI.
package main

import (
	"os"

	"github.com/fragdoc/fragdoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
