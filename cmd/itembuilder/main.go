// Package main is the entry point for the item builder CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
