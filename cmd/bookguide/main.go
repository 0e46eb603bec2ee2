// Package main provides the BookGuide interactive CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhyannv/bookguide-go/pkg/bookguide"
)

// main is the program entry point.
func main() {
	config, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := bookguide.New(context.Background(), config)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(app, replOptions{
		Verbose: config.Verbose,
		Logger:  config.Logger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
