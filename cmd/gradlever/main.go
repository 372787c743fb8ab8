package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gradlever/gradlever/internal/cli"
	"github.com/gradlever/gradlever/internal/config"
	"github.com/gradlever/gradlever/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintFailure(err)
		os.Exit(1)
	}
}

// runCLI loads configuration and runs the root command with args.
// Configuration errors are handed to the command tree instead of aborting,
// so "init --force" can replace an unreadable or invalid file.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	var cfgErr error
	switch {
	case err != nil:
		cfgErr = fmt.Errorf("failed to load configuration: %w", err)
		cfg = config.Default()
	case cfg == nil:
		cfg = config.Default()
	}

	app := cli.New(cfg, cfgErr)
	app.Writer = os.Stdout
	app.Reader = os.Stdin
	return app.Run(context.Background(), args)
}
