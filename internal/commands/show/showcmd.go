package show

import (
	"context"
	"fmt"
	"io"

	"github.com/gradlever/gradlever/internal/config"
	"github.com/gradlever/gradlever/internal/core"
	"github.com/gradlever/gradlever/internal/extractor"
	"github.com/gradlever/gradlever/internal/printer"
	"github.com/urfave/cli/v3"
)

// stdinName labels results read from standard input.
const stdinName = "<stdin>"

// Run returns the "show" command. It is also the root command's default
// action, so `gradlever` and `gradlever show` are equivalent.
// A non-nil cfgErr is the error from loading the configuration file; it is
// reported here rather than at startup so that "init" can still rewrite a
// broken file.
func Run(cfg *config.Config, cfgErr error) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the version declared in the build script",
		UsageText: "gradlever show [--path build.gradle] [--trim quoted|blind] [--format text|json] [--stdin]",
		Action:    Action(cfg, cfgErr),
	}
}

// Action returns the action that extracts and prints the version.
func Action(cfg *config.Config, cfgErr error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cfgErr != nil {
			return cfgErr
		}
		return runShowCmd(ctx, cmd, cfg)
	}
}

// resolveOptions merges flag values over cfg and validates the result.
// Flag defaults are seeded from cfg in the root command, so the flag values
// are always authoritative.
func resolveOptions(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	resolved := *cfg
	resolved.Path = cmd.String("path")
	resolved.Trim = cmd.String("trim")
	resolved.Format = cmd.String("format")

	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &resolved, nil
}

func runShowCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}

	mode, err := extractor.ParseTrimMode(opts.Trim)
	if err != nil {
		return err
	}
	ex := extractor.NewExtractor(core.NewOSFileSystem(), mode)

	var result *extractor.Result
	if cmd.Bool("stdin") {
		data, readErr := io.ReadAll(cmd.Root().Reader)
		if readErr != nil {
			return &extractor.FileAccessError{Path: stdinName, Err: readErr}
		}
		result, err = ex.ExtractBytes(stdinName, data)
	} else {
		result, err = ex.Extract(ctx, config.NormalizeBuildScriptPath(opts.Path))
	}
	if err != nil {
		return err
	}

	if cmd.Bool("verbose") {
		printer.PrintFaint(fmt.Sprintf("matched %s at offset %d: %s (trim: %s)", result.Path, result.Offset, result.Token, mode))
	}

	line, err := FormatResult(ParseOutputFormat(opts.Format), result)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, line)
	return err
}
