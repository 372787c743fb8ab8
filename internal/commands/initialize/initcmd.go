package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/gradlever/gradlever/internal/config"
	"github.com/gradlever/gradlever/internal/core"
	"github.com/gradlever/gradlever/internal/extractor"
	"github.com/gradlever/gradlever/internal/printer"
	"github.com/gradlever/gradlever/internal/tui"
	"github.com/urfave/cli/v3"
)

// Seams for tests.
var (
	isInteractiveFn = tui.IsInteractive
	newPrompterFn   = NewPrompter
	newFileSystemFn = func() core.FileSystem { return core.NewOSFileSystem() }
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a " + config.YAMLConfigFile + " in the current directory",
		UsageText: "gradlever init [--yes] [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept defaults without prompting",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, newFileSystemFn(), config.YAMLConfigFile)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command, fs core.FileSystem, target string) error {
	interactive := !cmd.Bool("yes") && isInteractiveFn()

	if _, err := fs.Stat(ctx, target); err == nil {
		if !cmd.Bool("force") {
			if !interactive {
				return fmt.Errorf("%s already exists (use --force to overwrite)", target)
			}
			overwrite, err := newPrompterFn().Confirm(fmt.Sprintf("%s already exists", target), "Overwrite it?")
			if err != nil {
				return err
			}
			if !overwrite {
				printer.PrintInfo("Aborted, existing configuration kept")
				return nil
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", target, err)
	}

	cfg := config.Default()
	if interactive {
		if err := promptConfig(newPrompterFn(), cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	saver := config.NewConfigSaver(commentedMarshaler{}, fs)
	if err := saver.SaveTo(ctx, cfg, target); err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Created %s", target))

	scriptPath := cfg.Path
	if !filepath.IsAbs(scriptPath) {
		scriptPath = filepath.Join(filepath.Dir(target), scriptPath)
	}
	if _, err := fs.Stat(ctx, scriptPath); err != nil {
		printer.PrintWarning(fmt.Sprintf("Build script %s not found yet", cfg.Path))
	}

	return nil
}

// promptConfig fills cfg from interactive answers.
func promptConfig(p Prompter, cfg *config.Config) error {
	path, err := p.Input("Build script", "File holding the version declaration", cfg.Path, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("path must not be empty")
		}
		return nil
	})
	if err != nil {
		return err
	}
	cfg.Path = strings.TrimSpace(path)

	trim, err := p.Select("Trim mode", "How the quoted literal is reduced to a version", []huh.Option[string]{
		huh.NewOption("quoted - strip matching quotes, reject anything else", string(extractor.TrimQuoted)),
		huh.NewOption("blind - strip one character from each end", string(extractor.TrimBlind)),
	})
	if err != nil {
		return err
	}
	if trim != "" {
		cfg.Trim = trim
	}

	format, err := p.Select("Output format", "", huh.NewOptions(config.ValidFormats...))
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Format = format
	}

	return nil
}
