package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gradlever/gradlever/internal/commands/initialize"
	"github.com/gradlever/gradlever/internal/commands/show"
	"github.com/gradlever/gradlever/internal/config"
	"github.com/gradlever/gradlever/internal/printer"
	"github.com/gradlever/gradlever/internal/tui"
	"github.com/gradlever/gradlever/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. Run without a subcommand it
// prints the version declared in the build script. cfgErr, if set, fails
// the version-printing commands only.
func New(cfg *config.Config, cfgErr error) *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "gradlever",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Print the project version declared in a Gradle build script",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Path to the build script",
				Value:       cfg.Path,
				DefaultText: config.DefaultPath,
			},
			&urfavecli.StringFlag{
				Name:  "trim",
				Usage: "How to strip the version literal: quoted or blind",
				Value: cfg.Trim,
			},
			&urfavecli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or json",
				Value:   cfg.Format,
			},
			&urfavecli.BoolFlag{
				Name:  "stdin",
				Usage: "Read the build script from standard input",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Print match details to stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.ConfigureColor(cmd.Bool("no-color"), os.Stderr)
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Action: show.Action(cfg, cfgErr),
		Commands: []*urfavecli.Command{
			show.Run(cfg, cfgErr),
			initialize.Run(),
		},
	}
}
