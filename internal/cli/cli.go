// Package cli assembles the relver root command.
package cli

import (
	"context"
	"fmt"

	"github.com/relver/relver/internal/commands/check"
	"github.com/relver/relver/internal/commands/compare"
	"github.com/relver/relver/internal/commands/initialize"
	"github.com/relver/relver/internal/commands/parse"
	"github.com/relver/relver/internal/commands/scan"
	"github.com/relver/relver/internal/commands/set"
	"github.com/relver/relver/internal/commands/show"
	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/tui"
	"github.com/relver/relver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the relver cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "relver",
		Version:               fmt.Sprintf("v%s", version.Current().String()),
		Usage:                 "Release version metadata for your project",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Path to the version source file",
				Value:       cfg.Path,
				DefaultText: config.DefaultVersionPath,
			},
			&urfavecli.BoolFlag{
				Name:  "strict",
				Usage: "Reject version values that are not in canonical notation",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag || !tui.IsTTY() || !tui.SupportsColor())

			if cmd.IsSet("path") {
				cfg.Path = cmd.String("path")
			}
			cfg.Strict = cmd.Bool("strict")
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			show.Run(cfg),
			parse.Run(cfg),
			set.Run(cfg),
			compare.Run(cfg),
			check.Run(cfg),
			scan.Run(cfg),
		},
	}
}
