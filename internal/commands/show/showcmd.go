// Package show implements the "show" command: display the current
// version from the configured source.
package show

import (
	"context"
	"fmt"

	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/version"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the current version and its parsed fields",
		UsageText: "relver show [--format text|json|table] [--quiet]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, json, table)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the raw version string",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShow(ctx, cmd, cfg)
		},
	}
}

func runShow(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	reader := parser.NewReader(core.NewOSFileSystem())

	info, raw, err := reader.ReadInfo(ctx, cfg.Source())
	if err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}

	if cfg.Strict {
		if info, err = version.Parse(raw); err != nil {
			return err
		}
	}

	if cmd.Bool("quiet") {
		fmt.Println(raw)
		return nil
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	fmt.Print(formatter.Format(raw, info))
	return nil
}
