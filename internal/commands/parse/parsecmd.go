// Package parse implements the "parse" command: parse a version string
// given as an argument and display its fields.
package parse

import (
	"context"
	"fmt"

	"github.com/relver/relver/internal/commands/show"
	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/version"
	"github.com/urfave/cli/v3"
)

// Run returns the "parse" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a version string and show its fields",
		UsageText: "relver parse [--format text|json|table] <version>",
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
				Usage:   "Print only the canonical form",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runParse(ctx, cmd, cfg)
		},
	}
}

func runParse(_ context.Context, cmd *cli.Command, cfg *config.Config) error {
	raw := cmd.Args().First()
	if raw == "" {
		return fmt.Errorf("version argument is required")
	}

	info, err := parseValue(cfg, raw)
	if err != nil {
		return err
	}

	if cmd.Bool("quiet") {
		fmt.Println(info.String())
		return nil
	}

	formatter := show.NewFormatter(show.ParseOutputFormat(cmd.String("format")))
	fmt.Print(formatter.Format(raw, info))
	return nil
}

// parseValue parses an argument honoring the root --strict flag.
func parseValue(cfg *config.Config, raw string) (version.VersionInfo, error) {
	if cfg != nil && cfg.Strict {
		return version.Parse(raw)
	}
	return version.ParseTolerant(raw)
}
