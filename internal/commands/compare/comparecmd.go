// Package compare implements the "compare" command: order two version
// strings.
package compare

import (
	"context"
	"fmt"

	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/version"
	"github.com/urfave/cli/v3"
)

// Run returns the "compare" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions and print their ordering",
		UsageText: "relver compare <a> <b>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only -1, 0, or 1",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCompare(ctx, cmd, cfg)
		},
	}
}

func runCompare(_ context.Context, cmd *cli.Command, cfg *config.Config) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("expected exactly two version arguments, got %d", args.Len())
	}

	a, err := parseValue(cfg, args.Get(0))
	if err != nil {
		return err
	}
	b, err := parseValue(cfg, args.Get(1))
	if err != nil {
		return err
	}

	result := a.Compare(b)

	if cmd.Bool("quiet") {
		fmt.Println(result)
		return nil
	}

	fmt.Printf("%s %s %s\n",
		printer.Bold(a.String()),
		orderingSymbol(result),
		printer.Bold(b.String()))
	return nil
}

func orderingSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "=="
	}
}

func parseValue(cfg *config.Config, raw string) (version.VersionInfo, error) {
	if cfg != nil && cfg.Strict {
		return version.Parse(raw)
	}
	return version.ParseTolerant(raw)
}
