// Package set implements the "set" command: write a new version to the
// configured source after a policy check.
package set

import (
	"context"
	"fmt"

	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/policy"
	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/version"
	"github.com/urfave/cli/v3"
)

// Run returns the "set" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set the version in the configured source file",
		UsageText: "relver set [--force] <version>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Skip the policy check",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSet(ctx, cmd, cfg)
		},
	}
}

func runSet(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	raw := cmd.Args().First()
	if raw == "" {
		return fmt.Errorf("version argument is required")
	}

	info, err := parseValue(cfg, raw)
	if err != nil {
		return err
	}

	if !cmd.Bool("force") {
		checker := policy.NewChecker(cfg.PolicyOrDefault())
		if err := checker.Check(info); err != nil {
			return fmt.Errorf("policy check failed for %q: %w", raw, err)
		}
	}

	source := cfg.Source()
	rw := parser.NewReadWriter(core.NewOSFileSystem())

	// Best effort: the source may not exist yet.
	previous, _ := rw.ReadVersion(ctx, source)

	if err := rw.WriteInfo(ctx, source, info); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	if !cmd.Bool("quiet") {
		if previous != "" {
			printer.PrintSuccess(fmt.Sprintf("Updated %s from %s to %s", source.Path, previous, info.String()))
		} else {
			printer.PrintSuccess(fmt.Sprintf("Set %s to %s", source.Path, info.String()))
		}
	}

	return nil
}

func parseValue(cfg *config.Config, raw string) (version.VersionInfo, error) {
	if cfg != nil && cfg.Strict {
		return version.Parse(raw)
	}
	return version.ParseTolerant(raw)
}
