// Package check implements the "check" command: validate a version
// against the configured policy rules.
package check

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

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a version against the configured policy",
		UsageText: "relver check [version]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress output, report via exit code only",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheck(ctx, cmd, cfg)
		},
	}
}

func runCheck(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	info, raw, err := resolveVersion(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	quiet := cmd.Bool("quiet")
	checker := policy.NewChecker(cfg.PolicyOrDefault())

	if err := checker.Check(info); err != nil {
		if !quiet {
			printer.PrintError(fmt.Sprintf("%s violates policy: %v", info.String(), err))
		}
		return fmt.Errorf("policy check failed for %q: %w", raw, err)
	}

	if quiet {
		return nil
	}

	if !checker.IsEnabled() {
		printer.PrintWarning(fmt.Sprintf("%s is well-formed (no policy configured)", info.String()))
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("%s passes all policy rules", info.String()))
	return nil
}

// resolveVersion parses the argument version, or reads the configured
// source when no argument is given.
func resolveVersion(ctx context.Context, cmd *cli.Command, cfg *config.Config) (version.VersionInfo, string, error) {
	if raw := cmd.Args().First(); raw != "" {
		info, err := parseValue(cfg, raw)
		return info, raw, err
	}

	reader := parser.NewReader(core.NewOSFileSystem())
	info, raw, err := reader.ReadInfo(ctx, cfg.Source())
	if err != nil {
		return version.VersionInfo{}, "", fmt.Errorf("failed to read version: %w", err)
	}

	if cfg.Strict {
		info, err = version.Parse(raw)
		if err != nil {
			return version.VersionInfo{}, raw, err
		}
	}

	return info, raw, nil
}

func parseValue(cfg *config.Config, raw string) (version.VersionInfo, error) {
	if cfg != nil && cfg.Strict {
		return version.Parse(raw)
	}
	return version.ParseTolerant(raw)
}
