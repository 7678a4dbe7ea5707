// Package scan implements the "scan" command: walk the project tree,
// collect every known version source, and report mismatches.
package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/discovery"
	"github.com/relver/relver/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan the project tree for version sources and mismatches",
		UsageText: `relver scan [options] [dir]

Scans a directory tree for:
  - .version files
  - Manifest files (package.json, Cargo.toml, pyproject.toml, etc.)

Every discovered value is parsed and compared against the primary
version; sources that disagree are reported as mismatches.`,
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
				Usage:   "Only show the summary line",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum directory depth to walk",
				Value: core.MaxScanDepth,
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Directory name or path fragment to skip (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-mismatch",
				Usage: "Exit with an error when versions disagree",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScan(ctx, cmd, cfg)
		},
	}
}

func runScan(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rootDir := cmd.Args().First()
	if rootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		rootDir = wd
	}

	opts := []discovery.Option{
		discovery.WithMaxDepth(int(cmd.Int("max-depth"))),
	}
	if excludes := cmd.StringSlice("exclude"); len(excludes) > 0 {
		opts = append(opts, discovery.WithExcludes(excludes...))
	}

	svc := discovery.NewService(core.NewOSFileSystem(), opts...)

	result, err := scanTree(ctx, svc, rootDir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	if cmd.Bool("quiet") {
		fmt.Println(formatter.Summary(result))
	} else {
		formatter.PrintResult(result)
	}

	if cmd.Bool("fail-on-mismatch") && result.HasMismatches() {
		return fmt.Errorf("found %d version mismatch(es)", len(result.Mismatches))
	}

	return nil
}

// scanTree runs the walk, behind a spinner when the terminal allows it.
func scanTree(ctx context.Context, svc *discovery.Service, rootDir string) (*discovery.Result, error) {
	if !tui.IsInteractive() {
		return svc.Scan(ctx, rootDir)
	}

	var result *discovery.Result
	err := spinner.New().
		Context(ctx).
		Title("Scanning for version sources...").
		ActionWithErr(func(ctx context.Context) error {
			var scanErr error
			result, scanErr = svc.Scan(ctx, rootDir)
			return scanErr
		}).
		Run()
	if err != nil {
		return nil, err
	}

	return result, nil
}
