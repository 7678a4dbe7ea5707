// Package initialize implements the "init" command: create the version
// file and the .relver.yaml configuration.
package initialize

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/tui"
	"github.com/relver/relver/internal/version"
	"github.com/urfave/cli/v3"
)

// defaultInitialVersion is written when the user does not pick one.
const defaultInitialVersion = "0.1.0"

// Prompt seams, swapped out by tests.
var (
	isInteractive    = tui.IsInteractive
	promptOptionsFn  = promptOptions
	confirmOverwrite = tui.Confirm
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create the version file and .relver.yaml configuration",
		UsageText: "relver init [--version <version>] [--path <path>] [--force]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "Initial version to write",
				Value: defaultInitialVersion,
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Path of the version file",
				Value:   config.DefaultVersionPath,
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Prompt theme to record in the configuration",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing files",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Skip interactive prompts",
			},
		},
		Action: runInit,
	}
}

// initOptions collects everything the command needs to write.
type initOptions struct {
	rawVersion string
	path       string
	theme      string
	force      bool
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	opts := initOptions{
		rawVersion: cmd.String("version"),
		path:       cmd.String("path"),
		theme:      cmd.String("theme"),
		force:      cmd.Bool("force"),
	}

	interactive := !cmd.Bool("no-interactive") && isInteractive()
	if interactive {
		if err := promptOptionsFn(&opts); err != nil {
			return err
		}
	}

	info, err := version.ParseTolerant(opts.rawVersion)
	if err != nil {
		return err
	}

	if opts.theme != "" && !tui.IsValidTheme(opts.theme) {
		return fmt.Errorf("invalid theme %q (valid: %v)", opts.theme, tui.ValidThemes)
	}

	opts.path = config.NormalizeVersionPath(opts.path)

	if !opts.force {
		existing := existingFiles(config.ConfigFile, opts.path)
		if len(existing) > 0 {
			if !interactive {
				return fmt.Errorf("%s already exists (use --force to overwrite)", existing[0])
			}

			ok, err := confirmOverwrite(
				fmt.Sprintf("Overwrite %s?", strings.Join(existing, " and ")),
				"The existing files will be replaced.",
			)
			if err != nil {
				return err
			}
			if !ok {
				printer.PrintFaint("Aborted.")
				return nil
			}
		}
	}

	if err := writeVersionFile(ctx, &opts, info); err != nil {
		return err
	}

	cfg := &config.Config{
		Path:  opts.path,
		Theme: opts.theme,
	}
	if err := config.NewSaver(nil, nil, nil).Save(cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s with version %s", opts.path, info.String()))
	printer.PrintSuccess(fmt.Sprintf("Created %s", config.ConfigFile))
	fmt.Println()
	printer.PrintInfo("Next steps:")
	fmt.Println("  - Run 'relver show' to inspect the current version")
	fmt.Println("  - Run 'relver set <version>' to change it")
	fmt.Println("  - Run 'relver scan' to find other version sources")
	return nil
}

// promptOptions fills the options from interactive prompts. Empty
// answers keep the flag (or default) values.
func promptOptions(opts *initOptions) error {
	rawVersion, err := tui.Input(
		"Initial version",
		"Forms like 1.0.0, 1.0.0a3, or 1.0.0-rc.1 are accepted.",
		defaultInitialVersion,
	)
	if err != nil {
		return err
	}
	if rawVersion != "" {
		opts.rawVersion = rawVersion
	}

	path, err := tui.Input(
		"Version file path",
		"",
		config.DefaultVersionPath,
	)
	if err != nil {
		return err
	}
	if path != "" {
		opts.path = path
	}

	themeOptions := make([]huh.Option[string], len(tui.ValidThemes))
	for i, name := range tui.ValidThemes {
		themeOptions[i] = huh.NewOption(name, name)
	}

	theme, err := tui.Select("Prompt theme", "", themeOptions)
	if err != nil {
		return err
	}
	opts.theme = theme

	return nil
}

// existingFiles returns the given paths that already exist on disk.
func existingFiles(paths ...string) []string {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return existing
}

// writeVersionFile creates the version file.
func writeVersionFile(ctx context.Context, opts *initOptions, info version.VersionInfo) error {
	writer := parser.NewWriter(core.NewOSFileSystem())
	source := parser.FileConfig{Path: opts.path, Format: parser.FormatRaw}

	if err := writer.WriteInfo(ctx, source, info); err != nil {
		return fmt.Errorf("failed to create version file: %w", err)
	}

	return nil
}
