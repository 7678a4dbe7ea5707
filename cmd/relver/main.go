package main

import (
	"context"
	"os"

	"github.com/relver/relver/internal/cli"
	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/tui"
	"github.com/relver/relver/internal/version"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI wires up startup and runs the root command. Split from main so
// tests can exercise the full startup path.
func runCLI(args []string) error {
	if _, err := version.InitDefault(); err != nil {
		return err
	}

	cfg, err := config.LoadFn()
	if err != nil {
		return err
	}

	tui.SetTheme(cfg.Theme)

	return cli.New(cfg).Run(context.Background(), args)
}
