// Package cmd provides Cobra CLI commands for shades.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/cli"
	"github.com/bnema/shades/internal/domain/build"
)

var errNoApp = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "shades",
		Short: "Per-site color filter overlays for Chromium",
		Long: `Shades - per-site color filter overlays.

Assign a tint or an inversion filter to each website, or a global default,
and shades keeps every open tab rendered accordingly.

Use 'shades browse' to launch a browser with the filters applied, 'shades tui'
for the interactive filter picker, or the site/default/toggle subcommands to
edit the settings store from scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need the settings store
			switch cmd.Name() {
			case "help", "completion", "path", "schema", "init":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, errNoApp
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
