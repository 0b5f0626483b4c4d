package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/shades/internal/cli"
	"github.com/bnema/shades/internal/coordinator"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/infrastructure/browser/rodhost"
	"github.com/bnema/shades/internal/infrastructure/config"
	"github.com/bnema/shades/internal/logging"
)

var browseCmd = &cobra.Command{
	Use:   "browse [url...]",
	Short: "Launch a browser with filters applied",
	Long: `Launch Chromium (or attach to browser.remote_url) and keep every tab's filter
in sync with the settings store. Keyboard shortcuts from [keybindings] work in
every page.

If no URL is given, browser.start_urls are opened.

Examples:
  shades browse
  shades browse example.com news.ycombinator.com`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	cfg := app.Config

	lockPath, err := config.GetLockFile()
	if err != nil {
		return err
	}
	release, err := cli.AcquireInstanceLock(lockPath)
	if err != nil {
		return err
	}
	defer release()

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "browse")
	log := logging.FromContext(ctx)

	bindings, err := rodhost.ParseBindings(app.KeyBindings())
	if err != nil {
		return err
	}
	opts := rodhost.Options{
		RemoteURL: cfg.Browser.RemoteURL,
		Bin:       cfg.Browser.Bin,
		Headless:  cfg.Browser.Headless,
		Bindings:  bindings,
	}
	if opts.RemoteURL == "" {
		if opts.UserDataDir, err = config.GetProfileDir(); err != nil {
			return err
		}
	}

	host, err := rodhost.Start(ctx, opts, app.ResolveUC)
	if err != nil {
		return err
	}
	defer func() {
		if err := host.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close browser")
		}
	}()

	watchKeybindings(ctx, app, host)

	coord := coordinator.New(host, app.ResolveUC, app.ToggleUC, app.Settings, cfg.Browser.RestrictedSchemes)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return host.Run(gctx) })
	g.Go(func() error { return coord.Run(gctx) })
	g.Go(func() error {
		for _, u := range startURLs(args, cfg.Browser.StartURLs) {
			if _, err := host.Open(gctx, u); err != nil {
				log.Warn().Err(err).Str("url", u).Msg("failed to open tab")
			}
		}
		return nil
	})

	log.Info().Int("bindings", len(bindings)).Msg("shades running")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("browse: %w", err)
	}
	log.Info().Msg("shades stopped")
	return nil
}

// watchKeybindings reinstalls the key bridge whenever [keybindings] changes.
func watchKeybindings(ctx context.Context, app *cli.App, host *rodhost.Host) {
	if app.Manager == nil {
		return
	}
	log := logging.FromContext(ctx)

	current := app.Config.Keybindings
	app.Manager.OnConfigChange(func(next *config.Config) {
		if next.Keybindings == current {
			return
		}
		current = next.Keybindings

		bindings, err := rodhost.ParseBindings(cli.CommandAccelerators(next.Keybindings))
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid keybindings")
			return
		}
		if err := host.SetBindings(ctx, bindings); err != nil {
			log.Warn().Err(err).Msg("failed to update keybindings")
			return
		}
		log.Info().Int("bindings", len(bindings)).Msg("keybindings reloaded")
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}

// startURLs prefers command-line URLs over the configured start pages.
func startURLs(args, configured []string) []string {
	src := configured
	if len(args) > 0 {
		src = args
	}
	out := make([]string, 0, len(src))
	for _, u := range src {
		if n := domainurl.Normalize(u); n != "" {
			out = append(out, n)
		}
	}
	return out
}
