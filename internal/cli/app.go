// Package cli wires the shades command-line and TUI surfaces.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/cli/styles"
	"github.com/bnema/shades/internal/domain/build"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/infrastructure/config"
	"github.com/bnema/shades/internal/infrastructure/persistence"
	"github.com/bnema/shades/internal/infrastructure/settingsstore"
	"github.com/bnema/shades/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	store    port.KeyValueStore
	Settings *settingsstore.Store

	// Use cases
	ResolveUC *usecase.ResolveFilterUseCase
	ToggleUC  *usecase.ToggleFilterUseCase
	ManageUC  *usecase.ManageFiltersUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration, opens the settings store and builds the use cases.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", mgr.Path(), err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)

	app, err := NewAppWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Manager = mgr
	return app, nil
}

// NewAppWithConfig builds an App from an already loaded configuration.
// ctx must carry the logger.
func NewAppWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.FromContext(ctx)

	kv, err := persistence.OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	log.Debug().Str("backend", string(cfg.Storage.Backend)).Str("path", cfg.Storage.Path).Msg("settings store opened")

	settings := settingsstore.New(kv)

	return &App{
		Config:    cfg,
		Theme:     styles.NewTheme(cfg),
		store:     kv,
		Settings:  settings,
		ResolveUC: usecase.NewResolveFilterUseCase(settings),
		ToggleUC:  usecase.NewToggleFilterUseCase(settings, entity.FilterID(cfg.Keybindings.InvertFilter)),
		ManageUC:  usecase.NewManageFiltersUseCase(settings),
		ctx:       ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// KeyBindings returns the configured accelerator for each command.
func (a *App) KeyBindings() map[port.Command]string {
	return CommandAccelerators(a.Config.Keybindings)
}

// CommandAccelerators maps keybinding config to commands.
func CommandAccelerators(kb config.KeybindingsConfig) map[port.Command]string {
	return map[port.Command]string{
		port.CommandToggleExtension: kb.ToggleExtension,
		port.CommandToggleFilter:    kb.ToggleFilter,
		port.CommandToggleInvert:    kb.ToggleInvert,
	}
}
