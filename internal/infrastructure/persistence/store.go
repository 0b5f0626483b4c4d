// Package persistence opens the key-value store selected by configuration.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/infrastructure/config"
	"github.com/bnema/shades/internal/infrastructure/persistence/pebblestore"
	"github.com/bnema/shades/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shades/internal/logging"
)

// OpenStore opens the backend named by cfg.Backend at cfg.Path.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (port.KeyValueStore, error) {
	log := logging.FromContext(ctx)

	switch cfg.Backend {
	case config.StorageSQLite, "":
		interval := time.Duration(cfg.PollIntervalMs) * time.Millisecond
		store, err := sqlite.OpenKVStore(ctx, cfg.Path, interval)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Debug().Str("path", cfg.Path).Dur("poll", interval).Msg("opened sqlite store")
		return store, nil
	case config.StoragePebble:
		store, err := pebblestore.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open pebble store: %w", err)
		}
		log.Debug().Str("path", cfg.Path).Msg("opened pebble store")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
