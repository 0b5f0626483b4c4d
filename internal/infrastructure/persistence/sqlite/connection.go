package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/shades/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

// NewConnection opens the settings database, creating its directory, applying
// pragmas and running migrations. Several processes may open the same file:
// the browse coordinator and any number of CLI or TUI invocations.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	const dbDirPerm = 0o750
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pool settings must be applied before the first query.
	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("settings database opened")

	return db, nil
}

// applyPragmas configures SQLite for a small, multi-process settings file.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",   // readers never block the writer in another process
		"PRAGMA synchronous = NORMAL", // Safe in WAL mode
		"PRAGMA cache_size = -2000",   // 2MB cache
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // Wait 5 seconds on lock contention
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	return nil
}

// configurePool limits the pool to one connection: SQLite has a single
// writer and the settings traffic is tiny.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}
