package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/shades/internal/infrastructure/config"
	"github.com/bnema/shades/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		backend config.StorageBackend
		path    string
	}{
		{backend: config.StorageSQLite, path: "shades.sqlite"},
		{backend: config.StoragePebble, path: "pebble"},
	} {
		t.Run(string(tc.backend), func(t *testing.T) {
			store, err := persistence.OpenStore(ctx, config.StorageConfig{
				Backend:        tc.backend,
				Path:           filepath.Join(t.TempDir(), tc.path),
				PollIntervalMs: 20,
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			require.NoError(t, store.Set(ctx, "k", []byte("v")))
			v, ok, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("v"), v)
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := persistence.OpenStore(context.Background(), config.StorageConfig{Backend: "redis", Path: t.TempDir()})
	assert.ErrorContains(t, err, "redis")
}
