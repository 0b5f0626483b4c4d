package pebblestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/shades/internal/infrastructure/persistence/pebblestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_RoundTripAndReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "store")

	s, err := pebblestore.Open(ctx, dir)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "defaultFilter")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "defaultFilter", []byte(`{"filterId":"rose-tint"}`)))
	require.NoError(t, s.Close())

	s, err = pebblestore.Open(ctx, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	val, ok, err := s.Get(ctx, "defaultFilter")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"filterId":"rose-tint"}`, string(val))

	require.NoError(t, s.Delete(ctx, "defaultFilter"))
	_, ok, err = s.Get(ctx, "defaultFilter")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_Watch(t *testing.T) {
	ctx := context.Background()
	s, err := pebblestore.Open(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ch, err := s.Watch(t.Context())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "websiteFilters", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "websiteFilters"))

	for _, deleted := range []bool{false, true} {
		select {
		case c := <-ch:
			assert.Equal(t, "websiteFilters", c.Key)
			assert.Equal(t, deleted, c.Deleted)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for change")
		}
	}
}

func TestOpen_RejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := pebblestore.Open(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
