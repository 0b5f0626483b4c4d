// Package pebblestore stores settings in a Pebble directory.
//
// Pebble holds an exclusive lock on its directory, so this backend serves a
// single process: writes from other shades invocations cannot be observed.
package pebblestore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/infrastructure/persistence/changefeed"
	"github.com/bnema/shades/internal/logging"
	"github.com/cockroachdb/pebble"
)

const keyPrefix = "kv/"

// KVStore is a port.KeyValueStore backed by Pebble.
type KVStore struct {
	db   *pebble.DB
	feed *changefeed.Feed
}

var _ port.KeyValueStore = (*KVStore)(nil)

// Open opens or creates the store directory at dir.
func Open(ctx context.Context, dir string) (*KVStore, error) {
	if dir == "" {
		return nil, errors.New("pebble: directory cannot be empty")
	}
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("pebble: %s exists and is not a directory", dir)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("pebble: stat path: %w", err)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("pebble: ensure directory: %w", err)
	}

	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble: open: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", dir).Msg("pebble store opened")
	return &KVStore{db: db, feed: changefeed.New(0)}, nil
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, closer, err := s.db.Get(storeKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("pebble: get %s: %w", key, err)
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	if err := s.db.Set(storeKey(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("pebble: set %s: %w", key, err)
	}
	s.feed.Publish(port.KeyChange{Key: key})
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	if err := s.db.Delete(storeKey(key), pebble.Sync); err != nil {
		return fmt.Errorf("pebble: delete %s: %w", key, err)
	}
	s.feed.Publish(port.KeyChange{Key: key, Deleted: true})
	return nil
}

// Watch reports writes made through this store.
func (s *KVStore) Watch(ctx context.Context) (<-chan port.KeyChange, error) {
	return s.feed.Subscribe(ctx), nil
}

func (s *KVStore) Close() error {
	s.feed.Close()
	return s.db.Close()
}

func storeKey(key string) []byte {
	return []byte(keyPrefix + key)
}
