package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/infrastructure/persistence/changefeed"
	"github.com/bnema/shades/internal/logging"
	"github.com/rs/zerolog"
)

const (
	// DefaultPollInterval is how often the changelog is polled for writes
	// made by other processes.
	DefaultPollInterval = 500 * time.Millisecond

	changeBatchSize = 256
	changeRetention = time.Hour
)

// KVStore is a port.KeyValueStore over the kv table.
//
// Every write lands in kv_changes through triggers. Watchers are fed by a
// single poller that reads the changelog, so writes from the CLI or the TUI
// reach a running coordinator. Local writes kick the poller immediately.
type KVStore struct {
	db       *sql.DB
	interval time.Duration
	feed     *changefeed.Feed
	logger   zerolog.Logger

	kick      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	stop      context.CancelFunc
	done      chan struct{}
}

var _ port.KeyValueStore = (*KVStore)(nil)

// OpenKVStore opens the database at path and wraps it in a KVStore that owns it.
func OpenKVStore(ctx context.Context, path string, pollInterval time.Duration) (*KVStore, error) {
	db, err := NewConnection(ctx, path)
	if err != nil {
		return nil, err
	}
	s := NewKVStore(ctx, db, pollInterval)
	if err := s.pruneChanges(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to prune changelog")
	}
	return s, nil
}

// NewKVStore wraps an open database. The store takes ownership of db.
func NewKVStore(ctx context.Context, db *sql.DB, pollInterval time.Duration) *KVStore {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &KVStore{
		db:       db,
		interval: pollInterval,
		feed:     changefeed.New(0),
		logger:   logging.FromContext(ctx).With().Str("component", "sqlite-kv").Logger(),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	s.nudge()
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	s.nudge()
	return nil
}

// Watch streams changes from this and every other process sharing the file.
// Only changes committed after the first Watch call are reported.
func (s *KVStore) Watch(ctx context.Context) (<-chan port.KeyChange, error) {
	var startErr error
	s.startOnce.Do(func() {
		startErr = s.startPoller()
	})
	if startErr != nil {
		return nil, startErr
	}
	return s.feed.Subscribe(ctx), nil
}

// Close stops the poller, closes watcher channels and the database.
func (s *KVStore) Close() error {
	s.stopOnce.Do(func() {
		s.startOnce.Do(func() { close(s.done) })
		if s.stop != nil {
			s.stop()
			<-s.done
		}
		s.feed.Close()
	})
	return s.db.Close()
}

func (s *KVStore) startPoller() error {
	cursor, err := s.latestSeq(context.Background())
	if err != nil {
		close(s.done)
		return fmt.Errorf("failed to read changelog position: %w", err)
	}

	ctx, cancel := context.WithCancel(s.logger.WithContext(context.Background()))
	s.stop = cancel
	go s.pollLoop(ctx, cursor)
	return nil
}

func (s *KVStore) pollLoop(ctx context.Context, cursor int64) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.kick:
		}

		next, err := s.poll(ctx, cursor)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn().Err(err).Int64("cursor", cursor).Msg("changelog poll failed")
			}
			continue
		}
		cursor = next
	}
}

// poll publishes every change after cursor and returns the new cursor.
func (s *KVStore) poll(ctx context.Context, cursor int64) (int64, error) {
	for {
		rows, err := s.db.QueryContext(ctx,
			`SELECT seq, key, deleted FROM kv_changes WHERE seq > ? ORDER BY seq LIMIT ?`,
			cursor, changeBatchSize,
		)
		if err != nil {
			return cursor, err
		}

		n := 0
		for rows.Next() {
			var (
				seq     int64
				key     string
				deleted bool
			)
			if err := rows.Scan(&seq, &key, &deleted); err != nil {
				_ = rows.Close()
				return cursor, err
			}
			s.feed.Publish(port.KeyChange{Key: key, Deleted: deleted})
			cursor = seq
			n++
		}
		if err := rows.Close(); err != nil {
			return cursor, err
		}
		if err := rows.Err(); err != nil {
			return cursor, err
		}

		if n < changeBatchSize {
			return cursor, nil
		}
	}
}

func (s *KVStore) latestSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM kv_changes`).Scan(&seq); err != nil {
		return 0, err
	}
	return seq.Int64, nil
}

func (s *KVStore) pruneChanges(ctx context.Context) error {
	cutoff := time.Now().Add(-changeRetention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM kv_changes WHERE created_at < ?`, cutoff)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.logger.Debug().Int64("rows", n).Msg("changelog pruned")
	}
	return nil
}

// nudge wakes the poller without blocking.
func (s *KVStore) nudge() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}
