// Package settingsstore persists filter settings in a key-value store using the
// layout shared with every shades process: one JSON value per key.
package settingsstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/repository"
	"github.com/bnema/shades/internal/logging"
)

var (
	// ErrInvalidFilter is returned when writing a filter id outside the catalog.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidDomain is returned when writing under the empty key.
	ErrInvalidDomain = errors.New("invalid domain")
)

const watchBuffer = 16

// Store implements repository.SettingsRepository over a port.KeyValueStore.
type Store struct {
	kv  port.KeyValueStore
	now func() time.Time

	// mu serializes read-modify-write of websiteFilters within this process.
	mu sync.Mutex
}

var _ repository.SettingsRepository = (*Store)(nil)

// New creates a settings store over kv.
func New(kv port.KeyValueStore) *Store {
	return &Store{kv: kv, now: time.Now}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("settings read failed")
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (s *Store) legacySettings(ctx context.Context) (legacySettings, error) {
	raw, err := s.get(ctx, entity.KeyFilterSettings)
	if err != nil {
		return nil, err
	}
	return decodeLegacySettings(raw)
}

// Snapshot reads every filter-relevant key.
func (s *Store) Snapshot(ctx context.Context) (entity.SettingsSnapshot, error) {
	legacy, err := s.legacySettings(ctx)
	if err != nil {
		return entity.SettingsSnapshot{}, err
	}
	filters, err := s.websiteFilters(ctx, legacy)
	if err != nil {
		return entity.SettingsSnapshot{}, err
	}
	disabled, err := s.IsDisabled(ctx)
	if err != nil {
		return entity.SettingsSnapshot{}, err
	}
	def, err := s.defaultFilter(ctx, legacy)
	if err != nil {
		return entity.SettingsSnapshot{}, err
	}
	return entity.SettingsSnapshot{WebsiteFilters: filters, Disabled: disabled, Default: def}, nil
}

func (s *Store) websiteFilters(ctx context.Context, legacy legacySettings) (map[string]entity.WebsiteFilter, error) {
	raw, err := s.get(ctx, entity.KeyWebsiteFilters)
	if err != nil {
		return nil, err
	}
	return decodeWebsiteFilters(raw, legacy)
}

// GetWebsiteFilter returns the assignment for the domain key, or nil.
// Domain parameters of the Store are keys already derived by domainurl.
func (s *Store) GetWebsiteFilter(ctx context.Context, domain string) (*entity.WebsiteFilter, error) {
	filters, err := s.ListWebsiteFilters(ctx)
	if err != nil {
		return nil, err
	}
	wf, ok := filters[domain]
	if !ok {
		return nil, nil
	}
	return &wf, nil
}

// ListWebsiteFilters returns every assignment keyed by domain key.
func (s *Store) ListWebsiteFilters(ctx context.Context) (map[string]entity.WebsiteFilter, error) {
	legacy, err := s.legacySettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.websiteFilters(ctx, legacy)
}

// SetWebsiteFilter stores wf under the domain key.
func (s *Store) SetWebsiteFilter(ctx context.Context, domain string, wf entity.WebsiteFilter) error {
	if domain == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	if wf.FilterID != entity.FilterNone {
		if _, ok := entity.LookupFilter(wf.FilterID); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidFilter, wf.FilterID)
		}
		wf.Settings = wf.Settings.WithDefaults(wf.FilterID)
	} else {
		wf.Settings = nil
	}
	if wf.UpdatedAt.IsZero() {
		wf.UpdatedAt = s.now()
	}

	return s.updateFilters(ctx, func(filters map[string]entity.WebsiteFilter) bool {
		filters[domain] = wf
		return true
	})
}

// RemoveWebsiteFilter deletes the assignment for domain. Removing a missing
// assignment is not an error and writes nothing.
func (s *Store) RemoveWebsiteFilter(ctx context.Context, domain string) error {
	return s.updateFilters(ctx, func(filters map[string]entity.WebsiteFilter) bool {
		if _, ok := filters[domain]; !ok {
			return false
		}
		delete(filters, domain)
		return true
	})
}

func (s *Store) updateFilters(ctx context.Context, mutate func(map[string]entity.WebsiteFilter) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filters, err := s.ListWebsiteFilters(ctx)
	if err != nil {
		return err
	}
	if !mutate(filters) {
		return nil
	}
	// legacy entries are stamped so the next read keeps their folded key
	now := s.now()
	for key, wf := range filters {
		if wf.UpdatedAt.IsZero() {
			wf.UpdatedAt = now
			filters[key] = wf
		}
	}

	data, err := encodeWebsiteFilters(filters)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, entity.KeyWebsiteFilters, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", entity.KeyWebsiteFilters, err)
	}
	return nil
}

// GetDefault returns the global default, or nil.
func (s *Store) GetDefault(ctx context.Context) (*entity.DefaultFilter, error) {
	legacy, err := s.legacySettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.defaultFilter(ctx, legacy)
}

func (s *Store) defaultFilter(ctx context.Context, legacy legacySettings) (*entity.DefaultFilter, error) {
	raw, err := s.get(ctx, entity.KeyDefaultFilter)
	if err != nil {
		return nil, err
	}
	return decodeDefault(raw, legacy)
}

// SetDefault stores the global default. "none" is rejected; use ClearDefault.
func (s *Store) SetDefault(ctx context.Context, def entity.DefaultFilter) error {
	if _, ok := entity.LookupFilter(def.FilterID); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, def.FilterID)
	}
	def.Settings = def.Settings.WithDefaults(def.FilterID)

	data, err := encodeDefault(def)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, entity.KeyDefaultFilter, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", entity.KeyDefaultFilter, err)
	}
	return nil
}

// ClearDefault stores a null default.
func (s *Store) ClearDefault(ctx context.Context) error {
	if err := s.kv.Set(ctx, entity.KeyDefaultFilter, []byte("null")); err != nil {
		return fmt.Errorf("failed to write %s: %w", entity.KeyDefaultFilter, err)
	}
	return nil
}

// IsDisabled reads extensionDisabled, falling back to the inverted legacy
// extensionEnabled key when it was never written.
func (s *Store) IsDisabled(ctx context.Context) (bool, error) {
	raw, err := s.get(ctx, entity.KeyExtensionDisabled)
	if err != nil {
		return false, err
	}
	if raw != nil {
		return decodeBool(entity.KeyExtensionDisabled, raw)
	}

	raw, err = s.get(ctx, entity.KeyExtensionEnabled)
	if err != nil {
		return false, err
	}
	if isNull(raw) {
		return false, nil
	}
	enabled, err := decodeBool(entity.KeyExtensionEnabled, raw)
	if err != nil {
		return false, err
	}
	return !enabled, nil
}

// SetDisabled writes the global kill switch.
func (s *Store) SetDisabled(ctx context.Context, disabled bool) error {
	data, err := json.Marshal(disabled)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", entity.KeyExtensionDisabled, err)
	}
	if err := s.kv.Set(ctx, entity.KeyExtensionDisabled, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", entity.KeyExtensionDisabled, err)
	}
	return nil
}

// Watch reports every store write as a SettingsChange.
// The channel closes when ctx is done or the underlying store closes.
func (s *Store) Watch(ctx context.Context) (<-chan entity.SettingsChange, error) {
	changes, err := s.kv.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to watch settings: %w", err)
	}

	out := make(chan entity.SettingsChange, watchBuffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case kc, ok := <-changes:
				if !ok {
					return
				}
				select {
				case out <- entity.SettingsChange{Keys: []string{kc.Key}}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
