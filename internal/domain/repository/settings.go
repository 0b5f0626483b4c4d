package repository

import (
	"context"

	"github.com/bnema/shades/internal/domain/entity"
)

// SettingsRepository defines operations on the persisted filter settings.
// Domain keys are normalized by the implementation on every read and write.
type SettingsRepository interface {
	// Snapshot reads every filter-relevant key in one pass.
	Snapshot(ctx context.Context) (entity.SettingsSnapshot, error)

	// GetWebsiteFilter retrieves the assignment for a domain.
	// Returns nil if the domain has no assignment.
	GetWebsiteFilter(ctx context.Context, domain string) (*entity.WebsiteFilter, error)

	// ListWebsiteFilters retrieves every assignment keyed by domain.
	ListWebsiteFilters(ctx context.Context) (map[string]entity.WebsiteFilter, error)

	// SetWebsiteFilter saves or replaces the assignment for a domain.
	SetWebsiteFilter(ctx context.Context, domain string, wf entity.WebsiteFilter) error

	// RemoveWebsiteFilter deletes the assignment for a domain.
	RemoveWebsiteFilter(ctx context.Context, domain string) error

	// GetDefault retrieves the global default filter.
	// Returns nil if no default is set.
	GetDefault(ctx context.Context) (*entity.DefaultFilter, error)

	// SetDefault replaces the global default filter.
	SetDefault(ctx context.Context, def entity.DefaultFilter) error

	// ClearDefault removes the global default filter.
	ClearDefault(ctx context.Context) error

	IsDisabled(ctx context.Context) (bool, error)
	SetDisabled(ctx context.Context, disabled bool) error

	// Watch streams the keys touched by every write, local or from another
	// process sharing the store. The channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan entity.SettingsChange, error)
}
