package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/bnema/shades/internal/domain/repository"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/logging"
)

var (
	// ErrUnknownFilter is returned for filter ids outside the catalog.
	ErrUnknownFilter = errors.New("unknown filter")
	// ErrInvalidDomain is returned when no domain key can be derived from the input.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrNoAssignment is returned when editing settings of a domain without a filter.
	ErrNoAssignment = errors.New("domain has no filter assigned")
	// ErrNoDefault is returned when editing settings while no default is set.
	ErrNoDefault = errors.New("no default filter set")
)

// ManageFiltersUseCase backs the configuration surface: per-site
// assignments, the global default and the enable switch.
// Domain parameters are keys; user input goes through DomainKey first.
type ManageFiltersUseCase struct {
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewManageFiltersUseCase creates a new filter management use case.
func NewManageFiltersUseCase(settingsRepo repository.SettingsRepository) *ManageFiltersUseCase {
	return &ManageFiltersUseCase{
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// WebsiteEntry is one row of the manage-websites list.
type WebsiteEntry struct {
	Domain string
	Filter entity.WebsiteFilter
}

// FilterState is everything the configuration surface shows for one domain.
type FilterState struct {
	Domain     string
	Disabled   bool
	Assignment *entity.WebsiteFilter
	Default    *entity.DefaultFilter
	Decision   entity.Decision
}

// ActiveFilter returns the filter id highlighted for the domain: the
// assignment when there is one, otherwise the default.
func (s FilterState) ActiveFilter() entity.FilterID {
	if s.Assignment != nil {
		return s.Assignment.FilterID
	}
	if s.Default != nil {
		return s.Default.FilterID
	}
	return ""
}

// EditableSettings returns the settings the editor should start from.
func (s FilterState) EditableSettings() (entity.FilterID, entity.FilterSettings) {
	id := s.ActiveFilter()
	switch {
	case s.Assignment != nil && !s.Assignment.FilterID.IsNone():
		return id, s.Assignment.Settings.WithDefaults(id)
	case s.Assignment == nil && s.Default != nil:
		return id, s.Default.Settings.WithDefaults(id)
	default:
		return id, nil
	}
}

// State reads the configuration state for the domain key. An empty key
// returns the global state only.
func (uc *ManageFiltersUseCase) State(ctx context.Context, domain string) (*FilterState, error) {
	snapshot, err := uc.settingsRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	key := domain
	state := &FilterState{
		Domain:   key,
		Disabled: snapshot.Disabled,
		Default:  snapshot.Default,
		Decision: entity.Suppressed(),
	}
	if key != "" {
		state.Assignment = snapshot.Assignment(key)
		state.Decision = filter.ResolveSnapshot(snapshot, key)
	}
	return state, nil
}

// ApplyFilter assigns id to domain. Reassigning the filter a domain already
// has keeps its settings; any other id starts from catalog defaults.
func (uc *ManageFiltersUseCase) ApplyFilter(ctx context.Context, domain string, id entity.FilterID) (*entity.WebsiteFilter, error) {
	log := logging.FromContext(ctx)

	key, err := checkKey(domain)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.ParseFilterID(string(id)); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, id)
	}

	existing, err := uc.settingsRepo.GetWebsiteFilter(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get website filter: %w", err)
	}

	var settings entity.FilterSettings
	if existing != nil && existing.FilterID == id {
		settings = existing.Settings
	}
	wf := entity.NewWebsiteFilter(id, settings)
	wf.UpdatedAt = uc.now()

	if err := uc.settingsRepo.SetWebsiteFilter(ctx, key, wf); err != nil {
		return nil, fmt.Errorf("failed to save website filter: %w", err)
	}

	log.Info().Str("domain", key).Str("filter", string(id)).Msg("website filter applied")
	return &wf, nil
}

// RemoveFilter deletes the domain's assignment so it falls back to the default.
func (uc *ManageFiltersUseCase) RemoveFilter(ctx context.Context, domain string) error {
	log := logging.FromContext(ctx)

	key, err := checkKey(domain)
	if err != nil {
		return err
	}

	if err := uc.settingsRepo.RemoveWebsiteFilter(ctx, key); err != nil {
		return fmt.Errorf("failed to remove website filter: %w", err)
	}

	log.Info().Str("domain", key).Msg("website filter removed")
	return nil
}

// SaveSettings replaces the settings of the domain's assigned filter.
func (uc *ManageFiltersUseCase) SaveSettings(ctx context.Context, domain string, settings entity.FilterSettings) (*entity.WebsiteFilter, error) {
	log := logging.FromContext(ctx)

	key, err := checkKey(domain)
	if err != nil {
		return nil, err
	}

	existing, err := uc.settingsRepo.GetWebsiteFilter(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get website filter: %w", err)
	}
	if existing == nil || existing.FilterID.IsNone() {
		return nil, fmt.Errorf("%w: %s", ErrNoAssignment, key)
	}

	wf := entity.NewWebsiteFilter(existing.FilterID, settings)
	wf.UpdatedAt = uc.now()
	if err := uc.settingsRepo.SetWebsiteFilter(ctx, key, wf); err != nil {
		return nil, fmt.Errorf("failed to save website filter: %w", err)
	}

	log.Info().
		Str("domain", key).
		Str("filter", string(wf.FilterID)).
		Float64("intensity", wf.Settings.Intensity()).
		Msg("website filter settings saved")
	return &wf, nil
}

// SetDefault sets the global default. Nil settings use catalog defaults.
func (uc *ManageFiltersUseCase) SetDefault(ctx context.Context, id entity.FilterID, settings entity.FilterSettings) (*entity.DefaultFilter, error) {
	log := logging.FromContext(ctx)

	if _, ok := entity.LookupFilter(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, id)
	}

	def := entity.NewDefaultFilter(id, settings)
	if err := uc.settingsRepo.SetDefault(ctx, def); err != nil {
		return nil, fmt.Errorf("failed to save default filter: %w", err)
	}

	log.Info().Str("filter", string(id)).Msg("default filter set")
	return &def, nil
}

// ClearDefault removes the global default.
func (uc *ManageFiltersUseCase) ClearDefault(ctx context.Context) error {
	if err := uc.settingsRepo.ClearDefault(ctx); err != nil {
		return fmt.Errorf("failed to clear default filter: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("default filter cleared")
	return nil
}

// SaveDefaultSettings replaces the settings of the current default.
func (uc *ManageFiltersUseCase) SaveDefaultSettings(ctx context.Context, settings entity.FilterSettings) (*entity.DefaultFilter, error) {
	current, err := uc.settingsRepo.GetDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get default filter: %w", err)
	}
	if current == nil {
		return nil, ErrNoDefault
	}
	return uc.SetDefault(ctx, current.FilterID, settings)
}

// ToggleExtension flips the enable switch and returns the new disabled flag.
func (uc *ManageFiltersUseCase) ToggleExtension(ctx context.Context) (bool, error) {
	disabled, err := uc.settingsRepo.IsDisabled(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read enable state: %w", err)
	}
	if err := uc.SetEnabled(ctx, disabled); err != nil {
		return disabled, err
	}
	return !disabled, nil
}

// SetEnabled writes the enable switch.
func (uc *ManageFiltersUseCase) SetEnabled(ctx context.Context, enabled bool) error {
	if err := uc.settingsRepo.SetDisabled(ctx, !enabled); err != nil {
		return fmt.Errorf("failed to save enable state: %w", err)
	}
	logging.FromContext(ctx).Info().Bool("enabled", enabled).Msg("enable state saved")
	return nil
}

// ListWebsites returns assignments whose domain contains query
// (case-insensitive), sorted by domain. An empty query lists everything.
func (uc *ManageFiltersUseCase) ListWebsites(ctx context.Context, query string) ([]WebsiteEntry, error) {
	all, err := uc.settingsRepo.ListWebsiteFilters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list website filters: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	entries := make([]WebsiteEntry, 0, len(all))
	for domain, wf := range all {
		if query != "" && !strings.Contains(strings.ToLower(domain), query) {
			continue
		}
		entries = append(entries, WebsiteEntry{Domain: domain, Filter: wf})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Domain < entries[j].Domain
	})
	return entries, nil
}

// DomainKey derives the domain key from a domain or URL typed by the user.
func DomainKey(input string) (string, error) {
	key := domainurl.DomainKeyFromInput(input)
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, input)
	}
	return key, nil
}

func checkKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, key)
	}
	return key, nil
}
