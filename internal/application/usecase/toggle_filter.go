package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/bnema/shades/internal/domain/repository"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/logging"
)

// ToggleFilterUseCase implements the keyboard shortcut actions.
// Every toggle re-resolves the current decision before planning its write.
type ToggleFilterUseCase struct {
	settingsRepo repository.SettingsRepository
	invertFilter entity.FilterID
}

// NewToggleFilterUseCase creates a new toggle use case.
// invertFilter is the target of the toggle-invert command.
func NewToggleFilterUseCase(settingsRepo repository.SettingsRepository, invertFilter entity.FilterID) *ToggleFilterUseCase {
	if invertFilter == "" {
		invertFilter = entity.FilterSolarEclipse
	}
	return &ToggleFilterUseCase{
		settingsRepo: settingsRepo,
		invertFilter: invertFilter,
	}
}

// ToggleExtension flips the global enable state and returns the new disabled flag.
func (uc *ToggleFilterUseCase) ToggleExtension(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	disabled, err := uc.settingsRepo.IsDisabled(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read enable state: %w", err)
	}

	if err := uc.settingsRepo.SetDisabled(ctx, !disabled); err != nil {
		return disabled, fmt.Errorf("failed to save enable state: %w", err)
	}

	log.Info().Bool("disabled", !disabled).Msg("extension toggled")
	return !disabled, nil
}

// ToggleFilter flips the page's domain between its active filter and an
// explicit none, then back to no assignment.
func (uc *ToggleFilterUseCase) ToggleFilter(ctx context.Context, rawURL string) (filter.Mutation, error) {
	return uc.toggle(ctx, rawURL, func(d entity.Decision, domain string) filter.Mutation {
		return filter.PlanToggleFilter(d, domain)
	})
}

// ToggleSpecific flips the page's domain between target and an explicit none.
func (uc *ToggleFilterUseCase) ToggleSpecific(ctx context.Context, rawURL string, target entity.FilterID) (filter.Mutation, error) {
	return uc.toggle(ctx, rawURL, func(d entity.Decision, domain string) filter.Mutation {
		return filter.PlanToggleSpecific(d, domain, target)
	})
}

// Execute runs a keyboard command against the page at rawURL.
func (uc *ToggleFilterUseCase) Execute(ctx context.Context, cmd port.Command, rawURL string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("command", string(cmd)).Str("url", rawURL).Msg("executing command")

	var err error
	switch cmd {
	case port.CommandToggleExtension:
		_, err = uc.ToggleExtension(ctx)
	case port.CommandToggleFilter:
		_, err = uc.ToggleFilter(ctx, rawURL)
	case port.CommandToggleInvert:
		_, err = uc.ToggleSpecific(ctx, rawURL, uc.invertFilter)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return err
}

func (uc *ToggleFilterUseCase) toggle(
	ctx context.Context,
	rawURL string,
	plan func(entity.Decision, string) filter.Mutation,
) (filter.Mutation, error) {
	log := logging.FromContext(ctx)

	domain := domainurl.DomainKey(rawURL)
	if domain == "" {
		log.Debug().Str("url", rawURL).Msg("no domain, toggle skipped")
		return filter.Mutation{Kind: filter.MutationNone}, nil
	}

	snapshot, err := uc.settingsRepo.Snapshot(ctx)
	if err != nil {
		return filter.Mutation{Kind: filter.MutationNone}, fmt.Errorf("failed to read settings: %w", err)
	}
	if snapshot.Disabled {
		log.Debug().Str("domain", domain).Msg("extension disabled, toggle skipped")
		return filter.Mutation{Kind: filter.MutationNone, Domain: domain}, nil
	}

	m := plan(filter.ResolveSnapshot(snapshot, domain), domain)
	if err := applyMutation(ctx, uc.settingsRepo, m); err != nil {
		return m, err
	}

	log.Info().
		Str("domain", domain).
		Str("mutation", m.Kind.String()).
		Str("filter", string(m.Filter.FilterID)).
		Msg("filter toggled")
	return m, nil
}

func applyMutation(ctx context.Context, settingsRepo repository.SettingsRepository, m filter.Mutation) error {
	switch m.Kind {
	case filter.MutationSet:
		if err := settingsRepo.SetWebsiteFilter(ctx, m.Domain, m.Filter); err != nil {
			return fmt.Errorf("failed to save website filter: %w", err)
		}
	case filter.MutationRemove:
		if err := settingsRepo.RemoveWebsiteFilter(ctx, m.Domain); err != nil {
			return fmt.Errorf("failed to remove website filter: %w", err)
		}
	}
	return nil
}
