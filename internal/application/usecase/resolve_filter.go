package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/bnema/shades/internal/domain/repository"
	domainurl "github.com/bnema/shades/internal/domain/url"
	"github.com/bnema/shades/internal/logging"
)

// ResolveFilterUseCase computes the effective filter for a page.
// The coordinator and every renderer go through it so both reach the same
// decision for the same stored state.
type ResolveFilterUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewResolveFilterUseCase creates a new filter resolution use case.
func NewResolveFilterUseCase(settingsRepo repository.SettingsRepository) *ResolveFilterUseCase {
	return &ResolveFilterUseCase{settingsRepo: settingsRepo}
}

// ForDomain resolves the decision for a domain key as returned by
// domainurl.DomainKey. The key is used as is.
func (uc *ResolveFilterUseCase) ForDomain(ctx context.Context, key string) (entity.Decision, error) {
	log := logging.FromContext(ctx)
	if key == "" {
		return entity.Suppressed(), nil
	}

	snapshot, err := uc.settingsRepo.Snapshot(ctx)
	if err != nil {
		return entity.Decision{}, fmt.Errorf("failed to read settings: %w", err)
	}

	decision := filter.ResolveSnapshot(snapshot, key)
	log.Debug().Str("domain", key).Stringer("decision", decision).Msg("filter resolved")
	return decision, nil
}

// ForURL resolves the decision for a page URL.
// URLs without a host resolve to Suppressed.
func (uc *ResolveFilterUseCase) ForURL(ctx context.Context, rawURL string) (entity.Decision, error) {
	key := domainurl.DomainKey(rawURL)
	if key == "" {
		return entity.Suppressed(), nil
	}
	return uc.ForDomain(ctx, key)
}

// Instruction converts a decision into the message sent to a renderer.
// Decisions that produce no CSS become a removeFilter instruction.
func (uc *ResolveFilterUseCase) Instruction(decision entity.Decision) entity.RenderMessage {
	return Instruction(decision)
}

// Instruction is the stateless form of ResolveFilterUseCase.Instruction.
func Instruction(decision entity.Decision) entity.RenderMessage {
	if !decision.IsActive() {
		return entity.RemoveMessage()
	}
	css := filter.GenerateCSS(decision.FilterID, decision.Settings)
	if css == "" {
		return entity.RemoveMessage()
	}
	return entity.ApplyMessage(css, decision.FilterID, decision.Settings.Clone())
}
