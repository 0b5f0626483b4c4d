// Package renderer applies filter instructions to one page.
package renderer

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/bnema/shades/internal/logging"
)

// Resolver resolves a page URL to the instruction it should render.
// It is satisfied by usecase.ResolveFilterUseCase.
type Resolver interface {
	ForURL(ctx context.Context, rawURL string) (entity.Decision, error)
	Instruction(decision entity.Decision) entity.RenderMessage
}

// Renderer owns the overlay and style elements of a single document.
// Each Handle call leaves at most one of each element on the page.
type Renderer struct {
	doc      port.Document
	resolver Resolver

	mu sync.Mutex
}

// New creates a renderer for doc.
func New(doc port.Document, resolver Resolver) *Renderer {
	return &Renderer{doc: doc, resolver: resolver}
}

// Handle executes msg. Apply with empty CSS clears the page.
func (r *Renderer) Handle(ctx context.Context, msg entity.RenderMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logging.FromContext(ctx)

	switch msg.Action {
	case entity.ActionApplyFilter:
		if msg.CSS == "" {
			log.Debug().Str("filter", string(msg.FilterID)).Msg("empty filter css, clearing")
			return r.clear(ctx)
		}
		return r.apply(ctx, msg)
	case entity.ActionRemoveFilter:
		return r.clear(ctx)
	default:
		return fmt.Errorf("unknown render action %q", msg.Action)
	}
}

// Attach resolves pageURL itself and renders the result. It runs when a
// document loads, before any instruction arrives. Failures leave the page unfiltered.
func (r *Renderer) Attach(ctx context.Context, pageURL string) {
	log := logging.FromContext(ctx)

	decision, err := r.resolver.ForURL(ctx, pageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("renderer self-resolve failed")
		return
	}
	if err := r.Handle(ctx, r.resolver.Instruction(decision)); err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("renderer failed to apply initial filter")
	}
}

func (r *Renderer) apply(ctx context.Context, msg entity.RenderMessage) error {
	if err := r.clear(ctx); err != nil {
		return err
	}

	sheet := filter.Stylesheet(msg.FilterID, msg.Settings, msg.CSS)
	if err := r.doc.AppendStyle(ctx, filter.StyleElementID, sheet); err != nil {
		return fmt.Errorf("failed to append filter style: %w", err)
	}
	if err := r.doc.AppendOverlay(ctx, filter.OverlayElementID); err != nil {
		return fmt.Errorf("failed to append filter overlay: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("filter", string(msg.FilterID)).Msg("filter applied")
	return nil
}

func (r *Renderer) clear(ctx context.Context) error {
	if err := r.doc.RemoveElement(ctx, filter.OverlayElementID); err != nil {
		return fmt.Errorf("failed to remove filter overlay: %w", err)
	}
	if err := r.doc.RemoveElement(ctx, filter.StyleElementID); err != nil {
		return fmt.Errorf("failed to remove filter style: %w", err)
	}
	return nil
}
