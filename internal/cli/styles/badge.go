package styles

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bnema/shades/internal/domain/entity"
)

// ActiveBadge marks the filter currently applied to a site.
func (t *Theme) ActiveBadge() string {
	return t.Badge.Render("active")
}

// DefaultBadge marks the global default filter.
func (t *Theme) DefaultBadge() string {
	return t.BadgeMuted.Render("default")
}

// FilterBadge renders a filter id by display name. None is muted.
func (t *Theme) FilterBadge(id entity.FilterID) string {
	if id.IsNone() {
		return t.BadgeMuted.Render(id.DisplayName())
	}
	return t.Badge.Render(id.DisplayName())
}

// StateBadge renders the extension enable switch.
func (t *Theme) StateBadge(disabled bool) string {
	if disabled {
		return t.BadgeMuted.Render("disabled")
	}
	return t.Badge.Render("enabled")
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// RelativeTime formats tm relative to now, or "never" for the zero time.
func RelativeTime(tm time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	return humanize.Time(tm)
}
