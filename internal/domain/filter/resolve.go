// Package filter holds the pure filter decision logic shared by the
// coordinator and every page renderer.
package filter

import "github.com/bnema/shades/internal/domain/entity"

// Resolve computes the effective filter for one domain.
//
// Precedence: the disabled gate wins over everything; an explicit "none"
// assignment wins over the global default; any other assignment wins over the
// default; the default applies only when no assignment exists.
func Resolve(disabled bool, assignment *entity.WebsiteFilter, def *entity.DefaultFilter) entity.Decision {
	if disabled {
		return entity.Suppressed()
	}

	if assignment != nil {
		if assignment.FilterID == entity.FilterNone {
			return entity.ExplicitNone()
		}
		return entity.Active(assignment.FilterID, assignment.Settings.WithDefaults(assignment.FilterID))
	}

	if def != nil && def.FilterID != "" && def.FilterID != entity.FilterNone {
		d := entity.Active(def.FilterID, def.Settings.WithDefaults(def.FilterID))
		d.FromDefault = true
		return d
	}

	return entity.Suppressed()
}

// ResolveSnapshot resolves domainKey against a store snapshot.
func ResolveSnapshot(snapshot entity.SettingsSnapshot, domainKey string) entity.Decision {
	return Resolve(snapshot.Disabled, snapshot.Assignment(domainKey), snapshot.Default)
}
