package filter_test

import (
	"testing"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyMutation(snap *entity.SettingsSnapshot, m filter.Mutation) {
	if snap.WebsiteFilters == nil {
		snap.WebsiteFilters = make(map[string]entity.WebsiteFilter)
	}
	switch m.Kind {
	case filter.MutationSet:
		snap.WebsiteFilters[m.Domain] = m.Filter
	case filter.MutationRemove:
		delete(snap.WebsiteFilters, m.Domain)
	}
}

func TestPlanToggleFilter_TwoCycle(t *testing.T) {
	tests := []struct {
		name     string
		def      *entity.DefaultFilter
		initial  map[string]entity.WebsiteFilter
		wantBack entity.DecisionKind
	}{
		{
			name:     "active from default",
			def:      defaultRose(40),
			wantBack: entity.DecisionActive,
		},
		{
			name: "active from assignment without default",
			initial: map[string]entity.WebsiteFilter{
				"example.com": entity.NewWebsiteFilter(entity.FilterClassicGray, nil),
			},
			wantBack: entity.DecisionSuppressed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := entity.SettingsSnapshot{WebsiteFilters: tt.initial, Default: tt.def}
			require.True(t, filter.ResolveSnapshot(snap, "example.com").IsActive())

			first := filter.PlanToggleFilter(filter.ResolveSnapshot(snap, "example.com"), "example.com")
			require.Equal(t, filter.MutationSet, first.Kind)
			assert.Equal(t, entity.FilterNone, first.Filter.FilterID)
			applyMutation(&snap, first)
			assert.Equal(t, entity.DecisionExplicitNone, filter.ResolveSnapshot(snap, "example.com").Kind)

			second := filter.PlanToggleFilter(filter.ResolveSnapshot(snap, "example.com"), "example.com")
			require.Equal(t, filter.MutationRemove, second.Kind)
			applyMutation(&snap, second)

			assert.Nil(t, snap.Assignment("example.com"))
			assert.Equal(t, tt.wantBack, filter.ResolveSnapshot(snap, "example.com").Kind)
		})
	}
}

func TestPlanToggleFilter_SuppressedIsNoop(t *testing.T) {
	m := filter.PlanToggleFilter(entity.Suppressed(), "example.com")
	assert.True(t, m.IsNoop())

	m = filter.PlanToggleFilter(entity.Active(entity.FilterRoseTint, nil), "")
	assert.True(t, m.IsNoop())
}

func TestPlanToggleSpecific(t *testing.T) {
	t.Run("same filter becomes explicit none", func(t *testing.T) {
		d := entity.Active(entity.FilterSolarEclipse, entity.FilterSolarEclipse.DefaultSettings())

		m := filter.PlanToggleSpecific(d, "example.com", entity.FilterSolarEclipse)

		require.Equal(t, filter.MutationSet, m.Kind)
		assert.Equal(t, entity.FilterNone, m.Filter.FilterID)
	})

	t.Run("other filter switches to target defaults", func(t *testing.T) {
		d := entity.Active(entity.FilterRoseTint, entity.FilterSettings{entity.SettingIntensity: 90.0})

		m := filter.PlanToggleSpecific(d, "example.com", entity.FilterSolarEclipse)

		require.Equal(t, filter.MutationSet, m.Kind)
		assert.Equal(t, entity.FilterSolarEclipse, m.Filter.FilterID)
		assert.Equal(t, 100.0, m.Filter.Settings.Intensity())
		assert.True(t, m.Filter.Settings.Bool(entity.SettingExcludeImages))
	})

	t.Run("explicit none switches to target", func(t *testing.T) {
		m := filter.PlanToggleSpecific(entity.ExplicitNone(), "example.com", entity.FilterSolarEclipse)
		assert.Equal(t, entity.FilterSolarEclipse, m.Filter.FilterID)
	})

	t.Run("unknown target is noop", func(t *testing.T) {
		m := filter.PlanToggleSpecific(entity.Suppressed(), "example.com", "sparkles")
		assert.True(t, m.IsNoop())
	})

	t.Run("pressed twice returns to explicit none", func(t *testing.T) {
		snap := entity.SettingsSnapshot{Default: defaultRose(40)}

		applyMutation(&snap, filter.PlanToggleSpecific(filter.ResolveSnapshot(snap, "a.io"), "a.io", entity.FilterSolarEclipse))
		assert.Equal(t, entity.FilterSolarEclipse, filter.ResolveSnapshot(snap, "a.io").FilterID)

		applyMutation(&snap, filter.PlanToggleSpecific(filter.ResolveSnapshot(snap, "a.io"), "a.io", entity.FilterSolarEclipse))
		assert.Equal(t, entity.DecisionExplicitNone, filter.ResolveSnapshot(snap, "a.io").Kind)
	})
}
