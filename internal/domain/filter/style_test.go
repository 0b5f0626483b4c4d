package filter_test

import (
	"strings"
	"testing"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS(t *testing.T) {
	tests := []struct {
		name      string
		id        entity.FilterID
		intensity float64
		want      string
	}{
		{
			name:      "rose tint",
			id:        entity.FilterRoseTint,
			intensity: 40,
			want:      "background-color: rgba(255, 100, 150, 0.32); mix-blend-mode: multiply;",
		},
		{
			name:      "classic gray",
			id:        entity.FilterClassicGray,
			intensity: 60,
			want:      "background-color: rgba(116, 116, 116, 0.48); mix-blend-mode: multiply;",
		},
		{
			name:      "emerald at zero",
			id:        entity.FilterEmeraldGreen,
			intensity: 0,
			want:      "background-color: rgba(80, 180, 120, 0); mix-blend-mode: multiply;",
		},
		{
			name:      "full inversion",
			id:        entity.FilterSolarEclipse,
			intensity: 100,
			want:      "background-color: rgba(255, 255, 255, 1); mix-blend-mode: difference;",
		},
		{
			name:      "half inversion",
			id:        entity.FilterSolarEclipse,
			intensity: 50,
			want:      "background-color: rgba(230, 230, 230, 1); mix-blend-mode: difference;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.GenerateCSS(tt.id, entity.FilterSettings{entity.SettingIntensity: tt.intensity})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCSS_EveryCatalogFilterRenders(t *testing.T) {
	for _, f := range entity.Catalog() {
		assert.NotEmpty(t, filter.GenerateCSS(f.ID, f.DefaultSettings()), f.ID)
	}
	assert.Empty(t, filter.GenerateCSS(entity.FilterNone, nil))
	assert.Empty(t, filter.GenerateCSS("unknown", nil))
}

func TestExcludeMediaCSS(t *testing.T) {
	full := filter.ExcludeMediaCSS(entity.FilterSolarEclipse, entity.FilterSettings{
		entity.SettingIntensity:     100.0,
		entity.SettingExcludeImages: true,
	})
	assert.Equal(t, `img, video, canvas, iframe, [style*="background-image"] { filter: invert(1) !important; }`, full)

	half := filter.ExcludeMediaCSS(entity.FilterSolarEclipse, entity.FilterSettings{
		entity.SettingIntensity:     50.0,
		entity.SettingExcludeImages: true,
	})
	assert.Contains(t, half, "invert(0.5)")

	zero := filter.ExcludeMediaCSS(entity.FilterSolarEclipse, entity.FilterSettings{
		entity.SettingIntensity:     0.0,
		entity.SettingExcludeImages: true,
	})
	assert.Contains(t, zero, "invert(1)")

	off := filter.ExcludeMediaCSS(entity.FilterSolarEclipse, entity.FilterSettings{
		entity.SettingIntensity:     100.0,
		entity.SettingExcludeImages: false,
	})
	assert.Empty(t, off)

	assert.Empty(t, filter.ExcludeMediaCSS(entity.FilterRoseTint, entity.FilterSettings{entity.SettingExcludeImages: true}))
}

func TestOverlayStylesheet(t *testing.T) {
	sheet := filter.OverlayStylesheet("background-color: red;")

	assert.True(t, strings.HasPrefix(sheet, "#shades-filter-overlay {"))
	for _, decl := range []string{
		"position: fixed !important;",
		"width: 100vw !important;",
		"height: 100vh !important;",
		"pointer-events: none !important;",
		"z-index: 2147483647 !important;",
		"background-color: red;",
	} {
		assert.Contains(t, sheet, decl)
	}
}

func TestStylesheet_AppendsMediaRuleForInversion(t *testing.T) {
	settings := entity.FilterSolarEclipse.DefaultSettings()
	css := filter.GenerateCSS(entity.FilterSolarEclipse, settings)

	sheet := filter.Stylesheet(entity.FilterSolarEclipse, settings, css)

	assert.Contains(t, sheet, "mix-blend-mode: difference;")
	assert.Contains(t, sheet, "filter: invert(1) !important;")
}
