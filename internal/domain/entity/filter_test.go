package entity_test

import (
	"testing"

	"github.com/bnema/shades/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EveryRowHasIntensity(t *testing.T) {
	catalog := entity.Catalog()
	require.Len(t, catalog, 6)

	for _, f := range catalog {
		spec, ok := f.Spec(entity.SettingIntensity)
		require.True(t, ok, f.ID)
		assert.Equal(t, entity.SettingTypeSlider, spec.Type)
		assert.Equal(t, 0.0, spec.Min)
		assert.Equal(t, 100.0, spec.Max)
		assert.NotEqual(t, entity.FilterNone, f.ID)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := entity.Catalog()
	c[0].Name = "changed"

	f, ok := entity.LookupFilter(c[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", f.Name)
}

func TestLookupFilter_NoneHasNoRow(t *testing.T) {
	_, ok := entity.LookupFilter(entity.FilterNone)
	assert.False(t, ok)
}

func TestParseFilterID(t *testing.T) {
	id, ok := entity.ParseFilterID("solar-eclipse")
	assert.True(t, ok)
	assert.Equal(t, entity.FilterSolarEclipse, id)

	id, ok = entity.ParseFilterID("none")
	assert.True(t, ok)
	assert.True(t, id.IsNone())

	_, ok = entity.ParseFilterID("Solar-Eclipse")
	assert.False(t, ok)
}

func TestFilterID_DisplayName(t *testing.T) {
	assert.Equal(t, "Rose Tint", entity.FilterRoseTint.DisplayName())
	assert.Equal(t, "None", entity.FilterNone.DisplayName())
	assert.Equal(t, "retired", entity.FilterID("retired").DisplayName())
}

func TestFilterID_DefaultSettings(t *testing.T) {
	s := entity.FilterSolarEclipse.DefaultSettings()
	assert.Equal(t, 100.0, s.Intensity())
	assert.True(t, s.Bool(entity.SettingExcludeImages))

	assert.Nil(t, entity.FilterNone.DefaultSettings())
}
