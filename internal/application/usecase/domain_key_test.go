package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shades/internal/infrastructure/settingsstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSettings(t *testing.T) *settingsstore.Store {
	t.Helper()
	kv, err := sqlite.OpenKVStore(testContext(), filepath.Join(t.TempDir(), "shades.sqlite"), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return settingsstore.New(kv)
}

func TestToggleSpecific_DoubledWWWHostRoundTrips(t *testing.T) {
	ctx := testContext()
	store := openSettings(t)
	toggle := usecase.NewToggleFilterUseCase(store, entity.FilterSolarEclipse)
	resolve := usecase.NewResolveFilterUseCase(store)
	const page = "https://www.www.example.com/"

	_, err := toggle.ToggleSpecific(ctx, page, entity.FilterSolarEclipse)
	require.NoError(t, err)
	d, err := resolve.ForURL(ctx, page)
	require.NoError(t, err)
	assert.True(t, d.IsActive())
	assert.Equal(t, entity.FilterSolarEclipse, d.FilterID)

	_, err = toggle.ToggleSpecific(ctx, page, entity.FilterSolarEclipse)
	require.NoError(t, err)
	d, err = resolve.ForURL(ctx, page)
	require.NoError(t, err)
	assert.False(t, d.IsActive(), "second toggle turns the filter off")

	filters, err := store.ListWebsiteFilters(ctx)
	require.NoError(t, err)
	assert.Contains(t, filters, "www.example.com")
	assert.NotContains(t, filters, "example.com")
}

func TestToggleFilter_DoubledWWWHostSeesSiteAssignment(t *testing.T) {
	ctx := testContext()
	store := openSettings(t)
	manage := usecase.NewManageFiltersUseCase(store)
	toggle := usecase.NewToggleFilterUseCase(store, "")
	resolve := usecase.NewResolveFilterUseCase(store)
	const page = "https://www.www.example.com/a"

	key, err := usecase.DomainKey(page)
	require.NoError(t, err)
	_, err = manage.ApplyFilter(ctx, key, entity.FilterRoseTint)
	require.NoError(t, err)

	_, err = toggle.ToggleFilter(ctx, page)
	require.NoError(t, err)
	d, err := resolve.ForURL(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, entity.DecisionExplicitNone, d.Kind)
}

func TestApplyFilter_MixedCaseInputMatchesBrowserHost(t *testing.T) {
	ctx := testContext()
	store := openSettings(t)
	manage := usecase.NewManageFiltersUseCase(store)
	resolve := usecase.NewResolveFilterUseCase(store)

	key, err := usecase.DomainKey("Example.COM")
	require.NoError(t, err)
	_, err = manage.ApplyFilter(ctx, key, entity.FilterRoseTint)
	require.NoError(t, err)

	d, err := resolve.ForURL(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, entity.FilterRoseTint, d.FilterID)

	filters, err := store.ListWebsiteFilters(ctx)
	require.NoError(t, err)
	assert.Contains(t, filters, "example.com")
	assert.NotContains(t, filters, "Example.COM")
}
