package settingsstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/application/port/mocks"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shades/internal/infrastructure/settingsstore"
	"github.com/bnema/shades/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func openKV(t *testing.T) port.KeyValueStore {
	t.Helper()
	kv, err := sqlite.OpenKVStore(testContext(), filepath.Join(t.TempDir(), "shades.sqlite"), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func seed(t *testing.T, kv port.KeyValueStore, key, value string) {
	t.Helper()
	require.NoError(t, kv.Set(testContext(), key, []byte(value)))
}

func TestStore_EmptySnapshot(t *testing.T) {
	store := settingsstore.New(openKV(t))

	snap, err := store.Snapshot(testContext())
	require.NoError(t, err)
	assert.Empty(t, snap.WebsiteFilters)
	assert.False(t, snap.Disabled)
	assert.Nil(t, snap.Default)
}

func TestStore_WebsiteFilterRoundTrip(t *testing.T) {
	ctx := testContext()
	kv := openKV(t)
	store := settingsstore.New(kv)

	wf := entity.NewWebsiteFilter(entity.FilterClassicGray, entity.FilterSettings{entity.SettingIntensity: 60.0})
	require.NoError(t, store.SetWebsiteFilter(ctx, "shop.example.com", wf))

	got, err := store.GetWebsiteFilter(ctx, "shop.example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.FilterClassicGray, got.FilterID)
	assert.Equal(t, 60.0, got.Settings.Intensity())
	assert.Equal(t, wf.UpdatedAt.UnixMilli(), got.UpdatedAt.UnixMilli())

	raw, ok, err := kv.Get(ctx, entity.KeyWebsiteFilters)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"shop.example.com"`)

	require.NoError(t, store.RemoveWebsiteFilter(ctx, "shop.example.com"))
	got, err = store.GetWebsiteFilter(ctx, "shop.example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_NoneAssignmentHasNoSettings(t *testing.T) {
	ctx := testContext()
	store := settingsstore.New(openKV(t))

	require.NoError(t, store.SetWebsiteFilter(ctx, "example.com", entity.NoneFilter()))
	got, err := store.GetWebsiteFilter(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.FilterNone, got.FilterID)
	assert.Nil(t, got.Settings)
}

func TestStore_RejectsInvalidWrites(t *testing.T) {
	ctx := testContext()
	store := settingsstore.New(openKV(t))

	err := store.SetWebsiteFilter(ctx, "example.com", entity.WebsiteFilter{FilterID: "sepia"})
	assert.ErrorIs(t, err, settingsstore.ErrInvalidFilter)

	err = store.SetWebsiteFilter(ctx, "", entity.NoneFilter())
	assert.ErrorIs(t, err, settingsstore.ErrInvalidDomain)

	err = store.SetDefault(ctx, entity.DefaultFilter{FilterID: entity.FilterNone})
	assert.ErrorIs(t, err, settingsstore.ErrInvalidFilter)
}

func TestStore_DefaultRoundTrip(t *testing.T) {
	ctx := testContext()
	kv := openKV(t)
	store := settingsstore.New(kv)

	require.NoError(t, store.SetDefault(ctx, entity.NewDefaultFilter(entity.FilterRoseTint, entity.FilterSettings{entity.SettingIntensity: 40.0})))
	def, err := store.GetDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, entity.FilterRoseTint, def.FilterID)
	assert.Equal(t, 40.0, def.Settings.Intensity())

	require.NoError(t, store.ClearDefault(ctx))
	def, err = store.GetDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, def)

	raw, _, err := kv.Get(ctx, entity.KeyDefaultFilter)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestStore_Disabled(t *testing.T) {
	ctx := testContext()
	store := settingsstore.New(openKV(t))

	require.NoError(t, store.SetDisabled(ctx, true))
	disabled, err := store.IsDisabled(ctx)
	require.NoError(t, err)
	assert.True(t, disabled)

	require.NoError(t, store.SetDisabled(ctx, false))
	disabled, err = store.IsDisabled(ctx)
	require.NoError(t, err)
	assert.False(t, disabled)
}

func TestStore_LegacyLayout(t *testing.T) {
	ctx := testContext()
	kv := openKV(t)
	seed(t, kv, entity.KeyWebsiteFilters, `{
		"news.example.com": {"filterId": "sunny-brown"},
		"www.example.com": {"filterId": "emerald-green"},
		"example.com": {"filterId": "amber-vision", "updatedAt": 1000},
		"www.tie.example.com": {"filterId": "rose-tint"},
		"tie.example.com": {"filterId": "classic-gray"},
		"www.old.example.com": {"filterId": "solar-eclipse"}
	}`)
	seed(t, kv, entity.KeyFilterSettings, `{"sunny-brown": {"intensity": 70}, "solar-eclipse": {"intensity": 80}}`)
	seed(t, kv, entity.KeyDefaultFilter, `"solar-eclipse"`)
	seed(t, kv, entity.KeyExtensionEnabled, `false`)

	snap, err := settingsstore.New(kv).Snapshot(ctx)
	require.NoError(t, err)

	news := snap.WebsiteFilters["news.example.com"]
	assert.Equal(t, entity.FilterSunnyBrown, news.FilterID)
	assert.Equal(t, 70.0, news.Settings.Intensity())

	assert.Equal(t, entity.FilterAmberVision, snap.WebsiteFilters["example.com"].FilterID, "stamped entry wins over a legacy alias")
	assert.Equal(t, entity.FilterClassicGray, snap.WebsiteFilters["tie.example.com"].FilterID)
	assert.Equal(t, entity.FilterSolarEclipse, snap.WebsiteFilters["old.example.com"].FilterID)
	assert.NotContains(t, snap.WebsiteFilters, "www.example.com")
	assert.NotContains(t, snap.WebsiteFilters, "www.old.example.com")

	require.NotNil(t, snap.Default)
	assert.Equal(t, entity.FilterSolarEclipse, snap.Default.FilterID)
	assert.Equal(t, 80.0, snap.Default.Settings.Intensity())
	assert.True(t, snap.Default.Settings.Bool(entity.SettingExcludeImages))

	assert.True(t, snap.Disabled, "extensionEnabled=false means disabled")
}

func TestStore_KeysAreStoredVerbatim(t *testing.T) {
	ctx := testContext()
	store := settingsstore.New(openKV(t))

	// key derived from a www.www. host
	require.NoError(t, store.SetWebsiteFilter(ctx, "www.example.com", entity.NewWebsiteFilter(entity.FilterSolarEclipse, nil)))
	require.NoError(t, store.SetWebsiteFilter(ctx, "example.com", entity.NoneFilter()))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.FilterSolarEclipse, snap.WebsiteFilters["www.example.com"].FilterID)
	assert.Equal(t, entity.FilterNone, snap.WebsiteFilters["example.com"].FilterID)

	require.NoError(t, store.RemoveWebsiteFilter(ctx, "www.example.com"))
	got, err := store.GetWebsiteFilter(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got, "removing the www key leaves the bare key alone")
	assert.Equal(t, entity.FilterNone, got.FilterID)
}

func TestStore_LegacyEntriesStampedOnRewrite(t *testing.T) {
	ctx := testContext()
	kv := openKV(t)
	seed(t, kv, entity.KeyWebsiteFilters, `{"www.www.legacy.example.com": {"filterId": "rose-tint"}}`)
	store := settingsstore.New(kv)

	require.NoError(t, store.SetWebsiteFilter(ctx, "other.example.com", entity.NoneFilter()))

	// a second read must not strip the folded key again
	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	legacy, ok := snap.WebsiteFilters["www.legacy.example.com"]
	require.True(t, ok)
	assert.Equal(t, entity.FilterRoseTint, legacy.FilterID)
	assert.False(t, legacy.UpdatedAt.IsZero())
	assert.NotContains(t, snap.WebsiteFilters, "legacy.example.com")
}

func TestStore_DisabledKeyWinsOverLegacy(t *testing.T) {
	kv := openKV(t)
	seed(t, kv, entity.KeyExtensionEnabled, `false`)
	seed(t, kv, entity.KeyExtensionDisabled, `false`)

	disabled, err := settingsstore.New(kv).IsDisabled(testContext())
	require.NoError(t, err)
	assert.False(t, disabled)
}

func TestStore_DefaultNoneMeansNoDefault(t *testing.T) {
	kv := openKV(t)
	seed(t, kv, entity.KeyDefaultFilter, `{"filterId": "none"}`)

	def, err := settingsstore.New(kv).GetDefault(testContext())
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestStore_CorruptValue(t *testing.T) {
	kv := openKV(t)
	seed(t, kv, entity.KeyWebsiteFilters, `{not json`)

	_, err := settingsstore.New(kv).Snapshot(testContext())
	assert.ErrorContains(t, err, entity.KeyWebsiteFilters)
}

func TestStore_ReadFailure(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, entity.KeyFilterSettings).Return(nil, false, errors.New("disk gone"))

	_, err := settingsstore.New(kv).Snapshot(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestStore_RemoveMissingWritesNothing(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(mock.Anything, entity.KeyFilterSettings).Return(nil, false, nil)
	kv.EXPECT().Get(mock.Anything, entity.KeyWebsiteFilters).Return([]byte(`{}`), true, nil)

	require.NoError(t, settingsstore.New(kv).RemoveWebsiteFilter(testContext(), "example.com"))
}

func TestStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	store := settingsstore.New(openKV(t))
	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.SetDisabled(ctx, true))

	select {
	case change := <-changes:
		assert.Equal(t, []string{entity.KeyExtensionDisabled}, change.Keys)
		assert.True(t, change.AffectsFilters())
	case <-time.After(2 * time.Second):
		t.Fatal("no change observed")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
