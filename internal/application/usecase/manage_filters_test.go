package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/domain/entity"
	repomocks "github.com/bnema/shades/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageFiltersUseCase_ApplyFilter_NewIdUsesCatalogDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "example.com").Return(nil, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.Anything).Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	wf, err := uc.ApplyFilter(ctx, "example.com", entity.FilterSunnyBrown)
	require.NoError(t, err)
	assert.Equal(t, entity.FilterSunnyBrown, wf.FilterID)
	assert.Equal(t, 45.0, wf.Settings.Intensity())
}

func TestManageFiltersUseCase_ApplyFilter_SameIdKeepsSettings(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	existing := entity.NewWebsiteFilter(entity.FilterSunnyBrown, entity.FilterSettings{entity.SettingIntensity: 80.0})
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "example.com").Return(&existing, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.Anything).Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	wf, err := uc.ApplyFilter(ctx, "example.com", entity.FilterSunnyBrown)
	require.NoError(t, err)
	assert.Equal(t, 80.0, wf.Settings.Intensity())
}

func TestManageFiltersUseCase_ApplyFilter_None(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "example.com").Return(nil, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.Anything).Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	wf, err := uc.ApplyFilter(ctx, "example.com", entity.FilterNone)
	require.NoError(t, err)
	assert.True(t, wf.FilterID.IsNone())
	assert.Nil(t, wf.Settings)
}

func TestManageFiltersUseCase_ApplyFilter_Validation(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	uc := usecase.NewManageFiltersUseCase(repo)

	_, err := uc.ApplyFilter(ctx, "example.com", "sparkles")
	require.ErrorIs(t, err, usecase.ErrUnknownFilter)

	_, err = uc.ApplyFilter(ctx, "   ", entity.FilterRoseTint)
	require.ErrorIs(t, err, usecase.ErrInvalidDomain)
}

func TestDomainKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "www.example.com", want: "example.com"},
		{input: "https://www.www.example.com/shop", want: "www.example.com"},
		{input: "Example.COM", want: "example.com"},
	}
	for _, tt := range tests {
		got, err := usecase.DomainKey(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := usecase.DomainKey("about:blank")
	assert.ErrorIs(t, err, usecase.ErrInvalidDomain)
}

func TestManageFiltersUseCase_KeysAreNotDerivedAgain(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "www.example.com").Return(nil, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "www.example.com", mock.Anything).Return(nil)
	repo.EXPECT().RemoveWebsiteFilter(mock.Anything, "www.example.com").Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	_, err := uc.ApplyFilter(ctx, "www.example.com", entity.FilterRoseTint)
	require.NoError(t, err)
	require.NoError(t, uc.RemoveFilter(ctx, "www.example.com"))
}

func TestManageFiltersUseCase_SaveSettings(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	existing := entity.NewWebsiteFilter(entity.FilterSolarEclipse, nil)
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "example.com").Return(&existing, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.AnythingOfType("entity.WebsiteFilter")).
		Run(func(_ context.Context, _ string, wf entity.WebsiteFilter) {
			assert.Equal(t, 70.0, wf.Settings.Intensity())
			assert.False(t, wf.Settings.Bool(entity.SettingExcludeImages))
		}).
		Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	_, err := uc.SaveSettings(ctx, "example.com", entity.FilterSettings{
		entity.SettingIntensity:     70.0,
		entity.SettingExcludeImages: false,
	})
	require.NoError(t, err)
}

func TestManageFiltersUseCase_SaveSettings_NoAssignment(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	none := entity.NoneFilter()
	repo.EXPECT().GetWebsiteFilter(mock.Anything, "example.com").Return(&none, nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	_, err := uc.SaveSettings(ctx, "example.com", entity.FilterSettings{entity.SettingIntensity: 10.0})
	require.ErrorIs(t, err, usecase.ErrNoAssignment)
}

func TestManageFiltersUseCase_Default(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().SetDefault(mock.Anything, mock.AnythingOfType("entity.DefaultFilter")).Return(nil).Twice()
	repo.EXPECT().GetDefault(mock.Anything).Return(roseDefault(), nil)
	repo.EXPECT().ClearDefault(mock.Anything).Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	def, err := uc.SetDefault(ctx, entity.FilterRoseTint, nil)
	require.NoError(t, err)
	assert.Equal(t, 40.0, def.Settings.Intensity())

	def, err = uc.SaveDefaultSettings(ctx, entity.FilterSettings{entity.SettingIntensity: 55.0})
	require.NoError(t, err)
	assert.Equal(t, entity.FilterRoseTint, def.FilterID)
	assert.Equal(t, 55.0, def.Settings.Intensity())

	require.NoError(t, uc.ClearDefault(ctx))

	_, err = uc.SetDefault(ctx, entity.FilterNone, nil)
	require.ErrorIs(t, err, usecase.ErrUnknownFilter)
}

func TestManageFiltersUseCase_SaveDefaultSettings_NoDefault(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().GetDefault(mock.Anything).Return(nil, nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	_, err := uc.SaveDefaultSettings(ctx, nil)
	require.ErrorIs(t, err, usecase.ErrNoDefault)
}

func TestManageFiltersUseCase_ListWebsites(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().ListWebsiteFilters(mock.Anything).Return(map[string]entity.WebsiteFilter{
		"shop.example.com": entity.NewWebsiteFilter(entity.FilterClassicGray, nil),
		"news.example.com": entity.NewWebsiteFilter(entity.FilterRoseTint, nil),
		"golang.org":       entity.NoneFilter(),
	}, nil).Twice()

	uc := usecase.NewManageFiltersUseCase(repo)

	all, err := uc.ListWebsites(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "golang.org", all[0].Domain)
	assert.Equal(t, "news.example.com", all[1].Domain)

	matched, err := uc.ListWebsites(ctx, "EXAMPLE")
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestManageFiltersUseCase_State(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{
		WebsiteFilters: map[string]entity.WebsiteFilter{"example.com": entity.NoneFilter()},
		Default:        roseDefault(),
	}, nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	state, err := uc.State(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", state.Domain)
	assert.Equal(t, entity.DecisionExplicitNone, state.Decision.Kind)
	assert.Equal(t, entity.FilterNone, state.ActiveFilter())
	require.NotNil(t, state.Default)
}

func TestManageFiltersUseCase_SetEnabled(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().SetDisabled(mock.Anything, false).Return(nil)

	uc := usecase.NewManageFiltersUseCase(repo)

	require.NoError(t, uc.SetEnabled(ctx, true))
}
