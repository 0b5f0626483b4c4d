package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/shades/internal/application/port"
	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	repomocks "github.com/bnema/shades/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isNoneFilter(wf entity.WebsiteFilter) bool {
	return wf.FilterID == entity.FilterNone
}

func TestToggleFilterUseCase_ToggleFilter_ActiveWritesNone(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{Default: roseDefault()}, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.MatchedBy(isNoneFilter)).Return(nil)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	m, err := uc.ToggleFilter(ctx, "https://www.example.com/page")
	require.NoError(t, err)
	assert.Equal(t, filter.MutationSet, m.Kind)
	assert.Equal(t, "example.com", m.Domain)
}

func TestToggleFilterUseCase_ToggleFilter_NoneRemovesAssignment(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{
		WebsiteFilters: map[string]entity.WebsiteFilter{"example.com": entity.NoneFilter()},
		Default:        roseDefault(),
	}, nil)
	repo.EXPECT().RemoveWebsiteFilter(mock.Anything, "example.com").Return(nil)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	m, err := uc.ToggleFilter(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, filter.MutationRemove, m.Kind)
}

func TestToggleFilterUseCase_ToggleFilter_DisabledIsNoop(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{Disabled: true, Default: roseDefault()}, nil)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	m, err := uc.ToggleFilter(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.True(t, m.IsNoop())
}

func TestToggleFilterUseCase_ToggleSpecific_Invert(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{}, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.AnythingOfType("entity.WebsiteFilter")).
		Run(func(_ context.Context, _ string, wf entity.WebsiteFilter) {
			assert.Equal(t, entity.FilterSolarEclipse, wf.FilterID)
			assert.True(t, wf.Settings.Bool(entity.SettingExcludeImages))
		}).
		Return(nil)

	uc := usecase.NewToggleFilterUseCase(repo, entity.FilterSolarEclipse)

	require.NoError(t, uc.Execute(ctx, port.CommandToggleInvert, "https://example.com"))
}

func TestToggleFilterUseCase_ToggleExtension(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().IsDisabled(mock.Anything).Return(false, nil)
	repo.EXPECT().SetDisabled(mock.Anything, true).Return(nil)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	disabled, err := uc.ToggleExtension(ctx)
	require.NoError(t, err)
	assert.True(t, disabled)
}

func TestToggleFilterUseCase_Execute_UnknownCommand(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	err := uc.Execute(ctx, port.Command("toggle-sparkles"), "https://example.com")
	require.Error(t, err)
}

func TestToggleFilterUseCase_WriteFailureIsReturned(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{Default: roseDefault()}, nil)
	repo.EXPECT().SetWebsiteFilter(mock.Anything, "example.com", mock.Anything).Return(errors.New("locked"))

	uc := usecase.NewToggleFilterUseCase(repo, "")

	_, err := uc.ToggleFilter(ctx, "https://example.com/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save website filter")
}

func TestToggleFilterUseCase_URLWithoutHostIsNoop(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	uc := usecase.NewToggleFilterUseCase(repo, "")

	m, err := uc.ToggleFilter(ctx, "about:blank")
	require.NoError(t, err)
	assert.True(t, m.IsNoop())
}
