package renderer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/shades/internal/application/port/mocks"
	"github.com/bnema/shades/internal/application/usecase"
	"github.com/bnema/shades/internal/domain/entity"
	"github.com/bnema/shades/internal/domain/filter"
	repomocks "github.com/bnema/shades/internal/domain/repository/mocks"
	"github.com/bnema/shades/internal/infrastructure/browser/htmldoc"
	"github.com/bnema/shades/internal/logging"
	"github.com/bnema/shades/internal/renderer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func roseMessage() entity.RenderMessage {
	return usecase.Instruction(entity.Active(entity.FilterRoseTint, entity.FilterRoseTint.DefaultSettings()))
}

func render(t *testing.T, doc *htmldoc.Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	return buf.String()
}

func TestRenderer_ApplyIsIdempotent(t *testing.T) {
	ctx := testContext()
	doc := htmldoc.New()
	r := renderer.New(doc, nil)

	msg := roseMessage()
	require.NoError(t, r.Handle(ctx, msg))
	once := render(t, doc)
	require.NoError(t, r.Handle(ctx, msg))

	assert.Equal(t, once, render(t, doc))
	assert.Equal(t, 1, doc.Count(filter.StyleElementID))
	assert.Equal(t, 1, doc.Count(filter.OverlayElementID))

	css, ok := doc.Text(filter.StyleElementID)
	require.True(t, ok)
	assert.Equal(t, filter.Stylesheet(msg.FilterID, msg.Settings, msg.CSS), css)
}

func TestRenderer_ApplyReplacesPreviousFilter(t *testing.T) {
	ctx := testContext()
	doc := htmldoc.New()
	r := renderer.New(doc, nil)

	require.NoError(t, r.Handle(ctx, roseMessage()))
	invert := usecase.Instruction(entity.Active(entity.FilterSolarEclipse, entity.FilterSolarEclipse.DefaultSettings()))
	require.NoError(t, r.Handle(ctx, invert))

	css, ok := doc.Text(filter.StyleElementID)
	require.True(t, ok)
	assert.Contains(t, css, "mix-blend-mode: difference")
	assert.Contains(t, css, "filter: invert(1) !important")
	assert.NotContains(t, css, "multiply")
	assert.Equal(t, 1, doc.Count(filter.StyleElementID))
}

func TestRenderer_RemoveClears(t *testing.T) {
	ctx := testContext()
	doc := htmldoc.New()
	r := renderer.New(doc, nil)

	require.NoError(t, r.Handle(ctx, entity.RemoveMessage()))

	require.NoError(t, r.Handle(ctx, roseMessage()))
	require.NoError(t, r.Handle(ctx, entity.RemoveMessage()))
	assert.Zero(t, doc.Count(filter.StyleElementID))
	assert.Zero(t, doc.Count(filter.OverlayElementID))
}

func TestRenderer_EmptyCSSClears(t *testing.T) {
	ctx := testContext()
	doc := htmldoc.New()
	r := renderer.New(doc, nil)

	require.NoError(t, r.Handle(ctx, roseMessage()))
	require.NoError(t, r.Handle(ctx, entity.ApplyMessage("", "sepia", nil)))
	assert.Zero(t, doc.Count(filter.OverlayElementID))
}

func TestRenderer_UnknownAction(t *testing.T) {
	r := renderer.New(htmldoc.New(), nil)
	assert.Error(t, r.Handle(testContext(), entity.RenderMessage{Action: "blink"}))
}

func TestRenderer_DocumentFailure(t *testing.T) {
	ctx := testContext()
	doc := mocks.NewMockDocument(t)
	doc.EXPECT().RemoveElement(mock.Anything, filter.OverlayElementID).Return(nil)
	doc.EXPECT().RemoveElement(mock.Anything, filter.StyleElementID).Return(nil)
	doc.EXPECT().AppendStyle(mock.Anything, filter.StyleElementID, mock.Anything).Return(errors.New("detached"))

	err := renderer.New(doc, nil).Handle(ctx, roseMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detached")
}

// A page that self-resolves on load must end up identical to one that
// received the coordinator's instruction for the same store state.
func TestRenderer_AttachMatchesPushedInstruction(t *testing.T) {
	ctx := testContext()
	snapshot := entity.SettingsSnapshot{
		WebsiteFilters: map[string]entity.WebsiteFilter{
			"shop.example.com": entity.NewWebsiteFilter(entity.FilterClassicGray, entity.FilterSettings{entity.SettingIntensity: 60.0}),
		},
	}
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(snapshot, nil)
	resolver := usecase.NewResolveFilterUseCase(repo)

	attached := htmldoc.New()
	renderer.New(attached, resolver).Attach(ctx, "https://www.shop.example.com/cart")

	pushed := htmldoc.New()
	decision, err := resolver.ForURL(ctx, "https://shop.example.com/")
	require.NoError(t, err)
	require.NoError(t, renderer.New(pushed, resolver).Handle(ctx, resolver.Instruction(decision)))

	assert.Equal(t, render(t, pushed), render(t, attached))
	css, _ := attached.Text(filter.StyleElementID)
	assert.Contains(t, css, "rgba(116, 116, 116, 0.48)")
}

func TestRenderer_AttachStoreFailureLeavesPageUnfiltered(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Snapshot(mock.Anything).Return(entity.SettingsSnapshot{}, errors.New("locked"))

	doc := htmldoc.New()
	renderer.New(doc, usecase.NewResolveFilterUseCase(repo)).Attach(ctx, "https://example.com/")

	assert.Zero(t, doc.Count(filter.StyleElementID))
	assert.Zero(t, doc.Count(filter.OverlayElementID))
}
