package htmldoc_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bnema/shades/internal/infrastructure/browser/htmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AppendAndRemove(t *testing.T) {
	ctx := context.Background()
	doc, err := htmldoc.Parse(strings.NewReader(`<html><head><title>t</title></head><body><p>hi</p></body></html>`))
	require.NoError(t, err)

	require.NoError(t, doc.AppendStyle(ctx, "s", "p { color: red; }"))
	require.NoError(t, doc.AppendOverlay(ctx, "o"))
	assert.Equal(t, 1, doc.Count("s"))
	assert.Equal(t, 1, doc.Count("o"))

	css, ok := doc.Text("s")
	require.True(t, ok)
	assert.Equal(t, "p { color: red; }", css)

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, `<style id="s">p { color: red; }</style></head>`)
	assert.Contains(t, out, `<div id="o"></div></body>`)

	require.NoError(t, doc.RemoveElement(ctx, "s"))
	require.NoError(t, doc.RemoveElement(ctx, "o"))
	require.NoError(t, doc.RemoveElement(ctx, "missing"))
	assert.Zero(t, doc.Count("s"))
	assert.Zero(t, doc.Count("o"))
}

func TestDocument_FragmentGetsHeadAndBody(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(`<p>bare</p>`))
	require.NoError(t, err)
	require.NoError(t, doc.AppendOverlay(context.Background(), "o"))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<p>bare</p><div id="o"></div>`)
}

func TestDocument_RemoveDuplicates(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(`<body><div id="x"></div><section><div id="x"></div></section></body>`))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Count("x"))
	require.NoError(t, doc.RemoveElement(context.Background(), "x"))
	assert.Zero(t, doc.Count("x"))
}

func TestNew(t *testing.T) {
	doc := htmldoc.New()
	require.NoError(t, doc.AppendStyle(context.Background(), "s", "a{}"))
	assert.Equal(t, 1, doc.Count("s"))
}
