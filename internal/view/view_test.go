package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/signin/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Manual validation - Sign In Forms", view.CalculateTitle("Manual validation"))
	assert.Equal(t, "Sign In Forms", view.CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.Base("Schema validation", h.P(g.Text("body"))).Render(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Schema validation - Sign In Forms</title>")
	assert.Contains(t, out, `href="`+view.StylesheetPath+`"`)
	assert.Contains(t, out, "htmx.org")
	assert.Contains(t, out, "<p>body</p>")
}

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, view.AdaptGomponentToTempl(h.Span()).Render(context.Background(), &buf))
	assert.Equal(t, "<span></span>", buf.String())
}
