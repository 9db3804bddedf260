package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-bionic/pkg/host"
)

func TestEmail(t *testing.T) {
	html, err := Email([]*host.Document{bionicDoc(t)}, WithTitle("Reading list"))
	require.NoError(t, err)

	assert.True(t, strings.Contains(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, "Reading list")
	assert.Contains(t, html, "font-weight: 700")
	assert.Contains(t, html, ">c</span>")
}

func TestEmailRendererOptions(t *testing.T) {
	r := NewEmailRenderer(
		WithCache(true),
		WithDebug(true),
		WithBackground("#f8fafc"),
		WithFontSize("18px"),
	)

	assert.True(t, r.options.EnableCache)
	assert.True(t, r.options.EnableDebug)
	assert.Equal(t, "#f8fafc", r.options.Background)
	assert.Equal(t, "18px", r.options.FontSize)

	defaults := NewEmailRenderer()
	assert.False(t, defaults.options.EnableCache)
	assert.Equal(t, "#ffffff", defaults.options.Background)
	assert.Equal(t, "16px", defaults.options.FontSize)
}

func TestEmailRendererCache(t *testing.T) {
	r := NewEmailRenderer(WithCache(true))
	doc := bionicDoc(t)

	first, err := r.Render(doc)
	require.NoError(t, err)
	second, err := r.Render(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CacheSize())

	_, err = r.Render(host.NewDocument("other", interRegular))
	require.NoError(t, err)
	assert.Equal(t, 2, r.CacheSize())

	r.ClearCache()
	assert.Zero(t, r.CacheSize())
}

func TestEmailRendererWithoutCache(t *testing.T) {
	r := NewEmailRenderer()
	_, err := r.Render(bionicDoc(t))
	require.NoError(t, err)
	assert.Zero(t, r.CacheSize())
}
