package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"
	g "maragu.dev/gomponents"

	"github.com/joeblew999/plat-bionic/internal/config"
	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/pkg/db"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/queue"
)

var interRegular = font.FontName{Family: "Inter", Style: "Regular"}

func newHandlers(t *testing.T) *Handlers {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := queue.NewQueue(d, queue.Options{Timeout: time.Second, MaxReceive: 2})
	require.NoError(t, err)

	catalog := font.NewCatalogFrom(
		interRegular,
		font.FontName{Family: "Inter", Style: "Bold"},
	)
	return NewHandlers(svc.NewServiceContext(config.Config{}, d.SqlConn(), catalog, q))
}

func render(t *testing.T, handler http.HandlerFunc, r *http.Request) string {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestPages(t *testing.T) {
	h := newHandlers(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Bionic Dashboard"},
		{"/playground", "Bionic Playground"},
		{"/nodes", "Text Nodes"},
		{"/conversions", "Conversions"},
	}

	routes := make(map[string]http.HandlerFunc)
	for _, route := range h.Routes() {
		routes[route.Path] = route.Handler
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			handler, ok := routes[tt.path]
			require.True(t, ok)

			body := render(t, handler, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, "datastar")
		})
	}
}

func TestPlaygroundListsFamilies(t *testing.T) {
	body := renderNode(t, PlaygroundPage([]string{"Inter", "Roboto"}))
	assert.Contains(t, body, `<option value="Inter">Inter</option>`)
	assert.Contains(t, body, `<option value="Roboto">Roboto</option>`)
}

func TestPreview(t *testing.T) {
	h := newHandlers(t)

	r := httptest.NewRequest(http.MethodPost, "/api/preview",
		strings.NewReader(`{"text":"hello world","family":"Inter","style":"Regular","fixation":"50","contrast":300}`))
	r.Header.Set("Content-Type", "application/json")

	body := render(t, h.handlePreview, r)
	assert.Contains(t, body, `id="preview"`)
	assert.Contains(t, body, "font-weight: 700;")
	assert.Contains(t, body, "hel")
}

func TestContrastSignals(t *testing.T) {
	h := newHandlers(t)

	r := httptest.NewRequest(http.MethodPost, "/api/contrast", strings.NewReader(`{"family":"Inter"}`))
	r.Header.Set("Content-Type", "application/json")

	body := render(t, h.handleContrast, r)
	assert.Contains(t, body, "contrastSteps")
	assert.Contains(t, body, "[300,600,900]")
}

func TestNodesAndConversions(t *testing.T) {
	h := newHandlers(t)
	ctx := context.Background()

	id, err := h.svcCtx.Docs.Create(ctx, "greeting", host.NewDocument("hello world", interRegular))
	require.NoError(t, err)

	body := render(t, h.handleNodesAPI, httptest.NewRequest(http.MethodGet, "/api/nodes", nil))
	assert.Contains(t, body, "greeting")
	assert.Contains(t, body, "/api/nodes/"+id+"/convert")

	r := httptest.NewRequest(http.MethodPost, "/api/nodes/"+id+"/convert", strings.NewReader(`{"fixation":60,"contrast":300}`))
	r.Header.Set("Content-Type", "application/json")
	body = render(t, h.handleConvertNode, pathvar.WithVars(r, map[string]string{"id": id}))
	assert.Contains(t, body, "Conversion queued with ID")

	body = render(t, h.handleConversionsAPI, httptest.NewRequest(http.MethodGet, "/api/conversions?status=pending", nil))
	assert.Contains(t, body, "status-"+model.StatusPending)

	body = render(t, h.handleStats, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Contains(t, body, `"nodes":1`)
}

func TestEmptyFragments(t *testing.T) {
	assert.Contains(t, renderNode(t, NodeItems(nil)), "No nodes stored yet")
	assert.Contains(t, renderNode(t, ConversionItems(nil)), "No conversions yet")
}

func renderNode(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}
