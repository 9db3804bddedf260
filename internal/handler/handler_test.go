package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"github.com/joeblew999/plat-bionic/internal/config"
	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/handler/conversion"
	"github.com/joeblew999/plat-bionic/internal/handler/convert"
	"github.com/joeblew999/plat-bionic/internal/handler/font"
	"github.com/joeblew999/plat-bionic/internal/handler/node"
	"github.com/joeblew999/plat-bionic/internal/handler/stats"
	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/db"
	fonts "github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/queue"
)

func newServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	errorx.RegisterErrorHandler()

	d, err := db.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := queue.NewQueue(d, queue.Options{Timeout: time.Second, MaxReceive: 2})
	require.NoError(t, err)

	catalog := fonts.NewCatalogFrom(
		fonts.FontName{Family: "Inter", Style: "Regular"},
		fonts.FontName{Family: "Inter", Style: "Medium"},
		fonts.FontName{Family: "Inter", Style: "Bold"},
		fonts.FontName{Family: "Inter", Style: "Black"},
	)
	return svc.NewServiceContext(config.Config{}, d.SqlConn(), catalog, q)
}

func call(t *testing.T, h http.HandlerFunc, method, target string, body any, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = httptest.NewRequest(method, target, bytes.NewReader(data))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if vars != nil {
		r = pathvar.WithVars(r, vars)
	}

	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createNode(t *testing.T, svcCtx *svc.ServiceContext, text string) types.NodeResponse {
	t.Helper()
	w := call(t, node.CreateNodeHandler(svcCtx), http.MethodPost, "/api/v1/nodes",
		map[string]any{"name": "sample", "text": text, "family": "Inter"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[types.NodeResponse](t, w)
}

func TestNodeLifecycle(t *testing.T) {
	svcCtx := newServiceContext(t)

	created := createNode(t, svcCtx, "hello world")
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, []types.RunInfo{{Start: 0, End: 11, Family: "Inter", Style: "Regular", Weight: 400}}, created.Runs)

	w := call(t, node.GetNodeHandler(svcCtx), http.MethodGet, "/api/v1/nodes/"+created.Id, nil, map[string]string{"id": created.Id})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello world", decode[types.NodeResponse](t, w).Text)

	w = call(t, node.ListNodesHandler(svcCtx), http.MethodGet, "/api/v1/nodes?limit=10", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[types.ListNodesResponse](t, w)
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Nodes, 1)

	w = call(t, node.GetNodeHandler(svcCtx), http.MethodGet, "/api/v1/nodes/missing", nil, map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateNodeValidation(t *testing.T) {
	svcCtx := newServiceContext(t)

	w := call(t, node.CreateNodeHandler(svcCtx), http.MethodPost, "/api/v1/nodes",
		map[string]any{"text": "abc", "family": "", "style": "Regular"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, node.CreateNodeHandler(svcCtx), http.MethodPost, "/api/v1/nodes", map[string]any{
		"text":   "abc",
		"family": "Inter",
		"runs":   []map[string]any{{"start": 0, "end": 2, "family": "Inter", "style": "Regular"}},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertNow(t *testing.T) {
	svcCtx := newServiceContext(t)
	created := createNode(t, svcCtx, "hello world")

	w := call(t, convert.ConvertHandler(svcCtx), http.MethodPost, "/api/v1/convert",
		map[string]any{"nodeIds": []string{created.Id}, "fixationStrength": 50, "contrast": 300}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[types.ConvertResponse](t, w)
	assert.Equal(t, 1, resp.Converted)
	require.Len(t, resp.Nodes, 1)
	assert.Equal(t, "Inter Regular", resp.Nodes[0].Base)
	assert.Equal(t, "Inter Bold", resp.Nodes[0].Bold)

	w = call(t, node.GetNodeHandler(svcCtx), http.MethodGet, "/", nil, map[string]string{"id": created.Id})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []types.RunInfo{
		{Start: 0, End: 3, Family: "Inter", Style: "Bold", Weight: 700},
		{Start: 3, End: 6, Family: "Inter", Style: "Regular", Weight: 400},
		{Start: 6, End: 9, Family: "Inter", Style: "Bold", Weight: 700},
		{Start: 9, End: 11, Family: "Inter", Style: "Regular", Weight: 400},
	}, decode[types.NodeResponse](t, w).Runs)

	w = call(t, node.ExportNodeHandler(svcCtx), http.MethodGet, "/?format=html", nil, map[string]string{"id": created.Id})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "font-weight: 700;")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
}

func TestConvertErrors(t *testing.T) {
	svcCtx := newServiceContext(t)
	created := createNode(t, svcCtx, "hello world")

	w := call(t, convert.ConvertHandler(svcCtx), http.MethodPost, "/api/v1/convert",
		map[string]any{"nodeIds": []string{}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, convert.ConvertHandler(svcCtx), http.MethodPost, "/api/v1/convert",
		map[string]any{"nodeIds": []string{created.Id}, "fixationStrength": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, convert.ConvertHandler(svcCtx), http.MethodPost, "/api/v1/convert",
		map[string]any{"nodeIds": []string{"missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestContrast(t *testing.T) {
	svcCtx := newServiceContext(t)
	created := createNode(t, svcCtx, "hello world")

	w := call(t, convert.SuggestContrastHandler(svcCtx), http.MethodGet, "/api/v1/contrast?ids="+created.Id, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[types.SuggestContrastResponse](t, w)
	assert.Equal(t, 4, resp.MaxWeights)
	assert.Equal(t, []int{0, 100, 300, 450, 600, 900}, resp.ContrastSteps)

	w = call(t, convert.SuggestContrastHandler(svcCtx), http.MethodGet, "/api/v1/contrast?ids=,", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueuedConversion(t *testing.T) {
	svcCtx := newServiceContext(t)
	created := createNode(t, svcCtx, "hello world")

	w := call(t, conversion.SubmitConversionHandler(svcCtx), http.MethodPost, "/api/v1/conversions",
		map[string]any{"nodeIds": []string{created.Id}}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	submitted := decode[types.SubmitConversionResponse](t, w)
	assert.Equal(t, model.StatusPending, submitted.Status)

	w = call(t, conversion.GetConversionHandler(svcCtx), http.MethodGet, "/", nil, map[string]string{"id": submitted.Id})
	require.Equal(t, http.StatusOK, w.Code)
	conv := decode[types.ConversionResponse](t, w)
	assert.Equal(t, []string{created.Id}, conv.NodeIds)
	assert.Equal(t, 50, conv.FixationStrength)
	assert.Equal(t, 300, conv.Contrast)
	assert.Equal(t, model.StatusPending, conv.Status)

	w = call(t, stats.GetStatsHandler(svcCtx), http.MethodGet, "/api/v1/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[types.StatsResponse](t, w)
	assert.Equal(t, 1, st.Stats[model.StatusPending])
	assert.Equal(t, 1, st.Nodes)

	w = call(t, conversion.GetConversionHandler(svcCtx), http.MethodGet, "/", nil, map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFontEndpoints(t *testing.T) {
	svcCtx := newServiceContext(t)

	w := call(t, font.ListFontStylesHandler(svcCtx), http.MethodGet, "/", nil, map[string]string{"family": "inter"})
	require.Equal(t, http.StatusOK, w.Code)
	styles := decode[types.ListFontStylesResponse](t, w)
	assert.Equal(t, []types.FontStyleInfo{
		{Style: "Regular", Weight: 400},
		{Style: "Medium", Weight: 500},
		{Style: "Bold", Weight: 700},
		{Style: "Black", Weight: 900},
	}, styles.Styles)

	w = call(t, font.ListFontStylesHandler(svcCtx), http.MethodGet, "/", nil, map[string]string{"family": "Comic"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, font.WeightOfHandler(svcCtx), http.MethodGet, "/api/v1/weight?name=Semi+Bold", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 600, decode[types.WeightOfResponse](t, w).Weight)
}
