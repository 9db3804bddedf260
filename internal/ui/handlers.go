package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"
	g "maragu.dev/gomponents"

	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/export"
	"github.com/joeblew999/plat-bionic/pkg/font"
)

const listLimit = 50

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	svcCtx *svc.ServiceContext
}

// NewHandlers creates new UI handlers.
func NewHandlers(svcCtx *svc.ServiceContext) *Handlers {
	return &Handlers{svcCtx: svcCtx}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleDashboard},
		{Method: http.MethodGet, Path: "/playground", Handler: h.handlePlayground},
		{Method: http.MethodGet, Path: "/nodes", Handler: h.handleNodes},
		{Method: http.MethodGet, Path: "/conversions", Handler: h.handleConversions},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/nodes", Handler: h.handleNodesAPI},
		{Method: http.MethodGet, Path: "/api/conversions", Handler: h.handleConversionsAPI},
		{Method: http.MethodPost, Path: "/api/preview", Handler: h.handlePreview},
		{Method: http.MethodPost, Path: "/api/contrast", Handler: h.handleContrast},
		{Method: http.MethodPost, Path: "/api/nodes/:id/convert", Handler: h.handleConvertNode},
	}
}

// settingsSignals are the conversion settings bound in the browser. Inputs
// may send numbers as strings.
type settingsSignals struct {
	Fixation json.Number `json:"fixation"`
	Contrast json.Number `json:"contrast"`
}

func (s settingsSignals) settings() bionic.Settings {
	d := bionic.DefaultSettings()
	return bionic.Settings{
		FixationStrength: numberOr(s.Fixation, d.FixationStrength),
		Contrast:         numberOr(s.Contrast, d.Contrast),
	}
}

func numberOr(n json.Number, def int) int {
	v, err := n.Int64()
	if err != nil {
		return def
	}
	return int(v)
}

func (h *Handlers) page(w http.ResponseWriter, name string, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		logx.Errorf("render %s: %v", name, err)
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.page(w, "dashboard", Dashboard())
}

func (h *Handlers) handlePlayground(w http.ResponseWriter, r *http.Request) {
	h.page(w, "playground", PlaygroundPage(h.svcCtx.Catalog.Families()))
}

func (h *Handlers) handleNodes(w http.ResponseWriter, r *http.Request) {
	h.page(w, "nodes page", NodesPage())
}

func (h *Handlers) handleConversions(w http.ResponseWriter, r *http.Request) {
	h.page(w, "conversions page", ConversionsPage())
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svcCtx.Conversions.Stats(r.Context())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	nodes, err := h.svcCtx.Docs.Nodes.Count(r.Context())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"stats":   stats,
		"nodes":   nodes,
		"loading": false,
	})
}

func (h *Handlers) handleNodesAPI(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.svcCtx.Docs.Nodes.List(r.Context(), listLimit)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	views := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		doc, err := h.svcCtx.Docs.Document(r.Context(), n.Id)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("load node %s: %v", n.Id, err)
			continue
		}
		views = append(views, NodeView{ID: n.Id, Name: n.Name, Doc: doc, UpdatedAt: n.UpdatedAt})
	}

	sse := datastar.NewSSE(w, r)
	h.patchElements(sse, NodeItems(views))
	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleConversionsAPI(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	convs, err := h.svcCtx.Conversions.ListByStatus(r.Context(), status, listLimit)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)
	h.patchElements(sse, ConversionItems(convs))
	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handlePreview(w http.ResponseWriter, r *http.Request) {
	var signals struct {
		settingsSignals
		Text   string `json:"text"`
		Family string `json:"family"`
		Style  string `json:"style"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	if signals.Style == "" {
		signals.Style = "Regular"
	}

	doc, summary, err := bionic.ConvertText(r.Context(), h.svcCtx.Catalog, signals.Text,
		font.FontName{Family: signals.Family, Style: signals.Style}, signals.settings())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	preview, err := export.RenderHTML(doc)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	messages := make([]string, 0, len(summary.Notices))
	for _, n := range summary.Notices {
		messages = append(messages, n.Message)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementf(`<div id="preview">%s</div>`, preview); err != nil {
		logx.Errorf("datastar patch preview: %v", err)
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{
		"loading": false,
		"result":  strings.Join(messages, " "),
	}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleContrast(w http.ResponseWriter, r *http.Request) {
	var signals struct {
		Family string `json:"family"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	styles := h.svcCtx.Catalog.StylesFor(signals.Family)
	h.sendDatastarSignals(w, r, map[string]any{
		"contrastSteps": font.SuggestContrastSteps(len(styles)),
	})
}

func (h *Handlers) handleConvertNode(w http.ResponseWriter, r *http.Request) {
	id := pathvar.Vars(r)["id"]

	var signals settingsSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	convID, err := h.svcCtx.Engine.Submit(r.Context(), []string{id}, signals.settings())
	if err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"result": "Error: " + err.Error(),
		})
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"result": fmt.Sprintf("Conversion queued with ID: %s", convID),
	})
}

func (h *Handlers) patchElements(sse *datastar.ServerSentEventGenerator, node g.Node) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		logx.Errorf("render fragment: %v", err)
		return
	}
	if err := sse.PatchElements(b.String()); err != nil {
		logx.Errorf("datastar patch elements: %v", err)
	}
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading": false,
		"error":   msg,
	})
}
