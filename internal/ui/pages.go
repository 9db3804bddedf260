// Package ui provides the Datastar-based web UI for plat-bionic.
package ui

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"

	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/pkg/export"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

const sampleText = "Bionic reading guides the eye through text by setting the first letters of every word in bold."

// NodeView is a stored node prepared for display.
type NodeView struct {
	ID        string
	Name      string
	Doc       *host.Document
	UpdatedAt time.Time
}

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.Doctype(h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("plat-bionic")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Dashboard")),
					h.A(h.Href("/playground"), g.Text("Playground")),
					h.A(h.Href("/nodes"), g.Text("Nodes")),
					h.A(h.Href("/conversions"), g.Text("Conversions")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-bionic - Bionic Reading Converter"),
			),
		),
	))
}

// Dashboard renders the main dashboard page.
func Dashboard() g.Node {
	return Layout("Dashboard - plat-bionic",
		data.Signals(map[string]any{
			"stats":   map[string]int{},
			"nodes":   0,
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),

		h.H1(g.Text("Bionic Dashboard")),

		h.Div(h.Class("stats-grid"),
			h.Div(h.Class("stat-card"),
				h.Div(h.Class("stat-value"), data.Text("$nodes || 0")),
				h.Div(h.Class("stat-label"), g.Text("Nodes")),
			),
			StatCard(model.StatusPending, "Pending"),
			StatCard(model.StatusProcessing, "Processing"),
			StatCard(model.StatusDone, "Done"),
			StatCard(model.StatusFailed, "Failed"),
		),

		h.Div(h.Class("section"),
			h.H2(g.Text("Quick Actions")),
			h.Div(h.Class("actions"),
				h.A(h.Href("/playground"), h.Button(g.Text("Try the Playground"))),
				h.A(h.Href("/nodes"), h.Button(g.Text("Convert Nodes"))),
				h.A(h.Href("/conversions"), h.Button(g.Text("View Conversions"))),
			),
		),

		h.Div(h.Class("section"),
			h.H2(g.Text("Recent Activity")),
			data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),
			h.Div(h.ID("recent-list"),
				data.Show("!$loading"),
				h.P(g.Text("Stats loaded. Check conversions for details.")),
			),
			h.Div(
				data.Show("$loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading..."),
			),
		),
	)
}

// StatCard renders a statistics card.
func StatCard(key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$stats."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// settingsFields renders the fixation and contrast inputs bound to signals.
func settingsFields(onChange string) g.Node {
	return g.Group([]g.Node{
		h.Div(h.Class("form-group"),
			h.Label(h.For("fixation"), g.Text("Fixation strength "), h.Span(data.Text("$fixation + '%'"))),
			h.Input(h.ID("fixation"), h.Type("range"), g.Attr("min", "1"), g.Attr("max", "100"), data.Bind("fixation"),
				g.If(onChange != "", data.On("change", onChange)),
			),
		),
		h.Div(h.Class("form-group"),
			h.Label(h.For("contrast"), g.Text("Contrast")),
			h.Input(h.ID("contrast"), h.Type("number"), g.Attr("min", "0"), g.Attr("max", "900"), g.Attr("step", "50"), data.Bind("contrast"),
				g.If(onChange != "", data.On("change", onChange)),
			),
			h.P(h.Class("hint"), data.Text("'Suggested: ' + $contrastSteps.join(', ')")),
		),
	})
}

// PlaygroundPage renders the live conversion page.
func PlaygroundPage(families []string) g.Node {
	family := "Inter"
	if len(families) > 0 {
		family = families[0]
	}

	options := make([]g.Node, 0, len(families))
	for _, f := range families {
		options = append(options, h.Option(h.Value(f), g.Text(f)))
	}

	preview := "@post('/api/preview')"

	return Layout("Playground - plat-bionic",
		data.Signals(map[string]any{
			"text":          sampleText,
			"family":        family,
			"style":         "Regular",
			"fixation":      50,
			"contrast":      300,
			"contrastSteps": []int{300, 600, 900},
			"loading":       false,
			"result":        "",
		}),
		data.Init("@post('/api/contrast'); "+preview),

		h.H1(g.Text("Bionic Playground")),

		h.Div(h.Class("playground-grid"),
			h.Form(h.Class("convert-form"),
				data.On("submit", "event.preventDefault(); $loading = true; "+preview),

				h.Div(h.Class("form-group"),
					h.Label(h.For("text"), g.Text("Text")),
					h.Textarea(h.ID("text"), data.Bind("text"), h.Rows("6"), data.On("change", preview)),
				),

				h.Div(h.Class("form-group"),
					h.Label(h.For("family"), g.Text("Font family")),
					h.Select(h.ID("family"), data.Bind("family"),
						data.On("change", "@post('/api/contrast'); "+preview),
						g.Group(options),
					),
				),

				h.Div(h.Class("form-group"),
					h.Label(h.For("style"), g.Text("Current style")),
					h.Input(h.ID("style"), h.Type("text"), data.Bind("style"), h.Placeholder("Regular")),
				),

				settingsFields(preview),

				h.Button(h.Type("submit"),
					data.Attr("disabled", "$loading"),
					g.Text("Convert"),
				),
			),

			h.Div(h.Class("preview-panel"),
				h.H2(g.Text("Preview")),
				h.Div(h.ID("preview"),
					h.P(h.Class("hint"), g.Text("Converted text appears here")),
				),
				h.Div(h.Class("notices"),
					data.Show("$result"),
					data.Text("$result"),
				),
			),
		),
	)
}

// NodesPage renders the stored nodes page.
func NodesPage() g.Node {
	return Layout("Nodes - plat-bionic",
		data.Signals(map[string]any{
			"fixation":      50,
			"contrast":      300,
			"contrastSteps": []int{300, 600, 900},
			"loading":       true,
			"result":        "",
		}),
		data.Init("@get('/api/nodes')"),

		h.H1(g.Text("Text Nodes")),

		h.Div(h.Class("section"),
			h.H2(g.Text("Conversion Settings")),
			settingsFields(""),
			h.Div(h.Class("result"),
				data.Show("$result"),
				data.Text("$result"),
			),
		),

		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/nodes')", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		h.Div(h.Class("loading"),
			data.Show("$loading"),
			h.Span(h.Class("loading-spinner")),
			g.Text(" Loading nodes..."),
		),
		h.Div(h.ID("node-items"),
			data.Show("!$loading"),
		),
	)
}

// NodeItems renders the node list fragment patched into #node-items.
func NodeItems(nodes []NodeView) g.Node {
	if len(nodes) == 0 {
		return h.Div(h.ID("node-items"),
			h.P(h.Class("hint"), h.StyleAttr("padding:2rem;text-align:center;"),
				g.Text("No nodes stored yet. Create one with POST /api/v1/nodes."),
			),
		)
	}

	items := make([]g.Node, 0, len(nodes))
	for _, n := range nodes {
		name := n.Name
		if name == "" {
			name = n.ID
		}
		items = append(items, h.Div(h.Class("node-item"),
			h.H3(
				g.Text(name),
				h.Button(
					data.On("click", fmt.Sprintf("@post('/api/nodes/%s/convert')", n.ID)),
					g.Text("Convert"),
				),
			),
			export.HTML(n.Doc),
			h.Div(h.Class("meta"),
				g.Textf("%s | %s | updated %s", n.ID, strings.Join(n.Doc.Families(), ", "), n.UpdatedAt.Format("Jan 2 15:04")),
			),
		))
	}
	return h.Div(h.ID("node-items"), g.Group(items))
}

// ConversionsPage renders the conversion monitoring page.
func ConversionsPage() g.Node {
	filter := func(status, label string) g.Node {
		query := "/api/conversions"
		if status != "all" {
			query += "?status=" + status
		}
		return h.Button(
			data.On("click", fmt.Sprintf("$filter = '%s'; @get('%s')", status, query)),
			data.Class("active", fmt.Sprintf("$filter === '%s'", status)),
			g.Text(label),
		)
	}

	return Layout("Conversions - plat-bionic",
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/conversions')"),

		h.H1(g.Text("Conversions")),

		h.Div(h.Class("filter-bar"),
			filter("all", "All"),
			filter(model.StatusPending, "Pending"),
			filter(model.StatusProcessing, "Processing"),
			filter(model.StatusDone, "Done"),
			filter(model.StatusFailed, "Failed"),
		),

		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/conversions?status=' + ($filter === 'all' ? '' : $filter))", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		h.Div(h.Class("queue-list"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading conversions..."),
			),
		),
		h.Div(h.ID("conversion-items"),
			data.Show("!$loading"),
		),
	)
}

// ConversionItems renders the conversion table fragment patched into #conversion-items.
func ConversionItems(convs []*model.Conversions) g.Node {
	if len(convs) == 0 {
		return h.Div(h.ID("conversion-items"),
			h.P(h.Class("hint"), h.StyleAttr("padding:2rem;text-align:center;"), g.Text("No conversions yet")),
		)
	}

	rows := make([]g.Node, 0, len(convs))
	for _, c := range convs {
		rows = append(rows, h.Tr(
			h.Td(g.Text(c.Id)),
			h.Td(g.Textf("%d", len(model.ParseNodeIDs(c.NodeIds)))),
			h.Td(g.Textf("%d%% / %d", c.FixationStrength, c.Contrast)),
			h.Td(h.Span(h.Class("status-"+c.Status), g.Text(c.Status))),
			h.Td(g.Textf("%d / %d / %d", c.Converted, c.Skipped, c.Failed)),
			h.Td(g.Text(model.NullStringValue(c.Error))),
			h.Td(g.Text(c.CreatedAt.Format("Jan 2 15:04"))),
		))
	}

	return h.Div(h.ID("conversion-items"),
		h.Table(h.Class("conversions"),
			h.THead(h.Tr(
				h.Th(g.Text("ID")),
				h.Th(g.Text("Nodes")),
				h.Th(g.Text("Fixation / Contrast")),
				h.Th(g.Text("Status")),
				h.Th(g.Text("Converted / Skipped / Failed")),
				h.Th(g.Text("Error")),
				h.Th(g.Text("Created")),
			)),
			h.TBody(g.Group(rows)),
		),
	)
}

const styles = `
:root {
	--accent: #0f766e; --accent-dark: #115e59; --ok: #15803d; --warn: #b45309; --bad: #b91c1c;
	--bg: #f5f5f4; --panel: #fff; --ink: #1c1917; --muted: #78716c; --line: #e7e5e4;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, sans-serif; background: var(--bg); color: var(--ink); line-height: 1.6; }
h1 { margin-bottom: 1.25rem; }
h2 { margin-bottom: 0.75rem; font-size: 1.2rem; }

.navbar { display: flex; justify-content: space-between; align-items: center; padding: 0.9rem 2rem; background: var(--accent); color: #fff; }
.nav-brand { font-size: 1.4rem; font-weight: 700; }
.nav-links a { color: #fff; text-decoration: none; margin-left: 1.5rem; opacity: 0.85; }
.nav-links a:hover { opacity: 1; }
.container { max-width: 1100px; margin: 0 auto; padding: 2rem; }
.footer { text-align: center; padding: 1.5rem; color: var(--muted); border-top: 1px solid var(--line); }

.section, .preview-panel, .convert-form, .queue-list, .stat-card {
	background: var(--panel); border: 1px solid var(--line); border-radius: 10px;
}
.section, .preview-panel { padding: 1.25rem; margin-bottom: 1.25rem; }
.convert-form { padding: 1.5rem; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 1rem; margin-bottom: 1.5rem; }
.stat-card { padding: 1.25rem; text-align: center; }
.stat-value { font-size: 2.2rem; font-weight: 700; color: var(--accent); }
.stat-label { color: var(--muted); font-size: 0.8rem; text-transform: uppercase; letter-spacing: 0.05em; }
.actions, .filter-bar { display: flex; gap: 0.75rem; flex-wrap: wrap; margin-bottom: 0.75rem; }

button { background: var(--accent); color: #fff; border: 0; border-radius: 6px; padding: 0.6rem 1.2rem; font-size: 0.95rem; cursor: pointer; }
button:hover { background: var(--accent-dark); }
button:disabled { background: var(--muted); cursor: not-allowed; }

.playground-grid { display: grid; grid-template-columns: 340px 1fr; gap: 1.25rem; }
.form-group { margin-bottom: 1.25rem; }
.form-group label { display: block; margin-bottom: 0.4rem; font-weight: 500; }
.form-group input, .form-group select, .form-group textarea {
	width: 100%; padding: 0.6rem; border: 1px solid var(--line); border-radius: 6px; font-size: 1rem;
}
.form-group input:focus, .form-group select:focus, .form-group textarea:focus { outline: 2px solid var(--accent); border-color: transparent; }

p.bionic { font-size: 1.15rem; line-height: 1.8; margin: 0.5rem 0; }
.node-item { padding: 1rem; border: 1px solid var(--line); border-radius: 6px; margin-bottom: 0.75rem; }
.node-item h3 { display: flex; justify-content: space-between; align-items: center; font-size: 1rem; }
.node-item .meta, .refresh-bar, .notices { font-size: 0.8rem; color: var(--muted); }
.notices { margin-top: 0.75rem; }
.hint { color: var(--muted); font-style: italic; }
.result { margin-top: 1rem; padding: 1rem; border-radius: 6px; background: var(--bg); }
.loading { padding: 1.5rem; text-align: center; color: var(--muted); }
.loading-spinner {
	display: inline-block; width: 14px; height: 14px; border-radius: 50%;
	border: 2px solid var(--line); border-top-color: var(--accent); animation: spin 1s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }

table.conversions { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
table.conversions th, table.conversions td { text-align: left; padding: 0.6rem 0.9rem; border-bottom: 1px solid var(--line); }
table.conversions th { color: var(--muted); }
.status-pending { color: var(--warn); font-weight: 600; }
.status-processing { color: var(--accent); font-weight: 600; }
.status-done { color: var(--ok); font-weight: 600; }
.status-failed { color: var(--bad); font-weight: 600; }

@media (max-width: 768px) {
	.playground-grid { grid-template-columns: 1fr; }
	.nav-links a { margin-left: 1rem; }
}
`
