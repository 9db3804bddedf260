// Package export renders styled documents for display outside a host:
// as HTML spans built with gomponents, and as responsive email via MJML.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

// Spans renders every run of doc as a span carrying its family and weight.
func Spans(doc *host.Document) []g.Node {
	text := []rune(doc.Text())
	runs := doc.Runs()

	nodes := make([]g.Node, 0, len(runs))
	for _, run := range runs {
		nodes = append(nodes, h.Span(
			h.StyleAttr(runStyle(run.Font)),
			g.Text(string(text[run.Start:run.End])),
		))
	}
	return nodes
}

// HTML renders doc as a paragraph of styled spans. Line breaks in the text
// are preserved.
func HTML(doc *host.Document) g.Node {
	return h.P(h.Class("bionic"),
		h.StyleAttr("white-space: pre-wrap;"),
		g.Group(Spans(doc)),
	)
}

// Page wraps documents in a standalone HTML page.
func Page(title string, docs ...*host.Document) g.Node {
	body := make([]g.Node, 0, len(docs))
	for _, doc := range docs {
		body = append(body, HTML(doc))
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.StyleEl(h.Type("text/css"), g.Raw(pageStyles)),
			),
			h.Body(
				h.Main(g.Group(body)),
			),
		),
	)
}

// RenderHTML renders doc's paragraph to a string.
func RenderHTML(doc *host.Document) (string, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := HTML(doc).Render(&buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	renderDuration.ObserveFloat(time.Since(start).Seconds(), formatHTML)
	return buf.String(), nil
}

func runStyle(f font.FontName) string {
	return fmt.Sprintf("font-family: %s; font-weight: %d;", FontStack(f.Family), f.Weight())
}

// FontStack returns a CSS font stack for family with email-safe fallbacks.
func FontStack(family string) string {
	lower := strings.ToLower(family)
	stack := fmt.Sprintf("'%s'", strings.ReplaceAll(family, "'", ""))

	switch {
	case strings.Contains(lower, "serif") && !strings.Contains(lower, "sans"):
		return stack + ", Georgia, 'Times New Roman', Times, serif"
	case strings.Contains(lower, "mono") || strings.Contains(lower, "code") || strings.Contains(lower, "courier"):
		return stack + ", 'Courier New', Courier, 'Lucida Console', monospace"
	default:
		return stack + ", Arial, Helvetica, sans-serif"
	}
}

const pageStyles = `
body {
	background: #f8fafc;
	color: #1e293b;
	line-height: 1.6;
}

main {
	max-width: 720px;
	margin: 0 auto;
	padding: 2rem;
}

.bionic {
	font-size: 1.125rem;
	margin-bottom: 1.5rem;
}
`
