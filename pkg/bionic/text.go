package bionic

import (
	"context"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

// textNode is the node ID used by ConvertText.
const textNode host.NodeID = "text"

// ConvertText converts a standalone text set entirely in f, using the fonts
// listed by catalog. It returns the styled document and the summary of its
// single node.
func ConvertText(ctx context.Context, catalog *font.Catalog, text string, f font.FontName, s Settings, opts ...Option) (*host.Document, *Summary, error) {
	doc := host.NewDocument(text, f)
	h := host.NewMemoryHost(font.NewManagerWithCatalog(catalog))
	h.Add(textNode, doc)

	summary, err := NewConverter(h, opts...).Convert(ctx, []host.NodeID{textNode}, s)
	if err != nil {
		return nil, nil, err
	}
	return doc, summary, nil
}
