package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/mcp"

	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/export"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

// settingsSchema describes the conversion settings shared by the convert tools.
var settingsSchema = map[string]any{
	"fixationStrength": map[string]any{
		"type":        "integer",
		"minimum":     1,
		"maximum":     100,
		"description": "Percentage of each word set in bold (default 50)",
	},
	"contrast": map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     900,
		"description": "Requested weight gap between base and bold (default 300)",
	},
}

// settingsArgs are the conversion settings as tool arguments.
type settingsArgs struct {
	FixationStrength int `json:"fixationStrength,default=50"`
	Contrast         int `json:"contrast,default=300"`
}

func (a settingsArgs) settings() bionic.Settings {
	s := bionic.Settings{FixationStrength: a.FixationStrength, Contrast: a.Contrast}
	if s.FixationStrength == 0 {
		s.FixationStrength = bionic.DefaultSettings().FixationStrength
	}
	return s
}

// RegisterMCPTools registers all MCP tools for bionic conversion.
func RegisterMCPTools(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	registerConvertTextTool(s, svcCtx)
	registerConvertNodesTool(s, svcCtx)
	registerSuggestContrastTool(s, svcCtx)
	registerListFontStylesTool(s, svcCtx)
	registerWeightOfTool(s)
	registerFontsResource(s, svcCtx)
}

func withSettings(props map[string]any) map[string]any {
	for k, v := range settingsSchema {
		props[k] = v
	}
	return props
}

func registerConvertTextTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "convert_text",
		Description: "Convert plain text to bionic reading format. Returns the styled runs and an HTML rendering.",
		InputSchema: mcp.InputSchema{
			Properties: withSettings(map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Text to convert",
				},
				"family": map[string]any{
					"type":        "string",
					"description": "Font family the text is set in (e.g., Inter, Roboto)",
				},
				"style": map[string]any{
					"type":        "string",
					"description": "Current style of the text (default Regular)",
				},
			}),
			Required: []string{"text", "family"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				settingsArgs
				Text   string `json:"text"`
				Family string `json:"family"`
				Style  string `json:"style,default=Regular"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
			if args.Style == "" {
				args.Style = "Regular"
			}

			doc, summary, err := bionic.ConvertText(ctx, svcCtx.Catalog, args.Text,
				font.FontName{Family: args.Family, Style: args.Style}, args.settings())
			if err != nil {
				return nil, fmt.Errorf("convert failed: %w", err)
			}

			html, err := export.RenderHTML(doc)
			if err != nil {
				return nil, fmt.Errorf("render failed: %w", err)
			}

			return map[string]any{
				"runs":    types.NewRunInfos(doc),
				"html":    html,
				"summary": types.NewConvertResponse(summary),
			}, nil
		},
	})
}

func registerConvertNodesTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "convert_nodes",
		Description: "Convert stored text nodes to bionic reading format and save the result.",
		InputSchema: mcp.InputSchema{
			Properties: withSettings(map[string]any{
				"nodeIds": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "IDs of the stored nodes to convert",
				},
			}),
			Required: []string{"nodeIds"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				settingsArgs
				NodeIds []string `json:"nodeIds"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			summary, err := svcCtx.Engine.ConvertNow(ctx, args.NodeIds, args.settings())
			if err != nil {
				return nil, fmt.Errorf("convert failed: %w", err)
			}
			return types.NewConvertResponse(summary), nil
		},
	})
}

func registerSuggestContrastTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "suggest_contrast",
		Description: "Suggest contrast values from the weights available to stored nodes or to a font family.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"nodeIds": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "IDs of stored nodes to survey",
				},
				"family": map[string]any{
					"type":        "string",
					"description": "Font family to survey when no nodes are given",
				},
			},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				NodeIds []string `json:"nodeIds,optional"`
				Family  string   `json:"family,optional"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if len(args.NodeIds) == 0 {
				if args.Family == "" {
					return nil, bionic.ErrNoSelection
				}
				styles := svcCtx.Catalog.StylesFor(args.Family)
				return bionic.ContrastOptions{
					Steps:      font.SuggestContrastSteps(len(styles)),
					MaxWeights: len(styles),
				}, nil
			}

			nodes := make([]host.NodeID, len(args.NodeIds))
			for i, id := range args.NodeIds {
				nodes[i] = host.NodeID(id)
			}
			h := host.NewMemoryHost(font.NewManagerWithCatalog(svcCtx.Catalog))
			if err := svcCtx.Docs.LoadInto(ctx, h, nodes); err != nil {
				return nil, err
			}
			return bionic.Analyze(ctx, h, nodes), nil
		},
	})
}

func registerListFontStylesTool(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterTool(mcp.Tool{
		Name:        "list_font_styles",
		Description: "List the styles of a font family with their numeric weights.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"family": map[string]any{
					"type":        "string",
					"description": "Font family name (matched exactly, then ignoring case)",
				},
			},
			Required: []string{"family"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Family string `json:"family"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			styles := svcCtx.Catalog.StylesFor(args.Family)
			if len(styles) == 0 {
				return nil, fmt.Errorf("font family not found: %s", args.Family)
			}

			result := make([]types.FontStyleInfo, 0, len(styles))
			for _, style := range styles {
				result = append(result, types.FontStyleInfo{Style: style, Weight: font.WeightToNumber(style)})
			}
			return map[string]any{
				"family": args.Family,
				"styles": result,
				"count":  len(result),
			}, nil
		},
	})
}

func registerWeightOfTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "weight_of",
		Description: "Map a font style name such as \"Semi Bold\" or \"650\" to its numeric weight (100-900).",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Style name",
				},
			},
			Required: []string{"name"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Name string `json:"name"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			return map[string]any{
				"name":   args.Name,
				"weight": font.WeightToNumber(args.Name),
			}, nil
		},
	})
}

func registerFontsResource(s mcp.McpServer, svcCtx *svc.ServiceContext) {
	s.RegisterResource(mcp.Resource{
		Name:        "fonts",
		URI:         "bionic://fonts",
		Description: "Font families available for bionic conversion",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			var b strings.Builder
			b.WriteString("Available font families:\n")
			for _, family := range svcCtx.Catalog.Families() {
				fmt.Fprintf(&b, "- %s: %s\n", family, strings.Join(svcCtx.Catalog.StylesFor(family), ", "))
			}

			return mcp.ResourceContent{
				URI:      "bionic://fonts",
				MimeType: "text/plain",
				Text:     b.String(),
			}, nil
		},
	})
}
