package bionic

import (
	"context"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

// ContrastOptions are the contrast values worth offering for a selection.
type ContrastOptions struct {
	Steps      []int `json:"contrastSteps"`
	MaxWeights int   `json:"maxWeights"`
}

// Analyze surveys the families used by nodes and suggests contrast steps
// from the largest number of styles any of them offers. Nodes whose fonts
// vary are sampled at their first, middle and last characters. Query
// failures are logged and skipped.
func Analyze(ctx context.Context, h host.Host, nodes []host.NodeID) ContrastOptions {
	maxWeights := 0
	counted := make(map[string]int)

	count := func(family string) {
		n, ok := counted[family]
		if !ok {
			styles, err := host.StylesFor(ctx, h, family)
			if err != nil {
				log.Warn("Error analyzing weights", "family", family, "error", err)
				return
			}
			n = len(styles)
			counted[family] = n
			log.Debug("Available styles", "family", family, "styles", styles)
		}
		maxWeights = max(maxWeights, n)
	}

	for _, node := range nodes {
		length := h.CharacterLength(node)
		if length == 0 {
			continue
		}

		first := h.StyleAt(ctx, node, 0, 1)
		switch first.Kind {
		case host.StyleKnown:
			count(first.Font.Family)
		case host.StyleMixed:
			for _, pos := range []int{0, length / 2, length - 1} {
				if sample := h.StyleAt(ctx, node, pos, pos+1); sample.IsKnown() {
					count(sample.Font.Family)
				}
			}
		default:
			log.Warn("Error analyzing weights", "node", node, "error", first.Err)
		}
	}

	return ContrastOptions{
		Steps:      font.SuggestContrastSteps(maxWeights),
		MaxWeights: maxWeights,
	}
}
