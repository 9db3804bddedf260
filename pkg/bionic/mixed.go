package bionic

import (
	"context"
	"fmt"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

// discoverySamples is the approximate number of offsets sampled to find the
// families used in a mixed node.
const discoverySamples = 20

// convertMixed styles a node whose fonts vary along its length. Each word is
// styled in its own family; words in families that cannot be bolded keep
// their original styling.
func (r *conversion) convertMixed(ctx context.Context, node host.NodeID, length int) NodeResult {
	families := r.discoverFamilies(ctx, node, length)
	if len(families) == 0 {
		r.notify(Notice{Kind: NoticeNoSuitableFonts, Level: LevelError, Node: node, Message: "No suitable fonts found in text node"})
		return skipped(node, ErrNoSuitableFonts)
	}

	spans := r.collectSpans(ctx, node, families)
	res := NodeResult{Node: node, Outcome: OutcomeConverted, Path: PathMixed, Spans: len(spans)}

	failedFonts := make(map[font.FontName]struct{})
	for _, op := range PlanMixed(spans, r.settings) {
		if err := r.host.LoadFont(ctx, op.Font); err != nil {
			res.SkippedOps++
			if _, seen := failedFonts[op.Font]; !seen {
				failedFonts[op.Font] = struct{}{}
				r.notify(Notice{
					Kind:    NoticeFontLoadFailed,
					Level:   LevelWarning,
					Node:    node,
					Family:  op.Font.Family,
					Message: fmt.Sprintf("Could not load %q: %v", op.Font, err),
				})
			}
			continue
		}
		if err := r.host.SetStyleRange(node, op.Start, op.End, op.Font); err != nil {
			res.SkippedOps++
			log.Warn("Couldn't style segment", "node", node, "start", op.Start, "end", op.End, "font", op.Font.String(), "error", err)
		}
	}

	return res
}

// discoverFamilies samples the node at evenly spaced offsets and returns the
// styles of every family found that offers at least two of them. Failed
// samples are skipped.
func (r *conversion) discoverFamilies(ctx context.Context, node host.NodeID, length int) map[string][]string {
	families := make(map[string][]string)
	checked := make(map[string]struct{})

	step := max(1, length/discoverySamples)
	for i := 0; i < length; i += step {
		sample := r.host.StyleAt(ctx, node, i, i+1)
		if sample.Kind == host.StyleUnavailable {
			log.Debug("Skipping sample", "node", node, "offset", i, "error", fmt.Errorf("%w: %w", ErrSampling, sample.Err))
			continue
		}
		if !sample.IsKnown() {
			continue
		}

		family := sample.Font.Family
		if _, seen := checked[family]; seen {
			continue
		}
		checked[family] = struct{}{}

		styles, err := host.StylesFor(ctx, r.host, family)
		if err != nil {
			log.Warn("Couldn't list styles", "node", node, "family", family, "error", err)
			continue
		}
		if len(styles) < font.MinStylesForContrast {
			r.notify(Notice{
				Kind:    NoticeInsufficientWeight,
				Level:   LevelWarning,
				Node:    node,
				Family:  family,
				Message: fmt.Sprintf("The font %q only has %d weight(s) available and was left unchanged.", family, len(styles)),
			})
			continue
		}
		families[family] = styles
	}

	return families
}

// collectSpans resolves base and bold styles for every word whose first
// character is set in a discovered family.
func (r *conversion) collectSpans(ctx context.Context, node host.NodeID, families map[string][]string) []WordSpan {
	var spans []WordSpan
	for _, w := range SplitWords(r.host.Text(node)) {
		style := r.host.StyleAt(ctx, node, w.Start, w.Start+1)
		if !style.IsKnown() {
			continue
		}
		styles, ok := families[style.Font.Family]
		if !ok {
			continue
		}

		base := font.ChooseBase(styles, style.Font.Style)
		spans = append(spans, WordSpan{
			Start:  w.Start,
			End:    w.End(),
			Family: style.Font.Family,
			Base:   base,
			Bold:   font.ChooseBold(styles, r.settings.Contrast, base),
		})
	}
	return spans
}
