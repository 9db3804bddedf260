package bionic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

// heterogeneityMinLength is the length above which a single-font node is
// sampled for several weights.
const heterogeneityMinLength = 10

// preloadTokens name the weights warmed up for families with many styles.
var preloadTokens = []string{"regular", "medium", "bold", "black"}

// Outcome is what happened to one node.
type Outcome string

const (
	OutcomeConverted Outcome = "converted"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Path names the algorithm a node went through.
type Path string

const (
	PathSingle Path = "single"
	PathMixed  Path = "mixed"
)

// NodeResult describes the conversion of one node.
type NodeResult struct {
	Node    host.NodeID `json:"node"`
	Outcome Outcome     `json:"outcome"`
	Path    Path        `json:"path,omitempty"`
	// Base and Bold are set for nodes converted in a single family.
	Base font.FontName `json:"base"`
	Bold font.FontName `json:"bold"`
	// Spans counts the words styled on the mixed path.
	Spans int `json:"spans,omitempty"`
	// SkippedOps counts style operations dropped after a font or range failure.
	SkippedOps int   `json:"skippedOps,omitempty"`
	Err        error `json:"-"`
}

// Summary is the result of a Convert call.
type Summary struct {
	Nodes   []NodeResult `json:"nodes"`
	Notices []Notice     `json:"notices"`
}

// Count returns how many nodes ended with the given outcome.
func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Nodes {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Converter applies bionic styling to nodes of a host.
type Converter struct {
	host     host.Host
	reporter Reporter
	preload  bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithReporter sends notices to r in addition to the returned Summary.
func WithReporter(r Reporter) Option {
	return func(c *Converter) {
		c.reporter = r
	}
}

// WithPreload controls warming up common weights of rich families before styling.
func WithPreload(enabled bool) Option {
	return func(c *Converter) {
		c.preload = enabled
	}
}

// NewConverter creates a converter over h.
func NewConverter(h host.Host, opts ...Option) *Converter {
	c := &Converter{
		host:     h,
		reporter: LogReporter{},
		preload:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert styles each node in turn. A failing node is reported and does not
// stop the others; the error return is reserved for requests that cannot
// start at all (no nodes, invalid settings).
func (c *Converter) Convert(ctx context.Context, nodes []host.NodeID, s Settings) (*Summary, error) {
	run := &conversion{host: c.host, reporter: c.reporter, preload: c.preload, settings: s}

	if len(nodes) == 0 {
		run.notify(Notice{Kind: NoticeNoSelection, Level: LevelError, Message: "Please select at least one text layer"})
		return nil, ErrNoSelection
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, node := range nodes {
		summary.Nodes = append(summary.Nodes, run.convertNode(ctx, node))
	}

	run.notify(Notice{Kind: NoticeConverted, Level: LevelInfo, Message: "Text converted to bionic reading format!"})
	summary.Notices = run.notices
	return summary, nil
}

// conversion holds the state of one Convert call.
type conversion struct {
	host     host.Host
	reporter Reporter
	preload  bool
	settings Settings
	notices  []Notice
}

func (r *conversion) notify(n Notice) {
	r.notices = append(r.notices, n)
	if r.reporter != nil {
		r.reporter.Report(n)
	}
}

// convertNode isolates one node: errors and panics end up in its result.
func (r *conversion) convertNode(ctx context.Context, node host.NodeID) (res NodeResult) {
	defer func() {
		if p := recover(); p != nil {
			res = NodeResult{Node: node, Outcome: OutcomeFailed, Err: fmt.Errorf("panic: %v", p)}
		}
		if res.Outcome == OutcomeFailed {
			r.notify(Notice{
				Kind:    NoticeNodeFailed,
				Level:   LevelError,
				Node:    node,
				Message: "Error processing text: " + res.Err.Error(),
			})
		}
	}()

	return r.processNode(ctx, node)
}

func (r *conversion) processNode(ctx context.Context, node host.NodeID) NodeResult {
	length := r.host.CharacterLength(node)
	if length == 0 {
		return skipped(node, ErrEmptyNode)
	}

	first := r.host.StyleAt(ctx, node, 0, 1)
	switch first.Kind {
	case host.StyleMixed:
		r.notify(Notice{Kind: NoticeMixedFonts, Level: LevelInfo, Node: node, Message: "Mixed fonts detected. Using available fonts."})
		return r.convertMixed(ctx, node, length)
	case host.StyleUnavailable:
		return failed(node, fmt.Errorf("read style: %w", first.Err))
	}

	// Checked before the family's weights so that a node starting in a
	// family that cannot be bolded still converts its other families.
	if r.hasMultipleWeights(ctx, node, length) {
		r.notify(Notice{Kind: NoticeMultipleWeights, Level: LevelInfo, Node: node, Message: "Multiple font weights detected. Using the lightest weight as base."})
		return r.convertMixed(ctx, node, length)
	}

	family := first.Font.Family
	styles, err := host.StylesFor(ctx, r.host, family)
	if err != nil {
		return failed(node, fmt.Errorf("list fonts: %w", err))
	}
	if len(styles) < font.MinStylesForContrast {
		r.notify(Notice{
			Kind:   NoticeInsufficientWeight,
			Level:  LevelWarning,
			Node:   node,
			Family: family,
			Message: fmt.Sprintf("The font %q only has %d weight(s) available. At least %d weights are needed for bionic reading.",
				family, len(styles), font.MinStylesForContrast),
		})
		return skipped(node, fmt.Errorf("%s: %w", family, ErrInsufficientWeights))
	}

	return r.convertSingle(ctx, node, family, first.Font.Style, styles)
}

func (r *conversion) convertSingle(ctx context.Context, node host.NodeID, family, current string, styles []string) NodeResult {
	base := font.FontName{Family: family, Style: font.ChooseBase(styles, current)}
	bold := font.FontName{Family: family, Style: font.ChooseBold(styles, r.settings.Contrast, base.Style)}

	if !font.HeavierThan(bold.Style, base.Style) {
		r.notify(Notice{
			Kind:    NoticeNoHeavierWeight,
			Level:   LevelWarning,
			Node:    node,
			Family:  family,
			Message: fmt.Sprintf("The font %q has no weight heavier than %q.", family, base.Style),
		})
		return skipped(node, fmt.Errorf("%s: %w", family, ErrInsufficientWeights))
	}

	for _, f := range []font.FontName{base, bold} {
		if err := r.host.LoadFont(ctx, f); err != nil {
			r.notify(Notice{
				Kind:    NoticeFontLoadFailed,
				Level:   LevelError,
				Node:    node,
				Family:  family,
				Message: fmt.Sprintf("Could not load required font weights for %q: %v", family, err),
			})
			return skipped(node, fmt.Errorf("%s: %w: %w", f, ErrFontLoad, err))
		}
	}
	log.Debug("Resolved weights", "node", node, "family", family, "base", base.Style, "bold", bold.Style)

	if r.preload && len(styles) > 2 {
		r.preloadWeights(ctx, family, styles, base.Style, bold.Style)
	}

	ops := PlanSingle(r.host.Text(node), family, base.Style, bold.Style, r.settings)
	for _, op := range ops {
		if err := r.host.SetStyleRange(node, op.Start, op.End, op.Font); err != nil {
			return failed(node, fmt.Errorf("apply [%d,%d) %s: %w", op.Start, op.End, op.Font, err))
		}
	}

	return NodeResult{Node: node, Outcome: OutcomeConverted, Path: PathSingle, Base: base, Bold: bold}
}

// preloadWeights warms up the common weights of a family. Failures are ignored.
func (r *conversion) preloadWeights(ctx context.Context, family string, styles []string, skip ...string) {
	for _, style := range styles {
		if !hasAnyToken(style, preloadTokens) || slices.Contains(skip, style) {
			continue
		}
		if err := r.host.LoadFont(ctx, font.FontName{Family: family, Style: style}); err != nil {
			log.Debug("Error preloading additional weight", "family", family, "style", style, "error", err)
		}
	}
}

// hasMultipleWeights samples the first, middle and last characters of a long
// node and reports whether two neighbouring samples use different fonts. It is
// a heuristic: weights that change between samples go unnoticed.
func (r *conversion) hasMultipleWeights(ctx context.Context, node host.NodeID, length int) bool {
	if length <= heterogeneityMinLength {
		return false
	}

	positions := []int{0, length / 2, length - 1}
	for i := 0; i < len(positions)-1; i++ {
		a := r.host.StyleAt(ctx, node, positions[i], positions[i]+1)
		b := r.host.StyleAt(ctx, node, positions[i+1], positions[i+1]+1)
		if a.Kind == host.StyleUnavailable || b.Kind == host.StyleUnavailable {
			log.Debug("Error checking for multiple weights", "node", node, "error", errors.Join(a.Err, b.Err))
			return false
		}
		if a.IsKnown() && b.IsKnown() && a.Font != b.Font {
			return true
		}
	}
	return false
}

func skipped(node host.NodeID, err error) NodeResult {
	return NodeResult{Node: node, Outcome: OutcomeSkipped, Err: err}
}

func failed(node host.NodeID, err error) NodeResult {
	return NodeResult{Node: node, Outcome: OutcomeFailed, Err: err}
}

func hasAnyToken(style string, tokens []string) bool {
	lower := strings.ToLower(style)
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
