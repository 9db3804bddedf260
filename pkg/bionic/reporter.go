package bionic

import (
	"sync"

	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/log"
)

// Level is the severity of a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// NoticeKind classifies what a Notice is about.
type NoticeKind string

const (
	NoticeConverted          NoticeKind = "converted"
	NoticeNoSelection        NoticeKind = "no_selection"
	NoticeMixedFonts         NoticeKind = "mixed_fonts"
	NoticeMultipleWeights    NoticeKind = "multiple_weights"
	NoticeInsufficientWeight NoticeKind = "insufficient_weights"
	NoticeNoHeavierWeight    NoticeKind = "no_heavier_weight"
	NoticeFontLoadFailed     NoticeKind = "font_load_failed"
	NoticeNoSuitableFonts    NoticeKind = "no_suitable_fonts"
	NoticeNodeFailed         NoticeKind = "node_failed"
)

// Notice is a user-facing message produced during a conversion.
type Notice struct {
	Kind    NoticeKind  `json:"kind"`
	Level   Level       `json:"level"`
	Node    host.NodeID `json:"node,omitempty"`
	Family  string      `json:"family,omitempty"`
	Message string      `json:"message"`
}

// Reporter receives notices as a conversion progresses.
type Reporter interface {
	Report(Notice)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Notice)

func (f ReporterFunc) Report(n Notice) { f(n) }

// LogReporter writes notices to the package logger.
type LogReporter struct{}

func (LogReporter) Report(n Notice) {
	args := []any{"kind", n.Kind, "node", n.Node}
	if n.Family != "" {
		args = append(args, "family", n.Family)
	}
	switch n.Level {
	case LevelError:
		log.Error(n.Message, args...)
	case LevelWarning:
		log.Warn(n.Message, args...)
	default:
		log.Info(n.Message, args...)
	}
}

// Collector keeps every notice it receives.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func (c *Collector) Report(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

// Notices returns the notices received so far.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// multiReporter fans a notice out to several reporters.
type multiReporter []Reporter

func (m multiReporter) Report(n Notice) {
	for _, r := range m {
		r.Report(n)
	}
}

// MultiReporter returns a Reporter that forwards to every non-nil reporter.
func MultiReporter(reporters ...Reporter) Reporter {
	var m multiReporter
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}
