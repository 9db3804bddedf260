package types

import (
	"time"

	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

// NewRunInfos lists the coalesced font runs of doc.
func NewRunInfos(doc *host.Document) []RunInfo {
	runs := doc.Runs()
	infos := make([]RunInfo, 0, len(runs))
	for _, r := range runs {
		infos = append(infos, RunInfo{
			Start:  r.Start,
			End:    r.End,
			Family: r.Font.Family,
			Style:  r.Font.Style,
			Weight: r.Font.Weight(),
		})
	}
	return infos
}

// NewNodeResponse describes a stored node and its document.
func NewNodeResponse(node *model.Nodes, doc *host.Document) NodeResponse {
	return NodeResponse{
		Id:        node.Id,
		Name:      node.Name,
		Text:      node.Text,
		Runs:      NewRunInfos(doc),
		CreatedAt: node.CreatedAt.Format(time.RFC3339),
		UpdatedAt: node.UpdatedAt.Format(time.RFC3339),
	}
}

// NewNoticeInfo converts a conversion notice.
func NewNoticeInfo(n bionic.Notice) NoticeInfo {
	return NoticeInfo{
		Kind:    string(n.Kind),
		Level:   n.Level.String(),
		Node:    string(n.Node),
		Family:  n.Family,
		Message: n.Message,
	}
}

// NewConvertResponse converts a conversion summary.
func NewConvertResponse(s *bionic.Summary) *ConvertResponse {
	resp := &ConvertResponse{
		Nodes:     make([]NodeResultInfo, 0, len(s.Nodes)),
		Notices:   make([]NoticeInfo, 0, len(s.Notices)),
		Converted: s.Count(bionic.OutcomeConverted),
		Skipped:   s.Count(bionic.OutcomeSkipped),
		Failed:    s.Count(bionic.OutcomeFailed),
	}
	for _, r := range s.Nodes {
		info := NodeResultInfo{
			Node:       string(r.Node),
			Outcome:    string(r.Outcome),
			Path:       string(r.Path),
			Spans:      r.Spans,
			SkippedOps: r.SkippedOps,
		}
		if r.Base.Family != "" {
			info.Base = r.Base.String()
		}
		if r.Bold.Family != "" {
			info.Bold = r.Bold.String()
		}
		if r.Err != nil {
			info.Error = r.Err.Error()
		}
		resp.Nodes = append(resp.Nodes, info)
	}
	for _, n := range s.Notices {
		resp.Notices = append(resp.Notices, NewNoticeInfo(n))
	}
	return resp
}

// NewConversionResponse describes a queued conversion and its recorded events.
func NewConversionResponse(c *model.Conversions, events []*model.ConversionEvents) *ConversionResponse {
	resp := &ConversionResponse{
		Id:               c.Id,
		NodeIds:          model.ParseNodeIDs(c.NodeIds),
		FixationStrength: int(c.FixationStrength),
		Contrast:         int(c.Contrast),
		Status:           c.Status,
		Converted:        int(c.Converted),
		Skipped:          int(c.Skipped),
		Failed:           int(c.Failed),
		Attempts:         int(c.Attempts),
		Error:            model.NullStringValue(c.Error),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		Events:           make([]NoticeInfo, 0, len(events)),
	}
	if c.FinishedAt.Valid {
		resp.FinishedAt = c.FinishedAt.Time.Format(time.RFC3339)
	}
	for _, e := range events {
		resp.Events = append(resp.Events, NoticeInfo{
			Kind:      e.Kind,
			Level:     e.Level,
			Node:      e.NodeId,
			Message:   e.Message,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		})
	}
	return resp
}
