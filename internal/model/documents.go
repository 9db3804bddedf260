package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

// DocumentStore reads and writes nodes together with their font runs.
type DocumentStore struct {
	conn  sqlx.SqlConn
	Nodes NodesModel
	Runs  NodeRunsModel
}

// NewDocumentStore returns a store over conn.
func NewDocumentStore(conn sqlx.SqlConn) *DocumentStore {
	return &DocumentStore{
		conn:  conn,
		Nodes: NewNodesModel(conn),
		Runs:  NewNodeRunsModel(conn),
	}
}

// Create stores a new node and returns its ID.
func (s *DocumentStore) Create(ctx context.Context, name string, doc *host.Document) (string, error) {
	id := uuid.New().String()
	err := s.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		if _, err := s.Nodes.withSession(session).Insert(ctx, &Nodes{Id: id, Name: name, Text: doc.Text()}); err != nil {
			return fmt.Errorf("insert node: %w", err)
		}
		return insertRuns(ctx, s.Runs.withSession(session), id, doc.Runs())
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Document loads the stored document of a node. Unknown nodes return ErrNotFound.
func (s *DocumentStore) Document(ctx context.Context, id string) (*host.Document, error) {
	node, err := s.Nodes.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.Runs.FindByNode(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find runs: %w", err)
	}

	runs := make([]host.Run, 0, len(rows))
	for _, r := range rows {
		runs = append(runs, host.Run{
			Start: int(r.StartOffset),
			End:   int(r.EndOffset),
			Font:  font.FontName{Family: r.Family, Style: r.Style},
		})
	}

	doc, err := host.FromRuns(node.Text, runs)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", id, err)
	}
	return doc, nil
}

// Save replaces the runs of an existing node with the runs of doc.
func (s *DocumentStore) Save(ctx context.Context, id string, doc *host.Document) error {
	return s.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		runs := s.Runs.withSession(session)
		if err := runs.DeleteByNode(ctx, id); err != nil {
			return fmt.Errorf("delete runs: %w", err)
		}
		if err := insertRuns(ctx, runs, id, doc.Runs()); err != nil {
			return err
		}
		return s.Nodes.withSession(session).Touch(ctx, id)
	})
}

// LoadInto adds the documents of ids to h. Missing nodes fail with ErrNotFound.
func (s *DocumentStore) LoadInto(ctx context.Context, h *host.MemoryHost, ids []host.NodeID) error {
	for _, id := range ids {
		doc, err := s.Document(ctx, string(id))
		if err != nil {
			return fmt.Errorf("load node %s: %w", id, err)
		}
		h.Add(id, doc)
	}
	return nil
}

// SaveFrom writes the documents of ids held by h back to the store.
func (s *DocumentStore) SaveFrom(ctx context.Context, h *host.MemoryHost, ids []host.NodeID) error {
	var errs []error
	for _, id := range ids {
		doc, ok := h.Document(id)
		if !ok {
			continue
		}
		if err := s.Save(ctx, string(id), doc); err != nil {
			errs = append(errs, fmt.Errorf("save node %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func insertRuns(ctx context.Context, m NodeRunsModel, nodeID string, runs []host.Run) error {
	for _, r := range runs {
		if _, err := m.Insert(ctx, &NodeRuns{
			NodeId:      nodeID,
			StartOffset: int64(r.Start),
			EndOffset:   int64(r.End),
			Family:      r.Font.Family,
			Style:       r.Font.Style,
		}); err != nil {
			return fmt.Errorf("insert run [%d,%d): %w", r.Start, r.End, err)
		}
	}
	return nil
}
