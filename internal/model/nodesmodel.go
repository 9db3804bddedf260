package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ NodesModel = (*customNodesModel)(nil)

type (
	// NodesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customNodesModel.
	NodesModel interface {
		nodesModel
		withSession(session sqlx.Session) NodesModel
		List(ctx context.Context, limit int) ([]*Nodes, error)
		Touch(ctx context.Context, id string) error
		Count(ctx context.Context) (int, error)
	}

	customNodesModel struct {
		*defaultNodesModel
	}
)

// NewNodesModel returns a model for the database table.
func NewNodesModel(conn sqlx.SqlConn) NodesModel {
	return &customNodesModel{
		defaultNodesModel: newNodesModel(conn),
	}
}

func (m *customNodesModel) withSession(session sqlx.Session) NodesModel {
	return NewNodesModel(sqlx.NewSqlConnFromSession(session))
}

// List returns the most recently updated nodes.
func (m *customNodesModel) List(ctx context.Context, limit int) ([]*Nodes, error) {
	var resp []*Nodes
	query := fmt.Sprintf("select %s from %s order by `updated_at` desc, `id` limit ?", nodesRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

// Touch bumps updated_at after the node's runs changed.
func (m *customNodesModel) Touch(ctx context.Context, id string) error {
	query := fmt.Sprintf("update %s set `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}

// Count returns the number of stored nodes.
func (m *customNodesModel) Count(ctx context.Context) (int, error) {
	var count int
	query := fmt.Sprintf("select count(*) from %s", m.table)
	if err := m.conn.QueryRowCtx(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}
