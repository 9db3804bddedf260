package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ NodeRunsModel = (*customNodeRunsModel)(nil)

type (
	// NodeRunsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customNodeRunsModel.
	NodeRunsModel interface {
		nodeRunsModel
		withSession(session sqlx.Session) NodeRunsModel
		FindByNode(ctx context.Context, nodeId string) ([]*NodeRuns, error)
		DeleteByNode(ctx context.Context, nodeId string) error
	}

	customNodeRunsModel struct {
		*defaultNodeRunsModel
	}
)

// NewNodeRunsModel returns a model for the database table.
func NewNodeRunsModel(conn sqlx.SqlConn) NodeRunsModel {
	return &customNodeRunsModel{
		defaultNodeRunsModel: newNodeRunsModel(conn),
	}
}

func (m *customNodeRunsModel) withSession(session sqlx.Session) NodeRunsModel {
	return NewNodeRunsModel(sqlx.NewSqlConnFromSession(session))
}

// FindByNode returns a node's runs in text order.
func (m *customNodeRunsModel) FindByNode(ctx context.Context, nodeId string) ([]*NodeRuns, error) {
	var resp []*NodeRuns
	query := fmt.Sprintf("select %s from %s where `node_id` = ? order by `start_offset`", nodeRunsRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, nodeId); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteByNode removes every run of a node.
func (m *customNodeRunsModel) DeleteByNode(ctx context.Context, nodeId string) error {
	query := fmt.Sprintf("delete from %s where `node_id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, nodeId)
	return err
}
