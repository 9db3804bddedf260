package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Conversion statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

var _ ConversionsModel = (*customConversionsModel)(nil)

type (
	// ConversionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customConversionsModel.
	ConversionsModel interface {
		conversionsModel
		withSession(session sqlx.Session) ConversionsModel
		ListByStatus(ctx context.Context, status string, limit int) ([]*Conversions, error)
		Stats(ctx context.Context) (map[string]int, error)
		MarkStatus(ctx context.Context, id, status, errMsg string) error
		Finish(ctx context.Context, id string, converted, skipped, failed int) error
		AddAttempt(ctx context.Context, id string) (int, error)
	}

	customConversionsModel struct {
		*defaultConversionsModel
	}
)

// NewConversionsModel returns a model for the database table.
func NewConversionsModel(conn sqlx.SqlConn) ConversionsModel {
	return &customConversionsModel{
		defaultConversionsModel: newConversionsModel(conn),
	}
}

func (m *customConversionsModel) withSession(session sqlx.Session) ConversionsModel {
	return NewConversionsModel(sqlx.NewSqlConnFromSession(session))
}

// ListByStatus returns conversions filtered by status with a limit.
func (m *customConversionsModel) ListByStatus(ctx context.Context, status string, limit int) ([]*Conversions, error) {
	var resp []*Conversions
	var query string
	var args []any

	if status != "" && status != "all" {
		query = fmt.Sprintf("select %s from %s where `status` = ? order by `created_at` desc limit ?", conversionsRows, m.table)
		args = []any{status, limit}
	} else {
		query = fmt.Sprintf("select %s from %s order by `created_at` desc limit ?", conversionsRows, m.table)
		args = []any{limit}
	}

	if err := m.conn.QueryRowsCtx(ctx, &resp, query, args...); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stats returns conversion counts grouped by status.
func (m *customConversionsModel) Stats(ctx context.Context) (map[string]int, error) {
	type statusCount struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []statusCount
	query := fmt.Sprintf("select `status`, count(*) as `count` from %s group by `status`", m.table)
	if err := m.conn.QueryRowsCtx(ctx, &rows, query); err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}

// MarkStatus updates the status of a conversion. A non-empty errMsg is
// stored and marks the conversion finished.
func (m *customConversionsModel) MarkStatus(ctx context.Context, id, status, errMsg string) error {
	var query string
	var args []any

	if errMsg != "" {
		query = fmt.Sprintf("update %s set `status` = ?, `error` = ?, `finished_at` = CURRENT_TIMESTAMP, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
		args = []any{status, errMsg, id}
	} else {
		query = fmt.Sprintf("update %s set `status` = ?, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
		args = []any{status, id}
	}

	_, err := m.conn.ExecCtx(ctx, query, args...)
	return err
}

// Finish records the node outcomes of a completed conversion.
func (m *customConversionsModel) Finish(ctx context.Context, id string, converted, skipped, failed int) error {
	query := fmt.Sprintf("update %s set `status` = ?, `converted` = ?, `skipped` = ?, `failed` = ?, `finished_at` = CURRENT_TIMESTAMP, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, StatusDone, converted, skipped, failed, id)
	return err
}

// AddAttempt counts one more processing attempt and returns the new total.
func (m *customConversionsModel) AddAttempt(ctx context.Context, id string) (int, error) {
	query := fmt.Sprintf("update %s set `attempts` = `attempts` + 1, `updated_at` = CURRENT_TIMESTAMP where `id` = ?", m.table)
	if _, err := m.conn.ExecCtx(ctx, query, id); err != nil {
		return 0, err
	}

	var attempts int
	query = fmt.Sprintf("select `attempts` from %s where `id` = ? limit 1", m.table)
	switch err := m.conn.QueryRowCtx(ctx, &attempts, query, id); err {
	case nil:
		return attempts, nil
	case sqlx.ErrNotFound:
		return 0, ErrNotFound
	default:
		return 0, err
	}
}
