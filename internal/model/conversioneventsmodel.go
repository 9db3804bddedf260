package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ConversionEventsModel = (*customConversionEventsModel)(nil)

type (
	// ConversionEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customConversionEventsModel.
	ConversionEventsModel interface {
		conversionEventsModel
		withSession(session sqlx.Session) ConversionEventsModel
		FindByConversion(ctx context.Context, conversionId string) ([]*ConversionEvents, error)
	}

	customConversionEventsModel struct {
		*defaultConversionEventsModel
	}
)

// NewConversionEventsModel returns a model for the database table.
func NewConversionEventsModel(conn sqlx.SqlConn) ConversionEventsModel {
	return &customConversionEventsModel{
		defaultConversionEventsModel: newConversionEventsModel(conn),
	}
}

func (m *customConversionEventsModel) withSession(session sqlx.Session) ConversionEventsModel {
	return NewConversionEventsModel(sqlx.NewSqlConnFromSession(session))
}

// FindByConversion returns the events of a conversion in the order they were recorded.
func (m *customConversionEventsModel) FindByConversion(ctx context.Context, conversionId string) ([]*ConversionEvents, error) {
	var resp []*ConversionEvents
	query := fmt.Sprintf("select %s from %s where `conversion_id` = ? order by `timestamp`, `rowid`", conversionEventsRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, conversionId); err != nil {
		return nil, err
	}
	return resp, nil
}
