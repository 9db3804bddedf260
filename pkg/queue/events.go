package queue

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/plat-bionic/pkg/bionic"
)

// EventRecorder batches conversion event writes using go-zero's BulkInserter.
type EventRecorder struct {
	inserter *sqlx.BulkInserter
}

// NewEventRecorder creates a new event recorder that batches inserts.
func NewEventRecorder(conn sqlx.SqlConn) (*EventRecorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `conversion_events` (`id`, `conversion_id`, `node_id`, `kind`, `level`, `message`, `timestamp`) values (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter conversion_events error: %v", err)
		}
	})

	return &EventRecorder{inserter: inserter}, nil
}

// RecordEvent batches a conversion event insert.
func (r *EventRecorder) RecordEvent(conversionID string, n bionic.Notice) {
	if err := r.inserter.Insert(
		uuid.New().String(),
		conversionID,
		string(n.Node),
		string(n.Kind),
		n.Level.String(),
		n.Message,
		time.Now().UTC(),
	); err != nil {
		logx.Errorf("Failed to record event: %v", err)
	}
}

// Reporter returns a bionic.Reporter recording every notice under conversionID.
func (r *EventRecorder) Reporter(conversionID string) bionic.Reporter {
	return bionic.ReporterFunc(func(n bionic.Notice) {
		r.RecordEvent(conversionID, n)
	})
}

// Flush forces all pending events to be written.
func (r *EventRecorder) Flush() {
	r.inserter.Flush()
}
