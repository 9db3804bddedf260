package queue

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/db"
)

func openQueue(t *testing.T) (*Queue, *db.DB) {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := NewQueue(d, Options{Timeout: time.Second, MaxReceive: 2})
	require.NoError(t, err)
	return q, d
}

func TestEnqueueReceiveDelete(t *testing.T) {
	ctx := context.Background()
	q, _ := openQueue(t)
	assert.Equal(t, DefaultName, q.Name())

	id, err := q.Enqueue(ctx, ConversionJob{
		NodeIDs:  []string{"a", "b"},
		Settings: bionic.Settings{FixationStrength: 60, Contrast: 300},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, []string{"a", "b"}, job.NodeIDs)
	assert.Equal(t, 60, job.Settings.FixationStrength)
	assert.False(t, job.CreatedAt.IsZero())

	require.NoError(t, q.Extend(ctx, msg, time.Second))
	require.NoError(t, q.Delete(ctx, msg))

	job, msg, err = q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Nil(t, msg)
}

func TestReceiveLimit(t *testing.T) {
	ctx := context.Background()
	d, err := db.Open(filepath.Join(t.TempDir(), "limit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := NewQueue(d, Options{Timeout: 20 * time.Millisecond, MaxReceive: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, q.MaxReceive())
	assert.Equal(t, 20*time.Millisecond, q.Timeout())

	_, err = q.Enqueue(ctx, ConversionJob{ID: "flaky"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		job, _, err := q.Receive(ctx)
		require.NoError(t, err)
		require.NotNil(t, job, "delivery %d", i+1)
		time.Sleep(40 * time.Millisecond)
	}

	job, _, err := q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, job, "no delivery past the receive limit")
}

func TestQueueDefaults(t *testing.T) {
	d, err := db.Open(filepath.Join(t.TempDir(), "defaults.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := NewQueue(d, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxReceive, q.MaxReceive())
	assert.Equal(t, DefaultTimeout, q.Timeout())
}

func TestEnqueueAfterDelays(t *testing.T) {
	ctx := context.Background()
	q, _ := openQueue(t)

	_, err := q.EnqueueAfter(ctx, ConversionJob{ID: "later"}, time.Hour)
	require.NoError(t, err)

	job, _, err := q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestEventRecorder(t *testing.T) {
	q, d := openQueue(t)

	_, err := d.Exec("INSERT INTO conversions (id, node_ids, fixation_strength, contrast) VALUES ('c1', '[]', 50, 300)")
	require.NoError(t, err)

	r := q.Events.Reporter("c1")
	r.Report(bionic.Notice{Kind: bionic.NoticeInsufficientWeight, Level: bionic.LevelWarning, Node: "n1", Message: "only one weight"})
	r.Report(bionic.Notice{Kind: bionic.NoticeConverted, Level: bionic.LevelInfo, Message: "done"})
	q.Events.Flush()

	var count int
	require.NoError(t, d.QueryRow("SELECT count(*) FROM conversion_events WHERE conversion_id = 'c1'").Scan(&count))
	assert.Equal(t, 2, count)

	var level string
	require.NoError(t, d.QueryRow("SELECT level FROM conversion_events WHERE node_id = 'n1'").Scan(&level))
	assert.Equal(t, "warning", level)
}
