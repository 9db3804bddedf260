package model

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/plat-bionic/pkg/db"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

var (
	interRegular = font.FontName{Family: "Inter", Style: "Regular"}
	interBold    = font.FontName{Family: "Inter", Style: "Bold"}
)

func openConn(t *testing.T) sqlx.SqlConn {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "model.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d.SqlConn()
}

func TestDocumentStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(openConn(t))

	doc := host.NewDocument("hello world", interRegular)
	require.NoError(t, doc.SetRange(0, 3, interBold))

	id, err := store.Create(ctx, "greeting", doc)
	require.NoError(t, err)

	loaded, err := store.Document(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, doc.Text(), loaded.Text())
	assert.Equal(t, doc.Runs(), loaded.Runs())

	node, err := store.Nodes.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "greeting", node.Name)
}

func TestDocumentStoreSaveReplacesRuns(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(openConn(t))

	id, err := store.Create(ctx, "", host.NewDocument("hello world", interRegular))
	require.NoError(t, err)

	h := host.NewMemoryHost(font.NewManagerWithCatalog(font.NewCatalogFrom(interRegular, interBold)))
	require.NoError(t, store.LoadInto(ctx, h, []host.NodeID{host.NodeID(id)}))
	require.NoError(t, h.LoadFont(ctx, interBold))
	require.NoError(t, h.SetStyleRange(host.NodeID(id), 6, 9, interBold))
	require.NoError(t, store.SaveFrom(ctx, h, []host.NodeID{host.NodeID(id)}))

	loaded, err := store.Document(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []host.Run{
		{Start: 0, End: 6, Font: interRegular},
		{Start: 6, End: 9, Font: interBold},
		{Start: 9, End: 11, Font: interRegular},
	}, loaded.Runs())
}

func TestDocumentStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(openConn(t))

	_, err := store.Document(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	h := host.NewMemoryHost(font.NewManager())
	assert.ErrorIs(t, store.LoadInto(ctx, h, []host.NodeID{"missing"}), ErrNotFound)
}

func TestNodesList(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(openConn(t))

	for _, text := range []string{"one", "two", "three"} {
		_, err := store.Create(ctx, text, host.NewDocument(text, interRegular))
		require.NoError(t, err)
	}

	nodes, err := store.Nodes.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	count, err := store.Nodes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestConversionsModel(t *testing.T) {
	ctx := context.Background()
	m := NewConversionsModel(openConn(t))

	_, err := m.Insert(ctx, &Conversions{
		Id:               "c1",
		NodeIds:          EncodeNodeIDs([]string{"a", "b"}),
		FixationStrength: 50,
		Contrast:         300,
		Status:           StatusPending,
	})
	require.NoError(t, err)

	conv, err := m.FindOne(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ParseNodeIDs(conv.NodeIds))
	assert.Equal(t, StatusPending, conv.Status)
	assert.False(t, conv.FinishedAt.Valid)

	attempts, err := m.AddAttempt(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	attempts, err = m.AddAttempt(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	_, err = m.AddAttempt(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.MarkStatus(ctx, "c1", StatusProcessing, ""))
	require.NoError(t, m.Finish(ctx, "c1", 1, 1, 0))

	conv, err = m.FindOne(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, conv.Status)
	assert.EqualValues(t, 1, conv.Converted)
	assert.EqualValues(t, 1, conv.Skipped)
	assert.EqualValues(t, 2, conv.Attempts)
	assert.True(t, conv.FinishedAt.Valid)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{StatusDone: 1}, stats)

	done, err := m.ListByStatus(ctx, StatusDone, 10)
	require.NoError(t, err)
	assert.Len(t, done, 1)

	_, err = m.FindOne(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversionsMarkFailed(t *testing.T) {
	ctx := context.Background()
	m := NewConversionsModel(openConn(t))

	_, err := m.Insert(ctx, &Conversions{Id: "c1", NodeIds: EncodeNodeIDs(nil), FixationStrength: 50, Contrast: 300, Status: StatusPending})
	require.NoError(t, err)
	require.NoError(t, m.MarkStatus(ctx, "c1", StatusFailed, "boom"))

	conv, err := m.FindOne(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, conv.Status)
	assert.Equal(t, "boom", NullStringValue(conv.Error))
	assert.Equal(t, "[]", conv.NodeIds)
}
