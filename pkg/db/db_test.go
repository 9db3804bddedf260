package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bionic.db")
	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, path, d.Path())

	for _, table := range []string{"nodes", "node_runs", "conversions", "conversion_events", "goqite"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, table)
	}

	// Migrations are idempotent.
	require.NoError(t, d.Migrate())
}

func TestSqlConn(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "bionic.db"))
	require.NoError(t, err)
	defer d.Close()

	conn := d.SqlConn()
	_, err = conn.ExecCtx(context.Background(), "INSERT INTO nodes (id, text) VALUES (?, ?)", "n1", "hello")
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRowCtx(context.Background(), &count, "SELECT count(*) FROM nodes"))
	assert.Equal(t, 1, count)
}

func TestSqliteAcceptable(t *testing.T) {
	assert.True(t, sqliteAcceptable(nil))
	assert.True(t, sqliteAcceptable(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, sqliteAcceptable(errors.New("no such table: nodes")))
}
