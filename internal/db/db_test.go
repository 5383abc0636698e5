package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "nested", "sem.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateSQLite(db))
	// a second run is a no-op
	require.NoError(t, MigrateSQLite(db))

	var tables int
	err = db.QueryRowContext(ctx, `SELECT count(*) FROM sqlite_master
WHERE type = 'table' AND name IN ('sem_plans', 'keywords', 'ad_groups', 'ad_group_keywords', 'search_themes', 'shopping_bids')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 6, tables)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
