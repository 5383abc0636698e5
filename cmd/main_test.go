package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/adapter/sqlite"
	"sem-planner/internal/core/domain"
	"sem-planner/internal/db"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestKeywordsCommandJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PLANNER_RANDOM_SEED", "7")
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "keywords", "running shoes", "--website", "https://www.running-shoes.com", "--format", "json")

	var analysis domain.KeywordAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	require.Len(t, analysis.Keywords, 14)
	assert.Equal(t, 14, analysis.TotalKeywords)
	for _, kw := range analysis.Keywords {
		assert.Equal(t, domain.IntentBrand, kw.Intent, kw.Text)
		assert.LessOrEqual(t, kw.BidLow, kw.BidHigh)
	}
}

func TestKeywordsCommandTable(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "keywords", "plumbing", "--format", "table")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "KEYWORD"))
	assert.Contains(t, out, "how to plumbing")
	assert.Contains(t, lines[len(lines)-1], "14 keywords")
}

func TestSeedCommandSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "sem.db")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_SQLITE_PATH", path)
	t.Setenv("LOG_LEVEL", "error")

	run(t, "seed", "--demo-only")

	conn, err := db.NewSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	plans, err := sqlite.NewPlanRepository(conn).ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.True(t, strings.HasPrefix(plans[0].ID, "test_"))
}
