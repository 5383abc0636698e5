package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/core/domain"
)

func TestConnectAcceptsURLAndAddress(t *testing.T) {
	ctx := context.Background()

	client, err := Connect(ctx, "redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "secret", client.Options().Password)
	require.NoError(t, client.Close())

	client, err = Connect(ctx, "localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
	require.NoError(t, client.Close())

	_, err = Connect(ctx, "redis://cache.internal:notaport")
	require.Error(t, err)
}

func TestNoopPlanCacheMisses(t *testing.T) {
	ctx := context.Background()
	var c NoopPlanCache
	require.NoError(t, c.Set(ctx, &domain.Plan{ID: "sem_1"}))

	got, err := c.Get(ctx, "sem_1")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, c.Delete(ctx, "sem_1"))
}

// TestRedisPlanCache needs a reachable server in REDIS_TEST_ADDRESS.
func TestRedisPlanCache(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	c := NewRedisPlanCache(client, "sem:test:"+time.Now().Format("150405.000000")+":", time.Minute)
	plan := &domain.Plan{
		ID:        "sem_cached",
		Inputs:    domain.Inputs{BrandWebsite: "https://example.com", Budgets: domain.Budgets{Search: 100}},
		Keywords:  []domain.Keyword{{Text: "shoes", SearchVolume: 800, BidLow: 1, BidHigh: 2, Competition: domain.CompetitionLow, Intent: domain.IntentCategory}},
		CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
	}

	got, err := c.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, plan))
	got, err = c.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	require.NoError(t, c.Delete(ctx, plan.ID, "sem_other"))
	got, err = c.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
