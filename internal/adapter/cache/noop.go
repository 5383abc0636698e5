package cache

import (
	"context"

	"sem-planner/internal/core/domain"
)

// NoopPlanCache is used when no Redis address is configured. Every read
// misses.
type NoopPlanCache struct{}

func (NoopPlanCache) Get(context.Context, string) (*domain.Plan, error) { return nil, nil }
func (NoopPlanCache) Set(context.Context, *domain.Plan) error           { return nil }
func (NoopPlanCache) Delete(context.Context, ...string) error           { return nil }
