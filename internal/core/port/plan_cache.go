package port

import (
	"context"

	"sem-planner/internal/core/domain"
)

// PlanCache keeps recently read plans. Plans never change after creation
// so entries only disappear by expiry or explicit eviction. Get returns
// nil, nil on a miss.
type PlanCache interface {
	Get(ctx context.Context, id string) (*domain.Plan, error)
	Set(ctx context.Context, plan *domain.Plan) error
	Delete(ctx context.Context, ids ...string) error
}

// EventPublisher announces plan lifecycle events to other systems.
type EventPublisher interface {
	PublishPlanCreated(ctx context.Context, plan *domain.Plan) error
}
