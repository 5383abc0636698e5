package port

import (
	"context"
	"errors"

	"sem-planner/internal/core/domain"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository defines the persistence layer for SEM plans. It is an
// outbound port in hexagonal architecture. Implementations must store a
// plan and all of its child rows atomically.
type PlanRepository interface {
	// CreatePlan stores the plan, its keywords, ad groups (with keyword
	// links), search themes and shopping bids in one transaction.
	CreatePlan(ctx context.Context, plan *domain.Plan) error
	// GetPlan loads a plan with every child collection. It returns
	// ErrPlanNotFound when no plan has the given id.
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	// ListPlans returns plan summaries, newest first.
	ListPlans(ctx context.Context) ([]domain.PlanSummary, error)
	// DeletePlansByPrefix removes every plan whose id starts with prefix
	// together with its child rows and returns the deleted ids.
	DeletePlansByPrefix(ctx context.Context, prefix string) ([]string, error)
	// Ping checks connectivity to the underlying store.
	Ping(ctx context.Context) error
}
