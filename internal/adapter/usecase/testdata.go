package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"sem-planner/internal/core/planner"
	"sem-planner/internal/core/port"
)

// CreateTestData stores the demo plan built from the fixed fixture
// keywords. Its derived sets come from the analyzer like any other plan.
func (u *PlanUseCase) CreateTestData(ctx context.Context) (*port.TestDataSummary, error) {
	plan := u.assemble(testIDPrefix, planner.FixtureInputs(), planner.FixtureKeywords())
	if err := u.repo.CreatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("store test plan: %w", err)
	}
	u.logger.InfoContext(ctx, "test plan created", slog.String("plan_id", plan.ID))
	u.afterCreate(ctx, plan)

	return &port.TestDataSummary{
		Message: "Test SEM plan data created successfully",
		PlanID:  plan.ID,
		Summary: port.TestDataCounts{
			Keywords:     len(plan.Keywords),
			AdGroups:     len(plan.AdGroups),
			SearchThemes: len(plan.SearchThemes),
			ShoppingBids: len(plan.ShoppingBids),
			TotalBudget:  plan.TotalEstimatedCost,
		},
	}, nil
}

// ClearTestData deletes every test plan and evicts it from the cache.
func (u *PlanUseCase) ClearTestData(ctx context.Context) (int, error) {
	ids, err := u.repo.DeletePlansByPrefix(ctx, testIDPrefix)
	if err != nil {
		return 0, fmt.Errorf("delete test plans: %w", err)
	}
	if u.cache != nil && len(ids) > 0 {
		if err = u.cache.Delete(ctx, ids...); err != nil {
			u.logger.WarnContext(ctx, "evict test plans", slog.Int("plans", len(ids)), slog.Any("error", err))
		}
	}
	u.logger.InfoContext(ctx, "test plans cleared", slog.Int("plans", len(ids)))
	return len(ids), nil
}
