package db

import (
	"context"
	"fmt"
	"log/slog"

	"sem-planner/internal/core/port"
)

// Seed stores the demo plan followed by one plan per request and returns
// the ids it created. It goes through the use case so seeded plans are
// built exactly like API-created ones.
func Seed(ctx context.Context, svc port.PlanUseCase, requests []port.CreatePlanRequest, logger *slog.Logger) ([]string, error) {
	demo, err := svc.CreateTestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed demo plan: %w", err)
	}
	ids := []string{demo.PlanID}
	logger.Info("seeded demo plan", slog.String("plan_id", demo.PlanID))

	for i, req := range requests {
		plan, err := svc.CreatePlan(ctx, req)
		if err != nil {
			return ids, fmt.Errorf("seed plan %d: %w", i, err)
		}
		ids = append(ids, plan.ID)
		logger.Info("seeded plan",
			slog.String("plan_id", plan.ID),
			slog.String("brand_website", plan.Inputs.BrandWebsite),
			slog.Int("keywords", len(plan.Keywords)))
	}
	return ids, nil
}
