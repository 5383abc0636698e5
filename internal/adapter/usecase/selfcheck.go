package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/planner"
	"sem-planner/internal/core/port"
)

type selfCheck struct {
	name string
	run  func(ctx context.Context) (string, any, error)
}

// RunSelfChecks runs every check in order and never stops early.
func (u *PlanUseCase) RunSelfChecks(ctx context.Context) port.SelfCheckReport {
	checks := []selfCheck{
		{"Configuration Loading", u.checkConfig},
		{"Database Connection", u.checkDatabase},
		{"Keyword Generation", u.checkKeywordGeneration},
		{"SEM Analysis", u.checkAnalysis},
		{"Plan Creation and Retrieval", u.checkPlanRoundTrip},
		{"Budget Calculations", u.checkBudgets},
	}

	report := port.SelfCheckReport{Results: make([]port.SelfCheckResult, 0, len(checks))}
	for _, c := range checks {
		msg, data, err := c.run(ctx)
		res := port.SelfCheckResult{TestName: c.name, Status: port.CheckPass, Message: msg, Data: data}
		if err != nil {
			res = port.SelfCheckResult{TestName: c.name, Status: port.CheckFail, Message: err.Error()}
			report.Summary.Failed++
		} else {
			report.Summary.Passed++
		}
		report.Results = append(report.Results, res)
	}
	report.Summary.Total = len(report.Results)
	return report
}

func (u *PlanUseCase) checkConfig(context.Context) (string, any, error) {
	if err := u.validateConfig(); err != nil {
		return "", nil, fmt.Errorf("configuration contains invalid values: %w", err)
	}
	return "Configuration loaded successfully with valid values", map[string]any{
		"minSearchVolume":     u.settings.Keywords.MinSearchVolume,
		"sampleKeywordsCount": len(u.settings.Keywords.SampleKeywords),
		"defaultBudgets":      u.settings.Campaigns.DefaultBudgets,
		"conversionRate":      u.settings.Campaigns.ConversionRate,
	}, nil
}

func (u *PlanUseCase) checkDatabase(ctx context.Context) (string, any, error) {
	if err := u.repo.Ping(ctx); err != nil {
		return "", nil, fmt.Errorf("database connection failed: %w", err)
	}
	return "Database connection successful", nil, nil
}

func (u *PlanUseCase) checkKeywordGeneration(context.Context) (string, any, error) {
	keywords := u.synth.Generate([]string{"test keyword", "sample keyword"}, planner.NewClassifier("https://test.com", ""))
	if len(keywords) == 0 {
		return "", nil, fmt.Errorf("keyword generation produced no keywords")
	}
	for _, kw := range keywords {
		if kw.SearchVolume < u.settings.Keywords.MinSearchVolume {
			return "", nil, fmt.Errorf("keyword %q is below the minimum search volume", kw.Text)
		}
		if kw.BidLow > kw.BidHigh {
			return "", nil, fmt.Errorf("keyword %q has an inverted bid range", kw.Text)
		}
	}
	return fmt.Sprintf("Generated %d valid keywords", len(keywords)), map[string]any{
		"keywordCount":   len(keywords),
		"sampleKeywords": keywords[:min(3, len(keywords))],
	}, nil
}

func (u *PlanUseCase) checkAnalysis(context.Context) (string, any, error) {
	keywords := []domain.Keyword{{
		Text: "test keyword", SearchVolume: 1000, BidLow: 2, BidHigh: 5,
		Competition: domain.CompetitionMedium, Intent: domain.IntentCategory,
	}}
	analysis := u.analyzer.Analyze(domain.Budgets{Shopping: 1000, Search: 2000, PMax: 1500}, keywords)
	if len(analysis.AdGroups) == 0 || len(analysis.SearchThemes) == 0 || len(analysis.ShoppingBids) == 0 {
		return "", nil, fmt.Errorf("analysis failed to generate required components")
	}
	return "SEM analysis components generated successfully", map[string]int{
		"adGroups":     len(analysis.AdGroups),
		"searchThemes": len(analysis.SearchThemes),
		"shoppingBids": len(analysis.ShoppingBids),
	}, nil
}

func (u *PlanUseCase) checkPlanRoundTrip(ctx context.Context) (string, any, error) {
	inputs := domain.Inputs{
		BrandWebsite:      "https://testcase.com",
		CompetitorWebsite: "https://competitor.com",
		ServiceLocations:  []string{"Test City"},
		Budgets:           domain.Budgets{Shopping: 1000, Search: 2000, PMax: 1500},
	}
	plan := u.assemble(testIDPrefix+"case_", inputs, planner.FixtureKeywords())
	if err := u.repo.CreatePlan(ctx, plan); err != nil {
		return "", nil, fmt.Errorf("plan creation failed: %w", err)
	}
	defer func() {
		if _, err := u.repo.DeletePlansByPrefix(context.WithoutCancel(ctx), plan.ID); err != nil {
			u.logger.WarnContext(ctx, "remove self check plan", slog.String("plan_id", plan.ID), slog.Any("error", err))
		}
	}()

	got, err := u.repo.GetPlan(ctx, plan.ID)
	if err != nil {
		return "", nil, fmt.Errorf("plan retrieval failed: %w", err)
	}
	if len(got.Keywords) != len(plan.Keywords) || len(got.AdGroups) != len(plan.AdGroups) ||
		got.TotalEstimatedCost != plan.TotalEstimatedCost {
		return "", nil, fmt.Errorf("retrieved plan does not match the stored plan")
	}
	return "Plan creation and retrieval successful", nil, nil
}

func (u *PlanUseCase) checkBudgets(context.Context) (string, any, error) {
	total := planner.TotalEstimatedCost(domain.Budgets{Shopping: 1000, Search: 2000, PMax: 1500})
	conversions := u.analyzer.ExpectedConversions(total)
	if total != 4500 || conversions <= 0 {
		return "", nil, fmt.Errorf("budget calculations produced incorrect results: total %.2f, conversions %.2f", total, conversions)
	}
	return "Budget calculations are accurate", map[string]float64{
		"totalCost":           total,
		"expectedConversions": conversions,
	}, nil
}
