package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/planner"
	"sem-planner/internal/core/port"
)

const (
	planIDPrefix = "sem_"
	testIDPrefix = "test_"
)

// Options carries the collaborators of PlanUseCase besides the repository.
// Cache and Events may be nil.
type Options struct {
	Settings planner.Settings
	// Random feeds keyword synthesis and the shopping CPC fallback. Nil
	// uses planner.SystemRandom.
	Random  planner.Random
	Cache   port.PlanCache
	Events  port.EventPublisher
	AppName string
	Version string
	Logger  *slog.Logger
}

// PlanUseCase builds, stores and serves SEM plans. It implements
// port.PlanUseCase by composing the planner with the outbound ports.
type PlanUseCase struct {
	repo     port.PlanRepository
	cache    port.PlanCache
	events   port.EventPublisher
	settings planner.Settings
	synth    *planner.Synthesizer
	analyzer *planner.Analyzer
	appName  string
	version  string
	logger   *slog.Logger

	nowFn func() time.Time
	newID func() string
}

// NewPlanUseCase creates the use case around repo.
func NewPlanUseCase(repo port.PlanRepository, opts Options) *PlanUseCase {
	rnd := opts.Random
	if rnd == nil {
		rnd = planner.SystemRandom{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanUseCase{
		repo:     repo,
		cache:    opts.Cache,
		events:   opts.Events,
		settings: opts.Settings,
		synth:    planner.NewSynthesizer(opts.Settings, rnd),
		analyzer: planner.NewAnalyzer(opts.Settings, rnd),
		appName:  opts.AppName,
		version:  opts.Version,
		logger:   logger,
		// microsecond precision survives every store
		nowFn: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID: uuid.NewString,
	}
}

// CreatePlan synthesizes keywords for the request, derives the campaign
// structure and stores the plan. Caching and publishing happen after the
// commit and never fail the request.
func (u *PlanUseCase) CreatePlan(ctx context.Context, req port.CreatePlanRequest) (*domain.Plan, error) {
	inputs := domain.Inputs{
		BrandWebsite:      strings.TrimSpace(req.Inputs.BrandWebsite),
		CompetitorWebsite: strings.TrimSpace(req.Inputs.CompetitorWebsite),
		ServiceLocations:  req.Inputs.ServiceLocations,
		Budgets:           u.resolveBudgets(req.Inputs.Budgets),
	}
	if inputs.ServiceLocations == nil {
		inputs.ServiceLocations = []string{}
	}

	classifier := planner.NewClassifier(inputs.BrandWebsite, inputs.CompetitorWebsite)
	keywords := u.synth.Generate(req.SeedKeywords, classifier)
	plan := u.assemble(planIDPrefix, inputs, keywords)

	if err := u.repo.CreatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	u.logger.InfoContext(ctx, "plan created",
		slog.String("plan_id", plan.ID),
		slog.Int("seed_keywords", len(req.SeedKeywords)),
		slog.Int("keywords", len(plan.Keywords)),
		slog.Float64("total_estimated_cost", plan.TotalEstimatedCost))

	u.afterCreate(ctx, plan)
	return plan, nil
}

// resolveBudgets substitutes the configured default for every budget the
// caller left out. An explicit zero is kept.
func (u *PlanUseCase) resolveBudgets(in port.BudgetsInput) domain.Budgets {
	out := u.settings.Campaigns.DefaultBudgets
	if in.Shopping != nil {
		out.Shopping = *in.Shopping
	}
	if in.Search != nil {
		out.Search = *in.Search
	}
	if in.PMax != nil {
		out.PMax = *in.PMax
	}
	return out
}

func (u *PlanUseCase) assemble(prefix string, inputs domain.Inputs, keywords []domain.Keyword) *domain.Plan {
	analysis := u.analyzer.Analyze(inputs.Budgets, keywords)
	return &domain.Plan{
		ID:                  prefix + u.newID(),
		Inputs:              inputs,
		Keywords:            keywords,
		AdGroups:            analysis.AdGroups,
		SearchThemes:        analysis.SearchThemes,
		ShoppingBids:        analysis.ShoppingBids,
		TotalEstimatedCost:  analysis.TotalEstimatedCost,
		ExpectedConversions: analysis.ExpectedConversions,
		CreatedAt:           u.nowFn(),
	}
}

func (u *PlanUseCase) afterCreate(ctx context.Context, plan *domain.Plan) {
	if u.cache != nil {
		if err := u.cache.Set(ctx, plan); err != nil {
			u.logger.WarnContext(ctx, "cache plan", slog.String("plan_id", plan.ID), slog.Any("error", err))
		}
	}
	if u.events != nil {
		if err := u.events.PublishPlanCreated(ctx, plan); err != nil {
			u.logger.WarnContext(ctx, "publish plan created", slog.String("plan_id", plan.ID), slog.Any("error", err))
		}
	}
}

// GetPlan reads through the cache. A cache failure falls back to the
// repository.
func (u *PlanUseCase) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	if u.cache != nil {
		plan, err := u.cache.Get(ctx, id)
		if err != nil {
			u.logger.WarnContext(ctx, "read cached plan", slog.String("plan_id", id), slog.Any("error", err))
		} else if plan != nil {
			return plan, nil
		}
	}

	plan, err := u.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err = u.cache.Set(ctx, plan); err != nil {
			u.logger.WarnContext(ctx, "cache plan", slog.String("plan_id", id), slog.Any("error", err))
		}
	}
	return plan, nil
}

func (u *PlanUseCase) ListPlans(ctx context.Context) ([]domain.PlanSummary, error) {
	return u.repo.ListPlans(ctx)
}

// GenerateKeywords synthesizes keywords without storing anything.
func (u *PlanUseCase) GenerateKeywords(_ context.Context, req port.GenerateKeywordsRequest) (*domain.KeywordAnalysis, error) {
	classifier := planner.NewClassifier(req.Website, req.CompetitorWebsite)
	analysis := planner.Summarize(u.synth.Generate(req.SeedKeywords, classifier))
	return &analysis, nil
}

// testKeywordSeeds is how many sample keywords TestKeywords expands.
const testKeywordSeeds = 5

// TestKeywords expands the first few sample keywords and echoes the
// settings that shaped the result.
func (u *PlanUseCase) TestKeywords(ctx context.Context) (*port.TestKeywordsReport, error) {
	samples := u.settings.Keywords.SampleKeywords
	seeds := samples[:min(testKeywordSeeds, len(samples))]

	analysis, err := u.GenerateKeywords(ctx, port.GenerateKeywordsRequest{
		Website:      "https://example.com",
		SeedKeywords: seeds,
	})
	if err != nil {
		return nil, err
	}
	return &port.TestKeywordsReport{
		KeywordAnalysis: *analysis,
		Config: port.TestKeywordsConfig{
			MinSearchVolume:     u.settings.Keywords.MinSearchVolume,
			SampleKeywordsCount: len(samples),
			CompetitionLevels:   u.settings.Analysis.CompetitionLevels,
			IntentTypes:         u.settings.Analysis.IntentTypes,
		},
	}, nil
}

// Health pings the store and validates the settings.
func (u *PlanUseCase) Health(ctx context.Context) port.HealthReport {
	report := port.HealthReport{
		Status:    port.StatusHealthy,
		Timestamp: u.nowFn(),
		Checks:    port.HealthChecks{Database: port.CheckOK, Config: port.CheckOK},
		Version:   u.version,
	}
	if err := u.repo.Ping(ctx); err != nil {
		u.logger.ErrorContext(ctx, "database health check failed", slog.Any("error", err))
		report.Checks.Database = port.CheckError
	}
	if err := u.validateConfig(); err != nil {
		u.logger.ErrorContext(ctx, "config health check failed", slog.Any("error", err))
		report.Checks.Config = port.CheckError
	}
	if report.Checks.Database != port.CheckOK || report.Checks.Config != port.CheckOK {
		report.Status = port.StatusUnhealthy
	}
	return report
}

func (u *PlanUseCase) validateConfig() error {
	if u.appName == "" {
		return errors.New("app name is empty")
	}
	return u.settings.Validate()
}
