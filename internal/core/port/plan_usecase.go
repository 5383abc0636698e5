package port

import (
	"context"
	"time"

	"sem-planner/internal/core/domain"
)

// PlanUseCase defines the business operations exposed by the planner. This
// interface represents the primary port into the application domain.
type PlanUseCase interface {
	// CreatePlan synthesizes keywords for the request, derives the
	// campaign structure and stores the plan. Missing budgets fall back to
	// configured defaults.
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.Plan, error)

	// GetPlan returns a stored plan or ErrPlanNotFound.
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)

	// ListPlans returns plan summaries, newest first.
	ListPlans(ctx context.Context) ([]domain.PlanSummary, error)

	// GenerateKeywords synthesizes keywords without storing anything.
	GenerateKeywords(ctx context.Context, req GenerateKeywordsRequest) (*domain.KeywordAnalysis, error)

	// TestKeywords runs generation over a few sample keywords and echoes
	// the settings it used.
	TestKeywords(ctx context.Context) (*TestKeywordsReport, error)

	// Health reports store connectivity and settings validity.
	Health(ctx context.Context) HealthReport

	// CreateTestData stores the demo plan.
	CreateTestData(ctx context.Context) (*TestDataSummary, error)

	// ClearTestData removes every demo plan and returns how many were
	// deleted.
	ClearTestData(ctx context.Context) (int, error)

	// RunSelfChecks exercises settings, storage and the planner end to end.
	RunSelfChecks(ctx context.Context) SelfCheckReport

	// SampleRequests returns ready-made request bodies for manual testing.
	SampleRequests() []SampleRequest
}

// BudgetsInput carries optional budgets. A nil field means "use the
// configured default"; an explicit zero is kept.
type BudgetsInput struct {
	Shopping *float64 `json:"shopping"`
	Search   *float64 `json:"search"`
	PMax     *float64 `json:"pmax"`
}

type PlanInputs struct {
	BrandWebsite      string       `json:"brandWebsite"`
	CompetitorWebsite string       `json:"competitorWebsite"`
	ServiceLocations  []string     `json:"serviceLocations"`
	Budgets           BudgetsInput `json:"budgets"`
}

type CreatePlanRequest struct {
	Inputs       PlanInputs `json:"inputs"`
	SeedKeywords []string   `json:"seedKeywords"`
}

type GenerateKeywordsRequest struct {
	Website           string   `json:"website"`
	CompetitorWebsite string   `json:"competitorWebsite"`
	SeedKeywords      []string `json:"seedKeywords"`
}

// TestKeywordsReport is a keyword analysis with the settings behind it.
type TestKeywordsReport struct {
	domain.KeywordAnalysis
	Config TestKeywordsConfig `json:"config"`
}

type TestKeywordsConfig struct {
	MinSearchVolume     int                  `json:"minSearchVolume"`
	SampleKeywordsCount int                  `json:"sampleKeywordsCount"`
	CompetitionLevels   []domain.Competition `json:"competitionLevels"`
	IntentTypes         []domain.Intent      `json:"intentTypes"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	CheckOK         = "ok"
	CheckError      = "error"
)

type HealthReport struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Checks    HealthChecks `json:"checks"`
	Version   string       `json:"version"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Config   string `json:"config"`
}

type TestDataSummary struct {
	Message string         `json:"message"`
	PlanID  string         `json:"planId"`
	Summary TestDataCounts `json:"summary"`
}

type TestDataCounts struct {
	Keywords     int     `json:"keywords"`
	AdGroups     int     `json:"adGroups"`
	SearchThemes int     `json:"searchThemes"`
	ShoppingBids int     `json:"shoppingBids"`
	TotalBudget  float64 `json:"totalBudget"`
}

const (
	CheckPass = "PASS"
	CheckFail = "FAIL"
)

// SelfCheckResult is the outcome of one self check. Data carries whatever
// the check wants to show on success.
type SelfCheckResult struct {
	TestName string `json:"testName"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Data     any    `json:"data,omitempty"`
}

type SelfCheckReport struct {
	Summary SelfCheckSummary  `json:"summary"`
	Results []SelfCheckResult `json:"results"`
}

type SelfCheckSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// SampleRequest is a canned API call. Data is a CreatePlanRequest or a
// GenerateKeywordsRequest depending on Endpoint.
type SampleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
	Method      string `json:"method"`
	Data        any    `json:"data"`
}
