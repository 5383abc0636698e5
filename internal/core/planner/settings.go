package planner

import (
	"errors"
	"fmt"

	"sem-planner/internal/core/domain"
)

// Settings holds the tunables used by the synthesizer and the analyzer. A
// Settings value is built once at startup and handed to the constructors
// that need it; nothing in this package reads global configuration.
type Settings struct {
	Campaigns CampaignSettings `yaml:"campaigns"`
	Keywords  KeywordSettings  `yaml:"keywords"`
	Analysis  AnalysisSettings `yaml:"analysis"`
	Shopping  ShoppingSettings `yaml:"shopping"`
}

type CampaignSettings struct {
	DefaultBudgets domain.Budgets `yaml:"default_budgets"`
	ConversionRate float64        `yaml:"conversion_rate"`
	DefaultCPC     float64        `yaml:"default_cpc"`
}

type KeywordSettings struct {
	MinSearchVolume int      `yaml:"min_search_volume"`
	SampleKeywords  []string `yaml:"sample_keywords"`
}

type AnalysisSettings struct {
	CompetitionLevels []domain.Competition `yaml:"competition_levels"`
	IntentTypes       []domain.Intent      `yaml:"intent_types"`
	ThemePatterns     []ThemePattern       `yaml:"theme_patterns"`
}

// ThemePattern maps lowercase substrings to a search theme name.
type ThemePattern struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

type ShoppingSettings struct {
	ProductCategories  []string           `yaml:"product_categories"`
	PriorityThresholds PriorityThresholds `yaml:"priority_thresholds"`
}

type PriorityThresholds struct {
	HighConversions    float64 `yaml:"high_conversions"`
	MediumConversions  float64 `yaml:"medium_conversions"`
	HighCPCThreshold   float64 `yaml:"high_cpc_threshold"`
	MediumCPCThreshold float64 `yaml:"medium_cpc_threshold"`
}

// DefaultSettings returns the built-in tunables. A settings file only needs
// to list the values it overrides.
func DefaultSettings() Settings {
	return Settings{
		Campaigns: CampaignSettings{
			DefaultBudgets: domain.Budgets{Shopping: 1000, Search: 2000, PMax: 1500},
			ConversionRate: 0.02,
			DefaultCPC:     3.0,
		},
		Keywords: KeywordSettings{
			MinSearchVolume: 500,
			SampleKeywords: []string{
				"digital marketing services",
				"seo optimization",
				"ppc advertising",
				"social media marketing",
				"content marketing",
				"email marketing",
				"web design",
				"brand strategy",
				"online advertising",
				"marketing automation",
				"conversion optimization",
				"google ads management",
				"facebook advertising",
				"instagram marketing",
				"linkedin marketing",
				"video marketing",
				"influencer marketing",
				"affiliate marketing",
				"marketing analytics",
				"customer acquisition",
			},
		},
		Analysis: AnalysisSettings{
			CompetitionLevels: []domain.Competition{domain.CompetitionLow, domain.CompetitionMedium, domain.CompetitionHigh},
			IntentTypes: []domain.Intent{
				domain.IntentBrand, domain.IntentCategory, domain.IntentCompetitor,
				domain.IntentLocation, domain.IntentLongTail,
			},
			ThemePatterns: []ThemePattern{
				{Name: "Digital Marketing Services", Patterns: []string{"digital", "marketing", "online", "internet"}},
				{Name: "SEO & Optimization", Patterns: []string{"seo", "optimization", "search engine", "ranking"}},
				{Name: "Advertising & PPC", Patterns: []string{"advertising", "ppc", "ads", "campaign"}},
				{Name: "Social Media Marketing", Patterns: []string{"social", "facebook", "instagram", "twitter", "linkedin"}},
				{Name: "Content & Email Marketing", Patterns: []string{"content", "email", "newsletter", "blog"}},
				{Name: "Web Design & Development", Patterns: []string{"web", "website", "design", "development"}},
			},
		},
		Shopping: ShoppingSettings{
			ProductCategories: []string{
				"Electronics & Technology",
				"Health & Beauty",
				"Home & Garden",
				"Sports & Outdoors",
				"Clothing & Accessories",
				"Books & Media",
				"Automotive",
				"Food & Beverages",
			},
			PriorityThresholds: PriorityThresholds{
				HighConversions:    10,
				MediumConversions:  5,
				HighCPCThreshold:   3,
				MediumCPCThreshold: 5,
			},
		},
	}
}

// Validate reports every setting that would make planning meaningless.
func (s Settings) Validate() error {
	var errs []error
	if s.Keywords.MinSearchVolume <= 0 {
		errs = append(errs, fmt.Errorf("keywords.min_search_volume must be positive, got %d", s.Keywords.MinSearchVolume))
	}
	if len(s.Keywords.SampleKeywords) == 0 {
		errs = append(errs, errors.New("keywords.sample_keywords is empty"))
	}
	if s.Campaigns.ConversionRate <= 0 || s.Campaigns.ConversionRate > 1 {
		errs = append(errs, fmt.Errorf("campaigns.conversion_rate must be in (0,1], got %v", s.Campaigns.ConversionRate))
	}
	if s.Campaigns.DefaultCPC <= 0 {
		errs = append(errs, fmt.Errorf("campaigns.default_cpc must be positive, got %v", s.Campaigns.DefaultCPC))
	}
	if len(s.Analysis.CompetitionLevels) == 0 {
		errs = append(errs, errors.New("analysis.competition_levels is empty"))
	}
	for _, level := range s.Analysis.CompetitionLevels {
		switch level {
		case domain.CompetitionLow, domain.CompetitionMedium, domain.CompetitionHigh:
		default:
			errs = append(errs, fmt.Errorf("analysis.competition_levels: unknown level %q", level))
		}
	}
	for i, theme := range s.Analysis.ThemePatterns {
		if theme.Name == "" || len(theme.Patterns) == 0 {
			errs = append(errs, fmt.Errorf("analysis.theme_patterns[%d] needs a name and patterns", i))
		}
	}
	if len(s.Shopping.ProductCategories) == 0 {
		errs = append(errs, errors.New("shopping.product_categories is empty"))
	}
	return errors.Join(errs...)
}
