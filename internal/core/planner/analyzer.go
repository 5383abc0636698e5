package planner

import (
	"strings"

	"sem-planner/internal/core/domain"
)

// GeneralTheme collects keywords that match no configured theme pattern.
const GeneralTheme = "General Marketing"

// Shopping CPC fallback range used when no keyword matches a category.
const (
	fallbackCPCMin  = 1.0
	fallbackCPCSpan = 3.0
)

type adGroupSpec struct {
	intent     domain.Intent
	name       string
	matchTypes []string
}

// adGroupSpecs lists the ad groups in output order.
var adGroupSpecs = []adGroupSpec{
	{domain.IntentBrand, "Brand Terms", []string{"Exact", "Phrase"}},
	{domain.IntentCategory, "Category Terms", []string{"Broad Match Modifier", "Phrase"}},
	{domain.IntentCompetitor, "Competitor Terms", []string{"Phrase", "Exact"}},
	{domain.IntentLocation, "Location-based Queries", []string{"Broad Match Modifier", "Phrase"}},
	{domain.IntentLongTail, "Long-Tail Informational Queries", []string{"Broad Match Modifier"}},
}

// Analysis is everything derived from a plan's keywords.
type Analysis struct {
	AdGroups            []domain.AdGroup
	SearchThemes        []domain.SearchTheme
	ShoppingBids        []domain.ShoppingBid
	TotalEstimatedCost  float64
	ExpectedConversions float64
}

// Analyzer partitions keywords into campaign structures and estimates
// spend. Apart from the shopping CPC fallback it is deterministic.
type Analyzer struct {
	settings Settings
	rnd      Random
}

func NewAnalyzer(settings Settings, rnd Random) *Analyzer {
	return &Analyzer{settings: settings, rnd: rnd}
}

// Analyze runs every derivation for one plan.
func (a *Analyzer) Analyze(budgets domain.Budgets, keywords []domain.Keyword) Analysis {
	total := TotalEstimatedCost(budgets)
	return Analysis{
		AdGroups:            a.AdGroups(keywords),
		SearchThemes:        a.SearchThemes(keywords),
		ShoppingBids:        a.ShoppingBids(budgets, keywords),
		TotalEstimatedCost:  total,
		ExpectedConversions: a.ExpectedConversions(total),
	}
}

// AdGroups partitions keywords by intent. Empty groups are omitted.
func (a *Analyzer) AdGroups(keywords []domain.Keyword) []domain.AdGroup {
	byIntent := make(map[domain.Intent][]domain.Keyword, len(adGroupSpecs))
	for _, kw := range keywords {
		byIntent[kw.Intent] = append(byIntent[kw.Intent], kw)
	}

	groups := make([]domain.AdGroup, 0, len(adGroupSpecs))
	for _, spec := range adGroupSpecs {
		members := byIntent[spec.intent]
		if len(members) == 0 {
			continue
		}
		groups = append(groups, domain.AdGroup{
			Name:         spec.name,
			Keywords:     members,
			SuggestedCPC: AverageCPC(members),
			MatchTypes:   append([]string(nil), spec.matchTypes...),
		})
	}
	return groups
}

// SearchThemes assigns every keyword to the first theme with a matching
// pattern, falling back to GeneralTheme. Themes appear in order of first
// use.
func (a *Analyzer) SearchThemes(keywords []domain.Keyword) []domain.SearchTheme {
	var order []string
	buckets := make(map[string][]domain.Keyword)
	for _, kw := range keywords {
		name := a.themeFor(kw.Text)
		if _, ok := buckets[name]; !ok {
			order = append(order, name)
		}
		buckets[name] = append(buckets[name], kw)
	}

	themes := make([]domain.SearchTheme, 0, len(order))
	for _, name := range order {
		members := buckets[name]
		texts := make([]string, len(members))
		for i, kw := range members {
			texts[i] = kw.Text
		}
		themes = append(themes, domain.SearchTheme{
			Name:         name,
			Description:  "Asset group focused on " + strings.ToLower(name) + " related searches",
			Keywords:     texts,
			SuggestedBid: AverageCPC(members),
		})
	}
	return themes
}

func (a *Analyzer) themeFor(text string) string {
	lower := strings.ToLower(text)
	for _, theme := range a.settings.Analysis.ThemePatterns {
		for _, pattern := range theme.Patterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return theme.Name
			}
		}
	}
	return GeneralTheme
}

// ShoppingBids emits one bid per configured product category. A keyword is
// relevant to a category when it contains the category's first word.
func (a *Analyzer) ShoppingBids(budgets domain.Budgets, keywords []domain.Keyword) []domain.ShoppingBid {
	categories := a.settings.Shopping.ProductCategories
	bids := make([]domain.ShoppingBid, 0, len(categories))
	for _, category := range categories {
		needle := categoryKey(category)
		var relevant []domain.Keyword
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(kw.Text), needle) {
				relevant = append(relevant, kw)
			}
		}

		var cpc float64
		if len(relevant) > 0 {
			cpc = AverageCPC(relevant)
		} else {
			cpc = a.rnd.Float64()*fallbackCPCSpan + fallbackCPCMin
		}
		var conversions float64
		if cpc > 0 {
			conversions = budgets.Shopping / cpc * a.settings.Campaigns.ConversionRate
		}

		bids = append(bids, domain.ShoppingBid{
			ProductCategory:     category,
			SuggestedCPC:        round2(cpc),
			Priority:            a.priority(cpc, conversions),
			ExpectedConversions: round2(conversions),
		})
	}
	return bids
}

func categoryKey(category string) string {
	first, _, _ := strings.Cut(strings.ToLower(category), " ")
	return first
}

func (a *Analyzer) priority(cpc, conversions float64) domain.Priority {
	t := a.settings.Shopping.PriorityThresholds
	switch {
	case conversions > t.HighConversions && cpc < t.HighCPCThreshold:
		return domain.PriorityHigh
	case conversions > t.MediumConversions || cpc < t.MediumCPCThreshold:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// ExpectedConversions estimates conversions for a total spend at the
// default CPC.
func (a *Analyzer) ExpectedConversions(totalCost float64) float64 {
	c := a.settings.Campaigns
	if c.DefaultCPC <= 0 {
		return 0
	}
	return round2(totalCost / c.DefaultCPC * c.ConversionRate)
}

// TotalEstimatedCost is the sum of the three budgets.
func TotalEstimatedCost(b domain.Budgets) float64 {
	return b.Shopping + b.Search + b.PMax
}

// AverageCPC is the mean bid midpoint rounded to two decimals, or zero for
// an empty list.
func AverageCPC(keywords []domain.Keyword) float64 {
	if len(keywords) == 0 {
		return 0
	}
	var sum float64
	for _, kw := range keywords {
		sum += kw.MidBid()
	}
	return round2(sum / float64(len(keywords)))
}
