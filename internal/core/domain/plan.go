package domain

import (
	"fmt"
	"time"
)

// Budgets holds the monthly spend per campaign type.
type Budgets struct {
	Shopping float64 `json:"shopping"`
	Search   float64 `json:"search"`
	PMax     float64 `json:"pmax"`
}

// Inputs are the advertiser facts a plan is built from.
type Inputs struct {
	BrandWebsite      string   `json:"brandWebsite"`
	CompetitorWebsite string   `json:"competitorWebsite"`
	ServiceLocations  []string `json:"serviceLocations"`
	Budgets           Budgets  `json:"budgets"`
}

// Plan is a persisted SEM plan. Every derived collection can be rebuilt
// from Keywords and the planner settings; a plan is read-only once stored.
type Plan struct {
	ID                  string        `json:"id"`
	Inputs              Inputs        `json:"inputs"`
	Keywords            []Keyword     `json:"keywords"`
	AdGroups            []AdGroup     `json:"adGroups"`
	SearchThemes        []SearchTheme `json:"searchThemes"`
	ShoppingBids        []ShoppingBid `json:"shoppingBids"`
	TotalEstimatedCost  float64       `json:"totalEstimatedCost"`
	ExpectedConversions float64       `json:"expectedConversions"`
	CreatedAt           time.Time     `json:"createdAt"`
}

// PlanSummary is the list view of a plan.
type PlanSummary struct {
	ID                  string    `json:"id"`
	BrandWebsite        string    `json:"brandWebsite"`
	TotalEstimatedCost  float64   `json:"totalEstimatedCost"`
	ExpectedConversions float64   `json:"expectedConversions"`
	KeywordCount        int       `json:"keywordCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

// KeywordAnalysis is a generated keyword list with its aggregates.
type KeywordAnalysis struct {
	Keywords            []Keyword `json:"keywords"`
	TotalKeywords       int       `json:"totalKeywords"`
	AverageSearchVolume int       `json:"averageSearchVolume"`
	AverageCPC          float64   `json:"averageCPC"`
}

// AdGroupMembers maps every ad group member to its index in p.Keywords.
// Members of a group share one intent and keep the order of the keyword
// list, so the k-th member of a group is the k-th keyword with that
// intent not claimed by an earlier group.
func (p *Plan) AdGroupMembers() ([][]int, error) {
	queues := make(map[Intent][]int)
	for i, kw := range p.Keywords {
		queues[kw.Intent] = append(queues[kw.Intent], i)
	}

	out := make([][]int, len(p.AdGroups))
	for g, group := range p.AdGroups {
		if len(group.Keywords) == 0 {
			continue
		}
		intent := group.Keywords[0].Intent
		queue := queues[intent]
		if len(queue) < len(group.Keywords) {
			return nil, fmt.Errorf("ad group %q lists %d %s keywords, plan has %d",
				group.Name, len(group.Keywords), intent, len(queue))
		}
		out[g] = queue[:len(group.Keywords):len(group.Keywords)]
		queues[intent] = queue[len(group.Keywords):]
	}
	return out, nil
}
