package planner

import "sem-planner/internal/core/domain"

// FixtureInputs are the advertiser inputs of the demo plan.
func FixtureInputs() domain.Inputs {
	return domain.Inputs{
		BrandWebsite:      "https://digitalmarketingpro.com",
		CompetitorWebsite: "https://marketingexperts.com",
		ServiceLocations:  []string{"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX"},
		Budgets:           domain.Budgets{Shopping: 2500, Search: 5000, PMax: 3000},
	}
}

// FixtureKeywords is a fixed keyword list covering every intent, used for
// demo data and self checks.
func FixtureKeywords() []domain.Keyword {
	return []domain.Keyword{
		{Text: "digital marketing services", SearchVolume: 8900, BidLow: 4.50, BidHigh: 12.80, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "best digital marketing agency", SearchVolume: 2400, BidLow: 6.20, BidHigh: 15.40, Competition: domain.CompetitionHigh, Intent: domain.IntentBrand},
		{Text: "seo optimization services", SearchVolume: 5600, BidLow: 3.80, BidHigh: 9.60, Competition: domain.CompetitionMedium, Intent: domain.IntentCategory},
		{Text: "ppc advertising management", SearchVolume: 3200, BidLow: 5.10, BidHigh: 13.20, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "social media marketing near me", SearchVolume: 1800, BidLow: 2.90, BidHigh: 7.80, Competition: domain.CompetitionMedium, Intent: domain.IntentLocation},
		{Text: "content marketing strategy", SearchVolume: 4100, BidLow: 3.40, BidHigh: 8.90, Competition: domain.CompetitionMedium, Intent: domain.IntentCategory},
		{Text: "email marketing automation", SearchVolume: 2900, BidLow: 4.70, BidHigh: 11.30, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "how to improve seo ranking", SearchVolume: 6700, BidLow: 1.20, BidHigh: 4.50, Competition: domain.CompetitionLow, Intent: domain.IntentLongTail},
		{Text: "google ads vs facebook ads", SearchVolume: 1500, BidLow: 2.80, BidHigh: 6.90, Competition: domain.CompetitionMedium, Intent: domain.IntentCompetitor},
		{Text: "marketing automation tools", SearchVolume: 3800, BidLow: 5.60, BidHigh: 14.20, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "conversion rate optimization", SearchVolume: 2200, BidLow: 4.30, BidHigh: 10.70, Competition: domain.CompetitionMedium, Intent: domain.IntentCategory},
		{Text: "local seo services", SearchVolume: 4500, BidLow: 3.90, BidHigh: 9.20, Competition: domain.CompetitionMedium, Intent: domain.IntentLocation},
		{Text: "professional web design", SearchVolume: 5200, BidLow: 4.80, BidHigh: 12.40, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "brand strategy consulting", SearchVolume: 1600, BidLow: 6.50, BidHigh: 16.80, Competition: domain.CompetitionHigh, Intent: domain.IntentCategory},
		{Text: "affordable marketing services", SearchVolume: 2800, BidLow: 2.10, BidHigh: 6.30, Competition: domain.CompetitionLow, Intent: domain.IntentCategory},
	}
}
