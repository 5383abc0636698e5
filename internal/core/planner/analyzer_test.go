package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/core/domain"
)

// fixedRandom always returns the same draw so the shopping fallback CPC is
// predictable.
type fixedRandom struct{ f float64 }

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(int) int     { return 0 }

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = name(item)
	}
	return out
}

func TestAdGroupsPartitionByIntent(t *testing.T) {
	a := NewAnalyzer(DefaultSettings(), seeded())

	inputs := map[string][]domain.Keyword{
		"fixture":   FixtureKeywords(),
		"generated": NewSynthesizer(DefaultSettings(), seeded()).Generate(nil, Classifier{}),
	}
	for label, keywords := range inputs {
		t.Run(label, func(t *testing.T) {
			groups := a.AdGroups(keywords)

			total := 0
			for _, g := range groups {
				require.NotEmpty(t, g.Keywords, g.Name)
				intent := g.Keywords[0].Intent
				var want []domain.Keyword
				for _, kw := range keywords {
					if kw.Intent == intent {
						want = append(want, kw)
					}
				}
				if diff := cmp.Diff(want, g.Keywords); diff != "" {
					t.Fatalf("group %q is not the %s partition (-want +got):\n%s", g.Name, intent, diff)
				}
				total += len(g.Keywords)
			}
			assert.Equal(t, len(keywords), total)
		})
	}
}

func TestAdGroupsFixture(t *testing.T) {
	groups := NewAnalyzer(DefaultSettings(), seeded()).AdGroups(FixtureKeywords())

	want := []string{
		"Brand Terms",
		"Category Terms",
		"Competitor Terms",
		"Location-based Queries",
		"Long-Tail Informational Queries",
	}
	require.Equal(t, want, names(groups, func(g domain.AdGroup) string { return g.Name }))

	assert.Len(t, groups[1].Keywords, 10)
	assert.InDelta(t, 10.80, groups[0].SuggestedCPC, 1e-9)
	assert.InDelta(t, 4.85, groups[2].SuggestedCPC, 1e-9)
	assert.InDelta(t, 5.95, groups[3].SuggestedCPC, 1e-9)
	assert.InDelta(t, 2.85, groups[4].SuggestedCPC, 1e-9)
	assert.Equal(t, []string{"Exact", "Phrase"}, groups[0].MatchTypes)
	assert.Equal(t, []string{"Broad Match Modifier"}, groups[4].MatchTypes)
}

func TestAdGroupsOmitsEmptyGroups(t *testing.T) {
	a := NewAnalyzer(DefaultSettings(), seeded())

	assert.Empty(t, a.AdGroups(nil))

	groups := a.AdGroups([]domain.Keyword{{Text: "web design", BidLow: 2, BidHigh: 4, Intent: domain.IntentCategory}})
	require.Len(t, groups, 1)
	assert.Equal(t, "Category Terms", groups[0].Name)
	assert.Equal(t, 3.0, groups[0].SuggestedCPC)
}

func TestSearchThemesFixture(t *testing.T) {
	themes := NewAnalyzer(DefaultSettings(), seeded()).SearchThemes(FixtureKeywords())

	want := map[string][]string{
		"Digital Marketing Services": {
			"digital marketing services",
			"best digital marketing agency",
			"social media marketing near me",
			"content marketing strategy",
			"email marketing automation",
			"marketing automation tools",
			"affordable marketing services",
		},
		"SEO & Optimization": {
			"seo optimization services",
			"how to improve seo ranking",
			"conversion rate optimization",
			"local seo services",
		},
		"Advertising & PPC":        {"ppc advertising management", "google ads vs facebook ads"},
		"Web Design & Development": {"professional web design"},
		GeneralTheme:               {"brand strategy consulting"},
	}
	got := make(map[string][]string, len(themes))
	for _, theme := range themes {
		got[theme.Name] = theme.Keywords
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("theme buckets mismatch (-want +got):\n%s", diff)
	}

	order := names(themes, func(th domain.SearchTheme) string { return th.Name })
	assert.Equal(t, []string{
		"Digital Marketing Services",
		"SEO & Optimization",
		"Advertising & PPC",
		"Web Design & Development",
		GeneralTheme,
	}, order)
	assert.Equal(t, "Asset group focused on general marketing related searches", themes[4].Description)
	assert.InDelta(t, 11.65, themes[4].SuggestedBid, 1e-9)
}

func TestSearchThemesPartition(t *testing.T) {
	keywords := NewSynthesizer(DefaultSettings(), seeded()).Generate([]string{"plumbing repair", "seo audit", "facebook ads"}, Classifier{})
	themes := NewAnalyzer(DefaultSettings(), seeded()).SearchThemes(keywords)

	seen := make(map[string]int)
	total := 0
	for _, theme := range themes {
		require.NotEmpty(t, theme.Keywords, theme.Name)
		for _, text := range theme.Keywords {
			seen[text]++
		}
		total += len(theme.Keywords)
	}
	assert.Equal(t, len(keywords), total)
	for _, kw := range keywords {
		assert.Equal(t, 1, seen[kw.Text], kw.Text)
	}
}

func TestShoppingBids(t *testing.T) {
	settings := DefaultSettings()
	a := NewAnalyzer(settings, fixedRandom{f: 0.5})

	keywords := []domain.Keyword{
		{Text: "home security systems", BidLow: 1, BidHigh: 2},
		{Text: "health insurance quotes", BidLow: 6, BidHigh: 10},
		{Text: "sports shoes", BidLow: 4, BidHigh: 4},
	}
	bids := a.ShoppingBids(domain.Budgets{Shopping: 1000}, keywords)

	require.Equal(t, settings.Shopping.ProductCategories, names(bids, func(b domain.ShoppingBid) string { return b.ProductCategory }))

	byCategory := make(map[string]domain.ShoppingBid, len(bids))
	for _, b := range bids {
		byCategory[b.ProductCategory] = b
	}

	home := byCategory["Home & Garden"]
	assert.Equal(t, 1.5, home.SuggestedCPC)
	assert.InDelta(t, 13.33, home.ExpectedConversions, 1e-9)
	assert.Equal(t, domain.PriorityHigh, home.Priority)

	health := byCategory["Health & Beauty"]
	assert.Equal(t, 8.0, health.SuggestedCPC)
	assert.InDelta(t, 2.5, health.ExpectedConversions, 1e-9)
	assert.Equal(t, domain.PriorityLow, health.Priority)

	sports := byCategory["Sports & Outdoors"]
	assert.Equal(t, 4.0, sports.SuggestedCPC)
	assert.Equal(t, domain.PriorityMedium, sports.Priority)

	// no keyword mentions books, so the fallback draw gives 1 + 3*0.5
	books := byCategory["Books & Media"]
	assert.Equal(t, 2.5, books.SuggestedCPC)
	assert.InDelta(t, 8.0, books.ExpectedConversions, 1e-9)
	assert.Equal(t, domain.PriorityMedium, books.Priority)
}

func TestShoppingBidsAlwaysOnePerCategory(t *testing.T) {
	settings := DefaultSettings()
	bids := NewAnalyzer(settings, seeded()).ShoppingBids(domain.Budgets{}, nil)

	require.Len(t, bids, len(settings.Shopping.ProductCategories))
	for _, b := range bids {
		assert.GreaterOrEqual(t, b.SuggestedCPC, 1.0)
		assert.LessOrEqual(t, b.SuggestedCPC, 4.0)
		assert.Zero(t, b.ExpectedConversions)
	}
}

func TestTotalEstimatedCost(t *testing.T) {
	tests := []struct {
		budgets domain.Budgets
		want    float64
	}{
		{domain.Budgets{Shopping: 1000, Search: 2000, PMax: 1500}, 4500},
		{domain.Budgets{}, 0},
		{domain.Budgets{Shopping: 0, Search: 250, PMax: 0}, 250},
		{domain.Budgets{Shopping: 0.5, Search: 0.25, PMax: 0.25}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalEstimatedCost(tt.budgets))
	}
}

func TestExpectedConversions(t *testing.T) {
	a := NewAnalyzer(DefaultSettings(), seeded())

	assert.Equal(t, 30.0, a.ExpectedConversions(4500))
	assert.Equal(t, 0.0, a.ExpectedConversions(0))
	assert.Equal(t, a.ExpectedConversions(1234), a.ExpectedConversions(1234))
	assert.InDelta(t, 8.23, a.ExpectedConversions(1234), 1e-9)
}

func TestAnalyze(t *testing.T) {
	inputs := FixtureInputs()
	got := NewAnalyzer(DefaultSettings(), seeded()).Analyze(inputs.Budgets, FixtureKeywords())

	assert.Equal(t, 10500.0, got.TotalEstimatedCost)
	assert.Equal(t, 70.0, got.ExpectedConversions)
	assert.Len(t, got.AdGroups, 5)
	assert.Len(t, got.SearchThemes, 5)
	assert.Len(t, got.ShoppingBids, 8)
}

func TestAverageCPC(t *testing.T) {
	assert.Zero(t, AverageCPC(nil))
	assert.Equal(t, 3.0, AverageCPC([]domain.Keyword{{BidLow: 2, BidHigh: 4}}))
}
