package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdGroupMembers(t *testing.T) {
	kw := func(text string, intent Intent) Keyword { return Keyword{Text: text, Intent: intent} }
	plan := &Plan{
		Keywords: []Keyword{
			kw("shoes", IntentCategory),
			kw("shoes near me", IntentLocation),
			kw("boots", IntentCategory),
			// a duplicate text must still link to its own row
			kw("shoes", IntentCategory),
		},
		AdGroups: []AdGroup{
			{Name: "Category Terms", Keywords: []Keyword{kw("shoes", IntentCategory), kw("boots", IntentCategory), kw("shoes", IntentCategory)}},
			{Name: "Location-based Queries", Keywords: []Keyword{kw("shoes near me", IntentLocation)}},
		},
	}

	got, err := plan.AdGroupMembers()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 3}, {1}}, got)
}

func TestAdGroupMembersInconsistent(t *testing.T) {
	plan := &Plan{
		Keywords: []Keyword{{Text: "a", Intent: IntentBrand}},
		AdGroups: []AdGroup{{Name: "Brand Terms", Keywords: []Keyword{
			{Text: "a", Intent: IntentBrand},
			{Text: "b", Intent: IntentBrand},
		}}},
	}

	_, err := plan.AdGroupMembers()
	require.Error(t, err)
}

func TestMidBid(t *testing.T) {
	assert.InDelta(t, 3.0, Keyword{BidLow: 2, BidHigh: 4}.MidBid(), 1e-9)
}
