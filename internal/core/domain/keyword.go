package domain

// Intent is a coarse classification of what a searcher is after.
type Intent string

const (
	IntentBrand      Intent = "BRAND"
	IntentCategory   Intent = "CATEGORY"
	IntentCompetitor Intent = "COMPETITOR"
	IntentLocation   Intent = "LOCATION"
	IntentLongTail   Intent = "LONG_TAIL"
)

// Competition is the auction pressure label attached to a keyword.
type Competition string

const (
	CompetitionLow    Competition = "LOW"
	CompetitionMedium Competition = "MEDIUM"
	CompetitionHigh   Competition = "HIGH"
)

// Keyword is a synthesized keyword together with its estimated metrics.
// Bids are expressed in currency units with two decimals and BidLow never
// exceeds BidHigh.
type Keyword struct {
	Text         string      `json:"keyword"`
	SearchVolume int         `json:"searchVolume"`
	BidLow       float64     `json:"topOfPageBidLow"`
	BidHigh      float64     `json:"topOfPageBidHigh"`
	Competition  Competition `json:"competition"`
	Intent       Intent      `json:"intent"`
}

// MidBid is the midpoint of the top of page bid range.
func (k Keyword) MidBid() float64 {
	return (k.BidLow + k.BidHigh) / 2
}
