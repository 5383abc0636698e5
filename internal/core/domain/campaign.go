package domain

// AdGroup is a bucket of keywords sharing one intent. It is derived from
// the plan keywords and never edited on its own.
type AdGroup struct {
	Name         string    `json:"name"`
	Keywords     []Keyword `json:"keywords"`
	SuggestedCPC float64   `json:"suggestedCPC"`
	MatchTypes   []string  `json:"matchTypes"`
}

// SearchTheme groups keyword texts by topic for asset group style campaigns.
type SearchTheme struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	SuggestedBid float64  `json:"suggestedBid"`
}

// Priority ranks a shopping category.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ShoppingBid is the bid recommendation for one product category.
type ShoppingBid struct {
	ProductCategory     string   `json:"productCategory"`
	SuggestedCPC        float64  `json:"suggestedCPC"`
	Priority            Priority `json:"priority"`
	ExpectedConversions float64  `json:"expectedConversions"`
}
