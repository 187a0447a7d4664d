package entities

// Recommendation is a product suggested from the user's search patterns.
type Recommendation struct {
	ProductID           string  `json:"productId"`
	Name                string  `json:"name"`
	Category            string  `json:"category,omitempty"`
	Brand               string  `json:"brand,omitempty"`
	SustainabilityGrade string  `json:"sustainabilityGrade,omitempty"`
	Price               float64 `json:"price,omitempty"`
	Score               float64 `json:"score,omitempty"`
	Reason              string  `json:"reason,omitempty"`
}

// Ack is the acknowledgement returned by write endpoints.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type TrackSearchResponse struct {
	Success  bool   `json:"success"`
	SearchID string `json:"searchId" validate:"required"`
}

type PatternsResponse struct {
	Success  bool           `json:"success"`
	Patterns *SearchPattern `json:"patterns" validate:"required"`
}

type RecommendationsResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations" validate:"required"`
}

type DashboardResponse struct {
	Success          bool               `json:"success"`
	Insights         *DashboardInsights `json:"insights" validate:"required"`
	TrendingSearches []TrendingSearch   `json:"trendingSearches"`
}

type SuggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions" validate:"required"`
}

// SearchWithSuggestions is the result of tracking a product search and
// fetching suggestions for the same query.
type SearchWithSuggestions struct {
	SearchID    string   `json:"searchId"`
	Suggestions []string `json:"suggestions"`
	SessionID   string   `json:"sessionId"`
}
