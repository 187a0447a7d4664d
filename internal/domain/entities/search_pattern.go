package entities

// RecentSearch is one entry of a pattern's recent search history.
type RecentSearch struct {
	Query      string `json:"query"`
	SearchType string `json:"searchType,omitempty"`
	Category   string `json:"category,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// SearchPattern is the server-aggregated summary of a user's search behavior
// over a lookback window.
type SearchPattern struct {
	TotalSearches                int            `json:"totalSearches"`
	CategoryFrequency            FrequencyMap   `json:"categoryFrequency"`
	SearchTypeFrequency          FrequencyMap   `json:"searchTypeFrequency"`
	SustainabilityGradeFrequency FrequencyMap   `json:"sustainabilityGradeFrequency"`
	TopMaterials                 []string       `json:"topMaterials,omitempty"`
	TopBrands                    []string       `json:"topBrands,omitempty"`
	AllMaterials                 []string       `json:"allMaterials"`
	AllBrands                    []string       `json:"allBrands"`
	RecentSearches               []RecentSearch `json:"recentSearches"`
}

// RankedCategories returns categories by descending search count, ties in
// first-seen order.
func (p *SearchPattern) RankedCategories() []string {
	ranked := p.CategoryFrequency.Ranked()
	out := make([]string, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, e.Key)
	}
	return out
}

// ActivityPoint is a per-day search count.
type ActivityPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardInsights summarizes search activity for the insights dashboard.
type DashboardInsights struct {
	TotalSearches                int             `json:"totalSearches"`
	MostSearchedCategory         *string         `json:"mostSearchedCategory"`
	PreferredSustainabilityGrade *string         `json:"preferredSustainabilityGrade"`
	SearchFrequency              float64         `json:"searchFrequency"`
	DiversityScore               float64         `json:"diversityScore"`
	RecentActivity               []ActivityPoint `json:"recentActivity"`
}

// TrendingSearch is a query that is popular across users.
type TrendingSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// SearchInsights merges a user's search pattern with dashboard insights.
type SearchInsights struct {
	Patterns         SearchPattern     `json:"patterns"`
	Insights         DashboardInsights `json:"insights"`
	TrendingSearches []TrendingSearch  `json:"trendingSearches"`
}

// DefaultSearchInsights returns the empty insights shown to a user who is
// not signed in.
func DefaultSearchInsights() *SearchInsights {
	return &SearchInsights{
		Patterns: SearchPattern{
			AllMaterials:   []string{},
			AllBrands:      []string{},
			RecentSearches: []RecentSearch{},
		},
		Insights: DashboardInsights{
			RecentActivity: []ActivityPoint{},
		},
		TrendingSearches: []TrendingSearch{},
	}
}
