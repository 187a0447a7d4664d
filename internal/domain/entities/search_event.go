package entities

import "strings"

// SearchType distinguishes free-text searches from product searches.
type SearchType string

const (
	SearchTypeGeneral SearchType = "general"
	SearchTypeProduct SearchType = "product"
)

// PriceRange bounds a product search by price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchFilters holds the filters applied to a search.
type SearchFilters struct {
	SustainabilityGrade string      `json:"sustainabilityGrade,omitempty"`
	PriceRange          *PriceRange `json:"priceRange,omitempty"`
	Materials           []string    `json:"materials,omitempty"`
	Brands              []string    `json:"brands,omitempty"`
}

// Normalized returns a copy with materials and brands de-duplicated,
// keeping the first occurrence of each value.
func (f SearchFilters) Normalized() SearchFilters {
	f.Materials = uniqueStrings(f.Materials)
	f.Brands = uniqueStrings(f.Brands)
	return f
}

// SearchEvent represents a single search interaction for analytics.
type SearchEvent struct {
	Query        string        `json:"searchQuery"`
	SearchType   SearchType    `json:"searchType"`
	Category     string        `json:"category,omitempty"`
	Filters      SearchFilters `json:"filters"`
	ResultsCount int           `json:"resultsCount"`
	SessionID    string        `json:"sessionId"`
	UserAgent    string        `json:"userAgent"`
}

// ClickEvent represents a product click on a tracked search result.
type ClickEvent struct {
	SearchID  string `json:"searchId"`
	ProductID string `json:"productId"`
	TimeSpent int64  `json:"timeSpent"`
}

func uniqueStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
