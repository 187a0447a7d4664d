package providers

import (
	"context"

	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
)

// SearchAnalyticsProvider defines the operations of the remote search analytics service
type SearchAnalyticsProvider interface {
	// SessionID returns the id correlating every event sent by this client
	SessionID() string

	// TrackSearch records a search and returns its id
	TrackSearch(ctx context.Context, event entities.SearchEvent) (*entities.TrackSearchResponse, error)

	// TrackClick records a click on a product from a tracked search
	TrackClick(ctx context.Context, event entities.ClickEvent) (*entities.Ack, error)

	// GetPatterns returns the user's search pattern over the last days
	GetPatterns(ctx context.Context, days int) (*entities.PatternsResponse, error)

	// GetRecommendations returns personalized product recommendations
	GetRecommendations(ctx context.Context, limit, days int) (*entities.RecommendationsResponse, error)

	// GetDashboard returns dashboard insights and trending searches
	GetDashboard(ctx context.Context, days int) (*entities.DashboardResponse, error)

	// GetSuggestions returns query completions
	GetSuggestions(ctx context.Context, query string, limit int) (*entities.SuggestionsResponse, error)

	// ClearHistory deletes tracked history, optionally only the last days
	ClearHistory(ctx context.Context, days *int) (*entities.Ack, error)

	// TrackSearchWithSuggestions tracks a product search then fetches suggestions for it
	TrackSearchWithSuggestions(ctx context.Context, query string, filters entities.SearchFilters) (*entities.SearchWithSuggestions, error)
}
