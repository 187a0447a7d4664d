package trackingapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/ecoshop/backend/pkg/errors"
)

const (
	DefaultClientID        = "ecoshop-mobile"
	DefaultSuggestionLimit = 5

	minSuggestionQueryLength = 2
)

const (
	routeTrackSearch     = "/track-search"
	routeTrackClick      = "/track-click"
	routePatterns        = "/patterns"
	routeRecommendations = "/recommendations"
	routeDashboard       = "/dashboard"
	routeSuggestions     = "/suggestions"
	routeClearHistory    = "/clear-history"
)

// HTTPClient is the search analytics API client. Each instance owns one
// session id for its whole lifetime and is safe for concurrent use.
type HTTPClient struct {
	gateway         *Gateway
	sessionID       string
	clientID        string
	suggestionLimit int
}

var _ providers.SearchAnalyticsProvider = (*HTTPClient)(nil)

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, tokens providers.TokenSource, opts ...Option) *HTTPClient {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &HTTPClient{
		gateway:         newGateway(baseURL, tokens, o),
		sessionID:       NewSessionID(),
		clientID:        o.clientID,
		suggestionLimit: o.suggestionLimit,
	}
}

func (c *HTTPClient) SessionID() string {
	return c.sessionID
}

// TrackSearch records a search. The session id and client identifier are
// always taken from the client, overriding anything set on event. A negative
// results count fails with a VALIDATION error before any network call.
func (c *HTTPClient) TrackSearch(ctx context.Context, event entities.SearchEvent) (*entities.TrackSearchResponse, error) {
	if event.ResultsCount < 0 {
		return nil, apperrors.NewValidationError("results count must not be negative")
	}
	if event.SearchType == "" {
		event.SearchType = entities.SearchTypeGeneral
	}
	event.Filters = event.Filters.Normalized()
	event.SessionID = c.sessionID
	event.UserAgent = c.clientID

	out := &entities.TrackSearchResponse{}
	if err := c.gateway.Do(ctx, http.MethodPost, routeTrackSearch, nil, event, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrackClick records a click on a search result. Missing ids or a negative
// time spent fail with a VALIDATION error before any network call.
func (c *HTTPClient) TrackClick(ctx context.Context, event entities.ClickEvent) (*entities.Ack, error) {
	if strings.TrimSpace(event.SearchID) == "" || strings.TrimSpace(event.ProductID) == "" {
		return nil, apperrors.NewValidationError("search id and product id are required")
	}
	if event.TimeSpent < 0 {
		return nil, apperrors.NewValidationError("time spent must not be negative")
	}

	out := &entities.Ack{}
	if err := c.gateway.Do(ctx, http.MethodPost, routeTrackClick, nil, event, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetPatterns(ctx context.Context, days int) (*entities.PatternsResponse, error) {
	out := &entities.PatternsResponse{}
	if err := c.gateway.Do(ctx, http.MethodGet, routePatterns, daysQuery(days), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetRecommendations(ctx context.Context, limit, days int) (*entities.RecommendationsResponse, error) {
	query := daysQuery(days)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	out := &entities.RecommendationsResponse{}
	if err := c.gateway.Do(ctx, http.MethodGet, routeRecommendations, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetDashboard(ctx context.Context, days int) (*entities.DashboardResponse, error) {
	out := &entities.DashboardResponse{}
	if err := c.gateway.Do(ctx, http.MethodGet, routeDashboard, daysQuery(days), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSuggestions returns completions for query. Queries shorter than two
// characters after trimming return an empty list without calling the
// service; longer queries are sent as given.
func (c *HTTPClient) GetSuggestions(ctx context.Context, query string, limit int) (*entities.SuggestionsResponse, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minSuggestionQueryLength {
		return &entities.SuggestionsResponse{Success: true, Suggestions: []string{}}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	out := &entities.SuggestionsResponse{}
	if err := c.gateway.Do(ctx, http.MethodGet, routeSuggestions, params, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearHistory deletes tracked history. A nil days clears everything.
func (c *HTTPClient) ClearHistory(ctx context.Context, days *int) (*entities.Ack, error) {
	body := struct {
		Days *int `json:"days,omitempty"`
	}{Days: days}

	out := &entities.Ack{}
	if err := c.gateway.Do(ctx, http.MethodDelete, routeClearHistory, nil, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrackSearchWithSuggestions tracks query as a product search, then fetches
// suggestions for it. The tracked results count is always zero: the real
// count is only known after the caller renders results. A failure of either
// call fails the whole operation.
func (c *HTTPClient) TrackSearchWithSuggestions(ctx context.Context, query string, filters entities.SearchFilters) (*entities.SearchWithSuggestions, error) {
	tracked, err := c.TrackSearch(ctx, entities.SearchEvent{
		Query:        query,
		SearchType:   entities.SearchTypeProduct,
		Filters:      filters,
		ResultsCount: 0,
	})
	if err != nil {
		return nil, err
	}

	suggestions, err := c.GetSuggestions(ctx, query, c.suggestionLimit)
	if err != nil {
		return nil, err
	}

	return &entities.SearchWithSuggestions{
		SearchID:    tracked.SearchID,
		Suggestions: suggestions.Suggestions,
		SessionID:   c.sessionID,
	}, nil
}

func daysQuery(days int) url.Values {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	return query
}
