package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/ecoshop/backend/pkg/errors"
)

// SearchInsightsService combines search patterns and dashboard insights
type SearchInsightsService struct {
	analytics providers.SearchAnalyticsProvider
	metrics   *observability.Metrics
}

// NewSearchInsightsService creates a new search insights service. metrics may be nil.
func NewSearchInsightsService(analytics providers.SearchAnalyticsProvider, metrics *observability.Metrics) *SearchInsightsService {
	return &SearchInsightsService{
		analytics: analytics,
		metrics:   metrics,
	}
}

// GetSearchInsights fetches patterns and dashboard for the last days
// concurrently. Neither call is cancelled when the other fails; the first
// error wins once both have returned. When no access token is available it returns the default
// insights instead of failing; every other error is returned as is.
func (s *SearchInsightsService) GetSearchInsights(ctx context.Context, days int) (*entities.SearchInsights, error) {
	var (
		patterns  *entities.PatternsResponse
		dashboard *entities.DashboardResponse
	)

	var g errgroup.Group
	g.Go(func() error {
		resp, err := s.analytics.GetPatterns(ctx, days)
		if err != nil {
			return err
		}
		patterns = resp
		return nil
	})
	g.Go(func() error {
		resp, err := s.analytics.GetDashboard(ctx, days)
		if err != nil {
			return err
		}
		dashboard = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		if apperrors.IsAuthRequired(err) {
			observability.LoggerFromContext(ctx).Warn().Int("days", days).Msg("no access token, returning default search insights")
			observability.RecordInsightsFallback(ctx, s.metrics)
			return entities.DefaultSearchInsights(), nil
		}
		return nil, err
	}

	if patterns == nil || patterns.Patterns == nil || dashboard == nil || dashboard.Insights == nil {
		return nil, apperrors.NewServerError(0, "malformed response: missing patterns or insights")
	}

	insights := &entities.SearchInsights{
		Patterns:         *patterns.Patterns,
		Insights:         *dashboard.Insights,
		TrendingSearches: dashboard.TrendingSearches,
	}
	if insights.TrendingSearches == nil {
		insights.TrendingSearches = []entities.TrendingSearch{}
	}
	return insights, nil
}
