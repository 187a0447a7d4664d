package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zatekoja/ecoshop/backend/internal/application/services"
	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/ecoshop/backend/pkg/errors"
)

type runOptions struct {
	days            int
	query           string
	recommendations int
	clear           bool
}

type report struct {
	SessionID       string                          `json:"sessionId"`
	Cleared         *entities.Ack                   `json:"cleared,omitempty"`
	Tracked         *entities.SearchWithSuggestions `json:"tracked,omitempty"`
	Insights        *entities.SearchInsights        `json:"insights"`
	Score           int                             `json:"score"`
	Tips            []entities.Tip                  `json:"tips"`
	TopCategories   []string                        `json:"topCategories"`
	Recommendations []entities.Recommendation       `json:"recommendations,omitempty"`
}

func run(ctx context.Context, analytics providers.SearchAnalyticsProvider, insights *services.SearchInsightsService, opts runOptions, out io.Writer) error {
	rep := report{SessionID: analytics.SessionID()}

	if opts.clear {
		days := opts.days
		ack, err := analytics.ClearHistory(ctx, &days)
		if err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		rep.Cleared = ack
	}

	if opts.query != "" {
		tracked, err := analytics.TrackSearchWithSuggestions(ctx, opts.query, entities.SearchFilters{})
		if err != nil {
			return fmt.Errorf("track search: %w", err)
		}
		rep.Tracked = tracked
	}

	result, err := insights.GetSearchInsights(ctx, opts.days)
	if err != nil {
		return fmt.Errorf("search insights: %w", err)
	}
	rep.Insights = result
	rep.Score = services.CalculateBehaviorScore(&result.Patterns)
	rep.Tips = services.GenerateSearchTips(&result.Patterns)
	rep.TopCategories = result.Patterns.RankedCategories()

	if opts.recommendations > 0 {
		recs, err := analytics.GetRecommendations(ctx, opts.recommendations, opts.days)
		switch {
		case apperrors.IsAuthRequired(err):
			observability.LoggerFromContext(ctx).Warn().Msg("no access token, skipping recommendations")
		case err != nil:
			return fmt.Errorf("recommendations: %w", err)
		default:
			rep.Recommendations = recs.Recommendations
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
