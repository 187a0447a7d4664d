//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/ecoshop/backend/internal/adapters/tokenstore"
	"github.com/zatekoja/ecoshop/backend/internal/application/services"
	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/clients/trackingapi"
	apperrors "github.com/zatekoja/ecoshop/backend/pkg/errors"
)

func newLiveClient(t *testing.T, token string) *trackingapi.HTTPClient {
	t.Helper()

	baseURL := os.Getenv("TEST_TRACKING_API_BASE_URL")
	if baseURL == "" {
		t.Skip("tracking API integration test requires TEST_TRACKING_API_BASE_URL")
	}
	return trackingapi.NewClient(baseURL, tokenstore.StaticTokenSource(token), trackingapi.WithTimeout(10*time.Second))
}

func TestTrackingAPI_SignedOutInsightsFallBack(t *testing.T) {
	client := newLiveClient(t, "")
	ctx := context.Background()

	_, err := client.GetPatterns(ctx, 30)
	assert.True(t, apperrors.IsAuthRequired(err))

	insights, err := services.NewSearchInsightsService(client, nil).GetSearchInsights(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSearchInsights(), insights)
}

func TestTrackingAPI_TrackAndReadBack(t *testing.T) {
	token := os.Getenv("TEST_TRACKING_API_TOKEN")
	if token == "" {
		t.Skip("tracking API integration test requires TEST_TRACKING_API_TOKEN")
	}
	client := newLiveClient(t, token)
	ctx := context.Background()

	tracked, err := client.TrackSearchWithSuggestions(ctx, "bamboo", entities.SearchFilters{})
	require.NoError(t, err)
	assert.NotEmpty(t, tracked.SearchID)
	assert.Equal(t, client.SessionID(), tracked.SessionID)

	insights, err := services.NewSearchInsightsService(client, nil).GetSearchInsights(ctx, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, insights.Patterns.TotalSearches, 1)

	score := services.CalculateBehaviorScore(&insights.Patterns)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}
