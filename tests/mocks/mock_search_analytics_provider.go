package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
)

// MockSearchAnalyticsProvider is a testify mock of providers.SearchAnalyticsProvider
type MockSearchAnalyticsProvider struct {
	mock.Mock
}

// NewMockSearchAnalyticsProvider creates a mock whose expectations are asserted on cleanup
func NewMockSearchAnalyticsProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSearchAnalyticsProvider {
	m := &MockSearchAnalyticsProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSearchAnalyticsProvider) SessionID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSearchAnalyticsProvider) TrackSearch(ctx context.Context, event entities.SearchEvent) (*entities.TrackSearchResponse, error) {
	args := m.Called(ctx, event)
	resp, _ := args.Get(0).(*entities.TrackSearchResponse)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) TrackClick(ctx context.Context, event entities.ClickEvent) (*entities.Ack, error) {
	args := m.Called(ctx, event)
	resp, _ := args.Get(0).(*entities.Ack)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) GetPatterns(ctx context.Context, days int) (*entities.PatternsResponse, error) {
	args := m.Called(ctx, days)
	resp, _ := args.Get(0).(*entities.PatternsResponse)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) GetRecommendations(ctx context.Context, limit, days int) (*entities.RecommendationsResponse, error) {
	args := m.Called(ctx, limit, days)
	resp, _ := args.Get(0).(*entities.RecommendationsResponse)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) GetDashboard(ctx context.Context, days int) (*entities.DashboardResponse, error) {
	args := m.Called(ctx, days)
	resp, _ := args.Get(0).(*entities.DashboardResponse)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) GetSuggestions(ctx context.Context, query string, limit int) (*entities.SuggestionsResponse, error) {
	args := m.Called(ctx, query, limit)
	resp, _ := args.Get(0).(*entities.SuggestionsResponse)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) ClearHistory(ctx context.Context, days *int) (*entities.Ack, error) {
	args := m.Called(ctx, days)
	resp, _ := args.Get(0).(*entities.Ack)
	return resp, args.Error(1)
}

func (m *MockSearchAnalyticsProvider) TrackSearchWithSuggestions(ctx context.Context, query string, filters entities.SearchFilters) (*entities.SearchWithSuggestions, error) {
	args := m.Called(ctx, query, filters)
	resp, _ := args.Get(0).(*entities.SearchWithSuggestions)
	return resp, args.Error(1)
}
