package services_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/ecoshop/backend/internal/application/services"
	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
)

func frequencies(pairs ...interface{}) entities.FrequencyMap {
	var entries []entities.FrequencyEntry
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, entities.FrequencyEntry{Key: pairs[i].(string), Count: pairs[i+1].(int)})
	}
	return entities.NewFrequencyMap(entries...)
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i%26))
	}
	return out
}

func TestCalculateBehaviorScore(t *testing.T) {
	tests := []struct {
		name    string
		pattern *entities.SearchPattern
		want    int
	}{
		{
			name:    "nil pattern",
			pattern: nil,
			want:    0,
		},
		{
			name:    "empty pattern",
			pattern: &entities.SearchPattern{TotalSearches: 0},
			want:    0,
		},
		{
			name: "regression trace 30+15+25+15+10",
			pattern: &entities.SearchPattern{
				TotalSearches:                20,
				CategoryFrequency:            frequencies("a", 1, "b", 1, "c", 1, "d", 1, "e", 1),
				SustainabilityGradeFrequency: frequencies("A", 3, "B", 2),
				TopMaterials:                 items(10),
				TopBrands:                    items(10),
			},
			want: 95,
		},
		{
			name: "uncapped components",
			pattern: &entities.SearchPattern{
				TotalSearches:                3,
				CategoryFrequency:            frequencies("home", 3),
				SustainabilityGradeFrequency: frequencies("A", 1, "C", 2),
				TopMaterials:                 items(2),
				TopBrands:                    items(1),
			},
			want: 6 + 3 + 5 + 4 + 1,
		},
		{
			name: "grades other than A and B do not count",
			pattern: &entities.SearchPattern{
				SustainabilityGradeFrequency: frequencies("C", 10, "D", 4, "a", 3),
			},
			want: 0,
		},
		{
			name: "every component at its cap",
			pattern: &entities.SearchPattern{
				TotalSearches:                1_000_000,
				CategoryFrequency:            frequencies("a", 1, "b", 1, "c", 1, "d", 1, "e", 1, "f", 1, "g", 1),
				SustainabilityGradeFrequency: frequencies("A", 500, "B", 500),
				TopMaterials:                 items(40),
				TopBrands:                    items(40),
			},
			want: 100,
		},
		{
			name: "huge total searches saturates activity",
			pattern: &entities.SearchPattern{
				TotalSearches: math.MaxInt64/2 + 1,
			},
			want: 30,
		},
		{
			name: "max int counts saturate every component",
			pattern: &entities.SearchPattern{
				TotalSearches:                math.MaxInt,
				SustainabilityGradeFrequency: frequencies("A", math.MaxInt, "B", math.MaxInt),
			},
			want: 30 + 25,
		},
		{
			name: "large grade count saturates eco focus",
			pattern: &entities.SearchPattern{
				SustainabilityGradeFrequency: frequencies("A", 1844674407370955162),
			},
			want: 25,
		},
		{
			name: "negative counts contribute nothing",
			pattern: &entities.SearchPattern{
				TotalSearches:                -10,
				SustainabilityGradeFrequency: frequencies("A", -4),
				TopBrands:                    items(2),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.CalculateBehaviorScore(tt.pattern)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestCalculateBehaviorScore_Deterministic(t *testing.T) {
	pattern := &entities.SearchPattern{
		TotalSearches:                11,
		CategoryFrequency:            frequencies("x", 2, "y", 9),
		SustainabilityGradeFrequency: frequencies("B", 1),
		TopMaterials:                 items(3),
	}
	first := services.CalculateBehaviorScore(pattern)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, services.CalculateBehaviorScore(pattern))
	}
}

func TestCalculateBehaviorScore_DecodedPatterns(t *testing.T) {
	var pattern entities.SearchPattern
	err := json.Unmarshal([]byte(`{"totalSearches":1,"sustainabilityGradeFrequency":{"A":1844674407370955162,"B":3}}`), &pattern)
	require.NoError(t, err)
	assert.Equal(t, 2+25, services.CalculateBehaviorScore(&pattern))

	err = json.Unmarshal([]byte(`{"totalSearches":1,"sustainabilityGradeFrequency":{"A":1e30}}`), &pattern)
	assert.Error(t, err)
}
