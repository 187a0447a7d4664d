package services

import "github.com/zatekoja/ecoshop/backend/internal/domain/entities"

const (
	maxActivityScore          = 30
	maxDiversityScore         = 20
	maxEcoFocusScore          = 25
	maxMaterialAwarenessScore = 15
	maxBrandAwarenessScore    = 10
	maxBehaviorScore          = 100
)

// CalculateBehaviorScore rates search engagement and sustainability focus
// on a 0-100 scale. Each component is capped on its own before summing.
func CalculateBehaviorScore(pattern *entities.SearchPattern) int {
	if pattern == nil {
		return 0
	}

	grades := pattern.SustainabilityGradeFrequency
	ecoCount := capped(grades.Get("A"), maxEcoFocusScore) + capped(grades.Get("B"), maxEcoFocusScore)

	activity := scaled(pattern.TotalSearches, 2, maxActivityScore)
	diversity := scaled(pattern.CategoryFrequency.Len(), 3, maxDiversityScore)
	ecoFocus := scaled(ecoCount, 5, maxEcoFocusScore)
	materialAwareness := scaled(len(pattern.TopMaterials), 2, maxMaterialAwarenessScore)
	brandAwareness := scaled(len(pattern.TopBrands), 1, maxBrandAwarenessScore)

	return capped(activity+diversity+ecoFocus+materialAwareness+brandAwareness, maxBehaviorScore)
}

// scaled returns v*k clamped to [0, limit] without overflowing for large v.
func scaled(v, k, limit int) int {
	if v <= 0 {
		return 0
	}
	if v >= (limit+k-1)/k {
		return limit
	}
	return v * k
}

// capped clamps v to [0, limit].
func capped(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
