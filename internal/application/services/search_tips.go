package services

import (
	"fmt"

	"github.com/zatekoja/ecoshop/backend/internal/domain/entities"
)

const explorationThreshold = 5

// GenerateSearchTips derives advisory tips from a search pattern. Tips are
// always ordered exploration, category, sustainability, materials; checks
// that do not apply are skipped. A nil pattern is treated as empty.
func GenerateSearchTips(pattern *entities.SearchPattern) []entities.Tip {
	tips := []entities.Tip{}
	if pattern == nil {
		pattern = &entities.SearchPattern{}
	}

	if pattern.TotalSearches < explorationThreshold {
		tips = append(tips, entities.Tip{
			Type:    entities.TipTypeExploration,
			Message: "Search for more products to get personalized eco-friendly recommendations.",
			Icon:    "search",
		})
	}

	if top, ok := pattern.CategoryFrequency.Top(); ok {
		tips = append(tips, entities.Tip{
			Type:    entities.TipTypeCategory,
			Message: fmt.Sprintf("You search most for %s. Check out our top-rated sustainable picks in this category.", top.Key),
			Icon:    "grid",
		})
	}

	if top, ok := pattern.SustainabilityGradeFrequency.Top(); ok {
		tip := entities.Tip{
			Type: entities.TipTypeSustainability,
			Icon: "leaf",
		}
		if top.Key == "A" || top.Key == "B" {
			tip.Message = "Great job! You consistently look for highly sustainable products."
		} else {
			tip.Message = "Try filtering for A or B sustainability grades to find greener alternatives."
		}
		tips = append(tips, tip)
	}

	if len(pattern.TopMaterials) > 0 {
		tips = append(tips, entities.Tip{
			Type:    entities.TipTypeMaterials,
			Message: fmt.Sprintf("You're interested in %s. Discover more products made from this material.", pattern.TopMaterials[0]),
			Icon:    "cube",
		})
	}

	return tips
}
