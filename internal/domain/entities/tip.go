package entities

// TipType identifies which pattern check produced a tip.
type TipType string

const (
	TipTypeExploration    TipType = "exploration"
	TipTypeCategory       TipType = "category"
	TipTypeSustainability TipType = "sustainability"
	TipTypeMaterials      TipType = "materials"
)

// Tip is a short advisory message derived from a search pattern.
type Tip struct {
	Type    TipType `json:"type"`
	Message string  `json:"message"`
	Icon    string  `json:"icon"`
}
