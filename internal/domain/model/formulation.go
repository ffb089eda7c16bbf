package model

// Formulation is the combined output of one engine pass over a mix:
// blended nutrients, norm findings, and cost per kilogram.
//
// @Description Result of formulating a mix
type Formulation struct {
	// Nutrients is the blended nutrient mapping; empty for zero-weight mixes
	Nutrients NutrientMap `json:"nutrients"`
	// Findings lists deficit/excess/missing classifications, sorted by
	// nutrient name; empty when the blend is empty or norms are unknown
	Findings []Finding `json:"findings"`
	// CostPerKg is the cost of one kilogram of finished mix
	CostPerKg float64 `json:"cost_per_kg" example:"0.31"`
}
