// Package model defines the core domain entities for the feedmix service.
package model

// Units used across the nutrient vocabulary.
const (
	// UnitPercent is the unit for nutrients expressed as percentage of mass.
	UnitPercent = "%"
	// UnitKcalPerKg is the unit for metabolizable energy.
	UnitKcalPerKg = "kcal/kg"
)

// Nutrient names form a fixed vocabulary. Every ingredient profile and norm
// table entry uses these exact keys; Energy is the only nutrient carried in
// kcal/kg, all others are percentages.
const (
	NutrientProtein    = "Protein"
	NutrientFat        = "Fat"
	NutrientFiber      = "Fiber"
	NutrientAsh        = "Ash"
	NutrientCalcium    = "Calcium"
	NutrientPhosphorus = "Phosphorus"
	NutrientEnergy     = "Energy"
	NutrientLysine     = "Lysine"
	NutrientMethionine = "Methionine"
)

// NutrientSample is a single nutrient measurement.
//
// @Description One nutrient value with its unit
// @Example {"name": "Protein", "value": 19.75, "unit": "%"}
type NutrientSample struct {
	// Name is the nutrient name from the fixed vocabulary
	Name string `json:"name" bson:"name" example:"Protein"`
	// Value is the measured amount
	Value float64 `json:"value" bson:"value" example:"19.75"`
	// Unit is "%" for mass-fraction nutrients or "kcal/kg" for Energy
	Unit string `json:"unit" bson:"unit" example:"%"`
}

// NutrientMap maps nutrient names to samples. An empty map is the valid
// "no data yet" state for a mix with zero total weight.
type NutrientMap map[string]NutrientSample

// UnitFor returns the canonical unit string for a nutrient name.
func UnitFor(name string) string {
	if name == NutrientEnergy {
		return UnitKcalPerKg
	}
	return UnitPercent
}
