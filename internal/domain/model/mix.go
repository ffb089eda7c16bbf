package model

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnitMode selects how component amounts are interpreted.
type UnitMode string

const (
	// UnitModePercent means amounts are percentage points of the total mix.
	UnitModePercent UnitMode = "percent"
	// UnitModeMass means amounts are absolute kilograms.
	UnitModeMass UnitMode = "mass"
)

// Valid reports whether the unit mode is one of the two known modes.
func (m UnitMode) Valid() bool {
	return m == UnitModePercent || m == UnitModeMass
}

// PercentSumTolerance is the allowed deviation from 100 for the sum of
// component amounts before a percent-mode mix may be saved.
const PercentSumTolerance = 0.1

// MixComponent is one ingredient added to a mix. Amount semantics depend on
// the mix-level unit mode.
//
// @Description One ingredient and its amount within a mix
// @Example {"ingredient_id": "corn", "amount": 70}
type MixComponent struct {
	// IngredientID references an Ingredient in the catalog
	IngredientID string `json:"ingredient_id" bson:"ingredient_id" example:"corn"`
	// Amount is percentage points in percent mode, kilograms in mass mode
	Amount float64 `json:"amount" bson:"amount" example:"70"`
}

// Weight converts the component amount into the unnormalized blend weight.
// The engine only cares about relative magnitudes, so percent amounts become
// mass fractions and mass amounts pass through as kilograms.
func (c MixComponent) Weight(mode UnitMode) float64 {
	if mode == UnitModePercent {
		return c.Amount / 100
	}
	return c.Amount
}

// PercentSumValid reports whether percent-mode amounts sum to 100 within
// tolerance. Mass-mode component lists are always valid.
func PercentSumValid(components []MixComponent, mode UnitMode) bool {
	if mode != UnitModePercent {
		return true
	}
	sum := 0.0
	for _, c := range components {
		sum += c.Amount
	}
	return math.Abs(sum-100) <= PercentSumTolerance
}

// FeedMix is a saved formulation. Mixes are append-only: saving again
// creates a new document, existing documents are never mutated.
//
// @Description A saved feed mix with its computed nutrient blend and cost
type FeedMix struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" example:"Starter batch 3"`
	Species  Species            `json:"species" bson:"species" example:"chicken"`
	Goal     Goal               `json:"goal" bson:"goal" example:"growth"`
	AgeClass AgeClass           `json:"age_class" bson:"age_class" example:"young"`
	// BirdWeightKg is optional caller-supplied context, not used by the engine
	BirdWeightKg *float64       `json:"bird_weight_kg,omitempty" bson:"bird_weight_kg,omitempty"`
	UnitMode     UnitMode       `json:"unit_mode" bson:"unit_mode" example:"percent"`
	Components   []MixComponent `json:"components" bson:"components"`
	// BlendedNutrients is the engine output embedded at save time
	BlendedNutrients NutrientMap `json:"blended_nutrients" bson:"blended_nutrients"`
	CostPerKg        float64     `json:"cost_per_kg" bson:"cost_per_kg" example:"0.31"`
	Findings         []Finding   `json:"findings" bson:"findings"`
	OwnerID          string      `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	CreatedAt        time.Time   `json:"created_at" bson:"created_at"`
}
