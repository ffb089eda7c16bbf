// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"github.com/feedwise/feedmix-service/internal/domain/model"
)

// ComponentRequest is one (ingredient, amount) pair inside a mix request.
//
// @Description One ingredient and its amount
// @Example {"ingredient_id": "corn", "amount": 70}
type ComponentRequest struct {
	// IngredientID references a catalog ingredient.
	IngredientID string `json:"ingredient_id" binding:"required" example:"corn"`
	// Amount is percentage points in percent mode, kilograms in mass mode.
	// Zero amounts are allowed; they simply contribute nothing.
	Amount float64 `json:"amount" binding:"gte=0" example:"70" minimum:"0"`
} // @name ComponentRequest

// FormulateRequest represents the JSON request body for the formulate endpoint.
//
// @Description Request to blend a mix and evaluate it against nutrient norms
// @Example {"species": "chicken", "goal": "growth", "age_class": "young", "unit_mode": "percent", "components": [{"ingredient_id": "corn", "amount": 70}, {"ingredient_id": "soybean_meal", "amount": 30}]}
type FormulateRequest struct {
	Species  string `json:"species" binding:"required" example:"chicken"`
	Goal     string `json:"goal" binding:"required" example:"growth"`
	AgeClass string `json:"age_class" binding:"required" example:"young"`
	// UnitMode is "percent" or "mass".
	UnitMode string `json:"unit_mode" binding:"required" example:"percent"`
	// Components may be empty: an empty mix formulates to empty nutrients,
	// zero cost, and no findings.
	Components []ComponentRequest `json:"components"`
} // @name FormulateRequest

// SaveMixRequest represents the JSON request body for saving a finalized mix.
//
// @Description Request to finalize and persist a feed mix
type SaveMixRequest struct {
	// Name labels the saved mix.
	Name     string `json:"name" binding:"required,max=120" example:"Starter batch 3"`
	Species  string `json:"species" binding:"required" example:"chicken"`
	Goal     string `json:"goal" binding:"required" example:"growth"`
	AgeClass string `json:"age_class" binding:"required" example:"young"`
	UnitMode string `json:"unit_mode" binding:"required" example:"percent"`
	// BirdWeightKg is optional caller context carried into the record.
	BirdWeightKg *float64           `json:"bird_weight_kg,omitempty" example:"1.8"`
	Components   []ComponentRequest `json:"components" binding:"required,min=1"`
} // @name SaveMixRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidUnitMode is returned when unit_mode is not percent or mass.
	ErrInvalidUnitMode = &ValidationError{
		Field:   "unit_mode",
		Message: "must be \"percent\" or \"mass\"",
	}
	// ErrNegativeAmount is returned when a component amount is negative.
	ErrNegativeAmount = &ValidationError{
		Field:   "components",
		Message: "amounts must not be negative",
	}
	// ErrMissingIngredientID is returned when a component has no ingredient id.
	ErrMissingIngredientID = &ValidationError{
		Field:   "components",
		Message: "every component needs an ingredient_id",
	}
	// ErrPercentSum is returned when percent-mode amounts do not sum to 100.
	ErrPercentSum = &ValidationError{
		Field:   "components",
		Message: "percent amounts must sum to 100 (±0.1)",
	}
)

// Mode converts the request unit mode string to the domain type.
func (r *FormulateRequest) Mode() model.UnitMode {
	return model.UnitMode(r.UnitMode)
}

// Profile converts the request bird profile fields to the domain key.
func (r *FormulateRequest) Profile() model.BirdProfile {
	return model.BirdProfile{
		Species:  model.Species(r.Species),
		Goal:     model.Goal(r.Goal),
		AgeClass: model.AgeClass(r.AgeClass),
	}
}

// DomainComponents converts request components to domain mix components.
func (r *FormulateRequest) DomainComponents() []model.MixComponent {
	return toDomainComponents(r.Components)
}

// Validate performs custom validation on the formulate request.
// An unknown bird profile is deliberately not an error: the norm evaluator
// treats it as "norms unknown" and emits zero findings.
func (r *FormulateRequest) Validate() error {
	if !r.Mode().Valid() {
		return ErrInvalidUnitMode
	}
	return validateComponents(r.Components)
}

// Mode converts the request unit mode string to the domain type.
func (r *SaveMixRequest) Mode() model.UnitMode {
	return model.UnitMode(r.UnitMode)
}

// Profile converts the request bird profile fields to the domain key.
func (r *SaveMixRequest) Profile() model.BirdProfile {
	return model.BirdProfile{
		Species:  model.Species(r.Species),
		Goal:     model.Goal(r.Goal),
		AgeClass: model.AgeClass(r.AgeClass),
	}
}

// DomainComponents converts request components to domain mix components.
func (r *SaveMixRequest) DomainComponents() []model.MixComponent {
	return toDomainComponents(r.Components)
}

// Validate performs custom validation on the save request. Unlike formulate,
// saving enforces the percent-sum precondition: a percent-mode mix must sum
// to 100 within tolerance before it may be persisted.
func (r *SaveMixRequest) Validate() error {
	if !r.Mode().Valid() {
		return ErrInvalidUnitMode
	}
	if err := validateComponents(r.Components); err != nil {
		return err
	}
	if !model.PercentSumValid(r.DomainComponents(), r.Mode()) {
		return ErrPercentSum
	}
	return nil
}

func validateComponents(components []ComponentRequest) error {
	for _, c := range components {
		if c.IngredientID == "" {
			return ErrMissingIngredientID
		}
		if c.Amount < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

func toDomainComponents(components []ComponentRequest) []model.MixComponent {
	out := make([]model.MixComponent, 0, len(components))
	for _, c := range components {
		out = append(out, model.MixComponent{
			IngredientID: c.IngredientID,
			Amount:       c.Amount,
		})
	}
	return out
}
