package model

// Ingredient categories used by the reference catalog.
const (
	CategoryGrain   = "grain"
	CategoryProtein = "protein"
	CategoryMineral = "mineral"
	CategoryFat     = "fat"
	CategoryOther   = "other"
)

// Ingredient is a static reference entity from the catalog. It is never
// mutated at runtime; the catalog is loaded once and shared read-only.
//
// @Description Reference feed ingredient with its nutrient profile
type Ingredient struct {
	// ID is the stable catalog identifier, e.g. "corn"
	ID string `json:"id" bson:"id" example:"corn"`
	// Name is the display name
	Name string `json:"name" bson:"name" example:"Corn"`
	// Category groups ingredients for the caller UI
	Category string `json:"category" bson:"category" example:"grain"`
	// Nutrients maps nutrient names to per-kilogram values (percentage
	// basis, except Energy in kcal/kg)
	Nutrients NutrientMap `json:"nutrients" bson:"nutrients"`
	// PricePerKg is the market price; nil means unpriced, which counts as
	// zero cost but still dilutes the mix average
	PricePerKg *float64 `json:"price_per_kg,omitempty" bson:"price_per_kg,omitempty" example:"0.25"`
}

// Price returns the ingredient price, treating a missing price as zero.
func (i Ingredient) Price() float64 {
	if i.PricePerKg == nil {
		return 0
	}
	return *i.PricePerKg
}

// NutrientValue returns the raw value for a nutrient, zero when absent.
func (i Ingredient) NutrientValue(name string) float64 {
	if s, ok := i.Nutrients[name]; ok {
		return s.Value
	}
	return 0
}
