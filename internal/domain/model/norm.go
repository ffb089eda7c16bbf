package model

// Species enumerates the poultry species covered by the norm tables.
type Species string

const (
	SpeciesChicken Species = "chicken"
	SpeciesDuck    Species = "duck"
	SpeciesTurkey  Species = "turkey"
	SpeciesQuail   Species = "quail"
	SpeciesGoose   Species = "goose"
)

// Goal enumerates the production purposes a mix is formulated for.
type Goal string

const (
	GoalEggLaying   Goal = "egg_laying"
	GoalFattening   Goal = "fattening"
	GoalGrowth      Goal = "growth"
	GoalMaintenance Goal = "maintenance"
)

// AgeClass enumerates bird age classes.
type AgeClass string

const (
	AgeYoung   AgeClass = "young"
	AgeAdult   AgeClass = "adult"
	AgeLaying  AgeClass = "laying"
	AgeBroiler AgeClass = "broiler"
)

// BirdProfile is the composite key into the norm table. Not every profile
// has norms; an unknown profile simply yields no findings.
type BirdProfile struct {
	Species  Species  `json:"species" bson:"species"`
	Goal     Goal     `json:"goal" bson:"goal"`
	AgeClass AgeClass `json:"age_class" bson:"age_class"`
}

// NormRange is the inclusive [Min, Max] band a blended nutrient value is
// checked against. Values exactly on a bound are within range.
type NormRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Contains reports whether the value lies inside the inclusive range.
func (r NormRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FindingStatus classifies one nutrient against its norm range.
type FindingStatus string

const (
	// FindingDeficit means the blended value is below the norm minimum.
	FindingDeficit FindingStatus = "deficit"
	// FindingExcess means the blended value is above the norm maximum.
	FindingExcess FindingStatus = "excess"
	// FindingMissing means the norm table covers the nutrient but the blend
	// carries no value for it at all. Informational, distinct from deficit.
	FindingMissing FindingStatus = "missing"
)

// Finding is one deficit/excess/missing classification. The engine only
// returns classification data; alerting on boundary crossings is the
// caller's responsibility.
//
// @Description Classification of one nutrient against its norm range
/// @Example {"nutrient": "Protein", "status": "deficit", "value": 19.75, "min": 20, "max": 23}
type Finding struct {
	Nutrient string        `json:"nutrient" bson:"nutrient" example:"Protein"`
	Status   FindingStatus `json:"status" bson:"status" example:"deficit"`
	// Value is the blended value that was checked; zero for missing nutrients
	Value float64 `json:"value" bson:"value" example:"19.75"`
	Min   float64 `json:"min" bson:"min" example:"20"`
	Max   float64 `json:"max" bson:"max" example:"23"`
}

// String renders the finding in the short human-readable form used by logs.
func (f Finding) String() string {
	return string(f.Status) + ": " + f.Nutrient
}
