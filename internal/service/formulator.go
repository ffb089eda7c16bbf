package service

import (
	"sort"

	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/feedwise/feedmix-service/internal/refdata"
)

// Default protein correction applied by SuggestProteinFix: soybean meal at
// 15 units (percentage points or kilograms, matching the mix unit mode).
const (
	DefaultSuggestIngredientID = "soybean_meal"
	DefaultSuggestAmount       = 15
)

// Formulator defines the feed formulation engine. All operations are pure
// functions over their inputs plus the immutable reference datasets, so a
// single instance is safe for concurrent use.
type Formulator interface {
	// Blend converts a component list into the blended nutrient mapping.
	Blend(components []model.MixComponent, mode model.UnitMode) model.NutrientMap
	// EvaluateNorms classifies a blend against the norm ranges for a profile.
	EvaluateNorms(blend model.NutrientMap, profile model.BirdProfile) []model.Finding
	// CostPerKg computes the cost of one kilogram of finished mix.
	CostPerKg(components []model.MixComponent, mode model.UnitMode) float64
	// SuggestProteinFix appends a protein-rich ingredient when the blend is
	// protein-deficient. Returns the (possibly extended) component list and
	// whether a suggestion was applied.
	SuggestProteinFix(components []model.MixComponent, blend model.NutrientMap, mode model.UnitMode, profile model.BirdProfile) ([]model.MixComponent, bool)
	// Formulate runs the full blend, evaluate, cost pipeline.
	Formulate(components []model.MixComponent, mode model.UnitMode, profile model.BirdProfile) model.Formulation
}

// FormulatorOption configures a FormulatorService.
type FormulatorOption func(*FormulatorService)

// WithSuggestion overrides the ingredient and amount used by the protein
// auto-suggest heuristic.
func WithSuggestion(ingredientID string, amount float64) FormulatorOption {
	return func(s *FormulatorService) {
		if ingredientID != "" {
			s.suggestID = ingredientID
		}
		if amount > 0 {
			s.suggestAmount = amount
		}
	}
}

// FormulatorService implements Formulator on top of the loaded catalog and
// norm table. It holds no mutable state.
type FormulatorService struct {
	catalog       *refdata.Catalog
	norms         *refdata.NormTable
	suggestID     string
	suggestAmount float64
}

// NewFormulatorService creates a new FormulatorService.
func NewFormulatorService(catalog *refdata.Catalog, norms *refdata.NormTable, opts ...FormulatorOption) *FormulatorService {
	s := &FormulatorService{
		catalog:       catalog,
		norms:         norms,
		suggestID:     DefaultSuggestIngredientID,
		suggestAmount: DefaultSuggestAmount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Blend accumulates weighted nutrient totals across the components and
// re-expresses every nutrient except Energy as a percentage of the blended
// mass. The /100 conversion of percent-mode amounts happens exactly once, at
// the per-component weight step. Energy stays an absolute weighted sum in
// kcal/kg and is never renormalized.
//
// A zero total weight (empty mix, all-zero amounts, or only unknown
// ingredient IDs) yields an empty mapping. That is the valid "no data yet"
// state, not an error.
func (s *FormulatorService) Blend(components []model.MixComponent, mode model.UnitMode) model.NutrientMap {
	totals := make(map[string]float64)
	totalWeight := 0.0

	for _, c := range components {
		ing, ok := s.catalog.Get(c.IngredientID)
		if !ok {
			continue
		}
		w := c.Weight(mode)
		totalWeight += w
		for name, sample := range ing.Nutrients {
			totals[name] += sample.Value * w
		}
	}

	if totalWeight == 0 {
		return model.NutrientMap{}
	}

	blend := make(model.NutrientMap, len(totals))
	for name, total := range totals {
		value := total
		if name != model.NutrientEnergy {
			value = total / totalWeight
		}
		blend[name] = model.NutrientSample{
			Name:  name,
			Value: value,
			Unit:  model.UnitFor(name),
		}
	}
	return blend
}

// EvaluateNorms checks every nutrient the norm table defines for the profile.
// Nutrients absent from the blend produce a "missing" finding; values below
// min or above max produce "deficit" or "excess". Bounds are inclusive.
// Findings come back sorted by nutrient name for determinism.
//
// An unknown profile yields zero findings: norms are simply unknown for that
// combination.
func (s *FormulatorService) EvaluateNorms(blend model.NutrientMap, profile model.BirdProfile) []model.Finding {
	ranges, ok := s.norms.Lookup(profile)
	if !ok {
		return []model.Finding{}
	}

	names := make([]string, 0, len(ranges))
	for name := range ranges {
		names = append(names, name)
	}
	sort.Strings(names)

	findings := make([]model.Finding, 0, len(names))
	for _, name := range names {
		r := ranges[name]
		sample, present := blend[name]
		switch {
		case !present:
			findings = append(findings, model.Finding{
				Nutrient: name, Status: model.FindingMissing, Min: r.Min, Max: r.Max,
			})
		case sample.Value < r.Min:
			findings = append(findings, model.Finding{
				Nutrient: name, Status: model.FindingDeficit, Value: sample.Value, Min: r.Min, Max: r.Max,
			})
		case sample.Value > r.Max:
			findings = append(findings, model.Finding{
				Nutrient: name, Status: model.FindingExcess, Value: sample.Value, Min: r.Min, Max: r.Max,
			})
		}
	}
	return findings
}

// CostPerKg sums each component's weight times its ingredient price.
// In percent mode the normalizer is fixed at 1.0: weights of a valid mix sum
// to ~1, so the total already is cost per kilogram. Amounts that do not sum
// to 100 are the caller's problem until save time; the engine intentionally
// does not correct for them. In mass mode the normalizer is the total mass.
//
// Unpriced ingredients contribute zero cost but their weight still dilutes
// the average. Zero-weight mixes report cost 0.
func (s *FormulatorService) CostPerKg(components []model.MixComponent, mode model.UnitMode) float64 {
	totalCost := 0.0
	totalWeight := 0.0

	for _, c := range components {
		ing, ok := s.catalog.Get(c.IngredientID)
		if !ok {
			continue
		}
		totalCost += c.Weight(mode) * ing.Price()
		totalWeight += c.Amount
	}

	if mode == model.UnitModePercent {
		return totalCost
	}
	if totalWeight <= 0 {
		return 0
	}
	return totalCost / totalWeight
}

// SuggestProteinFix inspects only Protein: when the blended value sits below
// the norm minimum and the designated protein-rich ingredient is not already
// in the mix, it appends that ingredient at the default amount. A nutrient
// absent from the blend counts as zero. The operation is idempotent per
// ingredient and never touches other deficient nutrients; it is a single
// greedy step, not a solver.
func (s *FormulatorService) SuggestProteinFix(components []model.MixComponent, blend model.NutrientMap, mode model.UnitMode, profile model.BirdProfile) ([]model.MixComponent, bool) {
	ranges, ok := s.norms.Lookup(profile)
	if !ok {
		return components, false
	}
	r, ok := ranges[model.NutrientProtein]
	if !ok {
		return components, false
	}

	value := 0.0
	if sample, present := blend[model.NutrientProtein]; present {
		value = sample.Value
	}
	if value >= r.Min {
		return components, false
	}

	for _, c := range components {
		if c.IngredientID == s.suggestID {
			return components, false
		}
	}

	out := make([]model.MixComponent, len(components), len(components)+1)
	copy(out, components)
	out = append(out, model.MixComponent{IngredientID: s.suggestID, Amount: s.suggestAmount})
	return out, true
}

// Formulate runs blend, norm evaluation, and cost in one pass. Norm checks
// are suppressed for an empty blend so a mix-in-progress does not drown the
// caller in "missing" findings.
func (s *FormulatorService) Formulate(components []model.MixComponent, mode model.UnitMode, profile model.BirdProfile) model.Formulation {
	blend := s.Blend(components, mode)

	findings := []model.Finding{}
	if len(blend) > 0 {
		findings = s.EvaluateNorms(blend, profile)
	}

	return model.Formulation{
		Nutrients: blend,
		Findings:  findings,
		CostPerKg: s.CostPerKg(components, mode),
	}
}
