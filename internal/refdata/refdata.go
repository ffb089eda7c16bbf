// Package refdata loads the static reference datasets: the ingredient
// catalog and the per-profile nutrient norm tables. Both are parsed once
// from embedded JSON assets and are immutable afterwards, so they are safe
// for unsynchronized concurrent reads.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/feedwise/feedmix-service/internal/domain/model"
)

//go:embed data/ingredients.json data/norms.json
var assets embed.FS

// ingredientRecord is the on-disk shape of one catalog entry. Nutrient
// values are plain numbers; units are derived from the nutrient name.
type ingredientRecord struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	PricePerKg *float64           `json:"price_per_kg,omitempty"`
	Nutrients  map[string]float64 `json:"nutrients"`
}

// normRecord is the on-disk shape of one norm table entry.
type normRecord struct {
	Species  model.Species              `json:"species"`
	Goal     model.Goal                 `json:"goal"`
	AgeClass model.AgeClass             `json:"age_class"`
	Norms    map[string]model.NormRange `json:"norms"`
}

// Catalog holds the loaded ingredient list with an index by ID.
type Catalog struct {
	ingredients []model.Ingredient
	byID        map[string]model.Ingredient
}

// NormTable holds the loaded norm ranges indexed by bird profile.
type NormTable struct {
	byProfile map[model.BirdProfile]map[string]model.NormRange
	profiles  []model.BirdProfile
}

var (
	loadOnce    sync.Once
	loadErr     error
	catalog     *Catalog
	normTable   *NormTable
)

// Load parses the embedded datasets. Repeated calls return the same
// instances; the parse happens once per process.
func Load() (*Catalog, *NormTable, error) {
	loadOnce.Do(func() {
		catalog, loadErr = loadCatalog()
		if loadErr != nil {
			return
		}
		normTable, loadErr = loadNormTable()
	})
	return catalog, normTable, loadErr
}

func loadCatalog() (*Catalog, error) {
	raw, err := assets.ReadFile("data/ingredients.json")
	if err != nil {
		return nil, fmt.Errorf("read ingredients asset: %w", err)
	}

	var records []ingredientRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse ingredients asset: %w", err)
	}

	c := &Catalog{
		ingredients: make([]model.Ingredient, 0, len(records)),
		byID:        make(map[string]model.Ingredient, len(records)),
	}
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("ingredient %q has no id", rec.Name)
		}
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate ingredient id %q", rec.ID)
		}

		nutrients := make(model.NutrientMap, len(rec.Nutrients))
		for name, value := range rec.Nutrients {
			nutrients[name] = model.NutrientSample{
				Name:  name,
				Value: value,
				Unit:  model.UnitFor(name),
			}
		}

		ing := model.Ingredient{
			ID:         rec.ID,
			Name:       rec.Name,
			Category:   rec.Category,
			Nutrients:  nutrients,
			PricePerKg: rec.PricePerKg,
		}
		c.ingredients = append(c.ingredients, ing)
		c.byID[rec.ID] = ing
	}

	sort.Slice(c.ingredients, func(i, j int) bool {
		return c.ingredients[i].ID < c.ingredients[j].ID
	})

	return c, nil
}

func loadNormTable() (*NormTable, error) {
	raw, err := assets.ReadFile("data/norms.json")
	if err != nil {
		return nil, fmt.Errorf("read norms asset: %w", err)
	}

	var records []normRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse norms asset: %w", err)
	}

	t := &NormTable{
		byProfile: make(map[model.BirdProfile]map[string]model.NormRange, len(records)),
		profiles:  make([]model.BirdProfile, 0, len(records)),
	}
	for _, rec := range records {
		profile := model.BirdProfile{
			Species:  rec.Species,
			Goal:     rec.Goal,
			AgeClass: rec.AgeClass,
		}
		if _, dup := t.byProfile[profile]; dup {
			return nil, fmt.Errorf("duplicate norm profile %s/%s/%s", rec.Species, rec.Goal, rec.AgeClass)
		}
		for name, r := range rec.Norms {
			if r.Min > r.Max {
				return nil, fmt.Errorf("norm %s for %s/%s/%s has min > max", name, rec.Species, rec.Goal, rec.AgeClass)
			}
		}
		t.byProfile[profile] = rec.Norms
		t.profiles = append(t.profiles, profile)
	}

	return t, nil
}

// Ingredients returns the catalog entries sorted by ID. Callers must treat
// the returned slice as read-only.
func (c *Catalog) Ingredients() []model.Ingredient {
	return c.ingredients
}

// Get returns the ingredient with the given ID.
func (c *Catalog) Get(id string) (model.Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.ingredients)
}

// Lookup returns the norm ranges for a bird profile. The second return is
// false when no norms exist for the profile, which is a valid state and
// means "norms unknown for this combination".
func (t *NormTable) Lookup(profile model.BirdProfile) (map[string]model.NormRange, bool) {
	norms, ok := t.byProfile[profile]
	return norms, ok
}

// Profiles returns every profile the table has norms for, in asset order.
func (t *NormTable) Profiles() []model.BirdProfile {
	return t.profiles
}
