package refdata

import (
	"testing"

	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	catalog, norms, err := Load()
	require.NoError(t, err)
	require.NotNil(t, catalog)
	require.NotNil(t, norms)

	// Load is idempotent and returns the same instances.
	catalog2, norms2, err := Load()
	require.NoError(t, err)
	assert.Same(t, catalog, catalog2)
	assert.Same(t, norms, norms2)
}

func TestCatalog_Get(t *testing.T) {
	catalog, _, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name            string
		id              string
		expectedFound   bool
		expectedProtein float64
		expectedEnergy  float64
	}{
		{name: "corn", id: "corn", expectedFound: true, expectedProtein: 8.5, expectedEnergy: 3350},
		{name: "soybean meal", id: "soybean_meal", expectedFound: true, expectedProtein: 46.0, expectedEnergy: 2250},
		{name: "unknown id", id: "granite_dust", expectedFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, ok := catalog.Get(tt.id)
			assert.Equal(t, tt.expectedFound, ok)
			if !tt.expectedFound {
				return
			}
			assert.Equal(t, tt.id, ing.ID)
			assert.InDelta(t, tt.expectedProtein, ing.NutrientValue(model.NutrientProtein), 1e-9)
			assert.InDelta(t, tt.expectedEnergy, ing.NutrientValue(model.NutrientEnergy), 1e-9)
		})
	}
}

func TestCatalog_UnitsAreConsistent(t *testing.T) {
	catalog, _, err := Load()
	require.NoError(t, err)
	require.NotZero(t, catalog.Len())

	for _, ing := range catalog.Ingredients() {
		for name, sample := range ing.Nutrients {
			assert.Equal(t, name, sample.Name, "ingredient %s", ing.ID)
			assert.Equal(t, model.UnitFor(name), sample.Unit, "ingredient %s nutrient %s", ing.ID, name)
			assert.GreaterOrEqual(t, sample.Value, 0.0)
		}
	}
}

func TestCatalog_OysterShell(t *testing.T) {
	catalog, _, err := Load()
	require.NoError(t, err)

	shell, ok := catalog.Get("oyster_shell")
	require.True(t, ok)
	assert.InDelta(t, 38.0, shell.NutrientValue(model.NutrientCalcium), 1e-9)
	assert.InDelta(t, 0.1, shell.Price(), 1e-9)
}

func TestNormTable_Lookup(t *testing.T) {
	_, norms, err := Load()
	require.NoError(t, err)

	t.Run("known profile", func(t *testing.T) {
		ranges, ok := norms.Lookup(model.BirdProfile{
			Species:  model.SpeciesChicken,
			Goal:     model.GoalGrowth,
			AgeClass: model.AgeYoung,
		})
		require.True(t, ok)

		protein := ranges[model.NutrientProtein]
		assert.Equal(t, model.NormRange{Min: 20, Max: 23}, protein)
		energy := ranges[model.NutrientEnergy]
		assert.Equal(t, model.NormRange{Min: 2800, Max: 3200}, energy)
	})

	t.Run("absent profile is valid", func(t *testing.T) {
		_, ok := norms.Lookup(model.BirdProfile{
			Species:  model.SpeciesGoose,
			Goal:     model.GoalEggLaying,
			AgeClass: model.AgeBroiler,
		})
		assert.False(t, ok)
	})
}

func TestNormTable_RangesAreOrdered(t *testing.T) {
	_, norms, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, norms.Profiles())

	for _, profile := range norms.Profiles() {
		ranges, ok := norms.Lookup(profile)
		require.True(t, ok)
		for name, r := range ranges {
			assert.LessOrEqual(t, r.Min, r.Max, "profile %v nutrient %s", profile, name)
		}
	}
}
