package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorTables_Values(t *testing.T) {
	tests := []struct {
		activity Activity
		key      Category
		want     float64
	}{
		{ActivityTransit, CategoryBus, 0.089},
		{ActivityTransit, CategoryMetro, 0.033},
		{ActivityTransit, CategoryTrain, 0.041},
		{ActivityEnergy, CategoryGridMix, 0.4},
		{ActivityEnergy, CategoryCoal, 0.9},
		{ActivityEnergy, CategoryGas, 0.5},
		{ActivityEnergy, CategoryRenewable, 0.05},
		{ActivityEnergy, CategoryNuclear, 0.06},
		{ActivityFlight, CategoryShortHaul, 0.18},
		{ActivityFlight, CategoryMediumHaul, 0.15},
		{ActivityFlight, CategoryLongHaul, 0.12},
		{ActivityFood, CategoryBeef, 7.7},
		{ActivityFood, CategoryPork, 3.5},
		{ActivityFood, CategoryChicken, 1.36},
		{ActivityFood, CategoryFish, 2.1},
		{ActivityFood, CategoryVegetarian, 0.9},
		{ActivityFood, CategoryVegan, 0.3},
		{ActivityRecycling, CategoryPaper, 3.3},
		{ActivityRecycling, CategoryPlastic, 2.0},
		{ActivityRecycling, CategoryGlass, 0.5},
		{ActivityRecycling, CategoryMetal, 6.0},
		{ActivityRecycling, CategoryOrganic, 0.8},
		{ActivityShopping, CategoryClothing, 0.25},
		{ActivityShopping, CategoryElectronics, 0.35},
		{ActivityShopping, CategoryFurniture, 0.15},
		{ActivityShopping, CategoryBeauty, 0.20},
		{ActivityShopping, CategoryBooks, 0.10},
		{ActivityShopping, CategoryGeneral, 0.18},
		{ActivityPlastic, CategoryBottle, 0.82},
		{ActivityPlastic, CategoryBag, 0.033},
		{ActivityPlastic, CategoryCup, 0.056},
		{ActivityPlastic, CategoryStraw, 0.005},
	}

	for _, tt := range tests {
		t.Run(string(tt.activity)+"/"+string(tt.key), func(t *testing.T) {
			f, ok := LookupFactor(tt.activity, tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, f.CO2PerUnit)
			assert.Equal(t, tt.key, f.Key)
			assert.NotEmpty(t, f.Label)
		})
	}
}

func TestFactorTables_TreeFactors(t *testing.T) {
	want := map[Category]float64{
		CategoryPaper:   0.015,
		CategoryPlastic: 0.01,
		CategoryGlass:   0.003,
		CategoryMetal:   0.025,
		CategoryOrganic: 0.004,
	}
	for key, trees := range want {
		f, ok := LookupFactor(ActivityRecycling, key)
		require.True(t, ok)
		assert.Equal(t, trees, f.TreesPerUnit, string(key))
	}
}

func TestFactorTables_NonNegative(t *testing.T) {
	for _, activity := range Activities() {
		factors := Factors(activity)
		require.NotEmpty(t, factors, string(activity))
		for _, f := range factors {
			assert.GreaterOrEqual(t, f.CO2PerUnit, 0.0, "%s/%s", activity, f.Key)
		}
	}
}

func TestFactors_ReturnsCopy(t *testing.T) {
	factors := Factors(ActivityFood)
	factors[0].CO2PerUnit = 999
	factors[0].Label = "changed"

	f, ok := LookupFactor(ActivityFood, CategoryBeef)
	require.True(t, ok)
	assert.Equal(t, 7.7, f.CO2PerUnit)
	assert.Equal(t, "bistecca di manzo", f.Label)
}

func TestResult_KeepsLabelCopy(t *testing.T) {
	got, err := NewFoodCalculator().Emissions(1, CategoryBeef)
	require.NoError(t, err)

	factors := Factors(ActivityFood)
	factors[0].Label = "changed"

	assert.Equal(t, "bistecca di manzo", got.BasisLabel)
}

func TestCategories_DisplayOrder(t *testing.T) {
	assert.Equal(t, []Category{CategoryBus, CategoryMetro, CategoryTrain}, Categories(ActivityTransit))
	assert.Equal(t, []Category{CategoryShortHaul, CategoryMediumHaul, CategoryLongHaul}, Categories(ActivityFlight))
	assert.Empty(t, Categories(ActivityBike))
}

func TestFactors_SingleFactorActivities(t *testing.T) {
	bike := Factors(ActivityBike)
	require.Len(t, bike, 1)
	assert.Equal(t, CarBaselineKgPerKm, bike[0].CO2PerUnit)

	remote := Factors(ActivityRemoteWork)
	require.Len(t, remote, 1)
	assert.InDelta(t, 0.42, remote[0].CO2PerUnit, floatTolerance)
	assert.Equal(t, UnitCommuteKm, remote[0].Unit)

	diet := Factors(ActivityDiet)
	require.Len(t, diet, 1)
	assert.Equal(t, MeatFreeDaySavingsKg, diet[0].CO2PerUnit)

	assert.Nil(t, Factors("unknown"))
}

func TestClassifyFlightRange(t *testing.T) {
	tests := []struct {
		km   float64
		want Category
	}{
		{300, CategoryShortHaul},
		{1499.9, CategoryShortHaul},
		{1500, CategoryMediumHaul},
		{4000, CategoryMediumHaul},
		{4000.1, CategoryLongHaul},
		{12000, CategoryLongHaul},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFlightRange(tt.km), "%v km", tt.km)
	}
}
