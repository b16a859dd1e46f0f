package calorie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCalories(t *testing.T) {
	e := NewEstimator(nil)

	tests := []struct {
		name     string
		food     string
		quantity float64
		unit     string
		want     int
	}{
		{"exact match is case insensitive", "Apple", 100, "g", 52},
		{"substring of input", "green apple", 100, "g", 52},
		{"input is substring of key", "straw", 100, "g", 32},
		{"unknown food falls back", "xyzfood", 100, "g", 200},
		{"cup", "rice", 1, "cup", 312},
		{"kilograms", "chicken", 0.5, "kg", 825},
		{"pieces", "egg", 2, "piece", 310},
		{"pcs", "egg", 1, "pcs", 155},
		{"tablespoon", "butter", 1, "tbsp", 108},
		{"teaspoon", "butter", 1, "tsp", 36},
		{"ounces", "cheese", 1, "oz", 114},
		{"pounds", "beef", 1, "lbs", 1134},
		{"millilitres", "milk", 250, "ml", 105},
		{"litres", "milk", 1, "L", 420},
		{"unknown unit is grams", "rice", 200, "handful", 260},
		{"whitespace trimmed", "  Banana ", 100, "g", 89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.EstimateCalories(tt.food, tt.quantity, tt.unit))
		})
	}
}

func TestEstimateCaloriesPartialMatchFollowsTableOrder(t *testing.T) {
	e := NewEstimator(NewTable([]Entry{
		{"nut", 600},
		{"peanut", 567},
	}))

	// "peanut butter" contains both keys; the first key in table order wins.
	assert.Equal(t, 600, e.EstimateCalories("peanut butter", 100, "g"))
}

func TestEmptyFoodNameUsesDefault(t *testing.T) {
	e := NewEstimator(nil)
	assert.Equal(t, DefaultCaloriesPer100g, e.EstimateCalories("   ", 100, "g"))
}

func TestIsHighCalorieBoundary(t *testing.T) {
	e := NewEstimator(NewTable([]Entry{
		{"exactly", 300},
		{"above", 301},
	}))

	assert.False(t, e.IsHighCalorie("exactly"))
	assert.True(t, e.IsHighCalorie("above"))
}

func TestIsHighCalorieDefaultTable(t *testing.T) {
	e := NewEstimator(nil)

	assert.True(t, e.IsHighCalorie("cheese"))
	assert.True(t, e.IsHighCalorie("Almonds"))
	assert.False(t, e.IsHighCalorie("apple"))
	assert.False(t, e.IsHighCalorie("something unknown"))
}

func TestSearchFoods(t *testing.T) {
	e := NewEstimator(nil)

	all := e.SearchFoods("")
	assert.Len(t, all, 20)
	assert.Equal(t, "apple", all[0])

	assert.Equal(t, []string{"cheese"}, e.SearchFoods("CHEE"))
	assert.Equal(t, []string{"spinach", "chicken", "cheese", "chocolate"}, e.SearchFoods("ch"))
	assert.Len(t, e.SearchFoods("r"), 10)
	assert.Empty(t, e.SearchFoods("zzz"))
}

func TestSearchFoodsLimit(t *testing.T) {
	entries := make([]Entry, 0, 12)
	for _, n := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"} {
		entries = append(entries, Entry{Name: n, CaloriesPer100g: 10})
	}
	e := NewEstimator(NewTable(entries))

	assert.Len(t, e.SearchFoods("a"), 10)
}

func TestNewTableSkipsDuplicatesAndBlanks(t *testing.T) {
	table := NewTable([]Entry{
		{"Milk", 42},
		{"milk", 99},
		{" ", 10},
	})
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"milk"}, table.Names())
}
