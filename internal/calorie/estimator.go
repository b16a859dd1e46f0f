package calorie

import (
	"math"
	"strings"
)

const (
	// DefaultCaloriesPer100g is used for foods the table cannot resolve.
	DefaultCaloriesPer100g = 200

	// HighCalorieThreshold is the per-100g value a food must exceed to be
	// classified as high-calorie.
	HighCalorieThreshold = 300

	searchAllLimit   = 20
	searchMatchLimit = 10
)

// gramsPer maps a quantity unit to its gram equivalent. Liquids assume the
// density of water and a piece is an average 100 g.
var gramsPer = map[string]float64{
	"g":     1,
	"kg":    1000,
	"lbs":   453.592,
	"oz":    28.3495,
	"ml":    1,
	"l":     1000,
	"cup":   240,
	"tbsp":  15,
	"tsp":   5,
	"piece": 100,
	"pcs":   100,
}

// Estimator turns food names and quantities into calorie counts.
type Estimator struct {
	table *Table
}

// NewEstimator returns an Estimator backed by table. A nil table selects
// DefaultTable.
func NewEstimator(table *Table) *Estimator {
	if table == nil {
		table = DefaultTable()
	}
	return &Estimator{table: table}
}

// CaloriesPer100g resolves the per-100g value for a food name, falling back
// to DefaultCaloriesPer100g.
func (e *Estimator) CaloriesPer100g(foodName string) float64 {
	if v, ok := e.table.lookup(normalize(foodName)); ok {
		return v
	}
	return DefaultCaloriesPer100g
}

// EstimateCalories returns the rounded calorie count for quantity of unit of
// the named food. Unknown units are treated as grams.
func (e *Estimator) EstimateCalories(foodName string, quantity float64, unit string) int {
	per100 := e.CaloriesPer100g(foodName)
	return int(math.Round(per100 / 100 * ToGrams(quantity, unit)))
}

// IsHighCalorie reports whether the food exceeds HighCalorieThreshold per
// 100 g, independent of any logged quantity.
func (e *Estimator) IsHighCalorie(foodName string) bool {
	return e.EstimateCalories(foodName, 100, "g") > HighCalorieThreshold
}

// SearchFoods returns table names containing query. An empty query lists the
// first entries of the table instead.
func (e *Estimator) SearchFoods(query string) []string {
	q := normalize(query)
	names := e.table.Names()
	if q == "" {
		if len(names) > searchAllLimit {
			names = names[:searchAllLimit]
		}
		return names
	}

	matches := make([]string, 0, searchMatchLimit)
	for _, name := range names {
		if strings.Contains(name, q) {
			matches = append(matches, name)
			if len(matches) == searchMatchLimit {
				break
			}
		}
	}
	return matches
}

// ToGrams converts quantity in unit to grams.
func ToGrams(quantity float64, unit string) float64 {
	if f, ok := gramsPer[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return quantity * f
	}
	return quantity
}
