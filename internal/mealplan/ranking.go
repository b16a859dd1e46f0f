package mealplan

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	frequentFoodLimit = 10
	maxSuggestions    = 6

	calorieWeight   = 0.3
	varietyBonus    = 100
	budgetBonus     = 50
	budgetTolerance = 1.5

	quantityDamping = 0.8
	maxPortions     = 2

	highNeedThreshold = 500
)

// profile summarizes a user's recent eating for one ranking pass.
type profile struct {
	frequent  map[string]bool
	underused map[Category]bool
}

// buildProfile counts lower-cased food names across history and keeps the
// ten most frequent. Equal counts keep the order in which names first appear
// in history.
func buildProfile(catalog *Catalog, history []HistoryEntry) profile {
	counts := make(map[string]int)
	var order []string
	for _, entry := range history {
		name := strings.ToLower(entry.FoodName)
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > frequentFoodLimit {
		order = order[:frequentFoodLimit]
	}

	p := profile{
		frequent:  make(map[string]bool, len(order)),
		underused: make(map[Category]bool),
	}
	used := make(map[Category]bool)
	for _, name := range order {
		p.frequent[name] = true
		if cat, ok := catalog.CategoryOf(name); ok {
			used[cat] = true
		}
	}

	// With no history there is nothing to compare against, so no category
	// counts as underused.
	if len(order) == 0 {
		return p
	}
	for _, cat := range catalog.Categories() {
		if !used[cat] {
			p.underused[cat] = true
		}
	}
	return p
}

func (p profile) isFrequent(foodName string) bool {
	return p.frequent[strings.ToLower(foodName)]
}

// rank filters the catalog to the slot, scores what remains and returns at
// most maxSuggestions personalized suggestions.
func rank(catalog *Catalog, p profile, mealType MealType, caloriesNeeded int) []Suggestion {
	candidates := make([]Suggestion, 0, len(catalog.items))
	for _, item := range catalog.Items() {
		if !mealType.Allows(item.Category) {
			continue
		}
		if p.underused[item.Category] {
			item.Reason = fmt.Sprintf("%s (Try adding variety with %s)", item.Reason, item.Category)
		}
		candidates = append(candidates, item)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i], p, caloriesNeeded) > score(candidates[j], p, caloriesNeeded)
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	for i := range candidates {
		frequent := p.isFrequent(candidates[i].FoodName)
		candidates[i].Reason = personalizeReason(candidates[i], frequent, caloriesNeeded)
		candidates[i].RecommendedQuantity = adjustQuantity(candidates[i], caloriesNeeded)
	}
	return candidates
}

func score(s Suggestion, p profile, caloriesNeeded int) float64 {
	base := s.BaseCalories()
	total := base * calorieWeight
	if !p.isFrequent(s.FoodName) {
		total += varietyBonus
	}
	if base <= float64(caloriesNeeded)*budgetTolerance {
		total += budgetBonus
	}
	return total
}

// adjustQuantity shrinks a portion toward the remaining budget when that
// budget is smaller than two default portions. The result never exceeds
// maxPortions default portions.
func adjustQuantity(s Suggestion, caloriesNeeded int) float64 {
	perUnit := s.CaloriesPer100g / 100
	base := s.RecommendedQuantity
	needed := float64(caloriesNeeded)

	if needed > 0 && needed < s.BaseCalories()*maxPortions {
		return math.Min(math.Round(needed/perUnit*quantityDamping), base*maxPortions)
	}
	return base
}

func personalizeReason(s Suggestion, frequent bool, caloriesNeeded int) string {
	reason := s.Reason
	if caloriesNeeded > highNeedThreshold {
		reason += fmt.Sprintf(". This food is high in calories (%s cal/100g) and can help meet your daily target.", formatNumber(s.CaloriesPer100g))
	}
	if !frequent {
		reason += " Try adding this to increase variety in your meals."
	}
	return reason
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
