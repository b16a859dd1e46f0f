package mealplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Catalog is the ordered, read-only list of foods the engine can suggest.
type Catalog struct {
	items      []Suggestion
	byName     map[string]Category
	categories []Category
}

// NewCatalog validates items and builds a catalog that keeps their order.
func NewCatalog(items []Suggestion) (*Catalog, error) {
	if len(items) == 0 {
		return nil, errors.New("catalog is empty")
	}

	c := &Catalog{
		items:  make([]Suggestion, 0, len(items)),
		byName: make(map[string]Category, len(items)),
	}
	seen := make(map[Category]bool)

	for i, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.FoodName))
		switch {
		case key == "":
			return nil, fmt.Errorf("catalog item %d: food name is required", i)
		case item.CaloriesPer100g <= 0:
			return nil, fmt.Errorf("catalog item %q: calories per 100g must be positive", item.FoodName)
		case item.RecommendedQuantity <= 0:
			return nil, fmt.Errorf("catalog item %q: recommended quantity must be positive", item.FoodName)
		case !item.Category.valid():
			return nil, fmt.Errorf("catalog item %q: unknown category %q", item.FoodName, item.Category)
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("catalog item %q: duplicate food name", item.FoodName)
		}

		c.byName[key] = item.Category
		c.items = append(c.items, cloneSuggestion(item))
		if !seen[item.Category] {
			seen[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}
	return c, nil
}

// LoadCatalog decodes a JSON array of suggestions.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var items []Suggestion
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return NewCatalog(items)
}

// Items returns a copy of the catalog in order.
func (c *Catalog) Items() []Suggestion {
	out := make([]Suggestion, len(c.items))
	for i, item := range c.items {
		out[i] = cloneSuggestion(item)
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// CategoryOf looks up the category of a catalog food, ignoring case.
func (c *Catalog) CategoryOf(foodName string) (Category, bool) {
	cat, ok := c.byName[strings.ToLower(strings.TrimSpace(foodName))]
	return cat, ok
}

func cloneSuggestion(s Suggestion) Suggestion {
	s.Benefits = append([]string(nil), s.Benefits...)
	return s
}

// DefaultCatalog returns the built-in high-calorie food catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultItems = []Suggestion{
	{
		FoodName:            "Avocado",
		CaloriesPer100g:     160,
		RecommendedQuantity: 100,
		Unit:                "g",
		Reason:              "Rich in healthy fats and essential nutrients for growth",
		Category:            Fruits,
		Benefits:            []string{"Healthy fats", "Vitamin E", "Folate", "High in calories"},
	},
	{
		FoodName:            "Peanut Butter",
		CaloriesPer100g:     588,
		RecommendedQuantity: 30,
		Unit:                "g",
		Reason:              "Excellent source of protein and healthy fats",
		Category:            Nuts,
		Benefits:            []string{"High protein", "Healthy fats", "Vitamin E", "Very high calories"},
	},
	{
		FoodName:            "Whole Milk",
		CaloriesPer100g:     61,
		RecommendedQuantity: 250,
		Unit:                "ml",
		Reason:              "Complete protein source with calcium for bone growth",
		Category:            Dairy,
		Benefits:            []string{"Complete protein", "Calcium", "Vitamin D", "Good for growth"},
	},
	{
		FoodName:            "Cheese",
		CaloriesPer100g:     402,
		RecommendedQuantity: 50,
		Unit:                "g",
		Reason:              "High in calories, protein, and calcium",
		Category:            Dairy,
		Benefits:            []string{"High calories", "Protein", "Calcium", "Easy to add to meals"},
	},
	{
		FoodName:            "Banana",
		CaloriesPer100g:     89,
		RecommendedQuantity: 100,
		Unit:                "g",
		Reason:              "Natural sugars and potassium for energy",
		Category:            Fruits,
		Benefits:            []string{"Natural sugars", "Potassium", "Easy to eat", "Good for snacks"},
	},
	{
		FoodName:            "Sweet Potato",
		CaloriesPer100g:     86,
		RecommendedQuantity: 150,
		Unit:                "g",
		Reason:              "Complex carbs and beta-carotene for growth",
		Category:            Vegetables,
		Benefits:            []string{"Complex carbs", "Beta-carotene", "Fiber", "Nutritious"},
	},
	{
		FoodName:            "Eggs",
		CaloriesPer100g:     155,
		RecommendedQuantity: 50,
		Unit:                "g",
		Reason:              "Complete protein with all essential amino acids",
		Category:            Protein,
		Benefits:            []string{"Complete protein", "Choline", "Vitamin B12", "Versatile"},
	},
	{
		FoodName:            "Salmon",
		CaloriesPer100g:     206,
		RecommendedQuantity: 100,
		Unit:                "g",
		Reason:              "Omega-3 fatty acids essential for brain development",
		Category:            Protein,
		Benefits:            []string{"Omega-3", "High protein", "Vitamin D", "Brain development"},
	},
	{
		FoodName:            "Almonds",
		CaloriesPer100g:     579,
		RecommendedQuantity: 30,
		Unit:                "g",
		Reason:              "High in healthy fats and protein",
		Category:            Nuts,
		Benefits:            []string{"Healthy fats", "Protein", "Vitamin E", "High calories"},
	},
	{
		FoodName:            "Oats",
		CaloriesPer100g:     389,
		RecommendedQuantity: 50,
		Unit:                "g",
		Reason:              "Complex carbs and fiber for sustained energy",
		Category:            Grains,
		Benefits:            []string{"Complex carbs", "Fiber", "Protein", "Filling"},
	},
	{
		FoodName:            "Full Fat Yogurt",
		CaloriesPer100g:     59,
		RecommendedQuantity: 200,
		Unit:                "g",
		Reason:              "Probiotics and protein for digestive health and growth",
		Category:            Dairy,
		Benefits:            []string{"Probiotics", "Protein", "Calcium", "Easy to digest"},
	},
	{
		FoodName:            "Olive Oil",
		CaloriesPer100g:     884,
		RecommendedQuantity: 15,
		Unit:                "ml",
		Reason:              "Healthy monounsaturated fats, easy to add to meals",
		Category:            Fats,
		Benefits:            []string{"Healthy fats", "Very high calories", "Easy to add", "Anti-inflammatory"},
	},
}
