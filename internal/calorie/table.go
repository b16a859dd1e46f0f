// Package calorie estimates the energy content of free-text food entries from
// a fixed lookup table.
package calorie

import "strings"

// Entry is one row of the lookup table.
type Entry struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
}

// Table is an ordered, read-only food lookup table. Order matters: partial
// matches and search results follow it.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from entries. Names are lower-cased and trimmed;
// later duplicates are ignored.
func NewTable(entries []Entry) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		name := normalize(e.Name)
		if name == "" {
			continue
		}
		if _, dup := t.index[name]; dup {
			continue
		}
		t.index[name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: name, CaloriesPer100g: e.CaloriesPer100g})
	}
	return t
}

// Len returns the number of foods in the table.
func (t *Table) Len() int { return len(t.entries) }

// Names returns the food names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// lookup resolves a normalized food name: exact match first, then the first
// key that contains the name or is contained in it.
func (t *Table) lookup(name string) (float64, bool) {
	if i, ok := t.index[name]; ok {
		return t.entries[i].CaloriesPer100g, true
	}
	if name == "" {
		return 0, false
	}
	for _, e := range t.entries {
		if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
			return e.CaloriesPer100g, true
		}
	}
	return 0, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DefaultTable returns the built-in lookup table.
func DefaultTable() *Table {
	return NewTable([]Entry{
		// fruits
		{"apple", 52},
		{"banana", 89},
		{"orange", 47},
		{"grapes", 69},
		{"strawberry", 32},
		{"watermelon", 30},

		// vegetables
		{"broccoli", 34},
		{"carrot", 41},
		{"tomato", 18},
		{"cucumber", 16},
		{"spinach", 23},
		{"potato", 77},

		// proteins
		{"chicken", 165},
		{"beef", 250},
		{"fish", 206},
		{"egg", 155},
		{"tofu", 76},

		// grains
		{"rice", 130},
		{"bread", 265},
		{"pasta", 131},
		{"oatmeal", 68},

		// dairy
		{"milk", 42},
		{"cheese", 402},
		{"yogurt", 59},
		{"butter", 717},

		// nuts and seeds
		{"almonds", 579},
		{"peanuts", 567},
		{"cashews", 553},

		// common foods
		{"pizza", 266},
		{"burger", 295},
		{"fries", 312},
		{"chocolate", 546},
		{"ice cream", 207},
	})
}
