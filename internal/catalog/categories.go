// Package catalog holds the storefront category configuration: which
// category groups exist, how they are titled, which subcategories they
// list and how many products a group page shows.
//
// The configuration is fixed for the lifetime of the process. Every
// accessor returns copies, so callers may modify what they get back
// without affecting other readers.
package catalog

import (
	"slices"
	"sort"
)

// Group describes one category group as rendered by the storefront.
type Group struct {
	Title      string
	Categories []string
	Limit      int
}

// Group keys known to the storefront.
const (
	Shoes       = "shoes"
	Clothing    = "clothing"
	Accessories = "accessories"
)

// DefaultLimit is the number of products shown per group page.
const DefaultLimit = 12

var groups = map[string]Group{
	Shoes: {
		Title:      "Обувь",
		Categories: []string{"Кеды", "Кроссовки", "Ботинки"},
		Limit:      DefaultLimit,
	},
	Clothing: {
		Title:      "Одежда",
		Categories: []string{"Шорты", "Штаны", "Футболки", "Худи"},
		Limit:      DefaultLimit,
	},
	Accessories: {
		Title:      "Аксессуары",
		Categories: []string{"Головные уборы", "Ремни", "Сумки"},
		Limit:      DefaultLimit,
	},
}

func (g Group) clone() Group {
	g.Categories = slices.Clone(g.Categories)
	return g
}

// Lookup returns the group registered under key.
func Lookup(key string) (Group, bool) {
	g, ok := groups[key]
	if !ok {
		return Group{}, false
	}
	return g.clone(), true
}

// Keys returns all group keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Groups returns a copy of the whole mapping.
func Groups() map[string]Group {
	out := make(map[string]Group, len(groups))
	for k, g := range groups {
		out[k] = g.clone()
	}
	return out
}
