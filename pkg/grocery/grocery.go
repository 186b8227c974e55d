// Package grocery aggregates a week of cached day-plan ingredients into a
// deduplicated shopping list, optionally grouped into store categories.
package grocery

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/prep/pkg/calendar"
	"tableflip.dev/prep/pkg/catalog"
	"tableflip.dev/prep/pkg/daykey"
	"tableflip.dev/prep/pkg/planner"
)

// OtherCategory collects ingredients no pattern matches.
const OtherCategory = "Other"

// shoppingCategory classification is first-match-wins over this ordered
// table, so an ingredient matching several patterns lands in the earliest
// category. Keep the order stable; reordering reclassifies stored lists.
type shoppingCategory struct {
	name     string
	patterns []string
}

var shoppingCategories = []shoppingCategory{
	{name: "Produce", patterns: []string{"onion", "lettuce", "tomato", "broccoli"}},
	{name: "Meat", patterns: []string{"beef", "chicken", "salmon"}},
	{name: "Grains", patterns: []string{"rice", "flour", "oats", "bread"}},
	{name: "Dairy", patterns: []string{"milk", "butter"}},
	{name: "Sauces/Condiments", patterns: []string{"franks red hot", "honey"}},
	{name: OtherCategory},
}

// Group is one shopping category with its ingredients, in sorted order.
type Group struct {
	Name  string
	Items []string
}

// List collects every cached ingredient for the Sunday-to-Saturday week
// containing ref, normalized (trimmed, lowercased), deduplicated, and
// sorted. Days without a plan contribute nothing.
func List(ref time.Time, dm planner.DayMeals) []string {
	seen := make(map[string]struct{})
	for _, day := range calendar.Week(ref) {
		plan, ok := dm[daykey.FromTime(day)]
		if !ok {
			continue
		}
		for _, c := range catalog.Categories() {
			for _, ing := range plan.Ingredients(c) {
				ing = strings.ToLower(strings.TrimSpace(ing))
				if ing == "" {
					continue
				}
				seen[ing] = struct{}{}
			}
		}
	}
	items := make([]string, 0, len(seen))
	for ing := range seen {
		items = append(items, ing)
	}
	sort.Strings(items)
	return items
}

// Grouped builds the week's list and splits it into shopping categories,
// omitting empty ones. Group order follows the fixed category table and
// items keep their sorted order, so identical plans always produce
// identical output.
func Grouped(ref time.Time, dm planner.DayMeals) []Group {
	items := List(ref, dm)
	byName := make(map[string][]string, len(shoppingCategories))
	for _, item := range items {
		name := Classify(item)
		byName[name] = append(byName[name], item)
	}
	groups := make([]Group, 0, len(shoppingCategories))
	for _, c := range shoppingCategories {
		if len(byName[c.name]) == 0 {
			continue
		}
		groups = append(groups, Group{Name: c.name, Items: byName[c.name]})
	}
	return groups
}

// Classify returns the first category whose pattern set has a substring
// match against the ingredient, or OtherCategory.
func Classify(ingredient string) string {
	for _, c := range shoppingCategories {
		for _, p := range c.patterns {
			if strings.Contains(ingredient, p) {
				return c.name
			}
		}
	}
	return OtherCategory
}
