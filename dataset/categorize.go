package dataset

import "strings"

// Keyword lists for category grouping. Matching is case-insensitive
// substring containment, checked in this order: beverage, dessert,
// snack. Anything that matches none of the lists is a main dish.
// Order matters: the lists are not disjoint ("sweet lassi" is a
// beverage even though "sweet" is a dessert keyword).
var (
	beverageKeywords = []string{
		"beverage", "drink", "juice", "tea", "coffee", "lassi",
		"shake", "smoothie", "sharbat", "buttermilk", "chaas",
	}
	dessertKeywords = []string{
		"dessert", "sweet", "mithai", "halwa", "barfi", "ladoo",
		"kheer", "pudding", "ice cream",
	}
	snackKeywords = []string{
		"snack", "namkeen", "chaat", "fried", "bakery", "biscuit",
		"chips", "pakora", "samosa", "vada",
	}
)

// Categorize maps a free-text category onto one of the four groups.
// First matching list wins; unmatched categories default to main.
func Categorize(category string) CategoryGroup {
	c := strings.ToLower(category)
	for _, kw := range beverageKeywords {
		if strings.Contains(c, kw) {
			return GroupBeverage
		}
	}
	for _, kw := range dessertKeywords {
		if strings.Contains(c, kw) {
			return GroupDessert
		}
	}
	for _, kw := range snackKeywords {
		if strings.Contains(c, kw) {
			return GroupSnack
		}
	}
	return GroupMain
}
