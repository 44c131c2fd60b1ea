package dataset

import "strings"

// CategoryGroup is the coarse bucket a food belongs to. Every food is
// assigned exactly one group at load time.
type CategoryGroup string

const (
	GroupBeverage CategoryGroup = "beverage"
	GroupDessert  CategoryGroup = "dessert"
	GroupSnack    CategoryGroup = "snack"
	GroupMain     CategoryGroup = "main"
)

// FeatureCount is the dimensionality of the nutrition vector used for
// similarity computation.
const FeatureCount = 8

// Food is one row of the food dataset, parsed and classified once at
// load time. Records are immutable after loading.
type Food struct {
	Name           string
	Category       string
	Group          CategoryGroup
	Calories       float64
	Carbs          float64
	Fat            float64
	Protein        float64
	Fiber          float64
	GlycemicIndex  float64
	GlycemicLoad   float64
	InsulinIndex   float64
	ProcessedLevel string
	Recommendation string
	Portion        string
	Preparation    string

	// DiabeticFriendly is derived from the recommendation tag, the
	// processing level and the group-specific GI/GL/fat thresholds.
	DiabeticFriendly bool
}

// Features returns the nutrition vector used for similarity:
// calories, carbs, fat, protein, fiber, GI, GL, insulin index.
// Missing values were already coerced to zero at load time.
func (f *Food) Features() []float64 {
	return []float64{
		f.Calories,
		f.Carbs,
		f.Fat,
		f.Protein,
		f.Fiber,
		f.GlycemicIndex,
		f.GlycemicLoad,
		f.InsulinIndex,
	}
}

// Key returns the lookup key for the food: trimmed and lowercased name.
func (f *Food) Key() string {
	return NameKey(f.Name)
}

// NameKey normalizes a food name for case-insensitive exact matching.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
