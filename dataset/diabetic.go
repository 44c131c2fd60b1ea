package dataset

import "strings"

// Thresholds bound the glycemic index, glycemic load and fat content a
// food may have and still count as diabetic friendly.
type Thresholds struct {
	MaxGI  float64
	MaxGL  float64
	MaxFat float64
}

// Desserts get looser numeric limits than every other group, so that a
// reasonable dessert alternative is still representable. The tag and
// processing gates are the same for all groups.
var (
	standardThresholds = Thresholds{MaxGI: 55, MaxGL: 10, MaxFat: 10}
	dessertThresholds  = Thresholds{MaxGI: 65, MaxGL: 15, MaxFat: 12}
)

// ThresholdsFor returns the numeric limits that apply to a group.
func ThresholdsFor(group CategoryGroup) Thresholds {
	if group == GroupDessert {
		return dessertThresholds
	}
	return standardThresholds
}

var allowedTags = map[string]bool{
	"ideal_diabetic_food":              true,
	"suitable_for_controlled_diabetes": true,
}

var allowedProcessing = map[string]bool{
	"minimally processed": true,
	"unprocessed":         true,
}

// IsDiabeticFriendly evaluates the diabetic-friendliness predicate for
// a categorized food: recommendation tag, processing level, and the
// group-specific GI/GL/fat limits must all pass.
func IsDiabeticFriendly(f *Food) bool {
	tag := strings.ToLower(strings.TrimSpace(f.Recommendation))
	if !allowedTags[tag] {
		return false
	}

	processed := strings.ToLower(strings.TrimSpace(f.ProcessedLevel))
	if !allowedProcessing[processed] {
		return false
	}

	t := ThresholdsFor(f.Group)
	return f.GlycemicIndex <= t.MaxGI &&
		f.GlycemicLoad <= t.MaxGL &&
		f.Fat <= t.MaxFat
}
