package recommend

import (
	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/heet2604/food-recommendation-using-ML/logger"
)

// GroupIndex holds the precomputed similarity data for one category
// group: the diabetic-friendly foods of that group in dataset order,
// and their pairwise cosine matrix over group-standardized features.
type GroupIndex struct {
	Foods []dataset.Food
	Sim   [][]float64

	pos map[string]int // name key -> row/column index
}

// Position returns the matrix row of a food within the group index.
func (gi *GroupIndex) Position(nameKey string) (int, bool) {
	i, ok := gi.pos[nameKey]
	return i, ok
}

// State is the immutable service-state bundle built once from a loaded
// dataset: the full food list, a name lookup table, and one similarity
// index per category group with at least two diabetic-friendly
// members. Rebuilds produce a fresh State that is swapped in whole;
// an existing State is never mutated.
type State struct {
	Foods  []dataset.Food
	Groups map[dataset.CategoryGroup]*GroupIndex

	byName map[string]int
}

// BuildState derives the full in-memory service state from a loaded
// dataset. Groups with fewer than two diabetic-friendly members get no
// similarity index; requests for them report "not enough options".
func BuildState(foods []dataset.Food) *State {
	st := &State{
		Foods:  foods,
		Groups: make(map[dataset.CategoryGroup]*GroupIndex),
		byName: make(map[string]int, len(foods)),
	}

	for i := range foods {
		st.byName[foods[i].Key()] = i
	}

	groups := []dataset.CategoryGroup{
		dataset.GroupBeverage, dataset.GroupDessert,
		dataset.GroupSnack, dataset.GroupMain,
	}
	for _, g := range groups {
		var members []dataset.Food
		for i := range foods {
			if foods[i].Group == g && foods[i].DiabeticFriendly {
				members = append(members, foods[i])
			}
		}
		if len(members) < 2 {
			logger.Warn("Not enough diabetic-friendly foods for similarity index",
				"group", string(g), "members", len(members))
			continue
		}

		vectors := make([][]float64, len(members))
		pos := make(map[string]int, len(members))
		for i := range members {
			vectors[i] = members[i].Features()
			pos[members[i].Key()] = i
		}
		standardize(vectors)

		st.Groups[g] = &GroupIndex{
			Foods: members,
			Sim:   similarityMatrix(vectors),
			pos:   pos,
		}
		logger.Info("Similarity index built", "group", string(g), "members", len(members))
	}

	return st
}

// Lookup finds a food by name, case-insensitively and exactly.
func (s *State) Lookup(name string) (*dataset.Food, bool) {
	i, ok := s.byName[dataset.NameKey(name)]
	if !ok {
		return nil, false
	}
	return &s.Foods[i], true
}
