package recommend

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/heet2604/food-recommendation-using-ML/dataset"
)

// TopK caps how many recommendations a single request returns.
const TopK = 5

// Response types, discriminated by the "type" field of the payload.
const (
	TypeRecommendations = "recommendations"
	TypeAlternatives    = "alternatives"
	TypeFruitSalad      = "fruit_salad_alternatives"
	TypeError           = "error"
)

// Health status labels for foods in responses.
const (
	StatusFriendly    = "diabetic_friendly"
	StatusNotFriendly = "not_diabetic_friendly"
)

// Item is one formatted recommendation in a response.
type Item struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Group          string  `json:"group"`
	HealthStatus   string  `json:"health_status"`
	ProcessedLevel string  `json:"processed_level"`
	Preparation    string  `json:"preparation"`
	Portion        string  `json:"portion"`
	Calories       int     `json:"calories"`
	Carbs          int     `json:"carbs"`
	Protein        int     `json:"protein"`
	Fat            int     `json:"fat"`
	Similarity     float64 `json:"similarity"`
}

// Result is the full recommendation payload for one food query.
type Result struct {
	Type            string `json:"type"`
	Input           string `json:"input"`
	HealthStatus    string `json:"health_status"`
	Message         string `json:"message"`
	Recommendations []Item `json:"recommendations"`
}

// Service answers recommendation queries against an immutable State
// bundle. The request path only reads; Swap replaces the whole bundle
// atomically, so concurrent readers never observe a half-built index.
type Service struct {
	state atomic.Pointer[State]
}

// NewService creates a Service serving the given state.
func NewService(st *State) *Service {
	s := &Service{}
	s.state.Store(st)
	return s
}

// State returns the bundle currently being served.
func (s *Service) State() *State {
	return s.state.Load()
}

// Swap atomically replaces the served state with a freshly built one.
func (s *Service) Swap(st *State) {
	s.state.Store(st)
}

// Recommend runs the full request pipeline for one food name:
// lookup, classification, neighbor selection and formatting.
func (s *Service) Recommend(foodName string) (*Result, error) {
	st := s.state.Load()

	food, ok := st.Lookup(foodName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, foodName)
	}

	status := StatusNotFriendly
	if food.DiabeticFriendly {
		status = StatusFriendly
	}

	// Desserts always get the fruit-salad fallback set, regardless of
	// their own similarity data. Deliberate policy, see fallback.go.
	if food.Group == dataset.GroupDessert {
		return &Result{
			Type:            TypeFruitSalad,
			Input:           food.Name,
			HealthStatus:    status,
			Message:         fmt.Sprintf("%s is a dessert. Fresh fruit based options are a safer way to finish a meal.", food.Name),
			Recommendations: FruitSaladAlternatives(),
		}, nil
	}

	gi, ok := st.Groups[food.Group]
	if !ok {
		return nil, fmt.Errorf("%w: group %q", ErrInsufficientData, food.Group)
	}

	if food.DiabeticFriendly {
		items := neighborsFromMatrix(gi, food.Key())
		if items == nil {
			return nil, fmt.Errorf("%w: group %q", ErrInsufficientData, food.Group)
		}
		return &Result{
			Type:            TypeRecommendations,
			Input:           food.Name,
			HealthStatus:    StatusFriendly,
			Message:         fmt.Sprintf("%s is diabetic friendly. Similar foods from the same group:", food.Name),
			Recommendations: items,
		}, nil
	}

	items := alternativesFor(gi, food)
	return &Result{
		Type:            TypeAlternatives,
		Input:           food.Name,
		HealthStatus:    StatusNotFriendly,
		Message:         fmt.Sprintf("%s is not diabetic friendly. Closest diabetic-friendly foods from the same group:", food.Name),
		Recommendations: items,
	}, nil
}

// neighborsFromMatrix takes the top-K most similar foods to the given
// one from its group's precomputed matrix, excluding the food itself.
// Ties keep dataset order (stable sort).
func neighborsFromMatrix(gi *GroupIndex, nameKey string) []Item {
	row, ok := gi.Position(nameKey)
	if !ok {
		return nil
	}

	type scored struct {
		idx int
		sim float64
	}
	candidates := make([]scored, 0, len(gi.Foods)-1)
	for j := range gi.Foods {
		if j == row {
			continue
		}
		candidates = append(candidates, scored{idx: j, sim: gi.Sim[row][j]})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].sim > candidates[b].sim
	})
	if len(candidates) > TopK {
		candidates = candidates[:TopK]
	}

	items := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, formatItem(&gi.Foods[c.idx], c.sim))
	}
	return items
}

// alternativesFor scores a non-friendly food against every
// diabetic-friendly food in its group. Input and pool are standardized
// together on the fly; the precomputed matrix does not contain the
// input's row.
func alternativesFor(gi *GroupIndex, food *dataset.Food) []Item {
	vectors := make([][]float64, 0, len(gi.Foods)+1)
	vectors = append(vectors, food.Features())
	for i := range gi.Foods {
		vectors = append(vectors, gi.Foods[i].Features())
	}
	standardize(vectors)

	type scored struct {
		idx int
		sim float64
	}
	candidates := make([]scored, 0, len(gi.Foods))
	for i := range gi.Foods {
		candidates = append(candidates, scored{idx: i, sim: cosine(vectors[0], vectors[i+1])})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].sim > candidates[b].sim
	})
	if len(candidates) > TopK {
		candidates = candidates[:TopK]
	}

	items := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, formatItem(&gi.Foods[c.idx], c.sim))
	}
	return items
}

func formatItem(f *dataset.Food, similarity float64) Item {
	status := StatusNotFriendly
	if f.DiabeticFriendly {
		status = StatusFriendly
	}
	return Item{
		Name:           f.Name,
		Category:       f.Category,
		Group:          string(f.Group),
		HealthStatus:   status,
		ProcessedLevel: f.ProcessedLevel,
		Preparation:    f.Preparation,
		Portion:        f.Portion,
		Calories:       int(math.Round(f.Calories)),
		Carbs:          int(math.Round(f.Carbs)),
		Protein:        int(math.Round(f.Protein)),
		Fat:            int(math.Round(f.Fat)),
		Similarity:     similarity,
	}
}
