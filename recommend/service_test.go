package recommend

import (
	"errors"
	"testing"

	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func friendlyMain(name string, calories, carbs, fat, protein, fiber, gi, gl, ii float64) dataset.Food {
	return dataset.Food{
		Name:             name,
		Category:         "Main Course",
		Group:            dataset.GroupMain,
		Calories:         calories,
		Carbs:            carbs,
		Fat:              fat,
		Protein:          protein,
		Fiber:            fiber,
		GlycemicIndex:    gi,
		GlycemicLoad:     gl,
		InsulinIndex:     ii,
		ProcessedLevel:   "minimally processed",
		Recommendation:   "ideal_diabetic_food",
		Portion:          "1 serving",
		Preparation:      "steamed",
		DiabeticFriendly: true,
	}
}

func testFoods() []dataset.Food {
	return []dataset.Food{
		friendlyMain("Idli", 58, 12, 0.4, 2, 0.8, 52, 8, 60),
		friendlyMain("Dosa", 133, 18, 5, 2.7, 0.9, 55, 9, 65),
		friendlyMain("Poha", 130, 25, 2, 2.5, 1, 54, 9, 62),
		friendlyMain("Upma", 155, 22, 6, 3.5, 1.5, 53, 8, 58),
		friendlyMain("Khichdi", 120, 20, 3, 4.5, 2, 50, 7, 55),
		friendlyMain("Dalia", 110, 21, 1.5, 3, 2.5, 47, 6, 50),
		friendlyMain("Ragi Dosa", 105, 17, 2.5, 3, 2.2, 48, 7, 52),
		{
			Name:           "Butter Chicken",
			Category:       "Main Course",
			Group:          dataset.GroupMain,
			Calories:       290,
			Carbs:          8,
			Fat:            22,
			Protein:        17,
			GlycemicIndex:  45,
			GlycemicLoad:   4,
			InsulinIndex:   40,
			ProcessedLevel: "processed",
			Recommendation: "occasional",
		},
		{
			Name:           "Gulab Jamun",
			Category:       "Mithai",
			Group:          dataset.GroupDessert,
			Calories:       175,
			Carbs:          30,
			Fat:            7,
			GlycemicIndex:  75,
			GlycemicLoad:   22,
			ProcessedLevel: "processed",
			Recommendation: "avoid",
		},
		{
			Name:             "Fruit Custard",
			Category:         "Dessert",
			Group:            dataset.GroupDessert,
			Calories:         110,
			Carbs:            18,
			Fat:              3,
			Protein:          4,
			GlycemicIndex:    55,
			GlycemicLoad:     9,
			ProcessedLevel:   "minimally processed",
			Recommendation:   "suitable_for_controlled_diabetes",
			DiabeticFriendly: true,
		},
		{
			Name:             "Green Tea",
			Category:         "Hot Beverage",
			Group:            dataset.GroupBeverage,
			ProcessedLevel:   "unprocessed",
			Recommendation:   "ideal_diabetic_food",
			DiabeticFriendly: true,
		},
		{
			Name:           "Sugarcane Juice",
			Category:       "Juice",
			Group:          dataset.GroupBeverage,
			Calories:       180,
			Carbs:          45,
			GlycemicIndex:  65,
			GlycemicLoad:   18,
			ProcessedLevel: "unprocessed",
			Recommendation: "avoid",
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(BuildState(testFoods()))
}

func TestBuildState_SkipsSmallGroups(t *testing.T) {
	st := BuildState(testFoods())

	require.Contains(t, st.Groups, dataset.GroupMain)
	assert.Len(t, st.Groups[dataset.GroupMain].Foods, 7)

	// Only one diabetic-friendly beverage, no dessert/snack members.
	assert.NotContains(t, st.Groups, dataset.GroupBeverage)
	assert.NotContains(t, st.Groups, dataset.GroupDessert)
	assert.NotContains(t, st.Groups, dataset.GroupSnack)
}

func TestRecommend_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend("Pizza")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Recommend("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecommend_LookupIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend("  iDLi ")
	require.NoError(t, err)
	assert.Equal(t, "Idli", result.Input)
}

func TestRecommend_DessertReturnsFruitSaladFallback(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend("Gulab Jamun")
	require.NoError(t, err)

	assert.Equal(t, TypeFruitSalad, result.Type)
	assert.Equal(t, StatusNotFriendly, result.HealthStatus)
	require.Len(t, result.Recommendations, 5)
	assert.Equal(t, "Fresh Fruit Salad", result.Recommendations[0].Name)
	assert.Equal(t, 0.95, result.Recommendations[0].Similarity)
}

func TestRecommend_FriendlyDessertStillGetsFruitSaladFallback(t *testing.T) {
	svc := newTestService(t)

	// Desserts get the fallback set even when the dessert itself passes
	// every diabetic-friendliness gate.
	result, err := svc.Recommend("Fruit Custard")
	require.NoError(t, err)

	assert.Equal(t, TypeFruitSalad, result.Type)
	assert.Equal(t, StatusFriendly, result.HealthStatus)
	require.Len(t, result.Recommendations, 5)
	assert.Equal(t, "Fresh Fruit Salad", result.Recommendations[0].Name)
}

func TestRecommend_FriendlyFood(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend("Idli")
	require.NoError(t, err)

	assert.Equal(t, TypeRecommendations, result.Type)
	assert.Equal(t, StatusFriendly, result.HealthStatus)
	require.Len(t, result.Recommendations, TopK)

	for i, item := range result.Recommendations {
		assert.NotEqual(t, "Idli", item.Name, "queried food must not recommend itself")
		if i > 0 {
			assert.GreaterOrEqual(t, result.Recommendations[i-1].Similarity, item.Similarity,
				"similarities must be non-increasing")
		}
	}
}

func TestRecommend_NotFriendlyFoodGetsAlternatives(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend("Butter Chicken")
	require.NoError(t, err)

	assert.Equal(t, TypeAlternatives, result.Type)
	assert.Equal(t, StatusNotFriendly, result.HealthStatus)
	require.Len(t, result.Recommendations, TopK)

	for i, item := range result.Recommendations {
		assert.Equal(t, StatusFriendly, item.HealthStatus,
			"alternatives must all be diabetic friendly")
		if i > 0 {
			assert.GreaterOrEqual(t, result.Recommendations[i-1].Similarity, item.Similarity)
		}
	}
}

func TestRecommend_InsufficientData(t *testing.T) {
	svc := newTestService(t)

	// The beverage group has a single diabetic-friendly member, so no
	// similarity index exists for it.
	_, err := svc.Recommend("Sugarcane Juice")
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = svc.Recommend("Green Tea")
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRecommend_ErrorsAreNotConflated(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend("Sugarcane Juice")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestService_SwapReplacesState(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend("Idli")
	require.NoError(t, err)

	svc.Swap(BuildState([]dataset.Food{
		friendlyMain("Oats Chilla", 140, 18, 4, 6, 3, 45, 6, 48),
	}))

	_, err = svc.Recommend("Idli")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Recommend("Oats Chilla")
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestFruitSaladAlternatives_ReturnsCopy(t *testing.T) {
	a := FruitSaladAlternatives()
	a[0].Name = "mutated"

	b := FruitSaladAlternatives()
	assert.Equal(t, "Fresh Fruit Salad", b[0].Name)
}
