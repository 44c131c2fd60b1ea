package recommend

// fruitSaladAlternatives is the fixed recommendation set returned for
// every dessert query, regardless of the dessert's own nutrition.
// Product has not yet confirmed whether this override should stay, so
// it lives here as a named table rather than inline in the service.
var fruitSaladAlternatives = []Item{
	{
		Name:           "Fresh Fruit Salad",
		Category:       "Fruit Dessert",
		Group:          "dessert",
		HealthStatus:   "diabetic_friendly",
		ProcessedLevel: "unprocessed",
		Preparation:    "raw, freshly cut",
		Portion:        "1 small bowl (150g)",
		Calories:       95,
		Carbs:          22,
		Protein:        1,
		Fat:            0,
		Similarity:     0.95,
	},
	{
		Name:           "Fruit Salad with Curd",
		Category:       "Fruit Dessert",
		Group:          "dessert",
		HealthStatus:   "diabetic_friendly",
		ProcessedLevel: "minimally processed",
		Preparation:    "raw fruit with plain curd",
		Portion:        "1 small bowl (150g)",
		Calories:       120,
		Carbs:          20,
		Protein:        4,
		Fat:            3,
		Similarity:     0.92,
	},
	{
		Name:           "Fruit Chaat",
		Category:       "Fruit Dessert",
		Group:          "dessert",
		HealthStatus:   "diabetic_friendly",
		ProcessedLevel: "unprocessed",
		Preparation:    "raw fruit with spice mix",
		Portion:        "1 small bowl (150g)",
		Calories:       90,
		Carbs:          21,
		Protein:        1,
		Fat:            0,
		Similarity:     0.9,
	},
	{
		Name:           "Mixed Fruit Bowl with Seeds",
		Category:       "Fruit Dessert",
		Group:          "dessert",
		HealthStatus:   "diabetic_friendly",
		ProcessedLevel: "minimally processed",
		Preparation:    "raw fruit with chia and flax seeds",
		Portion:        "1 small bowl (150g)",
		Calories:       130,
		Carbs:          19,
		Protein:        3,
		Fat:            5,
		Similarity:     0.88,
	},
	{
		Name:           "Fruit Salad with Nuts",
		Category:       "Fruit Dessert",
		Group:          "dessert",
		HealthStatus:   "diabetic_friendly",
		ProcessedLevel: "minimally processed",
		Preparation:    "raw fruit with crushed almonds and walnuts",
		Portion:        "1 small bowl (150g)",
		Calories:       150,
		Carbs:          18,
		Protein:        4,
		Fat:            8,
		Similarity:     0.85,
	},
}

// FruitSaladAlternatives returns a copy of the dessert fallback set.
func FruitSaladAlternatives() []Item {
	out := make([]Item, len(fruitSaladAlternatives))
	copy(out, fruitSaladAlternatives)
	return out
}
