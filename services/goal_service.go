package services

import "math"

// Macros is a daily macro-nutrient target in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// CalculateBMI computes body mass index from weight in kg and height
// in cm.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100
}

// MaintenanceCalories estimates daily maintenance calories with the
// Mifflin-St Jeor equation scaled by activity level.
func MaintenanceCalories(weightKg, heightCm float64, age int, gender string, activityLevel float64) float64 {
	var bmr float64
	if gender == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}
	return math.Round(bmr * activityLevel)
}

// AdjustForWeightGoal shifts maintenance calories for a weekly weight
// goal in kg (7700 kcal per kg, spread over the week).
func AdjustForWeightGoal(maintenance, weeklyGoalKg float64) float64 {
	return maintenance + (weeklyGoalKg*7700)/7
}

// DailyMacros splits a calorie target into macro targets: 1 g protein
// per kg body weight, 25% of calories from fat, the rest from carbs,
// and 14 g fiber per 1000 kcal.
func DailyMacros(weightKg, calories float64) Macros {
	protein := math.Round(weightKg)
	fats := math.Round((calories * 0.25) / 9)
	carbs := math.Round((calories - (protein*4 + fats*9)) / 4)
	fiber := math.Round((calories / 1000) * 14)
	return Macros{Protein: protein, Carbs: carbs, Fats: fats, Fiber: fiber}
}
