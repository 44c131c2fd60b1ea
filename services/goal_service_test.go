package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 22.86, CalculateBMI(70, 175))
	assert.Equal(t, 24.22, CalculateBMI(62, 160))
}

func TestMaintenanceCalories(t *testing.T) {
	// Male, 70kg, 175cm, 30y: BMR = 700 + 1093.75 - 150 + 5 = 1648.75
	assert.Equal(t, 2267.0, MaintenanceCalories(70, 175, 30, "male", 1.375))

	// Female, 60kg, 165cm, 25y: BMR = 600 + 1031.25 - 125 - 161 = 1345.25
	assert.Equal(t, 1614.0, MaintenanceCalories(60, 165, 25, "female", 1.2))
}

func TestMaintenanceCalories_UnknownGenderUsesFemaleFormula(t *testing.T) {
	assert.Equal(t,
		MaintenanceCalories(60, 165, 25, "female", 1.2),
		MaintenanceCalories(60, 165, 25, "other", 1.2))
}

func TestAdjustForWeightGoal(t *testing.T) {
	assert.Equal(t, 2000.0, AdjustForWeightGoal(2000, 0))

	// Losing 0.5 kg/week removes 550 kcal/day.
	assert.Equal(t, 1450.0, AdjustForWeightGoal(2000, -0.5))

	// Gaining 0.5 kg/week adds 550 kcal/day.
	assert.Equal(t, 2550.0, AdjustForWeightGoal(2000, 0.5))
}

func TestDailyMacros(t *testing.T) {
	m := DailyMacros(70, 2000)

	assert.Equal(t, 70.0, m.Protein)
	assert.Equal(t, 56.0, m.Fats)
	// Remaining calories: 2000 - (70*4 + 56*9) = 1216, / 4 = 304.
	assert.Equal(t, 304.0, m.Carbs)
	assert.Equal(t, 28.0, m.Fiber)
}
