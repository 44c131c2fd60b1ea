package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/models"
	"github.com/heet2604/food-recommendation-using-ML/services"
	"gorm.io/gorm/clause"
)

type GoalsRequest struct {
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel float64 `json:"activityLevel"`
	WeightGoal    float64 `json:"weightGoal"`
}

type GoalsResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message,omitempty"`
	UserDetails models.UserDetails `json:"userDetails"`
}

// CalculateGoals handles POST /api/calculate-goals: derives BMI,
// calorie target and daily macros from the submitted profile and
// upserts them for the user.
func CalculateGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Height == 0 || req.Weight == 0 || req.Age == 0 || req.Gender == "" || req.ActivityLevel == 0 {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	maintenance := services.MaintenanceCalories(req.Weight, req.Height, req.Age, req.Gender, req.ActivityLevel)
	calories := services.AdjustForWeightGoal(maintenance, req.WeightGoal)
	macros := services.DailyMacros(req.Weight, calories)

	details := models.UserDetails{
		UserID:              userID,
		Height:              req.Height,
		Weight:              req.Weight,
		Age:                 req.Age,
		Gender:              req.Gender,
		ActivityLevel:       req.ActivityLevel,
		WeightGoal:          req.WeightGoal,
		BMI:                 services.CalculateBMI(req.Weight, req.Height),
		MaintenanceCalories: calories,
		ProteinTarget:       macros.Protein,
		CarbsTarget:         macros.Carbs,
		FatsTarget:          macros.Fats,
		FiberTarget:         macros.Fiber,
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&details).Error
	if err != nil {
		logger.Error("Failed to save user details", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, GoalsResponse{
		Success:     true,
		Message:     "Goals updated successfully!",
		UserDetails: details,
	})
}

// FetchGoal handles GET /api/fetchGoal.
func FetchGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var details models.UserDetails
	if err := database.DB.Where("user_id = ?", userID).First(&details).Error; err != nil {
		respondError(w, http.StatusNotFound, "User details not found")
		return
	}

	respondJSON(w, http.StatusOK, GoalsResponse{Success: true, UserDetails: details})
}
