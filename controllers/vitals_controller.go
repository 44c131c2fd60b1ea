package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/models"
	"github.com/heet2604/food-recommendation-using-ML/services"
)

type VitalsRequest struct {
	SugarReading  float64 `json:"sugarReading"`
	WeightReading float64 `json:"weightReading"`
}

// AddVitals handles POST /api/vitals: records a sugar/weight reading.
// A new weight also recomputes the stored BMI, calorie and macro
// targets.
func AddVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req VitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SugarReading == 0 || req.WeightReading == 0 {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	var details models.UserDetails
	if err := database.DB.Where("user_id = ?", userID).First(&details).Error; err != nil {
		respondError(w, http.StatusNotFound, "User details not found. Please set up your profile first.")
		return
	}

	maintenance := services.MaintenanceCalories(req.WeightReading, details.Height, details.Age, details.Gender, details.ActivityLevel)
	calories := services.AdjustForWeightGoal(maintenance, details.WeightGoal)
	macros := services.DailyMacros(req.WeightReading, calories)

	details.Weight = req.WeightReading
	details.BMI = services.CalculateBMI(req.WeightReading, details.Height)
	details.MaintenanceCalories = calories
	details.ProteinTarget = macros.Protein
	details.CarbsTarget = macros.Carbs
	details.FatsTarget = macros.Fats
	details.FiberTarget = macros.Fiber

	if err := database.DB.Save(&details).Error; err != nil {
		logger.Error("Failed to update user details from vitals", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	vitals := models.Vitals{
		UserID:        userID,
		SugarReading:  req.SugarReading,
		WeightReading: req.WeightReading,
	}
	if err := database.DB.Create(&vitals).Error; err != nil {
		logger.Error("Failed to save vitals", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "Vitals added successfully!",
		"vitals":      vitals,
		"userDetails": details,
	})
}

// GetVitals handles GET /api/vitals: all readings, newest first.
func GetVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var vitals []models.Vitals
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&vitals).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	var latest *models.Vitals
	if len(vitals) > 0 {
		latest = &vitals[0]
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"vitals":       vitals,
		"latestVitals": latest,
	})
}

type IntakeRequest struct {
	Calories float64 `json:"energy_kcal"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carb_g"`
	Fat      float64 `json:"fat_g"`
	Fiber    float64 `json:"fibre_g"`
}

// AddFoodToDashboard handles POST /api/add-food-to-dashboard:
// accumulates a food's macros into today's intake.
func AddFoodToDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	today := startOfDay(time.Now())

	var intake models.DailyIntake
	err = database.DB.Where("user_id = ? AND date = ?", userID, today).First(&intake).Error
	if err != nil {
		intake = models.DailyIntake{UserID: userID, Date: today}
	}

	intake.Calories += req.Calories
	intake.Protein += req.Protein
	intake.Carbs += req.Carbs
	intake.Fats += req.Fat
	intake.Fiber += req.Fiber

	if err := database.DB.Save(&intake).Error; err != nil {
		logger.Error("Failed to save daily intake", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Food intake updated",
		"data":    intake,
	})
}

// DashboardData handles GET /api/dashboard-data: today's accumulated
// intake, zeros if nothing was logged yet.
func DashboardData(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	today := startOfDay(time.Now())

	var intake models.DailyIntake
	if err := database.DB.Where("user_id = ? AND date = ?", userID, today).First(&intake).Error; err != nil {
		intake = models.DailyIntake{UserID: userID, Date: today}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    intake,
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
