package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/llm"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/models"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
)

type AnalyzeRequest struct {
	Food string `json:"food"`
}

// NutritionResponse is what /api/analyze returns for one food, whether
// it came from the dataset or the model.
type NutritionResponse struct {
	Food           string   `json:"food"`
	Calorie        float64  `json:"calorie"`
	Carb           float64  `json:"carb"`
	Protein        float64  `json:"protein"`
	Fat            float64  `json:"fat"`
	Fiber          float64  `json:"fiber"`
	GlycemicIndex  *float64 `json:"glycemic_index"`
	Recommendation string   `json:"recommendation,omitempty"`
	Portion        string   `json:"portion,omitempty"`
	Source         string   `json:"source"`
	Message        string   `json:"message,omitempty"`
}

// Analyze handles POST /api/analyze: nutrition facts for a named food.
// The dataset is checked first; unknown foods fall back to the hosted
// model, and a model failure still answers with zeros instead of an
// error.
func Analyze(svc *recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Food == "" {
			respondError(w, http.StatusBadRequest, "Food name is required")
			return
		}

		if f := findFood(svc.State(), req.Food); f != nil {
			logger.Info("Food found in dataset", "food", req.Food)
			resp := NutritionResponse{
				Food:           req.Food,
				Calorie:        f.Calories,
				Carb:           f.Carbs,
				Protein:        f.Protein,
				Fat:            f.Fat,
				Fiber:          f.Fiber,
				Recommendation: f.Recommendation,
				Portion:        f.Portion,
				Source:         "dataset",
			}
			if f.GlycemicIndex > 0 {
				gi := f.GlycemicIndex
				resp.GlycemicIndex = &gi
			}
			respondJSON(w, http.StatusOK, resp)
			return
		}

		facts, err := llm.NewClient().NutritionFacts(req.Food)
		if err != nil {
			logger.Error("LLM nutrition lookup failed", "food", req.Food, "error", err)
			respondJSON(w, http.StatusOK, NutritionResponse{
				Food:    req.Food,
				Source:  "none",
				Message: "Nutrition data not available",
			})
			return
		}

		respondJSON(w, http.StatusOK, NutritionResponse{
			Food:          req.Food,
			Calorie:       facts.Calories,
			Carb:          facts.Carbs,
			Protein:       facts.Protein,
			Fat:           facts.Fat,
			Fiber:         facts.Fiber,
			GlycemicIndex: facts.GlycemicIndex,
			Source:        "llm",
		})
	}
}

// findFood looks a name up in the dataset: exact match first, then
// substring containment in either direction, as users often type a
// partial name.
func findFood(st *recommend.State, name string) *dataset.Food {
	if f, ok := st.Lookup(name); ok {
		return f
	}
	key := dataset.NameKey(name)
	for i := range st.Foods {
		k := st.Foods[i].Key()
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return &st.Foods[i]
		}
	}
	return nil
}

// AddFood handles POST /api/add-food: logs a food against the
// authenticated user.
func AddFood(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var entry models.FoodLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if entry.FoodName == "" {
		respondError(w, http.StatusBadRequest, "food_name is required")
		return
	}

	entry.ID = 0
	entry.UserID = userID
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error("Failed to save food log", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save food")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// SelectedFoods handles GET /api/selected-food: every food the user
// has logged.
func SelectedFoods(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var foods []models.FoodLog
	if err := database.DB.Where("user_id = ?", userID).Find(&foods).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching foods")
		return
	}
	respondJSON(w, http.StatusOK, foods)
}

// LatestFood handles GET /api/latest-food: the most recent log entry.
func LatestFood(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var food models.FoodLog
	err = database.DB.Where("user_id = ?", userID).Order("id DESC").First(&food).Error
	if err != nil {
		respondError(w, http.StatusNotFound, "No food found")
		return
	}
	respondJSON(w, http.StatusOK, food)
}
