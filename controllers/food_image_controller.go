package controllers

import (
	"net/http"

	"github.com/heet2604/food-recommendation-using-ML/llm"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
	"github.com/heet2604/food-recommendation-using-ML/vision"
)

// FoodImageResponse pairs the detected food with its nutrition facts.
type FoodImageResponse struct {
	DetectedFood string             `json:"detected_food"`
	Detections   []vision.Detection `json:"detections,omitempty"`
	Macros       NutritionResponse  `json:"macros"`
}

// FoodImage handles POST /api/food-image: runs the external detector
// on an uploaded photo, then resolves nutrition for the primary item
// the same way /api/analyze does (dataset first, model fallback).
func FoodImage(detector *vision.Client, svc *recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, filename, cleanup, err := saveUpload(r, "file")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer cleanup()

		detection, err := detector.Detect(r.Context(), path, filename)
		if err != nil {
			logger.Error("Food detection failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Processing failed")
			return
		}

		logger.Info("Food detected", "item", detection.PrimaryItem)

		macros := NutritionResponse{Food: detection.PrimaryItem, Source: "dataset"}
		if f := findFood(svc.State(), detection.PrimaryItem); f != nil {
			macros.Calorie = f.Calories
			macros.Carb = f.Carbs
			macros.Protein = f.Protein
			macros.Fat = f.Fat
			macros.Fiber = f.Fiber
			if f.GlycemicIndex > 0 {
				gi := f.GlycemicIndex
				macros.GlycemicIndex = &gi
			}
		} else if facts, err := llm.NewClient().NutritionFacts(detection.PrimaryItem); err == nil {
			macros.Source = "llm"
			macros.Calorie = facts.Calories
			macros.Carb = facts.Carbs
			macros.Protein = facts.Protein
			macros.Fat = facts.Fat
			macros.Fiber = facts.Fiber
			macros.GlycemicIndex = facts.GlycemicIndex
		} else {
			logger.Warn("Nutrition lookup failed for detected food", "item", detection.PrimaryItem, "error", err)
			macros.Source = "none"
			macros.Message = "Nutrition data not available"
		}

		respondJSON(w, http.StatusOK, FoodImageResponse{
			DetectedFood: detection.PrimaryItem,
			Detections:   detection.Items,
			Macros:       macros,
		})
	}
}
