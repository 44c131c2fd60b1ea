package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heet2604/food-recommendation-using-ML/jobs"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
)

type RecommendRequest struct {
	Food string `json:"food"`
}

// errorResult mirrors the recommendation payload shape for failures,
// discriminated by type "error".
type errorResult struct {
	Type    string `json:"type"`
	Input   string `json:"input"`
	Message string `json:"message"`
}

// Recommend handles POST /api/recommend: top-K similar or alternative
// foods for a named food.
func Recommend(svc *recommend.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Food == "" {
			respondJSON(w, http.StatusBadRequest, errorResult{
				Type:    recommend.TypeError,
				Message: "Food name is required",
			})
			return
		}

		result, err := svc.Recommend(req.Food)
		if err != nil {
			switch {
			case errors.Is(err, recommend.ErrNotFound):
				respondJSON(w, http.StatusNotFound, errorResult{
					Type:    recommend.TypeError,
					Input:   req.Food,
					Message: "Food not found in dataset",
				})
			case errors.Is(err, recommend.ErrInsufficientData):
				respondJSON(w, http.StatusUnprocessableEntity, errorResult{
					Type:    recommend.TypeError,
					Input:   req.Food,
					Message: "Not enough options for comparison",
				})
			default:
				logger.Error("Recommendation failed", "food", req.Food, "error", err)
				respondJSON(w, http.StatusInternalServerError, errorResult{
					Type:    recommend.TypeError,
					Input:   req.Food,
					Message: "Processing failed",
				})
			}
			return
		}

		logger.Info("Recommendation served", "food", req.Food, "type", result.Type, "items", len(result.Recommendations))
		respondJSON(w, http.StatusOK, result)
	}
}

// ReloadDataset handles POST /admin/reload-dataset: queues a
// background rebuild of the dataset and similarity state.
func ReloadDataset(worker *jobs.ReloadWorker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		worker.Enqueue()
		respondJSON(w, http.StatusAccepted, map[string]string{"status": "reload enqueued"})
	}
}
