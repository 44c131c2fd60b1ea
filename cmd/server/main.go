package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heet2604/food-recommendation-using-ML/config"
	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/heet2604/food-recommendation-using-ML/jobs"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
	"github.com/heet2604/food-recommendation-using-ML/routes"
)

func main() {
	// Initialize structured logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Initialize DB
	database.InitDB()

	// Load the food dataset and build the similarity state. A dataset
	// that cannot be loaded is fatal: serving recommendation routes
	// against empty data silently is worse than not starting.
	datasetPath := config.GetEnv("FOOD_DATASET_PATH", "Indian_Foods_Dataset_With_Tags_Final.csv")
	foods, err := dataset.Load(datasetPath)
	if err != nil {
		logger.Error("Dataset unavailable, refusing to start", "path", datasetPath, "error", err)
		os.Exit(1)
	}
	svc := recommend.NewService(recommend.BuildState(foods))

	// Background dataset reloader (atomic state swap)
	worker := jobs.NewReloadWorker(svc, datasetPath, time.Minute)
	worker.Start()

	// Setup router
	r := routes.SetupRouter(svc, worker)

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
