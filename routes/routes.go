package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/heet2604/food-recommendation-using-ML/controllers"
	"github.com/heet2604/food-recommendation-using-ML/jobs"
	auth "github.com/heet2604/food-recommendation-using-ML/middleware"
	"github.com/heet2604/food-recommendation-using-ML/ocr"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
	"github.com/heet2604/food-recommendation-using-ML/vision"
)

// SetupRouter wires every route against the startup-built
// recommendation state and the external service clients.
func SetupRouter(svc *recommend.Service, worker *jobs.ReloadWorker) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// The image clients carry the concurrency cap for slow external
	// calls, so they are built once and shared.
	ocrClient := ocr.NewClient()
	detector := vision.NewClient()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Public
	r.Post("/signup", controllers.Signup)
	r.Post("/login", controllers.Login)
	r.Post("/api/recommend", controllers.Recommend(svc))
	r.Post("/api/analyze", controllers.Analyze(svc))
	r.Post("/api/medical", controllers.Medical(ocrClient))
	r.Post("/api/food-image", controllers.FoodImage(detector, svc))

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware)
		r.Get("/profile", controllers.Profile)
		r.Put("/profile", controllers.UpdateProfile)
		r.Post("/api/calculate-goals", controllers.CalculateGoals)
		r.Get("/api/fetchGoal", controllers.FetchGoal)
		r.Post("/api/vitals", controllers.AddVitals)
		r.Get("/api/vitals", controllers.GetVitals)
		r.Post("/api/add-food", controllers.AddFood)
		r.Get("/api/selected-food", controllers.SelectedFoods)
		r.Get("/api/latest-food", controllers.LatestFood)
		r.Post("/api/add-food-to-dashboard", controllers.AddFoodToDashboard)
		r.Get("/api/dashboard-data", controllers.DashboardData)
	})

	// Admin (API key protected)
	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware)
		r.Post("/admin/reload-dataset", controllers.ReloadDataset(worker))
	})

	return r
}
