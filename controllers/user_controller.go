package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/heet2604/food-recommendation-using-ML/config"
	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/models"
	"github.com/heet2604/food-recommendation-using-ML/util"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Contact   string `json:"contact"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message        string `json:"message"`
	Token          string `json:"token"`
	UserID         uint   `json:"userId"`
	HasUserDetails bool   `json:"hasUserDetails"`
}

// Signup handles POST /signup.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Contact:   req.Contact,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	logger.Info("User created", "user_id", user.ID, "username", user.Username)
	respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /login: verifies credentials and issues a JWT.
// The response also tells the client whether the user has completed
// goal setup.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid Password")
		return
	}

	var details models.UserDetails
	hasDetails := database.DB.Where("user_id = ?", user.ID).First(&details).Error == nil

	secret := []byte(config.GetEnv("JWT_SECRET", ""))
	token, err := util.GenerateJWT(user.ID, user.Email, secret)
	if err != nil {
		logger.Error("Failed to sign token", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:        "Login Successful",
		Token:          token,
		UserID:         user.ID,
		HasUserDetails: hasDetails,
	})
}
