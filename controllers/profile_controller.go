package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/heet2604/food-recommendation-using-ML/database"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/models"
)

// ProfileUpdateRequest carries the editable account fields. Username,
// email and password are not editable through this endpoint.
type ProfileUpdateRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Contact   string `json:"contact"`
}

// Profile handles GET /profile: the authenticated user's account. The
// password hash never serializes (json:"-" on the model).
func Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /profile: updates the user's name and
// contact details.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Contact = req.Contact

	if err := database.DB.Save(&user).Error; err != nil {
		logger.Error("Failed to update profile", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
