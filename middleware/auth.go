package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heet2604/food-recommendation-using-ML/config"
	"github.com/heet2604/food-recommendation-using-ML/util"
)

type contextKey string

// UserContextKey carries the authenticated user's ID through the
// request context.
const UserContextKey contextKey = "user_id"

// JWTMiddleware validates the Authorization bearer token and puts the
// user ID into the request context.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: No Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		secret := []byte(config.GetEnv("JWT_SECRET", ""))
		claims, err := util.ValidateJWT(parts[1], secret)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKeyMiddleware protects administrative endpoints (dataset reload).
// Checks the X-API-Key header.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		expectedKey := config.GetEnv("ADMIN_API_KEY", "secret-key")

		if apiKey != expectedKey {
			http.Error(w, "Forbidden: Invalid API Key", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
