package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/heet2604/food-recommendation-using-ML/middleware"
)

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

func getUserID(r *http.Request) (uint, error) {
	id, ok := r.Context().Value(middleware.UserContextKey).(uint)
	if !ok {
		return 0, fmt.Errorf("no user in request context")
	}
	return id, nil
}

// saveUpload writes the uploaded file of a multipart request to a temp
// file and returns its path, the original filename, and a cleanup
// function that removes the temp file.
func saveUpload(r *http.Request, field string) (string, string, func(), error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return "", "", nil, fmt.Errorf("failed to parse form: %w", err)
	}

	file, fh, err := r.FormFile(field)
	if err != nil {
		return "", "", nil, fmt.Errorf("no file uploaded: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fh.Filename)
	path := filepath.Join(os.TempDir(), "upload-"+uuid.New().String()[:8]+ext)

	out, err := os.Create(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", "", nil, fmt.Errorf("failed to save file: %w", err)
	}

	cleanup := func() { os.Remove(path) }
	return path, fh.Filename, cleanup, nil
}
