package controllers

import (
	"net/http"
	"strings"

	"github.com/heet2604/food-recommendation-using-ML/llm"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/ocr"
)

// MedicalResponse is the result of processing a medical report image.
type MedicalResponse struct {
	ExtractedText  string          `json:"extractedText"`
	MedicalData    ocr.MedicalInfo `json:"medicalData"`
	SimplifiedText string          `json:"simplifiedText"`
}

// Medical handles POST /api/medical: image upload, OCR, crude
// medication/dosage extraction, and plain-language simplification. A
// failed simplification does not fail the request; the fixed fallback
// string is returned instead.
func Medical(ocrClient *ocr.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, filename, cleanup, err := saveUpload(r, "file")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer cleanup()

		logger.Info("Processing medical report image", "filename", filename)

		text, err := ocrClient.Extract(r.Context(), path, filename)
		if err != nil {
			logger.Error("OCR extraction failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to process the image")
			return
		}

		info := ocr.ExtractMedicalInfo(text)

		simplified, err := llm.NewClient().SimplifyMedicalText(text)
		if err != nil {
			logger.Warn("Text simplification failed, using fallback", "error", err)
			simplified = llm.FallbackSimplification
		}

		respondJSON(w, http.StatusOK, MedicalResponse{
			ExtractedText:  text,
			MedicalData:    info,
			SimplifiedText: formatSimplified(simplified),
		})
	}
}

// formatSimplified strips markdown asterisks and trims every line.
func formatSimplified(text string) string {
	cleaned := strings.ReplaceAll(text, "*", "")
	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
