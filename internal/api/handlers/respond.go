package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/J0SEF4/HackathonSaludIA/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps AppError types to HTTP statuses. An
// unavailable or unusable dataset yields 503 so it is never mistaken for a
// successful empty result.
func respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeUnavailable, apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusServiceUnavailable, appErr.Message)
			return
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, fallback)
}
