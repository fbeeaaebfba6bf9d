package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/J0SEF4/HackathonSaludIA/internal/application/services"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// PriorityService defines the priority listing operation used by the handler.
type PriorityService interface {
	PriorityList(ctx context.Context, limit int) ([]entities.PriorityEntry, error)
}

// PriorityHandler serves the cardiovascular priority listing.
type PriorityHandler struct {
	service PriorityService
}

// NewPriorityHandler creates a new priority handler
func NewPriorityHandler(service PriorityService) *PriorityHandler {
	return &PriorityHandler{service: service}
}

// ListPriority handles GET /api/patients/priority
func (h *PriorityHandler) ListPriority(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	patients, err := h.service.PriorityList(r.Context(), limit)
	if err != nil {
		respondWithServiceError(w, err, "failed to compute priority listing")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total_patients": len(patients),
		"patients":       patients,
		"score_info": map[string]interface{}{
			"max_score":   services.MaxScore,
			"description": "higher scores indicate greater cardiovascular risk and priority for intervention",
		},
	})
}
