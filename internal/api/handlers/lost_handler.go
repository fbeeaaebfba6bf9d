package handlers

import (
	"context"
	"net/http"

	"github.com/J0SEF4/HackathonSaludIA/internal/application/services"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// LostService defines the lost listing operation used by the handler.
type LostService interface {
	LostList(ctx context.Context) ([]entities.LostAssessment, error)
}

// LostHandler serves the lost-to-follow-up listing.
type LostHandler struct {
	service LostService
}

// NewLostHandler creates a new lost handler
func NewLostHandler(service LostService) *LostHandler {
	return &LostHandler{service: service}
}

// ListLost handles GET /api/patients/lost
func (h *LostHandler) ListLost(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.LostList(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "failed to compute lost listing")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total_lost": len(patients),
		"patients":   patients,
		"thresholds": services.DefaultThresholds(),
	})
}
