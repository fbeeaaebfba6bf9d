package handlers

import (
	"context"
	"net/http"

	"github.com/J0SEF4/HackathonSaludIA/internal/application/services"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// AuditService defines the audit report operation used by the handler.
type AuditService interface {
	Audit(ctx context.Context) (*entities.AuditReport, error)
}

// AuditHandler serves the population audit KPI report.
type AuditHandler struct {
	service AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type auditResponse struct {
	*entities.AuditReport
	Thresholds entities.Thresholds `json:"thresholds"`
}

// GetAudit handles GET /api/audit
func (h *AuditHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Audit(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "failed to compute audit report")
		return
	}

	respondWithJSON(w, http.StatusOK, auditResponse{
		AuditReport: report,
		Thresholds:  services.DefaultThresholds(),
	})
}
