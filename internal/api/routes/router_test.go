package routes_test

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEF4/HackathonSaludIA/internal/adapters/dataset"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/handlers"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/routes"
	"github.com/J0SEF4/HackathonSaludIA/internal/application/services"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/observability"
)

func newTestHandler(t *testing.T, patients []*entities.Patient) http.Handler {
	t.Helper()

	metrics, err := observability.InitMetrics()
	require.NoError(t, err)

	service := services.NewMonitoringService(dataset.NewMemoryAdapter(patients))

	router := routes.NewRouter(
		handlers.NewPriorityHandler(service),
		handlers.NewLostHandler(service),
		handlers.NewAuditHandler(service),
		nil,
		metrics,
	)
	return router.SetupRoutes()
}

func fixturePatients() []*entities.Patient {
	return []*entities.Patient{
		{
			PatientID: "PAT0001", Name: "Ana García", Age: 80, Gender: "F",
			SystolicBP: 110, DiastolicBP: 70, Cholesterol: 150, LDL: 80, HDL: 50,
			Glucose: 90, BMI: 22.0,
			Smoker: entities.No, Diabetes: entities.No, Hypertension: entities.No,
			LastControl: "2025-06-01", LastMedication: "2025-06-01", LastExam: "2025-06-01",
			MedicationCompliance: entities.ComplianceHigh,
			PreviousMI:           entities.No, PreviousStroke: entities.No,
		},
		{
			PatientID: "PAT0002", Name: "Luis Martínez", Age: 40, Gender: "M",
			SystolicBP: 110, DiastolicBP: 70, Cholesterol: 150, LDL: 80, HDL: 50,
			Glucose: 90, BMI: 22.0,
			Smoker: entities.No, Diabetes: entities.No, Hypertension: entities.No,
			LastControl: "2025-06-01", LastMedication: "2025-06-01", LastExam: "2025-06-01",
			MedicationCompliance: entities.ComplianceHigh,
			PreviousMI:           entities.No, PreviousStroke: entities.No,
		},
	}
}

func TestRouter_HealthCheck(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_PriorityEndToEnd(t *testing.T) {
	handler := newTestHandler(t, fixturePatients())

	req := httptest.NewRequest(http.MethodGet, "/api/patients/priority?limit=1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `1`, string(body["total_patients"]))

	var entries []entities.PriorityEntry
	require.NoError(t, json.Unmarshal(body["patients"], &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "PAT0001", entries[0].PatientID)
	assert.Equal(t, 15, entries[0].PriorityScore)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSHeadersSet(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PreflightShortCircuits(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/audit", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestRouter_RequestIDAssigned(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_GzipWhenAccepted(t *testing.T) {
	handler := newTestHandler(t, fixturePatients())

	req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer zr.Close()

	decoded, err := io.ReadAll(zr)
	require.NoError(t, err)

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded, &report))
	assert.JSONEq(t, `2`, string(report["total_patients"]))
}
