package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/clients/postgres"
	apperrors "github.com/J0SEF4/HackathonSaludIA/pkg/errors"
)

var patientColumns = []string{
	"patient_id", "name", "age", "gender",
	"systolic_bp", "diastolic_bp", "cholesterol", "ldl", "hdl", "glucose", "bmi",
	"smoker", "diabetes", "hypertension",
	"last_control", "last_medication", "last_exam",
	"medication_compliance", "previous_mi", "previous_stroke",
}

func newMockAdapter(t *testing.T) (*PatientAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	adapter := NewPatientAdapter(postgres.NewClientWithDB(db)).(*PatientAdapter)
	return adapter, mock
}

func TestList_ReturnsPatientsInSeqOrder(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	rows := sqlmock.NewRows(patientColumns).
		AddRow("PAT0001", "Ana García", 67, "F", 145, 92, 210, 140, 45, 130, 28.5,
			"No", "Yes", "Yes", "2025-01-10", "2025-02-01", "2024-11-20", "Medium", "No", "No").
		AddRow("PAT0002", "Luis Martínez", 54, "M", 120, 78, 180, 100, 55, 95, 24.1,
			"Yes", "No", "No", "2025-03-05", "2025-03-05", "2025-01-15", "High", "Yes", "No")

	mock.ExpectQuery(`SELECT .+ FROM "patients" ORDER BY "seq" ASC`).WillReturnRows(rows)

	patients, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)

	assert.Equal(t, "PAT0001", patients[0].PatientID)
	assert.Equal(t, 67, patients[0].Age)
	assert.Equal(t, 28.5, patients[0].BMI)
	assert.Equal(t, entities.Yes, patients[0].Diabetes)
	assert.Equal(t, entities.ComplianceMedium, patients[0].MedicationCompliance)
	assert.Equal(t, "PAT0002", patients[1].PatientID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyTableIsEmptySnapshot(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "patients"`).WillReturnRows(sqlmock.NewRows(patientColumns))

	patients, err := adapter.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestList_QueryErrorIsUnavailable(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "patients"`).WillReturnError(assert.AnError)

	_, err := adapter.List(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnavailable, appErr.Type)
}

func TestList_DuplicatePatientIDIsValidation(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	rows := sqlmock.NewRows(patientColumns).
		AddRow("PAT0001", "Ana García", 67, "F", 145, 92, 210, 140, 45, 130, 28.5,
			"No", "Yes", "Yes", "2025-01-10", "2025-02-01", "2024-11-20", "Medium", "No", "No").
		AddRow("PAT0001", "Luis Martínez", 54, "M", 120, 78, 180, 100, 55, 95, 24.1,
			"Yes", "No", "No", "2025-03-05", "2025-03-05", "2025-01-15", "High", "Yes", "No")

	mock.ExpectQuery(`SELECT .+ FROM "patients"`).WillReturnRows(rows)

	_, err := adapter.List(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, err.Error(), "duplicate patient_id PAT0001")
}
