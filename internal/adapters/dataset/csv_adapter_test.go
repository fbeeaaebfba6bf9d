package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	apperrors "github.com/J0SEF4/HackathonSaludIA/pkg/errors"
)

const canonicalHeader = "patient_id,name,age,gender,systolic_bp,diastolic_bp,cholesterol,ldl,hdl,glucose,bmi," +
	"smoker,diabetes,hypertension,last_control,last_medication,last_exam,medication_compliance,previous_mi,previous_stroke"

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestList_LoadsPatientsInFileOrder(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n"+
		"PAT0001,Ana García,67,F,145,92,210,140,45,130,28.5,No,Yes,Yes,2025-01-10,2025-02-01,2024-11-20,Medium,No,No\n"+
		"PAT0002,Luis Martínez,54,M,120,78,180,100,55,95,24.1,Yes,No,No,2025-03-05,2025-03-05,2025-01-15,High,Yes,No\n")

	patients, err := NewCSVAdapter(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)

	first := patients[0]
	assert.Equal(t, "PAT0001", first.PatientID)
	assert.Equal(t, "Ana García", first.Name)
	assert.Equal(t, 67, first.Age)
	assert.Equal(t, 145, first.SystolicBP)
	assert.Equal(t, 28.5, first.BMI)
	assert.Equal(t, entities.Yes, first.Diabetes)
	assert.Equal(t, entities.ComplianceMedium, first.MedicationCompliance)
	assert.Equal(t, "2025-01-10", first.LastControl)

	assert.Equal(t, "PAT0002", patients[1].PatientID)
	assert.Equal(t, entities.Yes, patients[1].PreviousMI)
}

func TestList_HeaderOrderIsFree(t *testing.T) {
	path := writeFixture(t,
		"age,patient_id,name,gender,systolic_bp,diastolic_bp,cholesterol,ldl,hdl,glucose,bmi,"+
			"smoker,diabetes,hypertension,last_control,last_medication,last_exam,medication_compliance,previous_mi,previous_stroke\n"+
			"67,PAT0001,Ana García,F,145,92,210,140,45,130,28.5,No,Yes,Yes,2025-01-10,2025-02-01,2024-11-20,Medium,No,No\n")

	patients, err := NewCSVAdapter(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "PAT0001", patients[0].PatientID)
	assert.Equal(t, 67, patients[0].Age)
}

func TestList_HeaderOnlyIsEmptySnapshot(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n")

	patients, err := NewCSVAdapter(path).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestList_MissingFileIsUnavailable(t *testing.T) {
	adapter := NewCSVAdapter(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := adapter.List(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnavailable, appErr.Type)
}

func TestList_EmptyFileHasNoHeader(t *testing.T) {
	path := writeFixture(t, "")

	_, err := NewCSVAdapter(path).List(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestList_MissingColumnIsValidation(t *testing.T) {
	path := writeFixture(t,
		"patient_id,name,age,gender,systolic_bp,diastolic_bp,cholesterol,ldl,hdl,glucose,bmi,"+
			"smoker,diabetes,hypertension,last_control,last_medication,last_exam,medication_compliance,previous_mi\n")

	_, err := NewCSVAdapter(path).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "previous_stroke"`)
}

func TestList_BadIntegerNamesRowAndColumn(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n"+
		"PAT0001,Ana García,sixty,F,145,92,210,140,45,130,28.5,No,Yes,Yes,2025-01-10,2025-02-01,2024-11-20,Medium,No,No\n")

	_, err := NewCSVAdapter(path).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), `column "age"`)
}

func TestList_DuplicatePatientIDIsRejected(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n"+
		"PAT0001,Ana García,67,F,145,92,210,140,45,130,28.5,No,Yes,Yes,2025-01-10,2025-02-01,2024-11-20,Medium,No,No\n"+
		"PAT0001,Luis Martínez,54,M,120,78,180,100,55,95,24.1,Yes,No,No,2025-03-05,2025-03-05,2025-01-15,High,Yes,No\n")

	_, err := NewCSVAdapter(path).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 3: duplicate patient_id "PAT0001"`)
}

func TestList_EmptyPatientIDIsRejected(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n"+
		",Ana García,67,F,145,92,210,140,45,130,28.5,No,Yes,Yes,2025-01-10,2025-02-01,2024-11-20,Medium,No,No\n")

	_, err := NewCSVAdapter(path).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: patient_id is empty")
}

func TestList_UnrecognizedDatesLoadVerbatim(t *testing.T) {
	path := writeFixture(t, canonicalHeader+"\n"+
		"PAT0001,Ana García,67,F,145,92,210,140,45,130,28.5,No,Yes,Yes,not-a-date,,2024-11-20,Medium,No,No\n")

	patients, err := NewCSVAdapter(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "not-a-date", patients[0].LastControl)
	assert.Equal(t, "", patients[0].LastMedication)
}
