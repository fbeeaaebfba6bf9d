package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/repositories"
	apperrors "github.com/J0SEF4/HackathonSaludIA/pkg/errors"
)

// requiredColumns is the dataset schema. Header order is free; presence is
// mandatory.
var requiredColumns = []string{
	"patient_id", "name", "age", "gender",
	"systolic_bp", "diastolic_bp", "cholesterol", "ldl", "hdl", "glucose", "bmi",
	"smoker", "diabetes", "hypertension",
	"last_control", "last_medication", "last_exam",
	"medication_compliance", "previous_mi", "previous_stroke",
}

// CSVAdapter reads the patient snapshot from a delimited file. The path is
// injected at construction so the service can be pointed at fixtures.
type CSVAdapter struct {
	path string
}

// NewCSVAdapter creates a new CSV dataset adapter
func NewCSVAdapter(path string) repositories.PatientRepository {
	return &CSVAdapter{path: path}
}

// List loads the full snapshot in file order. A missing or unreadable file
// is an unavailable error; a malformed row or schema violation is a
// validation error naming the row. An empty body after the header is a
// valid zero-patient snapshot.
func (a *CSVAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, apperrors.NewUnavailableError("patient dataset is unavailable", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewValidationError("patient dataset has no header row")
	}
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to read patient dataset", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("patient dataset is missing column %q", name))
		}
	}

	var patients []*entities.Patient
	seen := make(map[string]struct{})

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("row %d: %v", row, err))
		}

		patient, err := parseRow(record, columns, row)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[patient.PatientID]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("row %d: duplicate patient_id %q", row, patient.PatientID))
		}
		seen[patient.PatientID] = struct{}{}

		patients = append(patients, patient)
	}

	return patients, nil
}

func parseRow(record []string, columns map[string]int, row int) (*entities.Patient, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var parseErr error
	intField := func(name string) int {
		v, err := strconv.Atoi(field(name))
		if err != nil && parseErr == nil {
			parseErr = apperrors.NewValidationError(fmt.Sprintf("row %d: column %q: invalid integer %q", row, name, field(name)))
		}
		return v
	}
	floatField := func(name string) float64 {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil && parseErr == nil {
			parseErr = apperrors.NewValidationError(fmt.Sprintf("row %d: column %q: invalid decimal %q", row, name, field(name)))
		}
		return v
	}

	patient := &entities.Patient{
		PatientID:            field("patient_id"),
		Name:                 field("name"),
		Age:                  intField("age"),
		Gender:               field("gender"),
		SystolicBP:           intField("systolic_bp"),
		DiastolicBP:          intField("diastolic_bp"),
		Cholesterol:          intField("cholesterol"),
		LDL:                  intField("ldl"),
		HDL:                  intField("hdl"),
		Glucose:              intField("glucose"),
		BMI:                  floatField("bmi"),
		Smoker:               entities.YesNo(field("smoker")),
		Diabetes:             entities.YesNo(field("diabetes")),
		Hypertension:         entities.YesNo(field("hypertension")),
		LastControl:          field("last_control"),
		LastMedication:       field("last_medication"),
		LastExam:             field("last_exam"),
		MedicationCompliance: entities.Compliance(field("medication_compliance")),
		PreviousMI:           entities.YesNo(field("previous_mi")),
		PreviousStroke:       entities.YesNo(field("previous_stroke")),
	}

	if parseErr != nil {
		return nil, parseErr
	}
	if patient.PatientID == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf("row %d: patient_id is empty", row))
	}
	return patient, nil
}
