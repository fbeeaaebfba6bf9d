package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/repositories"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/clients/postgres"
	apperrors "github.com/J0SEF4/HackathonSaludIA/pkg/errors"
)

// PatientAdapter reads the patient snapshot from Postgres. The table carries
// the same 20-column schema as the CSV source plus a serial "seq" column
// that pins the dataset order.
type PatientAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPatientAdapter creates a new Postgres dataset adapter
func NewPatientAdapter(client *postgres.Client) repositories.PatientRepository {
	return &PatientAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List loads the full snapshot ordered by insertion sequence.
func (a *PatientAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	query, args, err := a.db.From("patients").
		Select(
			"patient_id", "name", "age", "gender",
			"systolic_bp", "diastolic_bp", "cholesterol", "ldl", "hdl", "glucose", "bmi",
			"smoker", "diabetes", "hypertension",
			"last_control", "last_medication", "last_exam",
			"medication_compliance", "previous_mi", "previous_stroke",
		).
		Order(goqu.C("seq").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build patient query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("patient dataset is unavailable", err)
	}
	defer rows.Close()

	var patients []*entities.Patient
	seen := make(map[string]struct{})

	for rows.Next() {
		p := &entities.Patient{}
		if err := rows.Scan(
			&p.PatientID, &p.Name, &p.Age, &p.Gender,
			&p.SystolicBP, &p.DiastolicBP, &p.Cholesterol, &p.LDL, &p.HDL, &p.Glucose, &p.BMI,
			&p.Smoker, &p.Diabetes, &p.Hypertension,
			&p.LastControl, &p.LastMedication, &p.LastExam,
			&p.MedicationCompliance, &p.PreviousMI, &p.PreviousStroke,
		); err != nil {
			return nil, apperrors.NewValidationError("malformed patient row: " + err.Error())
		}
		if _, dup := seen[p.PatientID]; dup {
			return nil, apperrors.NewValidationError("duplicate patient_id " + p.PatientID)
		}
		seen[p.PatientID] = struct{}{}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewUnavailableError("failed to read patient dataset", err)
	}

	return patients, nil
}
