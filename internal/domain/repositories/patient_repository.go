package repositories

import (
	"context"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// PatientRepository is the dataset-source port. List returns the full
// patient snapshot in stable dataset order; every query operation reloads
// through it, so there is no cross-request state to invalidate.
type PatientRepository interface {
	List(ctx context.Context) ([]*entities.Patient, error)
}
