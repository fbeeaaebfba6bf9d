package dataset

import (
	"context"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// MemoryAdapter serves a fixed in-memory snapshot. Used as a fixture source
// in tests and local development.
type MemoryAdapter struct {
	patients []*entities.Patient
}

// NewMemoryAdapter creates a new in-memory dataset adapter
func NewMemoryAdapter(patients []*entities.Patient) *MemoryAdapter {
	return &MemoryAdapter{patients: patients}
}

// List returns the snapshot in insertion order.
func (a *MemoryAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	out := make([]*entities.Patient, len(a.patients))
	copy(out, a.patients)
	return out, nil
}
