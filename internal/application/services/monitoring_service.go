package services

import (
	"context"
	"sort"
	"time"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/repositories"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/observability"
)

// MonitoringService binds the dataset source to the three query operations.
// Every call reloads the snapshot and recomputes from scratch; the service
// holds no state between requests.
type MonitoringService struct {
	patients repositories.PatientRepository
	scoring  *ScoringService
	followUp *FollowUpService
	audit    *AuditService
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(patients repositories.PatientRepository) *MonitoringService {
	return &MonitoringService{
		patients: patients,
		scoring:  NewScoringService(),
		followUp: NewFollowUpService(),
		audit:    NewAuditService(),
		now:      time.Now,
	}
}

// SetMetrics enables dataset-load instrumentation.
func (s *MonitoringService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// SetClock overrides the reference instant used for elapsed-day computation.
func (s *MonitoringService) SetClock(now func() time.Time) {
	s.now = now
}

// PriorityList scores the population and returns it sorted by score
// descending, dataset order preserved among equal scores. A positive limit
// truncates the result.
func (s *MonitoringService) PriorityList(ctx context.Context, limit int) ([]entities.PriorityEntry, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]entities.ScoredPatient, len(snapshot))
	for i, p := range snapshot {
		scored[i] = entities.ScoredPatient{Patient: *p, PriorityScore: s.scoring.Score(p)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})

	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}

	entries := make([]entities.PriorityEntry, len(scored))
	for i, sp := range scored {
		entries[i] = entities.PriorityEntry{
			PatientID:            sp.PatientID,
			Name:                 sp.Name,
			Age:                  sp.Age,
			Gender:               sp.Gender,
			SystolicBP:           sp.SystolicBP,
			DiastolicBP:          sp.DiastolicBP,
			Cholesterol:          sp.Cholesterol,
			Glucose:              sp.Glucose,
			Diabetes:             sp.Diabetes,
			Hypertension:         sp.Hypertension,
			Smoker:               sp.Smoker,
			MedicationCompliance: sp.MedicationCompliance,
			PriorityScore:        sp.PriorityScore,
		}
	}
	return entries, nil
}

// LostList classifies the population and returns the lost patients sorted by
// reason count descending, dataset order preserved among ties.
func (s *MonitoringService) LostList(ctx context.Context) ([]entities.LostAssessment, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	lost := make([]entities.LostAssessment, 0)
	for _, p := range snapshot {
		assessment := s.followUp.Assess(p, now)
		if assessment.IsLost {
			lost = append(lost, assessment)
		}
	}

	sort.SliceStable(lost, func(i, j int) bool {
		return len(lost[i].Reasons) > len(lost[j].Reasons)
	})

	return lost, nil
}

// Audit scores and classifies the whole population and aggregates the KPI
// report.
func (s *MonitoringService) Audit(ctx context.Context) (*entities.AuditReport, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	scored := make([]entities.ScoredPatient, len(snapshot))
	assessments := make([]entities.LostAssessment, len(snapshot))
	for i, p := range snapshot {
		scored[i] = entities.ScoredPatient{Patient: *p, PriorityScore: s.scoring.Score(p)}
		assessments[i] = s.followUp.Assess(p, now)
	}

	return s.audit.Build(scored, assessments), nil
}

func (s *MonitoringService) load(ctx context.Context) ([]*entities.Patient, error) {
	start := time.Now()
	snapshot, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		observability.RecordDatasetLoadMetric(ctx, s.metrics, "repository", len(snapshot), time.Since(start))
	}
	return snapshot, nil
}
