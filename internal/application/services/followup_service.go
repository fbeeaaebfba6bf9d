package services

import (
	"fmt"
	"time"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// Continuity thresholds in days. A patient is lost once any elapsed count
// strictly exceeds its threshold.
const (
	ControlVisitThresholdDays     = 180
	MedicationPickupThresholdDays = 90
	ExamThresholdDays             = 365
)

const dateLayout = "2006-01-02"

// FollowUpService classifies patients as lost to follow-up based on the
// three care-continuity dates.
type FollowUpService struct{}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService() *FollowUpService {
	return &FollowUpService{}
}

// Assess evaluates one patient against the continuity thresholds at the
// given reference instant. An unparseable date counts as zero elapsed days
// (biasing the check toward compliant) and is reported in UnparsedDates so
// the caller can tell the two cases apart.
func (s *FollowUpService) Assess(p *entities.Patient, now time.Time) entities.LostAssessment {
	assessment := entities.LostAssessment{
		PatientID:      p.PatientID,
		Name:           p.Name,
		Age:            p.Age,
		LastControl:    p.LastControl,
		LastMedication: p.LastMedication,
		LastExam:       p.LastExam,
		RiskFactors: entities.RiskFactors{
			Diabetes:     p.Diabetes,
			Hypertension: p.Hypertension,
			Smoker:       p.Smoker,
		},
	}

	var parsed bool
	if assessment.DaysSinceControl, parsed = daysSince(p.LastControl, now); !parsed {
		assessment.UnparsedDates = append(assessment.UnparsedDates, "last_control")
	}
	if assessment.DaysSinceMedication, parsed = daysSince(p.LastMedication, now); !parsed {
		assessment.UnparsedDates = append(assessment.UnparsedDates, "last_medication")
	}
	if assessment.DaysSinceExam, parsed = daysSince(p.LastExam, now); !parsed {
		assessment.UnparsedDates = append(assessment.UnparsedDates, "last_exam")
	}

	// Reason order is fixed regardless of which checks fire.
	if assessment.DaysSinceControl > ControlVisitThresholdDays {
		assessment.Reasons = append(assessment.Reasons,
			fmt.Sprintf("no control visit in %d days", assessment.DaysSinceControl))
	}
	if assessment.DaysSinceMedication > MedicationPickupThresholdDays {
		assessment.Reasons = append(assessment.Reasons,
			fmt.Sprintf("no medication pickup in %d days", assessment.DaysSinceMedication))
	}
	if assessment.DaysSinceExam > ExamThresholdDays {
		assessment.Reasons = append(assessment.Reasons,
			fmt.Sprintf("missing exams (%d days)", assessment.DaysSinceExam))
	}

	assessment.IsLost = len(assessment.Reasons) > 0
	return assessment
}

// DefaultThresholds returns the fixed thresholds echoed for client display.
func DefaultThresholds() entities.Thresholds {
	return entities.Thresholds{
		ControlVisitDays:     ControlVisitThresholdDays,
		MedicationPickupDays: MedicationPickupThresholdDays,
		ExamDays:             ExamThresholdDays,
	}
}

// daysSince returns whole days elapsed between the YYYY-MM-DD date and now,
// and whether the date parsed. Failure yields zero days, not an error.
func daysSince(value string, now time.Time) (int, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return 0, false
	}
	return int(now.Sub(date).Hours() / 24), true
}
