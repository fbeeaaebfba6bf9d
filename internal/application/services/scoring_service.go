package services

import (
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// MaxScore is the upper bound of the priority score.
const MaxScore = 100

// ScoringService computes the cardiovascular priority score for one patient.
// Each clinical dimension is banded independently and the bands are summed;
// only the total is clamped, so a patient can score in every dimension at
// once. Pure function of the record, no I/O.
type ScoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score returns the priority score for the patient, in [0, MaxScore].
func (s *ScoringService) Score(p *entities.Patient) int {
	score := agePoints(p.Age)
	score += bloodPressurePoints(p.SystolicBP, p.DiastolicBP)
	score += cholesterolPoints(p.Cholesterol, p.LDL)
	score += glucosePoints(p.Glucose)
	score += bmiPoints(p.BMI)

	if p.Diabetes.Bool() {
		score += 10
	}
	if p.Hypertension.Bool() {
		score += 8
	}
	if p.Smoker.Bool() {
		score += 7
	}
	if p.PreviousMI.Bool() {
		score += 10
	}
	if p.PreviousStroke.Bool() {
		score += 10
	}

	score += compliancePoints(p.MedicationCompliance)

	if score > MaxScore {
		return MaxScore
	}
	return score
}

func agePoints(age int) int {
	switch {
	case age >= 75:
		return 15
	case age >= 65:
		return 10
	case age >= 55:
		return 5
	default:
		return 0
	}
}

// The worse of the two readings decides the band.
func bloodPressurePoints(systolic, diastolic int) int {
	switch {
	case systolic >= 160 || diastolic >= 100:
		return 20
	case systolic >= 140 || diastolic >= 90:
		return 12
	case systolic >= 130 || diastolic >= 80:
		return 5
	default:
		return 0
	}
}

// The worse of total cholesterol and LDL decides the band.
func cholesterolPoints(total, ldl int) int {
	switch {
	case total >= 240 || ldl >= 160:
		return 15
	case total >= 200 || ldl >= 130:
		return 10
	case total >= 180 || ldl >= 100:
		return 5
	default:
		return 0
	}
}

func glucosePoints(glucose int) int {
	switch {
	case glucose >= 200:
		return 15
	case glucose >= 140:
		return 10
	case glucose >= 100:
		return 5
	default:
		return 0
	}
}

func bmiPoints(bmi float64) int {
	switch {
	case bmi >= 35:
		return 10
	case bmi >= 30:
		return 6
	case bmi >= 25:
		return 3
	default:
		return 0
	}
}

// Unknown compliance values read as High, which scores nothing.
func compliancePoints(compliance entities.Compliance) int {
	switch compliance {
	case entities.ComplianceLow:
		return 10
	case entities.ComplianceMedium:
		return 5
	default:
		return 0
	}
}
