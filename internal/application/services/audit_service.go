package services

import (
	"math"

	"github.com/J0SEF4/HackathonSaludIA/internal/domain/entities"
)

// Score-distribution bucket bounds: low < 40, medium in [40, 70], high > 70.
const (
	highRiskScoreFloor = 70
	lowRiskScoreCeil   = 40
)

// AuditService aggregates the scored, classified population into the audit
// KPI report. Pure function of the population snapshot; an empty population
// is a defined case, never a division fault.
type AuditService struct{}

// NewAuditService creates a new audit service
func NewAuditService() *AuditService {
	return &AuditService{}
}

// Build computes the report from per-patient scores and assessments. The two
// slices are index-aligned over the same population.
func (s *AuditService) Build(scored []entities.ScoredPatient, assessments []entities.LostAssessment) *entities.AuditReport {
	total := len(scored)

	report := &entities.AuditReport{TotalPatients: total}

	scoreSum := 0
	for _, sp := range scored {
		scoreSum += sp.PriorityScore

		switch {
		case sp.PriorityScore > highRiskScoreFloor:
			report.ScoreDistribution.HighRisk++
		case sp.PriorityScore >= lowRiskScoreCeil:
			report.ScoreDistribution.MediumRisk++
		default:
			report.ScoreDistribution.LowRisk++
		}

		if sp.Diabetes.Bool() {
			report.RiskFactors.Diabetes.Count++
		}
		if sp.Hypertension.Bool() {
			report.RiskFactors.Hypertension.Count++
		}
		if sp.Smoker.Bool() {
			report.RiskFactors.Smokers.Count++
		}
		if sp.PreviousMI.Bool() {
			report.PreviousEvents.MyocardialInfarction.Count++
		}
		if sp.PreviousStroke.Bool() {
			report.PreviousEvents.Stroke.Count++
		}
	}

	for _, a := range assessments {
		if a.IsLost {
			report.LostPatients.Count++
		}
		if a.DaysSinceControl <= ControlVisitThresholdDays {
			report.Compliance.ControlVisits.Compliant++
		}
		if a.DaysSinceMedication <= MedicationPickupThresholdDays {
			report.Compliance.MedicationPickup.Compliant++
		}
		if a.DaysSinceExam <= ExamThresholdDays {
			report.Compliance.Exams.Compliant++
		}
	}

	report.HighRiskPatients.Count = report.ScoreDistribution.HighRisk

	report.HighRiskPatients.Percentage = percent(report.HighRiskPatients.Count, total)
	report.LostPatients.Percentage = percent(report.LostPatients.Count, total)
	report.Compliance.ControlVisits.Percentage = percent(report.Compliance.ControlVisits.Compliant, total)
	report.Compliance.MedicationPickup.Percentage = percent(report.Compliance.MedicationPickup.Compliant, total)
	report.Compliance.Exams.Percentage = percent(report.Compliance.Exams.Compliant, total)
	report.RiskFactors.Diabetes.Percentage = percent(report.RiskFactors.Diabetes.Count, total)
	report.RiskFactors.Hypertension.Percentage = percent(report.RiskFactors.Hypertension.Count, total)
	report.RiskFactors.Smokers.Percentage = percent(report.RiskFactors.Smokers.Count, total)
	report.PreviousEvents.MyocardialInfarction.Percentage = percent(report.PreviousEvents.MyocardialInfarction.Count, total)
	report.PreviousEvents.Stroke.Percentage = percent(report.PreviousEvents.Stroke.Count, total)

	if total > 0 {
		report.AverageRiskScore = roundOneDecimal(float64(scoreSum) / float64(total))
	}

	return report
}

// percent is round-half-up to one decimal; zero total short-circuits to 0.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundOneDecimal(float64(count) / float64(total) * 100)
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
