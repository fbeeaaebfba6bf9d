package entities

// ScoredPatient is a patient with the computed priority score attached.
// Derived per request, never stored.
type ScoredPatient struct {
	Patient
	PriorityScore int `json:"priority_score"`
}

// PriorityEntry is the clinically relevant subset returned by the priority
// listing.
type PriorityEntry struct {
	PatientID            string     `json:"patient_id"`
	Name                 string     `json:"name"`
	Age                  int        `json:"age"`
	Gender               string     `json:"gender"`
	SystolicBP           int        `json:"systolic_bp"`
	DiastolicBP          int        `json:"diastolic_bp"`
	Cholesterol          int        `json:"cholesterol"`
	Glucose              int        `json:"glucose"`
	Diabetes             YesNo      `json:"diabetes"`
	Hypertension         YesNo      `json:"hypertension"`
	Smoker               YesNo      `json:"smoker"`
	MedicationCompliance Compliance `json:"medication_compliance"`
	PriorityScore        int        `json:"priority_score"`
}

// RiskFactors is the flag subset echoed on lost listing entries.
type RiskFactors struct {
	Diabetes     YesNo `json:"diabetes"`
	Hypertension YesNo `json:"hypertension"`
	Smoker       YesNo `json:"smoker"`
}

// LostAssessment is the lost-to-follow-up verdict for one patient.
// UnparsedDates names any date field that failed to parse; such a field
// counts as zero elapsed days for classification, so the listing lets a
// consumer tell "compliant" apart from "unparseable date".
type LostAssessment struct {
	PatientID           string      `json:"patient_id"`
	Name                string      `json:"name"`
	Age                 int         `json:"age"`
	LastControl         string      `json:"last_control"`
	LastMedication      string      `json:"last_medication"`
	LastExam            string      `json:"last_exam"`
	DaysSinceControl    int         `json:"days_since_control"`
	DaysSinceMedication int         `json:"days_since_medication"`
	DaysSinceExam       int         `json:"days_since_exam"`
	IsLost              bool        `json:"is_lost"`
	Reasons             []string    `json:"lost_reasons"`
	UnparsedDates       []string    `json:"unparsed_dates,omitempty"`
	RiskFactors         RiskFactors `json:"risk_factors"`
}

// CountStat is a count with its share of the population.
type CountStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ComplianceStat is a continuity-check compliance count with its share.
type ComplianceStat struct {
	Compliant  int     `json:"compliant"`
	Percentage float64 `json:"percentage"`
}

// ComplianceKPIs groups the three continuity checks.
type ComplianceKPIs struct {
	ControlVisits    ComplianceStat `json:"control_visits"`
	MedicationPickup ComplianceStat `json:"medication_pickup"`
	Exams            ComplianceStat `json:"exams"`
}

// RiskFactorKPIs groups risk-factor prevalence.
type RiskFactorKPIs struct {
	Diabetes     CountStat `json:"diabetes"`
	Hypertension CountStat `json:"hypertension"`
	Smokers      CountStat `json:"smokers"`
}

// PreviousEventKPIs groups prior cardiovascular events.
type PreviousEventKPIs struct {
	MyocardialInfarction CountStat `json:"myocardial_infarction"`
	Stroke               CountStat `json:"stroke"`
}

// ScoreDistribution buckets the population by score: low < 40,
// medium in [40, 70], high > 70.
type ScoreDistribution struct {
	LowRisk    int `json:"low_risk"`
	MediumRisk int `json:"medium_risk"`
	HighRisk   int `json:"high_risk"`
}

// AuditReport is the population-level KPI snapshot, recomputed per call.
type AuditReport struct {
	TotalPatients     int               `json:"total_patients"`
	HighRiskPatients  CountStat         `json:"high_risk_patients"`
	LostPatients      CountStat         `json:"lost_patients"`
	Compliance        ComplianceKPIs    `json:"compliance"`
	RiskFactors       RiskFactorKPIs    `json:"risk_factors"`
	PreviousEvents    PreviousEventKPIs `json:"previous_events"`
	AverageRiskScore  float64           `json:"average_risk_score"`
	ScoreDistribution ScoreDistribution `json:"score_distribution"`
}

// Thresholds echoes the fixed continuity thresholds for client display.
type Thresholds struct {
	ControlVisitDays     int `json:"control_visit_days"`
	MedicationPickupDays int `json:"medication_pickup_days"`
	ExamDays             int `json:"exam_days"`
}
