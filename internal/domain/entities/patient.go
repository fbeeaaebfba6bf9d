package entities

// YesNo is a two-valued dataset flag. Any value other than the exact string
// "Yes" reads as No, so unexpected values never abort scoring.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Bool reports whether the flag is set.
func (v YesNo) Bool() bool {
	return v == Yes
}

// Compliance is the self-reported medication adherence level.
type Compliance string

const (
	ComplianceHigh   Compliance = "High"
	ComplianceMedium Compliance = "Medium"
	ComplianceLow    Compliance = "Low"
)

// Patient is one row of the cardiovascular patient dataset. The three
// care-continuity dates are kept as the raw YYYY-MM-DD strings from the
// source; parsing happens at classification time with a defined fallback.
type Patient struct {
	PatientID            string     `json:"patient_id" db:"patient_id"`
	Name                 string     `json:"name" db:"name"`
	Age                  int        `json:"age" db:"age"`
	Gender               string     `json:"gender" db:"gender"`
	SystolicBP           int        `json:"systolic_bp" db:"systolic_bp"`
	DiastolicBP          int        `json:"diastolic_bp" db:"diastolic_bp"`
	Cholesterol          int        `json:"cholesterol" db:"cholesterol"`
	LDL                  int        `json:"ldl" db:"ldl"`
	HDL                  int        `json:"hdl" db:"hdl"`
	Glucose              int        `json:"glucose" db:"glucose"`
	BMI                  float64    `json:"bmi" db:"bmi"`
	Smoker               YesNo      `json:"smoker" db:"smoker"`
	Diabetes             YesNo      `json:"diabetes" db:"diabetes"`
	Hypertension         YesNo      `json:"hypertension" db:"hypertension"`
	LastControl          string     `json:"last_control" db:"last_control"`
	LastMedication       string     `json:"last_medication" db:"last_medication"`
	LastExam             string     `json:"last_exam" db:"last_exam"`
	MedicationCompliance Compliance `json:"medication_compliance" db:"medication_compliance"`
	PreviousMI           YesNo      `json:"previous_mi" db:"previous_mi"`
	PreviousStroke       YesNo      `json:"previous_stroke" db:"previous_stroke"`
}
