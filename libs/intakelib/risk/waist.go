package risk

// Sex is the patient's biological sex as reported during intake.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// WaistRiskLevel is a categorical reading of waist circumference.
// The zero value represents an unknown reading (no measurement provided).
type WaistRiskLevel string

const (
	WaistRiskUnknown  WaistRiskLevel = ""
	WaistRiskNormal   WaistRiskLevel = "normal"
	WaistRiskElevated WaistRiskLevel = "elevated"
	WaistRiskHigh     WaistRiskLevel = "high"
)

// WaistRisk buckets a waist circumference measurement using sex specific
// thresholds. A missing measurement yields WaistRiskUnknown; a zero
// measurement is a concrete (if absurd) value and lands in the normal band.
// The lower threshold is inclusive to elevated, the upper exclusive to high:
// exactly 102cm for men and 88cm for women read as elevated.
func WaistRisk(waistCm *float64, sex Sex) WaistRiskLevel {
	if waistCm == nil {
		return WaistRiskUnknown
	}
	high, elevated := 88.0, 80.0
	if sex == SexMale {
		high, elevated = 102.0, 94.0
	}
	switch {
	case *waistCm > high:
		return WaistRiskHigh
	case *waistCm >= elevated:
		return WaistRiskElevated
	}
	return WaistRiskNormal
}
