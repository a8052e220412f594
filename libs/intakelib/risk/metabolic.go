package risk

import "strings"

// RiskLevel is the overall metabolic risk reading for an intake.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// metabolicComorbidityPatterns are the reported conditions that count as
// comorbidities for metabolic risk, matched case-insensitively as substrings.
var metabolicComorbidityPatterns = []string{
	"type 2 diabetes",
	"heart disease",
	"high blood pressure",
	"kidney disease",
}

// MetabolicRisk computes the overall metabolic risk level. The rules are
// evaluated in a fixed order and the first match wins; the conditions
// overlap so the order is load bearing (a BMI of 32 with a high waist
// reading must land on high, not fall through to moderate).
func MetabolicRisk(bmi *float64, waistRisk WaistRiskLevel, conditions []string) RiskLevel {
	comorbidities := ComorbidityCount(conditions)
	switch {
	case bmi != nil && *bmi >= 40:
		return RiskHigh
	case comorbidities >= 2:
		return RiskHigh
	case bmi != nil && *bmi >= 35 && comorbidities >= 1:
		return RiskHigh
	case bmi != nil && *bmi >= 30 && waistRisk == WaistRiskHigh:
		return RiskHigh
	case (bmi != nil && *bmi >= 25) || waistRisk == WaistRiskElevated || comorbidities >= 1:
		return RiskModerate
	}
	return RiskLow
}

// ComorbidityCount returns the number of reported conditions that count as
// metabolic comorbidities.
func ComorbidityCount(conditions []string) int {
	var n int
	for _, c := range conditions {
		lc := strings.ToLower(c)
		for _, p := range metabolicComorbidityPatterns {
			if strings.Contains(lc, p) {
				n++
				break
			}
		}
	}
	return n
}
