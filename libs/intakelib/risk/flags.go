package risk

import "strings"

// eatingDisorderPatterns are matched case-insensitively as substrings
// against the reported medical conditions.
var eatingDisorderPatterns = []string{
	"eating disorder",
	"anorexia",
	"bulimia",
	"binge eating",
}

// EatingDisorderFlag reports whether the intake should be flagged for
// eating disorder review. The flag is deliberately conservative and set on
// exactly two signals: a reported condition matching a known eating
// disorder pattern, or a derived BMI strictly under 18.5. Reported
// behaviours alone (bingeing, restricting) never set it, to avoid false
// positives from lifestyle questions.
func EatingDisorderFlag(conditions []string, weightKg, heightCm *float64) bool {
	for _, c := range conditions {
		lc := strings.ToLower(c)
		for _, p := range eatingDisorderPatterns {
			if strings.Contains(lc, p) {
				return true
			}
		}
	}
	if bmi := BMI(weightKg, heightCm); bmi != nil && *bmi < 18.5 {
		return true
	}
	return false
}
