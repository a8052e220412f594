// Package risk computes the derived health metrics collected during a
// patient intake: BMI and its categorical readings, waist circumference
// risk, eating disorder flagging and overall metabolic risk. All
// functions are pure so they can be recomputed on demand and must produce
// identical output for identical input.
package risk

// BMICategory is a categorical reading of a BMI value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObeseI      BMICategory = "obese_class_1"
	BMIObeseII     BMICategory = "obese_class_2"
	BMIObeseIII    BMICategory = "obese_class_3"
)

// BMI returns the body mass index for the provided weight and height, or
// nil when either input is missing or not strictly positive. No rounding
// is applied; display rounding is the caller's concern.
func BMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := *weightKg / (heightM * heightM)
	return &bmi
}

// StandardBMICategory buckets a BMI value using the WHO standard
// breakpoints. Intervals are half-open with the lower bound inclusive.
func StandardBMICategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObeseI
	case bmi < 40:
		return BMIObeseII
	}
	return BMIObeseIII
}

// AsianBMICategory buckets a BMI value using the WHO Asian-adjusted
// breakpoints, which are tighter than the standard ones in the overweight
// and obese bands.
func AsianBMICategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 23:
		return BMINormal
	case bmi < 25:
		return BMIOverweight
	case bmi < 30:
		return BMIObeseI
	case bmi < 35:
		return BMIObeseII
	}
	return BMIObeseIII
}
