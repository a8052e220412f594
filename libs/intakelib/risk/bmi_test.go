package risk

import (
	"testing"

	"github.com/venahealth/backend/libs/ptr"
	"github.com/venahealth/backend/libs/test"
)

func TestBMI(t *testing.T) {
	bmi := BMI(ptr.Float64(70), ptr.Float64(170))
	test.Assert(t, bmi != nil, "expected a BMI for valid inputs")
	// compute the expectation step for step in float64, the way the
	// formula is evaluated, rather than as one constant expression
	h := 170.0 / 100
	test.Equals(t, 70.0/(h*h), *bmi)
	test.Assert(t, *bmi > 0, "BMI must be strictly positive")
}

func TestBMI_MissingOrInvalidInputs(t *testing.T) {
	test.Assert(t, BMI(nil, ptr.Float64(170)) == nil, "missing weight should yield no BMI")
	test.Assert(t, BMI(ptr.Float64(70), nil) == nil, "missing height should yield no BMI")
	test.Assert(t, BMI(ptr.Float64(0), ptr.Float64(170)) == nil, "zero weight should yield no BMI")
	test.Assert(t, BMI(ptr.Float64(70), ptr.Float64(0)) == nil, "zero height should yield no BMI")
	test.Assert(t, BMI(ptr.Float64(-70), ptr.Float64(170)) == nil, "negative weight should yield no BMI")
	test.Assert(t, BMI(ptr.Float64(70), ptr.Float64(-170)) == nil, "negative height should yield no BMI")
}

func TestStandardBMICategory(t *testing.T) {
	test.Equals(t, BMIUnderweight, StandardBMICategory(18.4))
	test.Equals(t, BMINormal, StandardBMICategory(18.5))
	test.Equals(t, BMINormal, StandardBMICategory(24.9))
	test.Equals(t, BMIOverweight, StandardBMICategory(25))
	test.Equals(t, BMIOverweight, StandardBMICategory(29.9))
	test.Equals(t, BMIObeseI, StandardBMICategory(30))
	test.Equals(t, BMIObeseI, StandardBMICategory(34.9))
	test.Equals(t, BMIObeseII, StandardBMICategory(35))
	test.Equals(t, BMIObeseII, StandardBMICategory(39.9))
	test.Equals(t, BMIObeseIII, StandardBMICategory(40))
	test.Equals(t, BMIObeseIII, StandardBMICategory(60))
}

func TestAsianBMICategory(t *testing.T) {
	test.Equals(t, BMIUnderweight, AsianBMICategory(18.4))
	test.Equals(t, BMINormal, AsianBMICategory(18.5))
	test.Equals(t, BMINormal, AsianBMICategory(22.9))
	test.Equals(t, BMIOverweight, AsianBMICategory(23))
	test.Equals(t, BMIOverweight, AsianBMICategory(24.9))
	test.Equals(t, BMIObeseI, AsianBMICategory(25))
	test.Equals(t, BMIObeseI, AsianBMICategory(29.9))
	test.Equals(t, BMIObeseII, AsianBMICategory(30))
	test.Equals(t, BMIObeseII, AsianBMICategory(34.9))
	test.Equals(t, BMIObeseIII, AsianBMICategory(35))
}

// The Asian breakpoints must be strictly tighter than the standard ones in
// the overweight and obese bands: values that read normal or overweight on
// the standard scale read a band higher on the Asian scale.
func TestAsianBreakpointsTighter(t *testing.T) {
	test.Equals(t, BMINormal, StandardBMICategory(23.5))
	test.Equals(t, BMIOverweight, AsianBMICategory(23.5))
	test.Equals(t, BMIOverweight, StandardBMICategory(27))
	test.Equals(t, BMIObeseI, AsianBMICategory(27))
	test.Equals(t, BMIObeseI, StandardBMICategory(32))
	test.Equals(t, BMIObeseII, AsianBMICategory(32))
	test.Equals(t, BMIObeseII, StandardBMICategory(37))
	test.Equals(t, BMIObeseIII, AsianBMICategory(37))
}
