package risk

// Inputs are the raw intake measurements a metrics computation starts
// from. Pointer fields are nil when the respondent did not provide the
// measurement.
type Inputs struct {
	WeightKg   *float64
	HeightCm   *float64
	WaistCm    *float64
	Sex        Sex
	Conditions []string
}

// Metrics bundles every derived reading for an intake. It is recomputed
// on demand from the answer set and never persisted as authoritative
// state.
type Metrics struct {
	BMI                *float64
	StandardCategory   BMICategory
	AsianCategory      BMICategory
	WaistRisk          WaistRiskLevel
	EatingDisorderFlag bool
	MetabolicRisk      RiskLevel
}

// ComputeMetrics derives the full metrics bundle from the provided
// inputs. Categorical BMI readings are only populated when a BMI could be
// derived.
func ComputeMetrics(in Inputs) *Metrics {
	m := &Metrics{
		BMI:                BMI(in.WeightKg, in.HeightCm),
		WaistRisk:          WaistRisk(in.WaistCm, in.Sex),
		EatingDisorderFlag: EatingDisorderFlag(in.Conditions, in.WeightKg, in.HeightCm),
	}
	m.MetabolicRisk = MetabolicRisk(m.BMI, m.WaistRisk, in.Conditions)
	if m.BMI != nil {
		m.StandardCategory = StandardBMICategory(*m.BMI)
		m.AsianCategory = AsianBMICategory(*m.BMI)
	}
	return m
}
