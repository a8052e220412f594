// Package templates holds the static questionnaire definitions for each
// health vertical. The definitions are configuration consumed by the
// intake manager; the engine itself never special cases a vertical or a
// question id.
package templates

import (
	"github.com/venahealth/backend/libs/intakelib/manager"
)

// Vertical identifiers as reported by the server when it assigns an
// intake to a patient.
const (
	VerticalWeightManagement = "weight_management"
	VerticalHairLoss         = "hair_loss"
	VerticalSexualHealth     = "sexual_health"
	VerticalPCOS             = "pcos"
)

// All returns every shipped questionnaire template.
func All() []*manager.Template {
	return []*manager.Template{
		WeightManagement(),
		HairLoss(),
		SexualHealth(),
		PCOS(),
	}
}

// ForVertical returns the template for the named vertical, or nil when
// the vertical is unknown.
func ForVertical(vertical string) *manager.Template {
	switch vertical {
	case VerticalWeightManagement:
		return WeightManagement()
	case VerticalHairLoss:
		return HairLoss()
	case VerticalSexualHealth:
		return SexualHealth()
	case VerticalPCOS:
		return PCOS()
	}
	return nil
}
