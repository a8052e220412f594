package templates

import (
	"github.com/venahealth/backend/libs/intakelib/manager"
	"github.com/venahealth/backend/libs/ptr"
)

// PCOS returns the polycystic ovary syndrome intake. The vertical is
// offered to female patients only, so its metrics spec carries no sex
// question and waist risk is bucketed on the female thresholds.
func PCOS() *manager.Template {
	return &manager.Template{
		Vertical: VerticalPCOS,
		Sections: []*manager.Section{
			{
				ID:    "pcos_cycle",
				Title: "Your cycle",
				Questions: []*manager.Question{
					{
						ID:       "PC1",
						Prompt:   "How old are you?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(18),
						Max:      ptr.Float64(60),
					},
					{
						ID:       "PC2",
						Prompt:   "How regular are your periods?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Regular", "Irregular", "Absent for three months or more"},
					},
					{
						ID:       "PC3",
						Prompt:   "How many days is your typical cycle?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(10),
						Max:      ptr.Float64(120),
						ConditionalOn: map[string][]string{
							"PC2": {"Regular", "Irregular"},
						},
					},
					{
						ID:       "PC4",
						Prompt:   "Are you currently trying to conceive?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes", "No"},
					},
				},
			},
			{
				ID:    "pcos_symptoms",
				Title: "Symptoms and measurements",
				Questions: []*manager.Question{
					{
						ID:       "PC5",
						Prompt:   "How tall are you? (cm)",
						Type:     manager.QuestionTypeHeight,
						Required: true,
						Min:      ptr.Float64(100),
						Max:      ptr.Float64(250),
					},
					{
						ID:       "PC6",
						Prompt:   "How much do you weigh? (kg)",
						Type:     manager.QuestionTypeWeight,
						Required: true,
						Min:      ptr.Float64(30),
						Max:      ptr.Float64(350),
					},
					{
						ID:     "PC7",
						Prompt: "What is your waist circumference? (cm)",
						Type:   manager.QuestionTypeMeasurement,
						Min:    ptr.Float64(40),
						Max:    ptr.Float64(250),
					},
					{
						ID:       "PC8",
						Prompt:   "Do any of these symptoms apply to you?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Excess facial or body hair",
							"Persistent acne",
							"Thinning hair on the scalp",
							"Dark patches of skin",
							"None of these",
						},
					},
				},
			},
			{
				ID:    "pcos_health",
				Title: "Your health",
				Questions: []*manager.Question{
					{
						ID:       "PC9",
						Prompt:   "Have you been diagnosed with any of the following?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Type 2 diabetes",
							"High blood pressure",
							"Thyroid condition",
							"Eating disorder (current or historical)",
							"None of these",
						},
					},
					{
						ID:       "PC10",
						Prompt:   "Has a doctor previously mentioned PCOS to you?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes, diagnosed", "Yes, suspected", "No"},
					},
					{
						ID:     "PC11",
						Prompt: "Is there anything else you'd like the doctor to know?",
						Type:   manager.QuestionTypeFreeText,
					},
				},
			},
		},
		Metrics: &manager.MetricsSpec{
			HeightQuestionID:     "PC5",
			WeightQuestionID:     "PC6",
			WaistQuestionID:      "PC7",
			ConditionsQuestionID: "PC9",
		},
	}
}
