package templates

import (
	"github.com/venahealth/backend/libs/intakelib/manager"
	"github.com/venahealth/backend/libs/ptr"
)

// WeightManagement returns the weight management intake. It is the
// largest of the verticals: sex gated menstrual questions, a medication
// history branch with skip rules on the "None" answer, and the
// measurements that feed the derived risk metrics.
func WeightManagement() *manager.Template {
	return &manager.Template{
		Vertical: VerticalWeightManagement,
		Sections: []*manager.Section{
			{
				ID:    "wm_about_you",
				Title: "About you",
				Questions: []*manager.Question{
					{
						ID:       "Q1",
						Prompt:   "How old are you?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(18),
						Max:      ptr.Float64(100),
					},
					{
						ID:       "Q2",
						Prompt:   "What was your sex at birth?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Male", "Female"},
					},
					{
						ID:       "Q3",
						Prompt:   "How regular are your periods?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Regular", "Irregular", "I don't get periods"},
						ConditionalOn: map[string][]string{
							"Q2": {"Female"},
						},
					},
					{
						ID:     "Q4",
						Prompt: "Have you noticed recent changes in your cycle?",
						Type:   manager.QuestionTypeFreeText,
						Hint:   "For example, heavier bleeding or missed periods.",
						ConditionalOn: map[string][]string{
							"Q2": {"Female"},
						},
					},
				},
			},
			{
				ID:    "wm_measurements",
				Title: "Body measurements",
				Questions: []*manager.Question{
					{
						ID:       "Q5",
						Prompt:   "How tall are you? (cm)",
						Type:     manager.QuestionTypeHeight,
						Required: true,
						Min:      ptr.Float64(100),
						Max:      ptr.Float64(250),
					},
					{
						ID:       "Q6",
						Prompt:   "How much do you weigh? (kg)",
						Type:     manager.QuestionTypeWeight,
						Required: true,
						Min:      ptr.Float64(30),
						Max:      ptr.Float64(350),
					},
					{
						ID:     "Q7",
						Prompt: "What is your waist circumference? (cm)",
						Type:   manager.QuestionTypeMeasurement,
						Hint:   "Measure at the level of your belly button. Skip if you're not sure.",
						Min:    ptr.Float64(40),
						Max:    ptr.Float64(250),
					},
					{
						ID:       "Q8",
						Prompt:   "How would you describe your activity level?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Mostly sedentary",
							"Lightly active",
							"Moderately active",
							"Very active",
						},
					},
				},
			},
			{
				ID:    "wm_history",
				Title: "Weight history",
				Questions: []*manager.Question{
					{
						ID:       "Q9",
						Prompt:   "Have you tried any weight loss medications before?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Orlistat",
							"Liraglutide",
							"Semaglutide",
							"Phentermine",
							"Other",
							"None",
						},
					},
					{
						ID:       "Q10",
						Prompt:   "How long did you take them for?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Less than a month",
							"One to six months",
							"More than six months",
						},
					},
					{
						ID:       "Q11",
						Prompt:   "Has your weight repeatedly cycled up and down over the years?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes", "No"},
					},
					{
						ID:       "Q12",
						Prompt:   "Did you experience any side effects from those medications?",
						Type:     manager.QuestionTypeFreeText,
						Required: true,
					},
					{
						ID:       "Q13",
						Prompt:   "Have you been diagnosed with any of the following?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Type 2 diabetes",
							"Heart disease",
							"High blood pressure",
							"Kidney disease",
							"Thyroid condition",
							"Eating disorder (current or historical)",
							"None of these",
						},
					},
					{
						ID:       "Q14",
						Prompt:   "What is your main goal?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Lose weight",
							"Maintain weight after a previous loss",
							"Improve a weight related condition",
						},
					},
					{
						ID:     "Q15",
						Prompt: "Is there anything else you'd like the doctor to know?",
						Type:   manager.QuestionTypeFreeText,
					},
				},
			},
		},
		// Q9 = "None" means the medication follow-ups don't apply. Note the
		// rules reference question ids, not positions: Q11 (weight cycling)
		// sits between the two targets and is unaffected.
		SkipRules: []*manager.SkipRule{
			{Condition: map[string][]string{"Q9": {"None"}}, SkipQuestionID: "Q10"},
			{Condition: map[string][]string{"Q9": {"None"}}, SkipQuestionID: "Q12"},
		},
		Metrics: &manager.MetricsSpec{
			HeightQuestionID:     "Q5",
			WeightQuestionID:     "Q6",
			WaistQuestionID:      "Q7",
			SexQuestionID:        "Q2",
			ConditionsQuestionID: "Q13",
		},
	}
}
