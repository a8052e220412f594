package templates

import (
	"github.com/venahealth/backend/libs/intakelib/manager"
	"github.com/venahealth/backend/libs/ptr"
)

// HairLoss returns the hair loss intake. The vertical requires scalp
// photos, so the flow routes through photo capture before review.
func HairLoss() *manager.Template {
	return &manager.Template{
		Vertical: VerticalHairLoss,
		Sections: []*manager.Section{
			{
				ID:    "hl_about_you",
				Title: "About you",
				Questions: []*manager.Question{
					{
						ID:       "HL1",
						Prompt:   "How old are you?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(18),
						Max:      ptr.Float64(100),
					},
					{
						ID:       "HL2",
						Prompt:   "What was your sex at birth?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Male", "Female"},
					},
				},
			},
			{
				ID:    "hl_pattern",
				Title: "Your hair loss",
				Questions: []*manager.Question{
					{
						ID:       "HL3",
						Prompt:   "Where are you losing hair?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Hairline or temples",
							"Crown",
							"All over thinning",
							"Patches",
						},
					},
					{
						ID:       "HL4",
						Prompt:   "How long has it been going on?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Less than six months",
							"Six months to two years",
							"More than two years",
						},
					},
					{
						ID:       "HL5",
						Prompt:   "Which picture best matches your hairline?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Type 1", "Type 2", "Type 3", "Type 4", "Type 5 or beyond"},
						Hint:     "This is the Norwood scale; pick the closest match.",
						ConditionalOn: map[string][]string{
							"HL2": {"Male"},
						},
					},
					{
						ID:       "HL6",
						Prompt:   "Does hair loss run in your family?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes", "No", "Not sure"},
					},
				},
			},
			{
				ID:    "hl_history",
				Title: "Treatment history",
				Questions: []*manager.Question{
					{
						ID:       "HL7",
						Prompt:   "Have you tried any hair loss treatments before?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Minoxidil (topical)",
							"Finasteride (oral)",
							"Supplements",
							"Other",
							"None",
						},
					},
					{
						ID:       "HL8",
						Prompt:   "How well did they work for you?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Noticeable improvement",
							"Slowed the loss",
							"No difference",
							"Made things worse",
						},
					},
					{
						ID:     "HL9",
						Prompt: "Is there anything else you'd like the doctor to know?",
						Type:   manager.QuestionTypeFreeText,
					},
				},
			},
		},
		SkipRules: []*manager.SkipRule{
			{Condition: map[string][]string{"HL7": {"None"}}, SkipQuestionID: "HL8"},
		},
		PhotoRequirements: []*manager.PhotoRequirement{
			{
				ID:           "hl_photo_hairline",
				Label:        "Hairline",
				Required:     true,
				Instructions: "Face the camera, with your hair pushed back off your forehead.",
			},
			{
				ID:           "hl_photo_crown",
				Label:        "Crown",
				Required:     true,
				Instructions: "Hold the camera above and behind your head, pointing down at the crown.",
			},
			{
				ID:           "hl_photo_affected",
				Label:        "Affected area close-up",
				Required:     false,
				Instructions: "A close-up of any patch or area you're concerned about.",
			},
		},
	}
}
