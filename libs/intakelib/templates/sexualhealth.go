package templates

import (
	"github.com/venahealth/backend/libs/intakelib/manager"
	"github.com/venahealth/backend/libs/ptr"
)

// SexualHealth returns the sexual health intake.
func SexualHealth() *manager.Template {
	return &manager.Template{
		Vertical: VerticalSexualHealth,
		Sections: []*manager.Section{
			{
				ID:    "sh_about_you",
				Title: "About you",
				Questions: []*manager.Question{
					{
						ID:       "SH1",
						Prompt:   "How old are you?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(18),
						Max:      ptr.Float64(100),
					},
					{
						ID:       "SH2",
						Prompt:   "What was your sex at birth?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Male", "Female"},
					},
				},
			},
			{
				ID:    "sh_concern",
				Title: "Your concern",
				Questions: []*manager.Question{
					{
						ID:       "SH3",
						Prompt:   "What brings you in today?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Erectile difficulties",
							"Premature ejaculation",
							"Low desire",
							"Pain or discomfort",
							"Something else",
						},
					},
					{
						ID:       "SH4",
						Prompt:   "When did you first notice the problem?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options: []string{
							"Within the last month",
							"One to six months ago",
							"More than six months ago",
							"It has always been this way",
						},
					},
					{
						ID:       "SH5",
						Prompt:   "Do you still get morning erections?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes, regularly", "Sometimes", "Rarely or never"},
						ConditionalOn: map[string][]string{
							"SH3": {"Erectile difficulties"},
						},
					},
				},
			},
			{
				ID:    "sh_health",
				Title: "Your health",
				Questions: []*manager.Question{
					{
						ID:       "SH6",
						Prompt:   "Have you been diagnosed with any of the following?",
						Type:     manager.QuestionTypeMultiSelect,
						Required: true,
						Options: []string{
							"Type 2 diabetes",
							"Heart disease",
							"High blood pressure",
							"Depression or anxiety",
							"None of these",
						},
					},
					{
						ID:     "SH7",
						Prompt: "List any medications you take regularly.",
						Type:   manager.QuestionTypeFreeText,
						Hint:   "Include doses if you know them.",
					},
					{
						ID:       "SH8",
						Prompt:   "Do you smoke?",
						Type:     manager.QuestionTypeSingleSelect,
						Required: true,
						Options:  []string{"Yes", "No", "I used to"},
					},
					{
						ID:       "SH9",
						Prompt:   "How many alcoholic drinks do you have in a typical week?",
						Type:     manager.QuestionTypeNumeric,
						Required: true,
						Min:      ptr.Float64(0),
						Max:      ptr.Float64(100),
					},
					{
						ID:     "SH10",
						Prompt: "Is there anything else you'd like the doctor to know?",
						Type:   manager.QuestionTypeFreeText,
					},
				},
			},
		},
	}
}
