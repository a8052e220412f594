package manager

import (
	"testing"

	"github.com/venahealth/backend/libs/test"
)

const templateJSON = `{
	"vertical": "weight_management",
	"sections": [
		{
			"id": "about_you",
			"title": "About you",
			"questions": [
				{"question_id": "Q1", "prompt": "How old are you?", "type": "q_type_numeric", "required": true, "min": 18, "max": 100},
				{"question_id": "Q2", "prompt": "What was your sex at birth?", "type": "q_type_single_select", "required": true, "options": ["Male", "Female"]},
				{"question_id": "Q3", "prompt": "How regular are your periods?", "type": "q_type_single_select", "required": true, "options": ["Regular", "Irregular"], "conditional_on": {"Q2": "Female"}}
			]
		},
		{
			"id": "history",
			"title": "Weight history",
			"questions": [
				{"question_id": "Q9", "prompt": "Which weight loss medications have you tried?", "type": "q_type_multiple_choice", "required": true, "options": ["Orlistat", "None"]},
				{"question_id": "Q10", "prompt": "How long did you take them?", "type": "q_type_single_select", "required": true, "options": ["Under a month", "Longer"], "hint": "Your best guess is fine."}
			]
		}
	],
	"skip_rules": [
		{"condition": {"Q9": ["None"]}, "skip_question_id": "Q10"}
	],
	"photo_requirements": [
		{"id": "front", "label": "Front photo", "required": true, "instructions": "Stand facing the camera."}
	],
	"metrics": {
		"height_question_id": "",
		"weight_question_id": "",
		"waist_question_id": "",
		"sex_question_id": "Q2",
		"conditions_question_id": ""
	}
}`

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(templateJSON))
	test.OK(t, err)

	test.Equals(t, "weight_management", tmpl.Vertical)
	test.Equals(t, 2, len(tmpl.Sections))
	test.Equals(t, 3, len(tmpl.Sections[0].Questions))

	q1 := tmpl.Sections[0].Questions[0]
	test.Equals(t, QuestionTypeNumeric, q1.Type)
	test.Equals(t, true, q1.Required)
	test.Equals(t, 18.0, *q1.Min)
	test.Equals(t, 100.0, *q1.Max)

	q3 := tmpl.Sections[0].Questions[2]
	test.Equals(t, map[string][]string{"Q2": {"Female"}}, q3.ConditionalOn)

	test.Equals(t, 1, len(tmpl.SkipRules))
	test.Equals(t, "Q10", tmpl.SkipRules[0].SkipQuestionID)
	test.Equals(t, map[string][]string{"Q9": {"None"}}, tmpl.SkipRules[0].Condition)

	test.Equals(t, 1, len(tmpl.PhotoRequirements))
	test.Equals(t, "front", tmpl.PhotoRequirements[0].ID)

	test.Equals(t, "Q2", tmpl.Metrics.SexQuestionID)

	test.Equals(t, "Your best guess is fine.", tmpl.Sections[1].Questions[1].Hint)
}

func TestParseTemplate_BadJSON(t *testing.T) {
	_, err := ParseTemplate([]byte("{"))
	test.Assert(t, err != nil, "expected malformed payload to be rejected")
}

func TestParseTemplate_MissingKeys(t *testing.T) {
	_, err := ParseTemplate([]byte(`{"vertical": "pcos"}`))
	test.Assert(t, err != nil, "expected template without sections to be rejected")
}

func TestValidate_DuplicateQuestionID(t *testing.T) {
	tmpl := &Template{
		Sections: []*Section{{
			ID: "s1",
			Questions: []*Question{
				{ID: "Q1", Type: QuestionTypeFreeText},
				{ID: "Q1", Type: QuestionTypeFreeText},
			},
		}},
	}
	test.Assert(t, tmpl.Validate() != nil, "expected duplicate question id to be rejected")
}

func TestValidate_ForwardReference(t *testing.T) {
	tmpl := &Template{
		Sections: []*Section{{
			ID: "s1",
			Questions: []*Question{
				{ID: "Q1", Type: QuestionTypeSingleSelect, ConditionalOn: map[string][]string{"Q2": {"Yes"}}},
				{ID: "Q2", Type: QuestionTypeSingleSelect},
			},
		}},
	}
	test.Assert(t, tmpl.Validate() != nil, "expected forward conditional reference to be rejected")
}

func TestValidate_SelfReference(t *testing.T) {
	tmpl := &Template{
		Sections: []*Section{{
			ID: "s1",
			Questions: []*Question{
				{ID: "Q1", Type: QuestionTypeSingleSelect, ConditionalOn: map[string][]string{"Q1": {"Yes"}}},
			},
		}},
	}
	test.Assert(t, tmpl.Validate() != nil, "expected self reference to be rejected")
}

func TestValidate_UnknownSkipTarget(t *testing.T) {
	tmpl := &Template{
		Sections: []*Section{{
			ID:        "s1",
			Questions: []*Question{{ID: "Q1", Type: QuestionTypeFreeText}},
		}},
		SkipRules: []*SkipRule{{Condition: map[string][]string{"Q1": {"x"}}, SkipQuestionID: "Q99"}},
	}
	test.Assert(t, tmpl.Validate() != nil, "expected unknown skip target to be rejected")
}
