package manager

import (
	"testing"

	"github.com/venahealth/backend/libs/test"
)

func TestIsQuestionVisible_Unconditional(t *testing.T) {
	q := &Question{ID: "Q1", Type: QuestionTypeFreeText}
	test.Equals(t, true, IsQuestionVisible(q, AnswerSet{}))
}

func TestIsQuestionVisible_Conditional(t *testing.T) {
	q := &Question{
		ID:            "Q3",
		Type:          QuestionTypeSingleSelect,
		ConditionalOn: map[string][]string{"Q2": {"Female"}},
	}

	test.Equals(t, false, IsQuestionVisible(q, AnswerSet{}))
	test.Equals(t, false, IsQuestionVisible(q, AnswerSet{"Q2": NewChoiceAnswer("Male")}))
	test.Equals(t, true, IsQuestionVisible(q, AnswerSet{"Q2": NewChoiceAnswer("Female")}))
}

func TestIsQuestionSkipped_AnyRuleFires(t *testing.T) {
	rules := []*SkipRule{
		{Condition: map[string][]string{"Q9": {"None"}}, SkipQuestionID: "Q10"},
		{Condition: map[string][]string{"Q8": {"Never"}}, SkipQuestionID: "Q10"},
	}

	test.Equals(t, true, IsQuestionSkipped("Q10", rules, AnswerSet{"Q9": NewMultiChoiceAnswer("None")}))
	test.Equals(t, true, IsQuestionSkipped("Q10", rules, AnswerSet{"Q8": NewChoiceAnswer("Never")}))
	test.Equals(t, false, IsQuestionSkipped("Q10", rules, AnswerSet{"Q9": NewMultiChoiceAnswer("Orlistat")}))
	test.Equals(t, false, IsQuestionSkipped("Q12", rules, AnswerSet{"Q9": NewMultiChoiceAnswer("None")}))
}

// Rules referencing unanswered questions must not fire and must not raise.
func TestIsQuestionSkipped_MissingPrerequisite(t *testing.T) {
	rules := []*SkipRule{
		{Condition: map[string][]string{"Q9": {"None"}}, SkipQuestionID: "Q10"},
	}
	test.Equals(t, false, IsQuestionSkipped("Q10", rules, AnswerSet{}))
}

func TestIsQuestionSkipped_Idempotent(t *testing.T) {
	rules := []*SkipRule{
		{Condition: map[string][]string{"Q9": {"None"}}, SkipQuestionID: "Q10"},
	}
	answers := AnswerSet{"Q9": NewMultiChoiceAnswer("None")}
	test.Equals(t, IsQuestionSkipped("Q10", rules, answers), IsQuestionSkipped("Q10", rules, answers))
}
