package manager

import (
	"testing"

	"github.com/venahealth/backend/libs/test"
)

func TestAnswerCondition_SingleSelect(t *testing.T) {
	c := &answerCondition{
		QuestionID:       "Q2",
		AcceptableValues: []string{"Female"},
	}

	answers := AnswerSet{"Q2": NewChoiceAnswer("Female")}
	test.Equals(t, true, c.evaluate(answerSetSource(answers)))

	answers["Q2"] = NewChoiceAnswer("Male")
	test.Equals(t, false, c.evaluate(answerSetSource(answers)))
}

func TestAnswerCondition_Membership(t *testing.T) {
	c := &answerCondition{
		QuestionID:       "Q8",
		AcceptableValues: []string{"Less than 6 months", "6 to 12 months"},
	}

	answers := AnswerSet{"Q8": NewChoiceAnswer("6 to 12 months")}
	test.Equals(t, true, c.evaluate(answerSetSource(answers)))

	answers["Q8"] = NewChoiceAnswer("More than a year")
	test.Equals(t, false, c.evaluate(answerSetSource(answers)))
}

func TestAnswerCondition_MultiSelectAnyMember(t *testing.T) {
	c := &answerCondition{
		QuestionID:       "Q13",
		AcceptableValues: []string{"Type 2 diabetes"},
	}

	answers := AnswerSet{"Q13": NewMultiChoiceAnswer("Asthma", "Type 2 diabetes")}
	test.Equals(t, true, c.evaluate(answerSetSource(answers)))

	answers["Q13"] = NewMultiChoiceAnswer("Asthma")
	test.Equals(t, false, c.evaluate(answerSetSource(answers)))
}

// A condition whose prerequisite has not been answered fails rather than
// raising; intake must stay navigable with partial answer sets.
func TestAnswerCondition_MissingPrerequisite(t *testing.T) {
	c := &answerCondition{
		QuestionID:       "Q2",
		AcceptableValues: []string{"Female"},
	}
	test.Equals(t, false, c.evaluate(answerSetSource(AnswerSet{})))
	test.Equals(t, false, c.evaluate(answerSetSource(AnswerSet{"Q2": NewChoiceAnswer("")})))
}

func TestAndCondition(t *testing.T) {
	c := newCondition(map[string][]string{
		"Q2": {"Female"},
		"Q3": {"Irregular"},
	})

	answers := AnswerSet{
		"Q2": NewChoiceAnswer("Female"),
		"Q3": NewChoiceAnswer("Irregular"),
	}
	test.Equals(t, true, c.evaluate(answerSetSource(answers)))

	answers["Q3"] = NewChoiceAnswer("Regular")
	test.Equals(t, false, c.evaluate(answerSetSource(answers)))

	delete(answers, "Q3")
	test.Equals(t, false, c.evaluate(answerSetSource(answers)))
}

func TestOrCondition(t *testing.T) {
	c := &orCondition{Operands: []condition{
		&answerCondition{QuestionID: "Q1", AcceptableValues: []string{"Yes"}},
		&answerCondition{QuestionID: "Q2", AcceptableValues: []string{"Yes"}},
	}}

	test.Equals(t, true, c.evaluate(answerSetSource(AnswerSet{"Q2": NewChoiceAnswer("Yes")})))
	test.Equals(t, false, c.evaluate(answerSetSource(AnswerSet{})))
}

func TestNewCondition_Empty(t *testing.T) {
	test.Assert(t, newCondition(nil) == nil, "expected nil condition for empty predicates")
	test.Assert(t, newCondition(map[string][]string{}) == nil, "expected nil condition for empty predicates")
}

// Evaluation must be idempotent over an immutable answer set.
func TestCondition_Idempotent(t *testing.T) {
	c := newCondition(map[string][]string{"Q2": {"Female"}})
	answers := AnswerSet{"Q2": NewChoiceAnswer("Female")}
	first := c.evaluate(answerSetSource(answers))
	second := c.evaluate(answerSetSource(answers))
	test.Equals(t, first, second)
}
