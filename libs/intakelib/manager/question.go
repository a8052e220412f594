package manager

import (
	"github.com/venahealth/backend/libs/errors"
)

// QuestionType identifies how a question is answered and rendered.
type QuestionType string

const (
	QuestionTypeNumeric      QuestionType = "q_type_numeric"
	QuestionTypeSingleSelect QuestionType = "q_type_single_select"
	QuestionTypeMultiSelect  QuestionType = "q_type_multiple_choice"
	QuestionTypeFreeText     QuestionType = "q_type_free_text"
	QuestionTypeHeight       QuestionType = "q_type_height"
	QuestionTypeWeight       QuestionType = "q_type_weight"
	QuestionTypeMeasurement  QuestionType = "q_type_measurement"
)

func (t QuestionType) String() string {
	return string(t)
}

// Valid returns true iff the value is a supported question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeNumeric, QuestionTypeSingleSelect, QuestionTypeMultiSelect,
		QuestionTypeFreeText, QuestionTypeHeight, QuestionTypeWeight, QuestionTypeMeasurement:
		return true
	}
	return false
}

// numeric returns true for the types answered with a number.
func (t QuestionType) numeric() bool {
	switch t {
	case QuestionTypeNumeric, QuestionTypeHeight, QuestionTypeWeight, QuestionTypeMeasurement:
		return true
	}
	return false
}

var (
	errQuestionRequirement = errors.New("Please answer the question to continue.")
)

// Question is a single item in a questionnaire.
type Question struct {
	ID       string
	Prompt   string
	Type     QuestionType
	Required bool

	// Options are the valid choices for select type questions.
	Options []string

	// Min and Max bound the value of numeric type questions when set.
	Min *float64
	Max *float64

	// ConditionalOn gates display of the question on prior answers:
	// every referenced question's answer must be a member of its
	// acceptable values. Referenced questions must occur earlier in the
	// questionnaire.
	ConditionalOn map[string][]string

	Hint string

	cond condition
}

// condition returns the display condition for the question, building it
// from ConditionalOn on first use. Nil means unconditionally displayed.
func (q *Question) condition() condition {
	if q.cond == nil && len(q.ConditionalOn) > 0 {
		q.cond = newCondition(q.ConditionalOn)
	}
	return q.cond
}

// validateAnswer checks an answer against the question's declared type,
// options and bounds. It does not consider visibility or skip state.
func (q *Question) validateAnswer(ans Answer) error {
	if ans == nil || ans.isEmpty() {
		if q.Required {
			return errors.Trace(errQuestionRequirement)
		}
		return nil
	}

	switch q.Type {
	case QuestionTypeFreeText:
		if _, ok := ans.(*TextAnswer); !ok {
			return errors.Errorf("question %s expects free text", q.ID)
		}
	case QuestionTypeSingleSelect:
		a, ok := ans.(*ChoiceAnswer)
		if !ok {
			return errors.Errorf("question %s expects a single selection", q.ID)
		}
		if len(q.Options) > 0 && !containsString(q.Options, a.Selection) {
			return errors.Errorf("'%s' is not an option for question %s", a.Selection, q.ID)
		}
	case QuestionTypeMultiSelect:
		a, ok := ans.(*MultiChoiceAnswer)
		if !ok {
			return errors.Errorf("question %s expects a list of selections", q.ID)
		}
		if len(q.Options) > 0 {
			for _, s := range a.Selections {
				if !containsString(q.Options, s) {
					return errors.Errorf("'%s' is not an option for question %s", s, q.ID)
				}
			}
		}
	default:
		a, ok := ans.(*NumericAnswer)
		if !ok {
			return errors.Errorf("question %s expects a numeric value", q.ID)
		}
		if q.Min != nil && a.Value < *q.Min {
			return errors.Errorf("value for question %s must be at least %v", q.ID, *q.Min)
		}
		if q.Max != nil && a.Value > *q.Max {
			return errors.Errorf("value for question %s must be at most %v", q.ID, *q.Max)
		}
	}

	return nil
}
