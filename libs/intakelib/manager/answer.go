package manager

// Answer is a value captured for a single question. The concrete type is
// resolved once at the point the raw input is captured so that nothing
// downstream needs runtime shape inspection.
type Answer interface {
	isEmpty() bool
	equals(other Answer) bool
}

// AnswerSet maps question ids to their captured answers. It is owned
// exclusively by the intake session that built it; Snapshot hands out
// copies.
type AnswerSet map[string]Answer

// Snapshot returns a shallow copy of the answer set. Answers themselves
// are immutable once captured.
func (a AnswerSet) Snapshot() AnswerSet {
	cp := make(AnswerSet, len(a))
	for id, ans := range a {
		cp[id] = ans
	}
	return cp
}

// TextAnswer is a free text response.
type TextAnswer struct {
	Text string
}

// NewTextAnswer returns an answer holding free text input.
func NewTextAnswer(text string) *TextAnswer {
	return &TextAnswer{Text: text}
}

func (a *TextAnswer) isEmpty() bool {
	return a == nil || a.Text == ""
}

func (a *TextAnswer) equals(other Answer) bool {
	o, ok := other.(*TextAnswer)
	return ok && a.Text == o.Text
}

// NumericAnswer is a numeric response, used for plain numbers as well as
// height (cm), weight (kg) and generic measurements.
type NumericAnswer struct {
	Value float64
}

// NewNumericAnswer returns an answer holding a numeric value.
func NewNumericAnswer(v float64) *NumericAnswer {
	return &NumericAnswer{Value: v}
}

func (a *NumericAnswer) isEmpty() bool {
	return a == nil
}

func (a *NumericAnswer) equals(other Answer) bool {
	o, ok := other.(*NumericAnswer)
	return ok && a.Value == o.Value
}

// ChoiceAnswer is a single selection from a question's options.
type ChoiceAnswer struct {
	Selection string
}

// NewChoiceAnswer returns an answer holding a single selected option.
func NewChoiceAnswer(selection string) *ChoiceAnswer {
	return &ChoiceAnswer{Selection: selection}
}

func (a *ChoiceAnswer) isEmpty() bool {
	return a == nil || a.Selection == ""
}

func (a *ChoiceAnswer) equals(other Answer) bool {
	o, ok := other.(*ChoiceAnswer)
	return ok && a.Selection == o.Selection
}

// MultiChoiceAnswer is a set of selections from a question's options.
type MultiChoiceAnswer struct {
	Selections []string
}

// NewMultiChoiceAnswer returns an answer holding the selected options.
func NewMultiChoiceAnswer(selections ...string) *MultiChoiceAnswer {
	return &MultiChoiceAnswer{Selections: selections}
}

func (a *MultiChoiceAnswer) isEmpty() bool {
	return a == nil || len(a.Selections) == 0
}

func (a *MultiChoiceAnswer) equals(other Answer) bool {
	o, ok := other.(*MultiChoiceAnswer)
	if !ok || len(a.Selections) != len(o.Selections) {
		return false
	}
	for i, s := range a.Selections {
		if o.Selections[i] != s {
			return false
		}
	}
	return true
}

// answerMatches reports whether the captured answer satisfies a
// membership check against the provided acceptable values. A scalar
// answer matches when its value is a member; a multi choice answer
// matches when any of its selections is a member.
func answerMatches(ans Answer, acceptable []string) bool {
	if ans == nil || ans.isEmpty() {
		return false
	}
	switch a := ans.(type) {
	case *ChoiceAnswer:
		return containsString(acceptable, a.Selection)
	case *MultiChoiceAnswer:
		for _, s := range a.Selections {
			if containsString(acceptable, s) {
				return true
			}
		}
	case *TextAnswer:
		return containsString(acceptable, a.Text)
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
