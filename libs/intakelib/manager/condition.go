package manager

import "sort"

// answerSource provides the current answer for a question, or nil when
// the question has not been answered.
type answerSource interface {
	answer(questionID string) Answer
}

// condition gates the display of a question or the firing of a skip rule
// against the current answer set.
type condition interface {
	evaluate(src answerSource) bool
	questionIDs() []string
}

// answerCondition requires the answer to a prerequisite question to be a
// member of a set of acceptable values. A prerequisite without an answer
// fails the condition rather than raising; intake must never become
// unrecoverable because a prior answer is missing.
type answerCondition struct {
	QuestionID       string
	AcceptableValues []string
}

func (a *answerCondition) evaluate(src answerSource) bool {
	return answerMatches(src.answer(a.QuestionID), a.AcceptableValues)
}

func (a *answerCondition) questionIDs() []string {
	return []string{a.QuestionID}
}

// andCondition evaluates to true only when all its operands do.
type andCondition struct {
	Operands []condition
}

func (a *andCondition) evaluate(src answerSource) bool {
	for _, operand := range a.Operands {
		if !operand.evaluate(src) {
			return false
		}
	}
	return true
}

func (a *andCondition) questionIDs() []string {
	var ids []string
	for _, operand := range a.Operands {
		ids = append(ids, operand.questionIDs()...)
	}
	return ids
}

// orCondition evaluates to true when any of its operands does.
type orCondition struct {
	Operands []condition
}

func (o *orCondition) evaluate(src answerSource) bool {
	for _, operand := range o.Operands {
		if operand.evaluate(src) {
			return true
		}
	}
	return false
}

func (o *orCondition) questionIDs() []string {
	var ids []string
	for _, operand := range o.Operands {
		ids = append(ids, operand.questionIDs()...)
	}
	return ids
}

// newCondition builds the condition for a {question id -> acceptable
// values} predicate map: one membership check per entry, combined with
// AND semantics. A nil or empty map yields a nil condition (always
// satisfied).
func newCondition(predicates map[string][]string) condition {
	if len(predicates) == 0 {
		return nil
	}
	operands := make([]condition, 0, len(predicates))
	for _, qid := range sortedKeys(predicates) {
		operands = append(operands, &answerCondition{
			QuestionID:       qid,
			AcceptableValues: predicates[qid],
		})
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &andCondition{Operands: operands}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
