package manager

// answerSetSource adapts a plain AnswerSet to the answerSource interface
// used by condition evaluation.
type answerSetSource AnswerSet

func (s answerSetSource) answer(questionID string) Answer {
	return AnswerSet(s)[questionID]
}

// IsQuestionVisible reports whether the question is currently displayed
// given the answers captured so far. A question without a conditional
// predicate is always visible. Predicates referencing unanswered
// questions are treated as not satisfied, which for display means the
// question stays hidden until its prerequisite is answered acceptably.
func IsQuestionVisible(q *Question, answers AnswerSet) bool {
	cond := q.condition()
	if cond == nil {
		return true
	}
	return cond.evaluate(answerSetSource(answers))
}

// IsQuestionSkipped reports whether any skip rule targeting the question
// currently fires. A skipped question is excluded from display and from
// required answer validation, even when it would otherwise be visible and
// even when a stale answer for it is still present.
func IsQuestionSkipped(questionID string, rules []*SkipRule, answers AnswerSet) bool {
	for _, r := range rules {
		if r.SkipQuestionID != questionID {
			continue
		}
		cond := r.condition()
		if cond != nil && cond.evaluate(answerSetSource(answers)) {
			return true
		}
	}
	return false
}
