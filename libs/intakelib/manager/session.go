package manager

import (
	"sync"

	"github.com/samuel/go-metrics/metrics"
	"github.com/venahealth/backend/libs/conc"
	"github.com/venahealth/backend/libs/errors"
	"github.com/venahealth/backend/libs/golog"
	"github.com/venahealth/backend/libs/intakelib/risk"
)

// position tracks where in the flow the intake currently is. sectionIdx
// and questionIdx are only meaningful when step is StepQuestion.
type position struct {
	step        StepType
	sectionIdx  int
	questionIdx int
}

type intakeSession struct {
	cli      Client
	template *Template

	rwMutex sync.RWMutex
	answers AnswerSet
	pos     position

	statDraftSaveFailures *metrics.Counter
}

// NewWithMetrics returns an IntakeManager reporting counters to the
// provided registry. A nil registry is accepted.
func NewWithMetrics(statsRegistry metrics.Registry) IntakeManager {
	s := &intakeSession{
		statDraftSaveFailures: metrics.NewCounter(),
	}
	if statsRegistry != nil {
		statsRegistry.Add("draft_save/failed", s.statDraftSaveFailures)
	}
	return s
}

func (s *intakeSession) Init(t *Template, cli Client) error {
	if err := t.Validate(); err != nil {
		return errors.Trace(err)
	}

	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()

	s.template = t
	s.cli = cli
	s.answers = make(AnswerSet)
	if s.statDraftSaveFailures == nil {
		s.statDraftSaveFailures = metrics.NewCounter()
	}

	// Start on the first displayable question; a template with no
	// displayable questions routes straight to photos or review.
	if sec, _, si, qi := s.nextDisplayableFrom(0, 0); sec != nil {
		s.pos = position{step: StepQuestion, sectionIdx: si, questionIdx: qi}
	} else {
		s.pos = s.afterQuestionsPosition()
	}

	return nil
}

func (s *intakeSession) afterQuestionsPosition() position {
	if len(s.template.PhotoRequirements) > 0 {
		return position{step: StepPhoto}
	}
	return position{step: StepReview}
}

// displayable reports whether the question is currently shown: not
// excluded by a skip rule and with its display condition satisfied.
func (s *intakeSession) displayable(q *Question) bool {
	if IsQuestionSkipped(q.ID, s.template.SkipRules, s.answers) {
		return false
	}
	return IsQuestionVisible(q, s.answers)
}

// nextDisplayableFrom scans forward, starting at the provided position
// inclusive, for the next displayable question.
func (s *intakeSession) nextDisplayableFrom(sectionIdx, questionIdx int) (*Section, *Question, int, int) {
	for si := sectionIdx; si < len(s.template.Sections); si++ {
		sec := s.template.Sections[si]
		qi := 0
		if si == sectionIdx {
			qi = questionIdx
		}
		for ; qi < len(sec.Questions); qi++ {
			if s.displayable(sec.Questions[qi]) {
				return sec, sec.Questions[qi], si, qi
			}
		}
	}
	return nil, nil, 0, 0
}

// prevDisplayableFrom scans backward, starting at the provided position
// inclusive, for the closest earlier displayable question.
func (s *intakeSession) prevDisplayableFrom(sectionIdx, questionIdx int) (*Section, *Question, int, int) {
	for si := sectionIdx; si >= 0; si-- {
		sec := s.template.Sections[si]
		qi := len(sec.Questions) - 1
		if si == sectionIdx {
			qi = questionIdx
		}
		for ; qi >= 0; qi-- {
			if s.displayable(sec.Questions[qi]) {
				return sec, sec.Questions[qi], si, qi
			}
		}
	}
	return nil, nil, 0, 0
}

func (s *intakeSession) stepForPosition(pos position) *Step {
	switch pos.step {
	case StepQuestion:
		sec := s.template.Sections[pos.sectionIdx]
		return &Step{
			Type:     StepQuestion,
			Section:  sec,
			Question: sec.Questions[pos.questionIdx],
		}
	case StepPhoto:
		return &Step{Type: StepPhoto, Photos: s.template.PhotoRequirements}
	}
	return &Step{Type: StepReview}
}

func (s *intakeSession) CurrentStep() *Step {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return s.stepForPosition(s.pos)
}

func (s *intakeSession) Next() (*Step, error) {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()

	switch s.pos.step {
	case StepQuestion:
		q := s.template.Sections[s.pos.sectionIdx].Questions[s.pos.questionIdx]
		// only move forward once the current question's requirement is met
		if s.displayable(q) && q.Required {
			if ans := s.answers[q.ID]; ans == nil || ans.isEmpty() {
				return nil, errors.Trace(errQuestionRequirement)
			}
		}
		if sec, _, si, qi := s.nextDisplayableFrom(s.pos.sectionIdx, s.pos.questionIdx+1); sec != nil {
			s.pos = position{step: StepQuestion, sectionIdx: si, questionIdx: qi}
		} else {
			s.pos = s.afterQuestionsPosition()
		}
	case StepPhoto:
		s.pos = position{step: StepReview}
	case StepReview:
		return nil, nil
	}

	return s.stepForPosition(s.pos), nil
}

func (s *intakeSession) Back() (*Step, error) {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()

	switch s.pos.step {
	case StepReview:
		if len(s.template.PhotoRequirements) > 0 {
			s.pos = position{step: StepPhoto}
			return s.stepForPosition(s.pos), nil
		}
		fallthrough
	case StepPhoto:
		lastSi := len(s.template.Sections) - 1
		if lastSi >= 0 {
			lastQi := len(s.template.Sections[lastSi].Questions) - 1
			if sec, _, si, qi := s.prevDisplayableFrom(lastSi, lastQi); sec != nil {
				s.pos = position{step: StepQuestion, sectionIdx: si, questionIdx: qi}
				return s.stepForPosition(s.pos), nil
			}
		}
		return nil, nil
	}

	if sec, _, si, qi := s.prevDisplayableFrom(s.pos.sectionIdx, s.pos.questionIdx-1); sec != nil {
		s.pos = position{step: StepQuestion, sectionIdx: si, questionIdx: qi}
		return s.stepForPosition(s.pos), nil
	}
	return nil, nil
}

func (s *intakeSession) SetAnswerForQuestion(questionID string, ans Answer) error {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()

	q := s.template.Question(questionID)
	if q == nil {
		return errors.Errorf("question %s doesn't exist in template", questionID)
	}

	if err := q.validateAnswer(ans); err != nil {
		return errors.Trace(err)
	}

	// nothing to do if the answer hasn't changed
	if existing := s.answers[questionID]; existing != nil && ans != nil && existing.equals(ans) {
		return nil
	}

	if ans == nil {
		delete(s.answers, questionID)
	} else {
		s.answers[questionID] = ans
	}

	s.persistAnswer(questionID, ans)
	return nil
}

// persistAnswer hands the answer to the client off the calling goroutine.
// Draft persistence is best effort: failures are logged and counted, and
// never block or reverse navigation.
func (s *intakeSession) persistAnswer(questionID string, ans Answer) {
	cli := s.cli
	if cli == nil {
		return
	}
	conc.Go(func() {
		if err := cli.PersistAnswerForQuestion(questionID, ans); err != nil {
			s.statDraftSaveFailures.Inc(1)
			golog.Errorf("intake: failed to persist draft answer for question %s: %s", questionID, err)
		}
	})
}

func (s *intakeSession) Answer(questionID string) Answer {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return s.answers[questionID]
}

func (s *intakeSession) AnswerSnapshot() AnswerSet {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	return s.answers.Snapshot()
}

func (s *intakeSession) ValidateRequirements() []string {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()

	var missing []string
	for _, sec := range s.template.Sections {
		for _, q := range sec.Questions {
			if !q.Required || !s.displayable(q) {
				continue
			}
			if ans := s.answers[q.ID]; ans == nil || ans.isEmpty() {
				missing = append(missing, q.ID)
			}
		}
	}
	return missing
}

// answer implements answerSource for condition evaluation against the
// session's live answer set.
func (s *intakeSession) answer(questionID string) Answer {
	return s.answers[questionID]
}

func (s *intakeSession) DerivedMetrics() *risk.Metrics {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()

	spec := s.template.Metrics
	if spec == nil {
		return nil
	}

	in := risk.Inputs{
		HeightCm: s.numericAnswer(spec.HeightQuestionID),
		WeightKg: s.numericAnswer(spec.WeightQuestionID),
		WaistCm:  s.numericAnswer(spec.WaistQuestionID),
	}
	if a, ok := s.answers[spec.SexQuestionID].(*ChoiceAnswer); ok {
		in.Sex = risk.Sex(a.Selection)
	}
	if a, ok := s.answers[spec.ConditionsQuestionID].(*MultiChoiceAnswer); ok {
		in.Conditions = a.Selections
	}
	return risk.ComputeMetrics(in)
}

func (s *intakeSession) numericAnswer(questionID string) *float64 {
	if questionID == "" {
		return nil
	}
	if a, ok := s.answers[questionID].(*NumericAnswer); ok {
		v := a.Value
		return &v
	}
	return nil
}
