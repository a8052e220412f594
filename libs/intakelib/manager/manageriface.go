package manager

import "github.com/venahealth/backend/libs/intakelib/risk"

// IntakeManager walks a patient through a questionnaire template. It is
// responsible for:
// - Accepting and validating answers to questions.
// - Deciding which questions are currently displayed, honoring
//   conditional display predicates and skip rules.
// - Skip aware forward and backward navigation through the template's
//   sections, and routing to photo capture or review once the questions
//   are exhausted.
// - Tracking per section completion status for the overview screen.
// - Handing each accepted answer to the client for best effort draft
//   persistence.
//
// An IntakeManager instance is owned by exactly one screen and is not
// shared; all its work happens on the calling goroutine except draft
// persistence.
type IntakeManager interface {

	// Init initializes the manager with a validated template and the
	// client implementation to hand draft answers to.
	Init(t *Template, cli Client) error

	// CurrentStep returns the step the intake is currently on.
	CurrentStep() *Step

	// Next advances to the next displayable step. It returns an error,
	// without moving, when the current question is required and not yet
	// acceptably answered; the client surfaces that as inline UI state.
	// After the final question section it returns the photo capture step
	// when the template declares photo requirements, and the review step
	// otherwise. From the review step it returns nil.
	Next() (*Step, error)

	// Back moves to the previous displayable step, mirroring the skip
	// aware traversal of Next. It never lands on a hidden or skipped
	// question. At the first step it returns nil.
	Back() (*Step, error)

	// SetAnswerForQuestion validates and records an answer. Recorded
	// answers are handed to the client for draft persistence on a
	// separate goroutine; persistence failures never surface here.
	SetAnswerForQuestion(questionID string, ans Answer) error

	// Answer returns the captured answer for a question, or nil.
	Answer(questionID string) Answer

	// AnswerSnapshot returns a copy of the current answer set, for
	// submission together with the derived metrics.
	AnswerSnapshot() AnswerSet

	// ValidateRequirements returns the ids of every required question
	// that is currently displayable but not acceptably answered. An
	// empty result means the intake is submittable. Skipped and hidden
	// questions are never reported, even when stale answers exist.
	ValidateRequirements() []string

	// Status recomputes and returns the per section completion status.
	Status() *IntakeStatus

	// DerivedMetrics computes the risk metrics bundle from the current
	// answers, or nil when the template does not declare a metrics spec.
	DerivedMetrics() *risk.Metrics
}

// Client is implemented by the embedding screen. PersistAnswerForQuestion
// is called on its own goroutine after every accepted answer; it is best
// effort and its failure is logged and counted but never blocks or
// reverses navigation.
type Client interface {
	PersistAnswerForQuestion(questionID string, ans Answer) error
}

// StepType discriminates the kinds of steps an intake walks through.
type StepType string

const (
	StepQuestion StepType = "question"
	StepPhoto    StepType = "photo"
	StepReview   StepType = "review"
)

// Step is one stop in the intake flow: a question to display, the photo
// capture flow, or the final review.
type Step struct {
	Type     StepType
	Question *Question
	Section  *Section

	// Photos carries the template's photo requirements on the photo step.
	Photos []*PhotoRequirement
}

// New returns an IntakeManager for a single intake session. Use
// NewWithMetrics to report counters to a registry.
func New() IntakeManager {
	return NewWithMetrics(nil)
}
