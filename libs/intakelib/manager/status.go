package manager

// SectionStatus is the completion state of a single section, used by the
// overview screen to show progress and to resume the intake in the right
// place.
type SectionStatus struct {
	SectionID string
	Title     string
	Complete  bool

	// ResumeQuestionID is the question to land on when the user enters
	// the section: its first displayable unanswered question, or its
	// first displayable question when the section is complete. Empty when
	// the section currently displays no questions at all.
	ResumeQuestionID string
}

// IntakeStatus is the completion state of the whole intake, section by
// section in presentation order.
type IntakeStatus struct {
	Sections []*SectionStatus

	// Complete is true once every required displayable question in every
	// section has an acceptable answer.
	Complete bool

	// ResumeSectionIndex is the first incomplete section, or
	// len(Sections) when the intake is complete.
	ResumeSectionIndex int
}

func (s *intakeSession) Status() *IntakeStatus {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()

	status := &IntakeStatus{
		Sections:           make([]*SectionStatus, len(s.template.Sections)),
		Complete:           true,
		ResumeSectionIndex: len(s.template.Sections),
	}

	for i, sec := range s.template.Sections {
		ss := &SectionStatus{
			SectionID: sec.ID,
			Title:     sec.Title,
			Complete:  true,
		}

		for _, q := range sec.Questions {
			if !s.displayable(q) {
				continue
			}
			if ans := s.answers[q.ID]; ans == nil || ans.isEmpty() {
				if q.Required {
					ss.Complete = false
				}
				if ss.ResumeQuestionID == "" {
					ss.ResumeQuestionID = q.ID
				}
			}
		}
		// a complete (or empty) section resumes at its first displayable question
		if ss.ResumeQuestionID == "" {
			for _, q := range sec.Questions {
				if s.displayable(q) {
					ss.ResumeQuestionID = q.ID
					break
				}
			}
		}

		if !ss.Complete && status.ResumeSectionIndex == len(s.template.Sections) {
			status.ResumeSectionIndex = i
			status.Complete = false
		}
		status.Sections[i] = ss
	}

	return status
}
