package domain

import (
	"strings"
	"time"
)

// Stage is the phase an interview session is in
type Stage string

const (
	StagePersonalDetails   Stage = "personal_details"
	StageTechStack         Stage = "tech_stack"
	StageInterview         Stage = "interview"
	StageInterviewComplete Stage = "interview_complete"
)

// ExitKeywords end the interview early when sent as an answer
var ExitKeywords = []string{"exit", "quit", "end", "stop"}

// IsExitKeyword matches answer against ExitKeywords, ignoring case and surrounding whitespace
func IsExitKeyword(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	for _, k := range ExitKeywords {
		if a == k {
			return true
		}
	}
	return false
}

// InterviewSession holds the state of one candidate's walk through the forms.
// Every exported method is one (stage, event) handler: it either applies the
// whole transition or returns an error and leaves the session untouched.
type InterviewSession struct {
	ID         string            `json:"id"`
	Stage      Stage             `json:"stage"`
	Profile    *CandidateProfile `json:"profile,omitempty"`
	TechStack  []TechID          `json:"tech_stack,omitempty"`
	Questions  []string          `json:"questions,omitempty"`
	Cursor     int               `json:"cursor"`
	Transcript []TranscriptEntry `json:"transcript"`

	// Greeted and Closed make the greeting and closing messages one-shot
	Greeted bool `json:"greeted"`
	Closed  bool `json:"closed"`

	LastAccessTime time.Time `json:"last_access_time"`
}

// NewInterviewSession creates a session waiting for personal details
func NewInterviewSession(id string) *InterviewSession {
	return &InterviewSession{
		ID:             id,
		Stage:          StagePersonalDetails,
		Transcript:     make([]TranscriptEntry, 0),
		LastAccessTime: time.Now(),
	}
}

// IsExpired reports whether the session has been idle longer than timeout
func (s *InterviewSession) IsExpired(timeout time.Duration) bool {
	return time.Since(s.LastAccessTime) > timeout
}

// SubmitDetails validates the personal details form, hands the profile to
// persist and moves on to the tech stack form. A persist error aborts the
// transition.
func (s *InterviewSession) SubmitDetails(profile CandidateProfile, rules ProfileRules, persist func(CandidateProfile) error) error {
	if s.Stage != StagePersonalDetails {
		return invalidTransition(s.Stage, "submit personal details")
	}

	profile = profile.Normalize()
	if missing := profile.MissingFields(rules); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if persist != nil {
		if err := persist(profile); err != nil {
			return err
		}
	}

	s.Profile = &profile
	s.Stage = StageTechStack
	return nil
}

// SubmitTechStack records the selection, draws the question set through pick
// and starts the interview with the greeting and the first question.
func (s *InterviewSession) SubmitTechStack(stack []TechID, pick func([]TechID) []string) error {
	if s.Stage != StageTechStack {
		return invalidTransition(s.Stage, "submit tech stack")
	}

	stack = UniqueTechIDs(stack)
	if len(stack) == 0 {
		return ErrEmptyTechStack
	}

	questions := []string{}
	if pick != nil {
		questions = pick(stack)
	}

	s.TechStack = stack
	s.Questions = questions
	s.Cursor = 0
	s.Stage = StageInterview

	if !s.Greeted {
		name := ""
		if s.Profile != nil {
			name = s.Profile.FullName
		}
		s.appendAI(GreetingMessage(name, stack))
		s.Greeted = true
	}
	s.presentOrClose()
	return nil
}

// SubmitAnswer records the candidate's answer to the current question. An exit
// keyword ends the interview at once; otherwise the next question is asked, or
// the interview completes when none is left.
func (s *InterviewSession) SubmitAnswer(answer string) error {
	if s.Stage != StageInterview {
		return invalidTransition(s.Stage, "answer")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ErrBlankAnswer
	}

	s.appendUser(answer)
	if IsExitKeyword(answer) {
		s.close(MsgFarewell)
		return nil
	}

	s.Cursor++
	s.presentOrClose()
	return nil
}

// Reset clears everything but the session id and starts over at personal details
func (s *InterviewSession) Reset() error {
	if s.Stage != StageInterviewComplete {
		return invalidTransition(s.Stage, "reset")
	}

	*s = InterviewSession{
		ID:             s.ID,
		Stage:          StagePersonalDetails,
		Transcript:     make([]TranscriptEntry, 0),
		LastAccessTime: s.LastAccessTime,
	}
	return nil
}

// CurrentQuestion returns the question awaiting an answer
func (s *InterviewSession) CurrentQuestion() (string, bool) {
	if s.Stage != StageInterview || s.Cursor >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.Cursor], true
}

// presentOrClose asks the question under the cursor, or completes the interview
func (s *InterviewSession) presentOrClose() {
	if q, ok := s.CurrentQuestion(); ok {
		s.appendAI(q)
		return
	}
	s.close(MsgCompletion)
}

func (s *InterviewSession) close(msg string) {
	if !s.Closed {
		s.appendAI(msg)
		s.Closed = true
	}
	s.Stage = StageInterviewComplete
}

func (s *InterviewSession) appendAI(msg string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Speaker: SpeakerAI, Message: msg})
}

func (s *InterviewSession) appendUser(msg string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Speaker: SpeakerUser, Message: msg})
}

// Clone returns a deep copy of the session
func (s *InterviewSession) Clone() *InterviewSession {
	c := *s
	if s.Profile != nil {
		p := *s.Profile
		c.Profile = &p
	}
	c.TechStack = append([]TechID(nil), s.TechStack...)
	c.Questions = append([]string(nil), s.Questions...)
	c.Transcript = append(make([]TranscriptEntry, 0, len(s.Transcript)), s.Transcript...)
	return &c
}
