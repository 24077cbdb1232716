package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures
type (
	// DetailsRequest struct - personal details form submission
	DetailsRequest struct {
		SessionID string
		Profile   CandidateProfile
	}

	// TechStackRequest struct - tech stack form submission
	TechStackRequest struct {
		SessionID string
		TechStack []TechID
	}

	// AnswerRequest struct - free-text answer to the current question
	AnswerRequest struct {
		SessionID string
		Answer    string
	}

	// SessionView struct - everything a client needs to render the current stage
	SessionView struct {
		ID              string            `json:"id"`
		Stage           Stage             `json:"stage"`
		Intro           []string          `json:"intro,omitempty"`
		Profile         *CandidateProfile `json:"profile,omitempty"`
		TechStack       []TechID          `json:"tech_stack,omitempty"`
		QuestionNumber  int               `json:"question_number,omitempty"`
		TotalQuestions  int               `json:"total_questions"`
		CurrentQuestion string            `json:"current_question,omitempty"`
		AnswerPrompt    string            `json:"answer_prompt,omitempty"`
		Transcript      []TranscriptEntry `json:"transcript"`
		Rendered        []string          `json:"rendered"`
	}
)

// NewSessionView builds the view of s for its current stage
func NewSessionView(s *InterviewSession) SessionView {
	view := SessionView{
		ID:             s.ID,
		Stage:          s.Stage,
		Profile:        s.Profile,
		TechStack:      s.TechStack,
		TotalQuestions: len(s.Questions),
		Transcript:     s.Transcript,
		Rendered:       RenderTranscript(s.Transcript),
	}
	if view.Transcript == nil {
		view.Transcript = []TranscriptEntry{}
	}

	switch s.Stage {
	case StagePersonalDetails:
		view.Intro = []string{MsgWelcome}
	case StageTechStack:
		view.Intro = []string{MsgDetailsSubmitted, MsgChooseStack}
	case StageInterview:
		if q, ok := s.CurrentQuestion(); ok {
			view.QuestionNumber = s.Cursor + 1
			view.CurrentQuestion = q
			view.AnswerPrompt = AnswerPrompt(view.QuestionNumber, view.TotalQuestions)
		}
	case StageInterviewComplete:
		view.Intro = []string{MsgInterviewDone}
	}
	return view
}
