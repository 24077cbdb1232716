package input

import "talentscout/internal/domain"

// InterviewService interface - Input port (use case)
// Defines what a client can do with an interview session. Every method takes
// one user action and returns the resulting view of the session.
type InterviewService interface {
	// StartSession creates a fresh session waiting for personal details
	StartSession() (*domain.SessionView, error)

	// GetSession returns the current view without changing anything
	GetSession(sessionID string) (*domain.SessionView, error)

	// SubmitDetails handles the personal details form
	SubmitDetails(request domain.DetailsRequest) (*domain.SessionView, error)

	// SubmitTechStack handles the tech stack form
	SubmitTechStack(request domain.TechStackRequest) (*domain.SessionView, error)

	// SubmitAnswer handles one free-text answer during the interview
	SubmitAnswer(request domain.AnswerRequest) (*domain.SessionView, error)

	// Reset starts a completed session over
	Reset(sessionID string) (*domain.SessionView, error)

	// EndSession drops a session in any stage
	EndSession(sessionID string) error

	// Technologies lists the technologies a candidate can choose from
	Technologies() []domain.TechID
}
