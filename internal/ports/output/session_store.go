package output

import "talentscout/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for keeping interview sessions between
// requests. Implementations must be safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves a session by id.
	// Returns nil without error when the session does not exist or has expired.
	// Implementations refresh LastAccessTime for valid sessions.
	GetSession(sessionID string) (*domain.InterviewSession, error)

	// UpdateSession creates or overwrites a session.
	UpdateSession(session *domain.InterviewSession) error

	// DeleteSession removes a session. Deleting a missing session is not an error.
	DeleteSession(sessionID string) error
}
