package memory

import (
	"sync"
	"time"

	"talentscout/internal/domain"
	"talentscout/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage
// Uses sync.Map for concurrent access to interview sessions keyed by session id.
// Stored sessions are never mutated in place: writes and access-time refreshes
// swap in a new copy, and callers always receive their own copy.
type MemorySessionStore struct {
	sessions sync.Map
	timeout  time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// timeout: idle duration after which sessions expire
func NewMemorySessionStore(timeout time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		timeout: timeout,
	}
}

// GetSession retrieves a copy of a session by id.
// Returns nil if the session does not exist or has expired. Expired sessions
// are deleted (lazy cleanup). LastAccessTime is refreshed for valid sessions.
func (m *MemorySessionStore) GetSession(sessionID string) (*domain.InterviewSession, error) {
	value, exists := m.sessions.Load(sessionID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.InterviewSession)
	if !ok {
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	if session.IsExpired(m.timeout) {
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	fresh := session.Clone()
	fresh.LastAccessTime = time.Now()
	// a concurrent UpdateSession wins over the refresh
	m.sessions.CompareAndSwap(sessionID, session, fresh)

	return fresh.Clone(), nil
}

// UpdateSession creates or updates a session.
// The session's LastAccessTime is updated to the current time and a copy is stored.
func (m *MemorySessionStore) UpdateSession(session *domain.InterviewSession) error {
	session.LastAccessTime = time.Now()
	m.sessions.Store(session.ID, session.Clone())
	return nil
}

// DeleteSession removes a session by id.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(sessionID string) error {
	m.sessions.Delete(sessionID)
	return nil
}
