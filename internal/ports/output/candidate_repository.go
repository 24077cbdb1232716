package output

import "talentscout/internal/domain"

// CandidateRepository interface - Output port
// Append-only storage of submitted candidate profiles
type CandidateRepository interface {
	// Append stores one profile after the ones already stored.
	// It returns only once the record is durable.
	Append(profile domain.CandidateProfile) error

	// Ping reports whether the store can currently accept records
	Ping() error
}
