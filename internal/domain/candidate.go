package domain

import "strings"

// Labels shown to the candidate for each personal details field, in form order
const (
	LabelFullName        = "Full Name"
	LabelEmail           = "Email Address"
	LabelPhone           = "Phone Number"
	LabelExperience      = "Years of Experience"
	LabelDesiredPosition = "Desired Position(s)"
	LabelLocation        = "Current Location"
)

// ProfileFieldLabels lists every required field label in form order
var ProfileFieldLabels = []string{
	LabelFullName,
	LabelEmail,
	LabelPhone,
	LabelExperience,
	LabelDesiredPosition,
	LabelLocation,
}

// CandidateProfile is what the personal details form collects.
// It is persisted once, as submitted, and never edited afterwards.
type CandidateProfile struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Experience      int    `json:"experience"`
	DesiredPosition string `json:"desired_position"`
	Location        string `json:"location"`
}

// ProfileRules tunes the presence checks of MissingFields
type ProfileRules struct {
	// AllowZeroExperience accepts 0 years as a real answer instead of "not filled in"
	AllowZeroExperience bool
}

// Normalize returns a copy with surrounding whitespace trimmed from text fields
func (p CandidateProfile) Normalize() CandidateProfile {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.DesiredPosition = strings.TrimSpace(p.DesiredPosition)
	p.Location = strings.TrimSpace(p.Location)
	return p
}

// MissingFields returns the labels of every field that is not filled in, in form order
func (p CandidateProfile) MissingFields(rules ProfileRules) []string {
	var missing []string
	if strings.TrimSpace(p.FullName) == "" {
		missing = append(missing, LabelFullName)
	}
	if strings.TrimSpace(p.Email) == "" {
		missing = append(missing, LabelEmail)
	}
	if strings.TrimSpace(p.Phone) == "" {
		missing = append(missing, LabelPhone)
	}
	if p.Experience < 0 || (p.Experience == 0 && !rules.AllowZeroExperience) {
		missing = append(missing, LabelExperience)
	}
	if strings.TrimSpace(p.DesiredPosition) == "" {
		missing = append(missing, LabelDesiredPosition)
	}
	if strings.TrimSpace(p.Location) == "" {
		missing = append(missing, LabelLocation)
	}
	return missing
}
