package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionNotFound indicates the session id is unknown or the session expired
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrInvalidTransition indicates an action that the current stage does not accept
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrEmptyTechStack indicates the tech stack form was submitted with nothing selected
	ErrEmptyTechStack = errors.New(MsgSelectTechnology)

	// ErrBlankAnswer indicates an interview answer that was empty after trimming
	ErrBlankAnswer = errors.New(MsgFallback)
)

// ValidationError lists the personal details fields that were left empty
type ValidationError struct {
	Fields []string
}

// Error renders the message shown above the form
func (e *ValidationError) Error() string {
	if len(e.Fields) >= len(ProfileFieldLabels) {
		return MsgFillAllDetails
	}
	return "Please fill in the following fields: " + strings.Join(e.Fields, ", ")
}

func invalidTransition(stage Stage, action string) error {
	return fmt.Errorf("%w: cannot %s during %s", ErrInvalidTransition, action, stage)
}
