package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidContainer = errors.New("invalid container")
	ErrMissingField     = errors.New("missing required field")
	ErrDuplicateTaskID  = errors.New("duplicate task id across containers")
	ErrContainerCorrupt = errors.New("container file corrupt")
	ErrFieldNotEditable = errors.New("field cannot be updated")
	ErrSkillNotFound    = errors.New("SKILL.md not found")
)

// MissingFieldError reports which required field an add was missing.
func MissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

// IsValidation reports whether err belongs to the validation error class
// (as opposed to not-found or persistence failures).
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrInvalidContainer) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrFieldNotEditable)
}
