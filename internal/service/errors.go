package service

import (
	"errors"
	"strings"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// EntryValidationError carries every problem found with a submitted entry.
type EntryValidationError struct {
	Messages []string
}

func (e *EntryValidationError) Error() string {
	return "invalid entry: " + strings.Join(e.Messages, "; ")
}

func (e *EntryValidationError) Is(target error) bool {
	return target == ErrInvalidEntry
}

func validationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &EntryValidationError{Messages: messages}
}
