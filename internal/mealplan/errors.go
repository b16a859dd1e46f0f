package mealplan

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid meal plan request")

	// ErrDataUnavailable wraps failures of the nutrition history store.
	ErrDataUnavailable = errors.New("nutrition history unavailable")
)

// ValidationError reports a rejected caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validateCalories(targetCalories, currentCalories int) error {
	if targetCalories <= 0 {
		return &ValidationError{Field: "target_calories", Message: "must be greater than 0"}
	}
	if currentCalories < 0 {
		return &ValidationError{Field: "current_calories", Message: "cannot be negative"}
	}
	return nil
}
