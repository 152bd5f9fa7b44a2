package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/sat-results-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")

	// Attempt specific errors
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptNotCompleted = errors.New("attempt is not completed")

	// Scoring specific errors
	ErrDataIntegrity = errors.New("attempt data is inconsistent")
	ErrMixedAttempts = errors.New("answers belong to more than one attempt")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func validationFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func dataIntegrity(err error) error {
	return fmt.Errorf("%w: %w", ErrDataIntegrity, err)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAttemptNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrMixedAttempts) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsDataIntegrity checks if stored data could not be turned into a report
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}

// IsConflict checks if the attempt is in a state that does not allow the operation
func IsConflict(err error) bool {
	return errors.Is(err, ErrAttemptNotCompleted)
}
