package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrManifestNotFound indicates the compile commands manifest does not exist
	ErrManifestNotFound = errors.New("compile commands manifest not found")

	// ErrInvalidManifest indicates the manifest is not a valid JSON command database
	ErrInvalidManifest = errors.New("invalid compile commands manifest")

	// ErrOutputUncreatable indicates the output directory could not be created
	ErrOutputUncreatable = errors.New("output directory could not be created")

	// ErrProjectRootRequired indicates no project root was configured
	ErrProjectRootRequired = errors.New("project root is required")
)

// ExtractionError represents a per-record failure during overview extraction.
// It is the only recoverable error in the pipeline: the caller logs it and
// skips the record.
type ExtractionError struct {
	File string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(file string, err error) *ExtractionError {
	return &ExtractionError{
		File: file,
		Err:  err,
	}
}

// IsRecoverable reports whether processing may continue with the next
// record after this error.
func IsRecoverable(err error) bool {
	var extraction *ExtractionError
	return errors.As(err, &extraction)
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
