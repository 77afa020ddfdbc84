// Package errors provides custom error types for the figtrack system.
// These errors enable programmatic error checking across the run pipeline
// and keep the fatal/non-fatal distinction between ingestion and backfill
// failures explicit.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library equivalents so callers
// need only one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the figtrack system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a catalog entry with the same key already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrNoListings indicates that the ingestion source yielded no listings
	ErrNoListings = errors.New("no listings ingested")

	// ErrSkipped indicates that a run was skipped by the staleness gate
	ErrSkipped = errors.New("run skipped")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates that a remote source is temporarily unavailable
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// IngestionError represents a failure of the primary listing source.
// Ingestion failures are fatal: the run aborts with no catalog mutation.
type IngestionError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *IngestionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("ingestion failed for %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("ingestion failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IngestionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IngestionError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewIngestionError creates a new IngestionError
func NewIngestionError(source, message string, err error) *IngestionError {
	return &IngestionError{Source: source, Message: message, Err: err}
}

// BackfillError represents a failure of the authoritative backfill source.
// Backfill failures are non-fatal: the run degrades to partial success and
// keeps the matches and placeholders computed before the failure.
type BackfillError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *BackfillError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("backfill failed for %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("backfill failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *BackfillError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *BackfillError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewBackfillError creates a new BackfillError
func NewBackfillError(source, message string, err error) *BackfillError {
	return &BackfillError{Source: source, Message: message, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "html", "date"
	Input   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s parse error for %q: %s", e.Format, e.Input, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during catalog file I/O
type IOError struct {
	Operation string // "read", "write", "rename", "stat"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSkipped checks if an error indicates a skipped run
func IsSkipped(err error) bool {
	return errors.Is(err, ErrSkipped)
}

// IsIngestion checks if an error originated in the ingestion stage
func IsIngestion(err error) bool {
	var ie *IngestionError
	return errors.As(err, &ie)
}

// IsBackfill checks if an error originated in the backfill stage
func IsBackfill(err error) bool {
	var be *BackfillError
	return errors.As(err, &be)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, input string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Input: input, Message: err.Error(), Err: err}
}
