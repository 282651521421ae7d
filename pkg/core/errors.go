package core

import (
	"fmt"
)

// SuiteError represents a structured error with category and details
type SuiteError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: wait_timeout, element_not_found, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context (locator, elapsed time, ...)
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *SuiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *SuiteError) Unwrap() error {
	return e.Cause
}

// Is matches another SuiteError by code, so sentinel comparisons keep
// working on WithDetails/WithCause copies.
func (e *SuiteError) Is(target error) bool {
	t, ok := target.(*SuiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *SuiteError) WithCause(cause error) *SuiteError {
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *SuiteError) WithMessage(msg string) *SuiteError {
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *SuiteError) WithDetails(details map[string]interface{}) *SuiteError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &SuiteError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Timeout errors (the dominant failure kind in UI automation)
	ErrWaitTimeout = &SuiteError{
		Category: ErrCategoryTimeout,
		Code:     "wait_timeout",
		Message:  "wait condition timed out",
	}

	// Not-found: element absent from the tree on a single-shot lookup,
	// distinct from "present but not yet visible"
	ErrElementNotFound = &SuiteError{
		Category: ErrCategoryNotFound,
		Code:     "element_not_found",
		Message:  "element not found",
	}

	// Assertion errors
	ErrAssertionFailed = &SuiteError{
		Category: ErrCategoryAssertion,
		Code:     "assertion_failed",
		Message:  "scenario expectation violated",
	}
	ErrTextMismatch = &SuiteError{
		Category: ErrCategoryAssertion,
		Code:     "text_mismatch",
		Message:  "text does not match expected value",
	}

	// Connection errors
	ErrServerUnreachable = &SuiteError{
		Category: ErrCategoryConnection,
		Code:     "server_unreachable",
		Message:  "could not connect to automation server",
	}
	ErrNoSession = &SuiteError{
		Category: ErrCategoryConnection,
		Code:     "no_session",
		Message:  "no active automation session",
	}

	// External service errors (API checks)
	ErrExternalService = &SuiteError{
		Category: ErrCategoryExternal,
		Code:     "external_service",
		Message:  "external service call failed",
	}

	// Config errors
	ErrInvalidConfig = &SuiteError{
		Category: ErrCategoryConfig,
		Code:     "invalid_config",
		Message:  "invalid configuration",
	}
	ErrMissingRequired = &SuiteError{
		Category: ErrCategoryConfig,
		Code:     "missing_required",
		Message:  "missing required field",
	}
)

// NewSuiteError creates a new SuiteError with the given parameters
func NewSuiteError(category ErrorCategory, code, message string) *SuiteError {
	return &SuiteError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// CategoryOf returns the error category of err, walking the cause chain.
// Plain errors classify as connection failures (transport-level).
func CategoryOf(err error) ErrorCategory {
	for err != nil {
		if se, ok := err.(*SuiteError); ok {
			return se.Category
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCategoryConnection
}
