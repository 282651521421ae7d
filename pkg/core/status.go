package core

// ScenarioStatus represents the execution status of a scenario
type ScenarioStatus int

const (
	StatusPending ScenarioStatus = iota // Not yet started
	StatusRunning                       // Currently executing
	StatusPassed                        // Completed successfully
	StatusFailed                        // Assertion failed (expected behavior didn't occur)
	StatusErrored                       // Unexpected error (infrastructure, timeout, crash)
	StatusSkipped                       // Filtered out by tags or previous setup failure
)

// String returns the string representation of ScenarioStatus
func (s ScenarioStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the status is a final state
func (s ScenarioStatus) IsTerminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusErrored, StatusSkipped:
		return true
	default:
		return false
	}
}

// IsSuccess returns true if the status indicates success
func (s ScenarioStatus) IsSuccess() bool {
	return s == StatusPassed
}

// ErrorCategory classifies the type of error for reporting
type ErrorCategory int

const (
	ErrCategoryNone       ErrorCategory = iota // No error
	ErrCategoryAssertion                       // Scenario expectation violated
	ErrCategoryTimeout                         // Wait budget exhausted
	ErrCategoryNotFound                        // Element absent from the UI tree
	ErrCategoryConnection                      // Driver/server connection lost
	ErrCategoryExternal                        // External HTTP service errored or timed out
	ErrCategoryConfig                          // Invalid configuration, missing required field
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryAssertion:
		return "assertion"
	case ErrCategoryTimeout:
		return "timeout"
	case ErrCategoryNotFound:
		return "not_found"
	case ErrCategoryConnection:
		return "connection"
	case ErrCategoryExternal:
		return "external"
	case ErrCategoryConfig:
		return "config"
	default:
		return "unknown"
	}
}

// StatusFromError maps an execution error to a scenario status.
// Assertion and timeout failures are expected test outcomes; anything
// else is an infrastructure error.
func StatusFromError(err error) ScenarioStatus {
	if err == nil {
		return StatusPassed
	}
	switch CategoryOf(err) {
	case ErrCategoryAssertion, ErrCategoryTimeout, ErrCategoryNotFound:
		return StatusFailed
	default:
		return StatusErrored
	}
}
