package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSuiteError_Error(t *testing.T) {
	err := &SuiteError{
		Category: ErrCategoryAssertion,
		Code:     "test_error",
		Message:  "test message",
	}

	if got := err.Error(); got != "test message" {
		t.Errorf("Error() = %q, want %q", got, "test message")
	}
}

func TestSuiteError_ErrorWithCause(t *testing.T) {
	cause := errors.New("underlying error")
	err := &SuiteError{
		Category: ErrCategoryAssertion,
		Code:     "test_error",
		Message:  "test message",
		Cause:    cause,
	}

	got := err.Error()
	if !strings.Contains(got, "test message") {
		t.Errorf("Error() = %q, should contain 'test message'", got)
	}
	if !strings.Contains(got, "underlying error") {
		t.Errorf("Error() = %q, should contain 'underlying error'", got)
	}
}

func TestSuiteError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &SuiteError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestSuiteError_WithDetails(t *testing.T) {
	err := ErrWaitTimeout.WithDetails(map[string]interface{}{
		"locator": "accessibility id=input-email",
		"elapsed": "15s",
	})

	if err.Details["locator"] != "accessibility id=input-email" {
		t.Error("WithDetails() did not set locator detail")
	}
	if err.Code != ErrWaitTimeout.Code {
		t.Error("WithDetails() changed code")
	}
	if ErrWaitTimeout.Details != nil {
		t.Error("WithDetails() modified the sentinel error")
	}
}

func TestSuiteError_IsMatchesCopies(t *testing.T) {
	err := ErrWaitTimeout.
		WithDetails(map[string]interface{}{"elapsed": "5s"}).
		WithCause(errors.New("poll gave up"))

	if !errors.Is(err, ErrWaitTimeout) {
		t.Error("errors.Is should match a derived copy of ErrWaitTimeout")
	}
	if errors.Is(err, ErrElementNotFound) {
		t.Error("errors.Is should not match a different sentinel")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"timeout sentinel", ErrWaitTimeout, ErrCategoryTimeout},
		{"not found sentinel", ErrElementNotFound, ErrCategoryNotFound},
		{"assertion sentinel", ErrAssertionFailed, ErrCategoryAssertion},
		{"wrapped suite error", fmt.Errorf("step 3: %w", ErrWaitTimeout), ErrCategoryTimeout},
		{"plain error", errors.New("dial tcp: refused"), ErrCategoryConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.err); got != tt.want {
				t.Errorf("CategoryOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	if got := StatusFromError(nil); got != StatusPassed {
		t.Errorf("nil error should pass, got %v", got)
	}
	if got := StatusFromError(ErrWaitTimeout); got != StatusFailed {
		t.Errorf("timeout should fail, got %v", got)
	}
	if got := StatusFromError(ErrAssertionFailed); got != StatusFailed {
		t.Errorf("assertion should fail, got %v", got)
	}
	if got := StatusFromError(ErrServerUnreachable); got != StatusErrored {
		t.Errorf("connection error should error, got %v", got)
	}
}
