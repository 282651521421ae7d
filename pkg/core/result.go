package core

import (
	"time"
)

// ScenarioResult captures the complete outcome of executing a single scenario
type ScenarioResult struct {
	// Identity
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`

	// Status
	Status   ScenarioStatus `json:"status"`
	Category ErrorCategory  `json:"errorCategory,omitempty"`

	// Timing
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	// Output
	Message string `json:"message,omitempty"` // Human-readable explanation
	Error   string `json:"error,omitempty"`   // Technical error message

	// Debug artifacts (failure screenshots, hierarchy dumps)
	Artifacts []Artifact `json:"artifacts,omitempty"`
}

// SuiteResult captures the complete outcome of a run
type SuiteResult struct {
	// Identity
	RunID string `json:"runId"`

	// Target info
	Platform string `json:"platform,omitempty"`
	DeviceID string `json:"deviceId,omitempty"`
	AppID    string `json:"appId,omitempty"`

	// Timing
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	// Results
	Scenarios []ScenarioResult `json:"scenarios"`

	// Summary (computed)
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
	Skipped int `json:"skipped"`
}

// ComputeSummary calculates scenario counts from the Scenarios slice
func (s *SuiteResult) ComputeSummary() {
	s.Total = len(s.Scenarios)
	s.Passed = 0
	s.Failed = 0
	s.Errored = 0
	s.Skipped = 0

	for _, sc := range s.Scenarios {
		switch sc.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusErrored:
			s.Errored++
		case StatusSkipped:
			s.Skipped++
		}
	}
}

// AggregateStatus determines the run status from scenario results.
// Any failed or errored scenario fails the run.
func (s *SuiteResult) AggregateStatus() ScenarioStatus {
	for _, sc := range s.Scenarios {
		if sc.Status == StatusFailed || sc.Status == StatusErrored {
			return StatusFailed
		}
	}
	return StatusPassed
}
