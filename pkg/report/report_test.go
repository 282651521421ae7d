package report

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/devicelab-dev/appqa/pkg/core"
)

func sampleSuite() *core.SuiteResult {
	suite := &core.SuiteResult{
		RunID:     "run-123",
		Platform:  "android",
		DeviceID:  "emulator-5554",
		StartTime: time.Now(),
		Duration:  3 * time.Second,
		Scenarios: []core.ScenarioResult{
			{
				Name:     "login with valid credentials",
				Status:   core.StatusPassed,
				Duration: 1200 * time.Millisecond,
			},
			{
				Name:     "short password shows validation error",
				Status:   core.StatusFailed,
				Category: core.ErrCategoryAssertion,
				Error:    "password validation error not displayed",
				Duration: 1800 * time.Millisecond,
				Artifacts: []core.Artifact{{
					Name:        core.ArtifactScreenshot,
					ContentType: core.ContentTypePNG,
					Path:        "FAILURE_short_password_20240315_103045.png",
				}},
			},
		},
	}
	suite.ComputeSummary()
	return suite
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSON(dir, sampleSuite())
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded core.SuiteResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.RunID != "run-123" {
		t.Errorf("RunID = %q", decoded.RunID)
	}
	if decoded.Total != 2 || decoded.Failed != 1 {
		t.Errorf("summary = %d total, %d failed", decoded.Total, decoded.Failed)
	}
}

func TestWriteConsole(t *testing.T) {
	var buf strings.Builder
	WriteConsole(&buf, sampleSuite())
	out := buf.String()

	for _, want := range []string{
		"run-123",
		"PASS",
		"FAIL",
		"password validation error not displayed",
		"FAILURE_short_password",
		"2 scenarios: 1 passed, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestExitCode(t *testing.T) {
	suite := sampleSuite()
	if got := ExitCode(suite); got != 1 {
		t.Errorf("ExitCode with failures = %d, want 1", got)
	}

	suite.Failed = 0
	if got := ExitCode(suite); got != 0 {
		t.Errorf("ExitCode all passed = %d, want 0", got)
	}

	suite.Errored = 1
	if got := ExitCode(suite); got != 2 {
		t.Errorf("ExitCode with errors = %d, want 2", got)
	}
}
