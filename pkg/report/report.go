// Package report renders suite results for machines and humans.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// FileName is the JSON report written into the output directory.
const FileName = "report.json"

// WriteJSON persists the suite result as JSON under dir.
func WriteJSON(dir string, suite *core.SuiteResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data, err := json.MarshalIndent(suite, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}

// WriteConsole prints a human-readable run summary.
func WriteConsole(w io.Writer, suite *core.SuiteResult) {
	fmt.Fprintf(w, "\nRun %s", suite.RunID)
	if suite.Platform != "" {
		fmt.Fprintf(w, " (%s", suite.Platform)
		if suite.DeviceID != "" {
			fmt.Fprintf(w, ", %s", suite.DeviceID)
		}
		fmt.Fprint(w, ")")
	}
	fmt.Fprintln(w)

	for _, sc := range suite.Scenarios {
		marker := "PASS"
		switch sc.Status {
		case core.StatusFailed:
			marker = "FAIL"
		case core.StatusErrored:
			marker = "ERROR"
		case core.StatusSkipped:
			marker = "SKIP"
		}
		fmt.Fprintf(w, "  %-5s %-55s %8s", marker, sc.Name, sc.Duration.Round(time.Millisecond))
		if sc.Category != core.ErrCategoryNone {
			fmt.Fprintf(w, "  [%s]", sc.Category)
		}
		fmt.Fprintln(w)
		if sc.Error != "" {
			fmt.Fprintf(w, "        %s\n", sc.Error)
		}
		for _, artifact := range sc.Artifacts {
			fmt.Fprintf(w, "        artifact: %s\n", artifact.Path)
		}
	}

	verdict := "FAILED"
	if suite.AggregateStatus().IsSuccess() {
		verdict = "PASSED"
	}
	fmt.Fprintf(w, "\n%s  %d scenarios: %d passed, %d failed, %d errored, %d skipped (%s)\n",
		verdict, suite.Total, suite.Passed, suite.Failed, suite.Errored, suite.Skipped,
		suite.Duration.Round(time.Millisecond))
}

// ExitCode maps a suite outcome to a process exit code: 0 all green,
// 1 scenario failures, 2 infrastructure errors.
func ExitCode(suite *core.SuiteResult) int {
	if suite.Errored > 0 {
		return 2
	}
	if suite.Failed > 0 {
		return 1
	}
	return 0
}
