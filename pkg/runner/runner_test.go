package runner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
	"github.com/devicelab-dev/appqa/pkg/config"
	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/mock"
)

func newTestRunner(t *testing.T) (*Runner, *mock.Server) {
	t.Helper()

	srv := mock.NewServer()
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.ServerURL = srv.URL()
	cfg.OutputDir = t.TempDir()
	cfg.WaitTimeout = 500 * time.Millisecond
	cfg.CheckTimeout = 200 * time.Millisecond

	return New(cfg), srv
}

func TestRunAllPassingScenario(t *testing.T) {
	r, srv := newTestRunner(t)
	srv.Add(appium.ByAccessibilityID("Home"), mock.Element{Visible: true, Enabled: true})
	srv.Add(appium.ByAccessibilityID("Login"), mock.Element{Visible: true, Enabled: true})

	suite := r.RunAll([]Scenario{{
		Name: "home screen visible",
		Tags: []string{"smoke"},
		Run: func(s *Session) error {
			if !s.Home.AppLaunched() {
				return core.ErrAssertionFailed.WithMessage("app did not launch")
			}
			return nil
		},
	}})

	if suite.Passed != 1 || suite.Total != 1 {
		t.Fatalf("summary = %d/%d passed, want 1/1", suite.Passed, suite.Total)
	}
	if suite.RunID == "" {
		t.Error("RunID should be set")
	}
	if srv.Deletes() != 1 {
		t.Errorf("Deletes() = %d, want 1 (session torn down)", srv.Deletes())
	}
}

func TestRunAllFailureCapturesScreenshot(t *testing.T) {
	r, srv := newTestRunner(t)

	suite := r.RunAll([]Scenario{{
		Name: "always fails",
		Run: func(s *Session) error {
			return core.ErrAssertionFailed.WithMessage("expected state missing")
		},
	}})

	if suite.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", suite.Failed)
	}
	result := suite.Scenarios[0]
	if result.Category != core.ErrCategoryAssertion {
		t.Errorf("Category = %v, want assertion", result.Category)
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("Artifacts = %d, want 1", len(result.Artifacts))
	}
	if !strings.HasPrefix(result.Artifacts[0].Path, "FAILURE_always_fails_") {
		t.Errorf("artifact path = %q", result.Artifacts[0].Path)
	}

	// Screenshot file must exist on disk.
	path := filepath.Join(r.cfg.OutputDir, result.Artifacts[0].Path)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}

	if srv.Deletes() != 1 {
		t.Errorf("Deletes() = %d, want 1 (teardown runs on failure)", srv.Deletes())
	}
}

func TestRunAllSuccessSkipsScreenshot(t *testing.T) {
	r, _ := newTestRunner(t)

	suite := r.RunAll([]Scenario{{
		Name: "no-op",
		Run:  func(s *Session) error { return nil },
	}})

	if len(suite.Scenarios[0].Artifacts) != 0 {
		t.Errorf("Artifacts = %d, want 0 on success", len(suite.Scenarios[0].Artifacts))
	}
}

func TestRunAllPlainErrorErrors(t *testing.T) {
	r, _ := newTestRunner(t)

	suite := r.RunAll([]Scenario{{
		Name: "infrastructure blows up",
		Run: func(s *Session) error {
			return errors.New("adb died")
		},
	}})

	if suite.Errored != 1 {
		t.Fatalf("Errored = %d, want 1", suite.Errored)
	}
	if suite.Scenarios[0].Status != core.StatusErrored {
		t.Errorf("Status = %v, want errored", suite.Scenarios[0].Status)
	}
}

func TestRunAllTagFilters(t *testing.T) {
	r, _ := newTestRunner(t)
	r.cfg.IncludeTags = []string{"smoke"}
	r.cfg.ExcludeTags = []string{"flaky"}

	ran := make(map[string]bool)
	record := func(name string) func(*Session) error {
		return func(*Session) error {
			ran[name] = true
			return nil
		}
	}

	suite := r.RunAll([]Scenario{
		{Name: "a", Tags: []string{"smoke"}, Run: record("a")},
		{Name: "b", Tags: []string{"regression"}, Run: record("b")},
		{Name: "c", Tags: []string{"smoke", "flaky"}, Run: record("c")},
	})

	if !ran["a"] || ran["b"] || ran["c"] {
		t.Errorf("ran = %v, want only a", ran)
	}
	if suite.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", suite.Skipped)
	}
	if suite.Scenarios[1].Status != core.StatusSkipped {
		t.Errorf("scenario b status = %v, want skipped", suite.Scenarios[1].Status)
	}
}

func TestRunAllSessionCreationFailure(t *testing.T) {
	cfg := config.Default()
	cfg.ServerURL = "http://127.0.0.1:1"
	cfg.OutputDir = t.TempDir()
	r := New(cfg)

	suite := r.RunAll([]Scenario{{
		Name: "never runs",
		Run: func(s *Session) error {
			t.Error("scenario body should not run without a session")
			return nil
		},
	}})

	if suite.Errored != 1 {
		t.Fatalf("Errored = %d, want 1", suite.Errored)
	}
	if suite.Scenarios[0].Category != core.ErrCategoryConnection {
		t.Errorf("Category = %v, want connection", suite.Scenarios[0].Category)
	}
}
