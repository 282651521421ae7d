package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/devicelab-dev/appqa/pkg/config"
	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/logger"
)

// Runner executes scenarios sequentially, one fresh driver session
// each, and collects results into a suite summary.
type Runner struct {
	cfg    *config.Config
	policy core.ArtifactPolicy
}

// New creates a runner with the default artifact policy (screenshots
// on failure only).
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:    cfg,
		policy: core.DefaultArtifactPolicy(),
	}
}

// RunAll executes every selected scenario and returns the suite
// result. A scenario failure never stops the run.
func (r *Runner) RunAll(scenarios []Scenario) *core.SuiteResult {
	suite := &core.SuiteResult{
		RunID:     uuid.NewString(),
		Platform:  r.cfg.Platform,
		DeviceID:  r.cfg.DeviceName,
		AppID:     r.cfg.AppPackage,
		StartTime: time.Now(),
	}

	logger.Info("run %s: %d scenario(s) registered", suite.RunID, len(scenarios))

	for _, sc := range scenarios {
		if !selected(sc, r.cfg.IncludeTags, r.cfg.ExcludeTags) {
			logger.Debug("skip %s (tag filter)", sc.Name)
			suite.Scenarios = append(suite.Scenarios, core.ScenarioResult{
				Name:   sc.Name,
				Tags:   sc.Tags,
				Status: core.StatusSkipped,
			})
			continue
		}
		suite.Scenarios = append(suite.Scenarios, r.runOne(sc))
	}

	suite.Duration = time.Since(suite.StartTime)
	suite.ComputeSummary()

	logger.Info("run %s finished: %d passed, %d failed, %d errored, %d skipped",
		suite.RunID, suite.Passed, suite.Failed, suite.Errored, suite.Skipped)

	return suite
}

// runOne executes a single scenario with guaranteed session teardown.
func (r *Runner) runOne(sc Scenario) core.ScenarioResult {
	result := core.ScenarioResult{
		Name:      sc.Name,
		Tags:      sc.Tags,
		Status:    core.StatusRunning,
		StartTime: time.Now(),
	}

	logger.Info("scenario %s: starting", sc.Name)

	session, err := newSession(r.cfg)
	if err != nil {
		result.Duration = time.Since(result.StartTime)
		result.Status = core.StatusErrored
		result.Category = core.CategoryOf(err)
		result.Error = err.Error()
		result.Message = "session creation failed"
		logger.Error("scenario %s: %s: %v", sc.Name, result.Message, err)
		return result
	}

	defer func() {
		if err := session.close(); err != nil {
			logger.Warn("scenario %s: session teardown: %v", sc.Name, err)
		}
	}()

	runErr := sc.Run(session)
	result.Duration = time.Since(result.StartTime)
	result.Status = core.StatusFromError(runErr)

	if runErr != nil {
		result.Category = core.CategoryOf(runErr)
		result.Error = runErr.Error()
		result.Message = runErr.Error()
		logger.Error("scenario %s: %s after %v: %v",
			sc.Name, result.Status, result.Duration.Round(time.Millisecond), runErr)
	} else {
		logger.Info("scenario %s: passed in %v", sc.Name, result.Duration.Round(time.Millisecond))
	}

	if r.policy.ShouldCapture(result.Status) {
		if artifact, ok := r.captureScreenshot(session, sc.Name); ok {
			result.Artifacts = append(result.Artifacts, artifact)
		}
	}

	return result
}

// captureScreenshot saves a failure screenshot. Capture problems are
// logged and swallowed so they never change the scenario outcome.
func (r *Runner) captureScreenshot(session *Session, scenario string) (core.Artifact, bool) {
	data, err := session.Client.Screenshot()
	if err != nil {
		logger.Warn("scenario %s: screenshot capture failed: %v", scenario, err)
		return core.Artifact{}, false
	}

	name := core.FailureScreenshotName(scenario, time.Now())
	artifact, err := core.WriteArtifact(r.cfg.OutputDir, name, core.ContentTypePNG, data)
	if err != nil {
		logger.Warn("scenario %s: screenshot write failed: %v", scenario, err)
		return core.Artifact{}, false
	}

	logger.Info("scenario %s: screenshot saved to %s", scenario, artifact.Path)
	return artifact, true
}
