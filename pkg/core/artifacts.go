// Package core provides the outcome model shared by the UI scenario
// runner and the API check suite.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Artifact represents a debug file captured during scenario execution
type Artifact struct {
	Name        string `json:"name"`        // Descriptive name: screenshot, hierarchy
	ContentType string `json:"contentType"` // MIME type: image/png, text/plain
	Path        string `json:"path"`        // File path relative to output directory
}

// Common artifact names
const (
	ArtifactScreenshot = "screenshot"
	ArtifactHierarchy  = "hierarchy"
)

// Common content types
const (
	ContentTypePNG  = "image/png"
	ContentTypeXML  = "text/xml"
	ContentTypeJSON = "application/json"
)

// screenshotTimeFormat matches the suite's historical artifact naming.
const screenshotTimeFormat = "20060102_150405"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FailureScreenshotName returns the artifact filename for a failed
// scenario: FAILURE_<scenario>_<timestamp>.png
func FailureScreenshotName(scenario string, t time.Time) string {
	safe := unsafeNameChars.ReplaceAllString(scenario, "_")
	return fmt.Sprintf("FAILURE_%s_%s.png", safe, t.Format(screenshotTimeFormat))
}

// WriteArtifact saves data under dir, creating the directory if needed,
// and returns the artifact record. The returned Path is relative to
// dir so reports stay portable across machines.
func WriteArtifact(dir, name, contentType string, data []byte) (Artifact, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create artifact dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return Artifact{}, fmt.Errorf("write artifact: %w", err)
	}

	kind := ArtifactScreenshot
	if contentType == ContentTypeXML {
		kind = ArtifactHierarchy
	}
	return Artifact{
		Name:        kind,
		ContentType: contentType,
		Path:        name,
	}, nil
}

// ArtifactPolicy controls when failure artifacts are captured
type ArtifactPolicy struct {
	CaptureOnFailure bool `yaml:"captureOnFailure" json:"captureOnFailure"` // Default: true
	CaptureOnSuccess bool `yaml:"captureOnSuccess" json:"captureOnSuccess"` // Default: false
}

// DefaultArtifactPolicy returns the default capture policy
func DefaultArtifactPolicy() ArtifactPolicy {
	return ArtifactPolicy{
		CaptureOnFailure: true,
		CaptureOnSuccess: false,
	}
}

// ShouldCapture returns true if artifacts should be captured for the status
func (p ArtifactPolicy) ShouldCapture(status ScenarioStatus) bool {
	switch status {
	case StatusFailed, StatusErrored:
		return p.CaptureOnFailure
	case StatusPassed:
		return p.CaptureOnSuccess
	default:
		return false
	}
}
