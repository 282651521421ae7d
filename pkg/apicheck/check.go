// Package apicheck runs HTTP checks against the backend API that the
// mobile app talks to.
package apicheck

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// Check describes a single HTTP request and the expectations on its
// response.
type Check struct {
	Name    string            `yaml:"name"`
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
	Tags    []string          `yaml:"tags,omitempty"`
	Expect  Expect            `yaml:"expect"`
}

// Expect holds the response expectations. Zero-valued fields are not
// checked.
type Expect struct {
	Status      int           `yaml:"status,omitempty"`
	MaxElapsed  time.Duration `yaml:"maxElapsed,omitempty"`
	ContentType string        `yaml:"contentType,omitempty"`

	// JSON maps JSONPath expressions ($.foo.bar) to expected values.
	JSON map[string]interface{} `yaml:"json,omitempty"`

	// Script is a JavaScript boolean expression evaluated against the
	// response (status, elapsedMs, headers, body, json globals).
	Script string `yaml:"script,omitempty"`
}

// Result is the outcome of running one check.
type Result struct {
	Check      string        `json:"check"`
	StatusCode int           `json:"statusCode"`
	Elapsed    time.Duration `json:"elapsed"`
	Passed     bool          `json:"passed"`
	Error      error         `json:"-"`
	Message    string        `json:"message,omitempty"`
}

type checkFile struct {
	Checks []Check `yaml:"checks"`
}

// LoadChecks reads checks from a YAML file.
func LoadChecks(path string) ([]Check, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided check file
	if err != nil {
		return nil, err
	}

	var file checkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, core.ErrInvalidConfig.WithCause(err)
	}

	for i := range file.Checks {
		if file.Checks[i].Name == "" {
			return nil, core.ErrMissingRequired.WithMessage("check name is required")
		}
		if file.Checks[i].Method == "" {
			file.Checks[i].Method = "GET"
		}
	}

	return file.Checks, nil
}
