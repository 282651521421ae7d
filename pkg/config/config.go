// Package config handles workspace configuration for appqa.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Automation server
	ServerURL string `yaml:"serverUrl"` // Appium server URL

	// Device capabilities
	Platform        string `yaml:"platform"`        // android, ios
	PlatformVersion string `yaml:"platformVersion"` // e.g. "13"
	DeviceName      string `yaml:"deviceName"`      // device identifier
	AutomationName  string `yaml:"automationName"`  // e.g. UiAutomator2

	// Application under test
	AppPath     string `yaml:"appPath"`     // app binary (.apk/.ipa)
	AppPackage  string `yaml:"appPackage"`  // Android package
	AppActivity string `yaml:"appActivity"` // Android launch activity

	// Session behavior
	NoReset           bool `yaml:"noReset"`
	FullReset         bool `yaml:"fullReset"`
	NewCommandTimeout int  `yaml:"newCommandTimeout"` // seconds

	// Wait budgets
	WaitTimeout  time.Duration `yaml:"waitTimeout"`  // hard waits
	CheckTimeout time.Duration `yaml:"checkTimeout"` // soft checks

	// Output
	OutputDir string `yaml:"outputDir"` // report + screenshots

	// Scenario selection
	IncludeTags []string `yaml:"includeTags"`
	ExcludeTags []string `yaml:"excludeTags"`

	// API checks
	APIBaseURL string `yaml:"apiBaseUrl"` // echo service base URL
	APIRPS     int    `yaml:"apiRps"`     // 0 = no rate limit
}

// Default returns the configuration defaults used when no file exists.
func Default() *Config {
	return &Config{
		ServerURL:         "http://127.0.0.1:4723",
		Platform:          "android",
		AutomationName:    "UiAutomator2",
		NewCommandTimeout: 300,
		WaitTimeout:       15 * time.Second,
		CheckTimeout:      5 * time.Second,
		OutputDir:         "screenshots",
		APIBaseURL:        "https://httpbin.org",
	}
}

// Load loads configuration from a file, applying defaults for unset
// fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, core.ErrInvalidConfig.WithCause(err)
	}

	return cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return defaults
	return Default(), nil
}

// Validate checks the fields a UI run cannot do without.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return core.ErrMissingRequired.WithMessage("serverUrl is required")
	}
	if c.Platform == "" {
		return core.ErrMissingRequired.WithMessage("platform is required")
	}
	return nil
}

// Capabilities builds the W3C capability map for session creation,
// mirroring the suite's historical desired-capability set.
func (c *Config) Capabilities() map[string]interface{} {
	caps := map[string]interface{}{
		"platformName": c.Platform,
	}
	set := func(key string, value interface{}) {
		caps["appium:"+key] = value
	}

	if c.PlatformVersion != "" {
		set("platformVersion", c.PlatformVersion)
	}
	if c.DeviceName != "" {
		set("deviceName", c.DeviceName)
	}
	if c.AutomationName != "" {
		set("automationName", c.AutomationName)
	}
	if c.AppPath != "" {
		set("app", c.AppPath)
	}
	if c.AppPackage != "" {
		set("appPackage", c.AppPackage)
	}
	if c.AppActivity != "" {
		set("appActivity", c.AppActivity)
	}
	set("noReset", c.NoReset)
	set("fullReset", c.FullReset)
	if c.NewCommandTimeout > 0 {
		set("newCommandTimeout", c.NewCommandTimeout)
	}
	set("autoGrantPermissions", true)

	return caps
}
