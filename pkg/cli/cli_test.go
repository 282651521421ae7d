package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

// newContext builds a cli context with the given flag values set.
func newContext(t *testing.T, values map[string]string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range GlobalFlags {
		if err := f.Apply(set); err != nil {
			t.Fatal(err)
		}
	}
	for name, value := range values {
		if err := set.Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	return cli.NewContext(nil, set, nil)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newContext(t, nil))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.ServerURL != "http://127.0.0.1:4723" {
		t.Errorf("ServerURL = %q, want default", cfg.ServerURL)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	cfg, err := loadConfig(newContext(t, map[string]string{
		"server-url": "http://10.0.0.5:4723",
		"platform":   "ios",
		"device":     "iPhone 15",
		"output":     "artifacts",
	}))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.ServerURL != "http://10.0.0.5:4723" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.Platform != "ios" {
		t.Errorf("Platform = %q", cfg.Platform)
	}
	if cfg.DeviceName != "iPhone 15" {
		t.Errorf("DeviceName = %q", cfg.DeviceName)
	}
	if cfg.OutputDir != "artifacts" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `platform: android
deviceName: emulator-5554
serverUrl: http://127.0.0.1:4444
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(newContext(t, map[string]string{
		"config": path,
		"device": "emulator-5556",
	}))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.ServerURL != "http://127.0.0.1:4444" {
		t.Errorf("ServerURL = %q, want file value", cfg.ServerURL)
	}
	if cfg.DeviceName != "emulator-5556" {
		t.Errorf("DeviceName = %q, flag should override file", cfg.DeviceName)
	}
}
