package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appqa/pkg/logger"
	"github.com/devicelab-dev/appqa/pkg/report"
	"github.com/devicelab-dev/appqa/pkg/runner"
	"github.com/devicelab-dev/appqa/pkg/scenarios"
)

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "Run UI scenarios against a device",
	Description: `Run the built-in UI scenarios on a connected device through the
Appium server.

A JSON report and failure screenshots are written to the output
directory (default ./screenshots).

Examples:
  appqa run
  appqa run --include-tags smoke
  appqa run --include-tags login --exclude-tags flaky`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "include-tags",
			Usage: "Only run scenarios with these tags",
		},
		&cli.StringSliceFlag{
			Name:  "exclude-tags",
			Usage: "Skip scenarios with these tags",
		},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if tags := c.StringSlice("include-tags"); len(tags) > 0 {
		cfg.IncludeTags = tags
	}
	if tags := c.StringSlice("exclude-tags"); len(tags) > 0 {
		cfg.ExcludeTags = tags
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Without --verbose the detailed log goes to a file next to the
	// artifacts instead of the console.
	if !c.Bool("verbose") {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err == nil {
			if err := logger.Init(filepath.Join(cfg.OutputDir, "run.log")); err == nil {
				defer logger.Close()
			}
		}
	}

	suite := runner.New(cfg).RunAll(scenarios.All())

	report.WriteConsole(os.Stdout, suite)
	if path, err := report.WriteJSON(cfg.OutputDir, suite); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else {
		fmt.Printf("report: %s\n", path)
	}

	if code := report.ExitCode(suite); code != 0 {
		return cli.Exit("", code)
	}
	return nil
}
