// Package cli provides the command-line interface for appqa.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appqa/pkg/config"
	"github.com/devicelab-dev/appqa/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to workspace config.yaml",
		EnvVars: []string{"APPQA_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "server-url",
		Usage:   "Appium server URL",
		EnvVars: []string{"APPIUM_URL"},
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "Platform to run on (android, ios)",
		EnvVars: []string{"APPQA_PLATFORM"},
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"udid"},
		Usage:   "Device name or ID to run on",
		EnvVars: []string{"APPQA_DEVICE"},
	},
	&cli.StringFlag{
		Name:    "app-file",
		Usage:   "App binary (.apk, .ipa) to install on session start",
		EnvVars: []string{"APPQA_APP_FILE"},
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output directory for reports and screenshots",
		EnvVars: []string{"APPQA_OUTPUT"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"APPQA_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "appqa",
		Usage:   "Mobile app QA suite: UI scenarios and backend API checks",
		Version: Version,
		Description: `appqa drives a mobile app through an Appium server and checks the
backend API the app depends on.

Examples:
  appqa run
  appqa run --include-tags smoke
  appqa api --base-url https://httpbin.org
  appqa -c workspace/config.yaml run`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			runCommand,
			apiCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the workspace config from flags, then overlays
// the flag values that were explicitly set.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, err
	}

	if v := c.String("server-url"); v != "" {
		cfg.ServerURL = v
	}
	if v := c.String("platform"); v != "" {
		cfg.Platform = v
	}
	if v := c.String("device"); v != "" {
		cfg.DeviceName = v
	}
	if v := c.String("app-file"); v != "" {
		cfg.AppPath = v
	}
	if v := c.String("output"); v != "" {
		cfg.OutputDir = v
	}

	logger.InitStderr()
	if c.Bool("verbose") {
		logger.SetVerbose(true)
	}

	return cfg, nil
}
