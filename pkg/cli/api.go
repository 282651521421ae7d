package cli

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appqa/pkg/apicheck"
)

var apiCommand = &cli.Command{
	Name:  "api",
	Usage: "Run HTTP checks against the backend API",
	Description: `Run the built-in backend API checks, or checks loaded from a YAML
file.

Examples:
  appqa api
  appqa api --base-url https://httpbin.org --tag smoke
  appqa api --checks checks.yaml --rps 5`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "API base URL",
			EnvVars: []string{"APPQA_API_BASE_URL"},
		},
		&cli.StringFlag{
			Name:  "checks",
			Usage: "YAML file with checks (default: built-in suite)",
		},
		&cli.StringFlag{
			Name:  "tag",
			Usage: "Only run checks with this tag",
		},
		&cli.IntFlag{
			Name:  "rps",
			Usage: "Request rate limit (0 = unlimited)",
		},
	},
	Action: apiAction,
}

func apiAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	baseURL := cfg.APIBaseURL
	if v := c.String("base-url"); v != "" {
		baseURL = v
	}
	rps := cfg.APIRPS
	if c.IsSet("rps") {
		rps = c.Int("rps")
	}

	checks := apicheck.BuiltinChecks()
	if path := c.String("checks"); path != "" {
		checks, err = apicheck.LoadChecks(path)
		if err != nil {
			return err
		}
	}
	checks = apicheck.FilterByTag(checks, c.String("tag"))

	client := apicheck.NewClient(baseURL, rps)
	results := client.RunAll(c.Context, checks)

	failed := 0
	for _, result := range results {
		if result.Passed {
			fmt.Printf("  PASS  %-45s %d %8s\n",
				result.Check, result.StatusCode, result.Elapsed.Round(time.Millisecond))
		} else {
			failed++
			fmt.Printf("  FAIL  %-45s %s\n", result.Check, result.Message)
		}
	}
	fmt.Printf("\n%d checks: %d passed, %d failed\n", len(results), len(results)-failed, failed)

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
