package apicheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/logger"
)

// maxBodySize limits how much of a response body is read for
// expectation checks.
const maxBodySize = 10 * 1024 * 1024 // 10MB

// Client runs checks against a single API base URL.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a check client. rps limits outgoing request rate;
// 0 disables rate limiting.
func NewClient(baseURL string, rps int) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return c
}

// Run executes a single check and evaluates its expectations.
// Transport failures classify as external, expectation failures as
// assertion.
func (c *Client) Run(ctx context.Context, check Check) Result {
	result := Result{Check: check.Name}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			result.Error = core.ErrExternalService.WithCause(err)
			result.Message = result.Error.Error()
			return result
		}
	}

	req, err := http.NewRequestWithContext(ctx, check.Method, c.baseURL+check.Path, strings.NewReader(check.Body))
	if err != nil {
		result.Error = core.ErrExternalService.WithCause(err)
		result.Message = result.Error.Error()
		return result
	}
	for k, v := range check.Headers {
		req.Header.Set(k, v)
	}
	if check.Body != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	result.Elapsed = time.Since(start)

	if err != nil {
		result.Error = core.ErrExternalService.WithCause(err).WithDetails(map[string]interface{}{
			"check": check.Name,
			"url":   c.baseURL + check.Path,
		})
		result.Message = result.Error.Error()
		return result
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	_, _ = io.Copy(io.Discard, resp.Body) // drain errors are ignorable

	result.StatusCode = resp.StatusCode

	if err := evaluate(check, resp, body, result.Elapsed); err != nil {
		result.Error = err
		result.Message = err.Error()
		return result
	}

	result.Passed = true
	return result
}

// RunAll executes checks sequentially and logs each outcome.
func (c *Client) RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		result := c.Run(ctx, check)
		if result.Passed {
			logger.Info("PASS %s (%d, %v)", result.Check, result.StatusCode, result.Elapsed.Round(time.Millisecond))
		} else {
			logger.Error("FAIL %s: %s", result.Check, result.Message)
		}
		results = append(results, result)
	}
	return results
}

// evaluate checks every expectation; the first miss wins.
func evaluate(check Check, resp *http.Response, body []byte, elapsed time.Duration) error {
	expect := check.Expect

	if expect.Status != 0 && resp.StatusCode != expect.Status {
		return core.ErrAssertionFailed.
			WithMessage(fmt.Sprintf("status %d, expected %d", resp.StatusCode, expect.Status)).
			WithDetails(map[string]interface{}{"check": check.Name})
	}

	if expect.MaxElapsed > 0 && elapsed > expect.MaxElapsed {
		return core.ErrAssertionFailed.
			WithMessage(fmt.Sprintf("response took %v, budget %v", elapsed.Round(time.Millisecond), expect.MaxElapsed)).
			WithDetails(map[string]interface{}{"check": check.Name})
	}

	if expect.ContentType != "" {
		got := resp.Header.Get("Content-Type")
		if !strings.HasPrefix(got, expect.ContentType) {
			return core.ErrAssertionFailed.
				WithMessage(fmt.Sprintf("content type %q, expected %q", got, expect.ContentType)).
				WithDetails(map[string]interface{}{"check": check.Name})
		}
	}

	if len(expect.JSON) > 0 {
		if err := assertJSON(body, expect.JSON); err != nil {
			return err
		}
	}

	if expect.Script != "" {
		if err := evalScript(expect.Script, resp, body, elapsed); err != nil {
			return err
		}
	}

	return nil
}
