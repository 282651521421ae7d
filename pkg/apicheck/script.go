package apicheck

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// evalScript runs a JavaScript boolean expression against a response.
// The expression sees these globals:
//
//	status    - response status code
//	elapsedMs - round-trip time in milliseconds
//	headers   - response headers (first value per key)
//	body      - raw response body string
//	json      - parsed body, or null when the body is not JSON
//
// The check fails unless the expression evaluates to true.
func evalScript(script string, resp *http.Response, body []byte, elapsed time.Duration) error {
	runtime := goja.New()

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = nil
	}

	runtime.Set("status", resp.StatusCode)
	runtime.Set("elapsedMs", elapsed.Milliseconds())
	runtime.Set("headers", headers)
	runtime.Set("body", string(body))
	runtime.Set("json", parsed)

	value, err := runtime.RunString(script)
	if err != nil {
		return core.ErrAssertionFailed.
			WithMessage(fmt.Sprintf("script error: %v", err)).
			WithCause(err)
	}

	if !value.ToBoolean() {
		return core.ErrAssertionFailed.
			WithMessage(fmt.Sprintf("script %q evaluated to %v", script, value.Export()))
	}

	return nil
}
