package apicheck

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devicelab-dev/appqa/pkg/core"
)

// newEchoServer serves an httpbin-compatible subset: /post echoes the
// request body under "json", /get echoes query params under "args",
// /status/{code} returns the code.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var parsed interface{}
		if err := json.Unmarshal(body, &parsed); err != nil {
			parsed = nil
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"json": parsed,
			"url":  r.URL.String(),
		})
	})
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		args := make(map[string]string)
		for k := range r.URL.Query() {
			args[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"args": args})
	})
	mux.HandleFunc("/status/", func(w http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/status/"))
		if err != nil {
			code = http.StatusBadRequest
		}
		w.WriteHeader(code)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestBuiltinChecksPass(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(srv.URL, 0)

	results := client.RunAll(context.Background(), BuiltinChecks())
	require.Len(t, results, len(BuiltinChecks()))
	for _, result := range results {
		require.True(t, result.Passed, "%s: %s", result.Check, result.Message)
	}
}

func TestRunStatusMismatch(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(srv.URL, 0)

	result := client.Run(context.Background(), Check{
		Name:   "expects teapot",
		Method: "GET",
		Path:   "/status/200",
		Expect: Expect{Status: 418},
	})

	require.False(t, result.Passed)
	require.Equal(t, 200, result.StatusCode)
	require.Equal(t, core.ErrCategoryAssertion, core.CategoryOf(result.Error))
	require.Contains(t, result.Message, "expected 418")
}

func TestRunJSONPathMismatch(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(srv.URL, 0)

	result := client.Run(context.Background(), Check{
		Name:   "wrong email",
		Method: "POST",
		Path:   "/post",
		Body:   `{"email":"nobody@example.com"}`,
		Expect: Expect{
			Status: 200,
			JSON:   map[string]interface{}{"$.json.email": "test@example.com"},
		},
	})

	require.False(t, result.Passed)
	require.Equal(t, core.ErrCategoryAssertion, core.CategoryOf(result.Error))
}

func TestRunScriptExpectation(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(srv.URL, 0)

	result := client.Run(context.Background(), Check{
		Name:   "script sees response",
		Method: "POST",
		Path:   "/post",
		Body:   `{"email":"test@example.com"}`,
		Expect: Expect{
			Script: `status === 200 && json.json.email === "test@example.com" && elapsedMs >= 0`,
		},
	})
	require.True(t, result.Passed, result.Message)

	result = client.Run(context.Background(), Check{
		Name:   "script false",
		Method: "GET",
		Path:   "/get",
		Expect: Expect{Script: `status === 500`},
	})
	require.False(t, result.Passed)
	require.Equal(t, core.ErrCategoryAssertion, core.CategoryOf(result.Error))
}

func TestRunTransportFailure(t *testing.T) {
	// Port chosen from the reserved test range, nothing listens there.
	client := NewClient("http://127.0.0.1:1", 0)

	result := client.Run(context.Background(), Check{
		Name:   "unreachable",
		Method: "GET",
		Path:   "/get",
		Expect: Expect{Status: 200},
	})

	require.False(t, result.Passed)
	require.Equal(t, core.ErrCategoryExternal, core.CategoryOf(result.Error))
}

func TestRunElapsedBudget(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	result := client.Run(context.Background(), Check{
		Name:   "too slow",
		Method: "GET",
		Path:   "/get",
		Expect: Expect{MaxElapsed: 10 * time.Millisecond},
	})

	require.False(t, result.Passed)
	require.Contains(t, result.Message, "budget")
}

func TestLoadChecks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checks.yaml")
	content := `checks:
  - name: health
    path: /status/200
    expect:
      status: 200
  - name: login echo
    method: POST
    path: /post
    body: '{"email":"test@example.com"}'
    expect:
      status: 200
      json:
        $.json.email: test@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	checks, err := LoadChecks(path)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	require.Equal(t, "GET", checks[0].Method, "method defaults to GET")
	require.Equal(t, "test@example.com", checks[1].Expect.JSON["$.json.email"])

	srv := newEchoServer(t)
	client := NewClient(srv.URL, 0)
	for _, result := range client.RunAll(context.Background(), checks) {
		require.True(t, result.Passed, "%s: %s", result.Check, result.Message)
	}
}

func TestFilterByTag(t *testing.T) {
	checks := BuiltinChecks()

	smoke := FilterByTag(checks, "smoke")
	require.NotEmpty(t, smoke)
	for _, check := range smoke {
		require.Contains(t, check.Tags, "smoke")
	}

	require.Len(t, FilterByTag(checks, ""), len(checks))
	require.Empty(t, FilterByTag(checks, "no-such-tag"))
}
