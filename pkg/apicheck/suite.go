package apicheck

import "time"

// Credentials used by the login-style checks. They match the app's
// demo account.
const (
	validEmail    = "test@example.com"
	validPassword = "Password123"
)

// BuiltinChecks returns the default backend checks run when no check
// file is supplied. They target an httpbin-compatible echo service,
// exercising login and profile endpoint behavior.
func BuiltinChecks() []Check {
	return []Check{
		{
			Name:   "login with valid credentials",
			Method: "POST",
			Path:   "/post",
			Body:   `{"email":"` + validEmail + `","password":"` + validPassword + `"}`,
			Tags:   []string{"smoke", "api"},
			Expect: Expect{
				Status: 200,
				JSON: map[string]interface{}{
					"$.json.email": validEmail,
				},
			},
		},
		{
			Name:   "login with missing password",
			Method: "POST",
			Path:   "/post",
			Body:   `{"email":"` + validEmail + `"}`,
			Tags:   []string{"regression", "api"},
			Expect: Expect{
				Status: 200,
				Script: `json.json.password === undefined && json.json.email === "` + validEmail + `"`,
			},
		},
		{
			Name:   "empty request body echoes empty object",
			Method: "POST",
			Path:   "/post",
			Body:   `{}`,
			Tags:   []string{"regression", "api"},
			Expect: Expect{
				Status: 200,
				Script: `Object.keys(json.json).length === 0`,
			},
		},
		{
			Name:   "login responds within budget",
			Method: "POST",
			Path:   "/post",
			Body:   `{"email":"` + validEmail + `","password":"` + validPassword + `"}`,
			Tags:   []string{"regression", "api"},
			Expect: Expect{
				Status:     200,
				MaxElapsed: 5 * time.Second,
			},
		},
		{
			Name:   "login returns JSON content type",
			Method: "POST",
			Path:   "/post",
			Body:   `{"email":"` + validEmail + `","password":"` + validPassword + `"}`,
			Tags:   []string{"regression", "api"},
			Expect: Expect{
				Status:      200,
				ContentType: "application/json",
			},
		},
		{
			Name:   "bad request status",
			Method: "GET",
			Path:   "/status/400",
			Tags:   []string{"regression", "api"},
			Expect: Expect{Status: 400},
		},
		{
			Name:   "unauthorized status",
			Method: "GET",
			Path:   "/status/401",
			Tags:   []string{"regression", "api"},
			Expect: Expect{Status: 401},
		},
		{
			Name:   "user profile query params echoed",
			Method: "GET",
			Path:   "/get?user_id=123&include=profile",
			Tags:   []string{"smoke", "api"},
			Expect: Expect{
				Status: 200,
				JSON: map[string]interface{}{
					"$.args.user_id": "123",
				},
			},
		},
		{
			Name:   "missing resource status",
			Method: "GET",
			Path:   "/status/404",
			Tags:   []string{"regression", "api"},
			Expect: Expect{Status: 404},
		},
	}
}

// FilterByTag returns the checks carrying the tag; an empty tag keeps
// everything.
func FilterByTag(checks []Check, tag string) []Check {
	if tag == "" {
		return checks
	}
	filtered := make([]Check, 0, len(checks))
	for _, check := range checks {
		for _, t := range check.Tags {
			if t == tag {
				filtered = append(filtered, check)
				break
			}
		}
	}
	return filtered
}
