// Package scenarios holds the suite's built-in UI scenarios for the
// demo app.
package scenarios

import (
	"strings"

	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/runner"
)

// Demo account credentials accepted by the app's login form.
const (
	ValidEmail    = "test@example.com"
	ValidPassword = "Password123"

	invalidPassword    = "wrongpassword"
	invalidEmailFormat = "invalidemail"
	shortPassword      = "abc"
)

// LoginScenarios returns the login flow coverage.
func LoginScenarios() []runner.Scenario {
	return []runner.Scenario{
		{
			Name: "app launch success",
			Tags: []string{"smoke", "login"},
			Run: func(s *runner.Session) error {
				if !s.Home.AppLaunched() {
					return core.ErrAssertionFailed.WithMessage("navigation bar not visible after launch")
				}
				return nil
			},
		},
		{
			Name: "login with valid credentials",
			Tags: []string{"smoke", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectLoginTab(); err != nil {
					return err
				}
				if err := s.Login.Login(ValidEmail, ValidPassword); err != nil {
					return err
				}
				if !s.Login.AlertDisplayed() {
					return core.ErrAssertionFailed.WithMessage("success alert not displayed after valid login")
				}
				title, err := s.Login.AlertTitle()
				if err != nil {
					return err
				}
				if !strings.Contains(title, "Success") {
					return core.ErrTextMismatch.WithDetails(map[string]interface{}{
						"expected": "Success",
						"actual":   title,
					})
				}
				_, err = s.Login.DismissAlert()
				return err
			},
		},
		{
			Name: "login with invalid credentials stays on login screen",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectLoginTab(); err != nil {
					return err
				}
				if err := s.Login.Login(ValidEmail, invalidPassword); err != nil {
					return err
				}
				// The demo app validates format, not real credentials;
				// staying on the login screen marks the failure.
				if !s.Login.IsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("login screen should remain displayed")
				}
				return nil
			},
		},
		{
			Name: "login with empty fields stays on login screen",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectLoginTab(); err != nil {
					return err
				}
				if _, err := s.Login.SubmitLogin(); err != nil {
					return err
				}
				if !s.Login.IsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("login screen should remain displayed with empty fields")
				}
				return nil
			},
		},
		{
			Name: "invalid email format shows validation error",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectLoginTab(); err != nil {
					return err
				}
				if _, err := s.Login.EnterEmail(invalidEmailFormat); err != nil {
					return err
				}
				// Moving focus to the password field triggers validation.
				if _, err := s.Login.EnterPassword(ValidPassword); err != nil {
					return err
				}
				if _, err := s.Login.SubmitLogin(); err != nil {
					return err
				}
				if !s.Login.EmailErrorDisplayed() {
					return core.ErrAssertionFailed.WithMessage("email validation error not displayed")
				}
				return nil
			},
		},
		{
			Name: "short password shows validation error",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectLoginTab(); err != nil {
					return err
				}
				if _, err := s.Login.EnterEmail(ValidEmail); err != nil {
					return err
				}
				if _, err := s.Login.EnterPassword(shortPassword); err != nil {
					return err
				}
				if _, err := s.Login.SubmitLogin(); err != nil {
					return err
				}
				if !s.Login.PasswordErrorDisplayed() {
					return core.ErrAssertionFailed.WithMessage("password validation error not displayed")
				}
				return nil
			},
		},
		{
			Name: "sign up with new account",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Login.SelectSignupTab(); err != nil {
					return err
				}
				if _, err := s.Login.EnterEmail(ValidEmail); err != nil {
					return err
				}
				if _, err := s.Login.EnterPassword(ValidPassword); err != nil {
					return err
				}
				if _, err := s.Login.EnterConfirmPassword(ValidPassword); err != nil {
					return err
				}
				if _, err := s.Login.SubmitSignup(); err != nil {
					return err
				}
				if !s.Login.AlertDisplayed() {
					return core.ErrAssertionFailed.WithMessage("signup confirmation alert not displayed")
				}
				message, err := s.Login.AlertMessage()
				if err != nil {
					return err
				}
				if !strings.Contains(message, "signed up") {
					return core.ErrTextMismatch.WithDetails(map[string]interface{}{
						"expected": "signed up",
						"actual":   message,
					})
				}
				_, err = s.Login.DismissAlert()
				return err
			},
		},
		{
			Name: "login screen elements visible",
			Tags: []string{"regression", "login"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if !s.Login.IsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("login form not fully visible")
				}
				return nil
			},
		},
	}
}
