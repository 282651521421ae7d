package scenarios

import (
	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/runner"
)

// NavigationScenarios returns the bottom-bar navigation coverage.
func NavigationScenarios() []runner.Scenario {
	return []runner.Scenario{
		{
			Name: "navigate to login screen",
			Tags: []string{"smoke", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if !s.Login.IsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("login screen not displayed after navigation")
				}
				return nil
			},
		},
		{
			Name: "navigate to forms screen",
			Tags: []string{"smoke", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToForms(); err != nil {
					return err
				}
				if !s.Home.FormsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("forms screen not displayed after navigation")
				}
				return nil
			},
		},
		{
			Name: "navigate to webview screen",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToWebview(); err != nil {
					return err
				}
				if !s.Home.WebviewDisplayed() {
					return core.ErrAssertionFailed.WithMessage("webview screen not displayed after navigation")
				}
				return nil
			},
		},
		{
			Name: "navigate back to home",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if _, err := s.Home.GoToHome(); err != nil {
					return err
				}
				if !s.Home.HomeDisplayed() {
					return core.ErrAssertionFailed.WithMessage("home screen not displayed after navigating back")
				}
				return nil
			},
		},
		{
			Name: "navigation bar visible on every screen",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if !s.Home.NavigationBarVisible() {
					return core.ErrAssertionFailed.WithMessage("navigation bar missing on home screen")
				}
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if !s.Home.NavigationBarVisible() {
					return core.ErrAssertionFailed.WithMessage("navigation bar missing on login screen")
				}
				if _, err := s.Home.GoToForms(); err != nil {
					return err
				}
				if !s.Home.NavigationBarVisible() {
					return core.ErrAssertionFailed.WithMessage("navigation bar missing on forms screen")
				}
				return nil
			},
		},
		{
			Name: "sequential navigation across screens",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToLogin(); err != nil {
					return err
				}
				if !s.Login.IsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("login screen not displayed")
				}
				if _, err := s.Home.GoToForms(); err != nil {
					return err
				}
				if !s.Home.FormsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("forms screen not displayed")
				}
				if _, err := s.Home.GoToWebview(); err != nil {
					return err
				}
				if !s.Home.WebviewDisplayed() {
					return core.ErrAssertionFailed.WithMessage("webview screen not displayed")
				}
				if _, err := s.Home.GoToHome(); err != nil {
					return err
				}
				if !s.Home.HomeDisplayed() {
					return core.ErrAssertionFailed.WithMessage("home screen not displayed")
				}
				return nil
			},
		},
		{
			Name: "forms input interaction",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToForms(); err != nil {
					return err
				}
				if err := s.Home.EnterFormsText("Test Input"); err != nil {
					return err
				}
				if !s.Home.FormsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("left forms screen after input")
				}
				return nil
			},
		},
		{
			Name: "forms switch toggle",
			Tags: []string{"regression", "navigation"},
			Run: func(s *runner.Session) error {
				if _, err := s.Home.GoToForms(); err != nil {
					return err
				}
				if err := s.Home.ToggleSwitch(); err != nil {
					return err
				}
				if !s.Home.FormsDisplayed() {
					return core.ErrAssertionFailed.WithMessage("left forms screen after toggling switch")
				}
				return nil
			},
		},
	}
}

// All returns every built-in scenario, login coverage first.
func All() []runner.Scenario {
	var all []runner.Scenario
	all = append(all, LoginScenarios()...)
	all = append(all, NavigationScenarios()...)
	return all
}
