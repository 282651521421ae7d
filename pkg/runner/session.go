package runner

import (
	"github.com/devicelab-dev/appqa/pkg/appium"
	"github.com/devicelab-dev/appqa/pkg/config"
	"github.com/devicelab-dev/appqa/pkg/screens"
)

// Session bundles a live driver session with the screen accessors a
// scenario uses. Each scenario gets a fresh one.
type Session struct {
	Client *appium.Client
	Home   *screens.HomeScreen
	Login  *screens.LoginScreen
}

// newSession creates a driver session from the configuration and wires
// the screen accessors to it.
func newSession(cfg *config.Config) (*Session, error) {
	client := appium.NewClient(cfg.ServerURL)
	if err := client.NewSession(cfg.Capabilities()); err != nil {
		return nil, err
	}

	screen := screens.NewScreen(client)
	if cfg.WaitTimeout > 0 {
		screen.Timeout = cfg.WaitTimeout
	}
	if cfg.CheckTimeout > 0 {
		screen.CheckTimeout = cfg.CheckTimeout
	}

	return &Session{
		Client: client,
		Home:   screens.NewHomeScreen(screen),
		Login:  screens.NewLoginScreen(screen),
	}, nil
}

// close tears the driver session down. Errors are reported, never
// fatal; teardown must not mask the scenario outcome.
func (s *Session) close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.DeleteSession()
}
