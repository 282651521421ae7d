// Package screens contains the page objects for the native demo app:
// per-screen locator tables plus named actions built on the wait engine.
package screens

import (
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
	"github.com/devicelab-dev/appqa/pkg/wait"
)

// Screen is the shared helper every page object composes. It pairs the
// automation client with a Waiter so screen actions never use fixed
// sleeps: interactions wait for the target condition first, existence
// checks are soft waits with a short budget.
type Screen struct {
	client *appium.Client
	waiter *wait.Waiter

	// Timeout bounds hard waits before interactions; CheckTimeout bounds
	// soft existence checks. Overridable per suite (tests shorten them).
	Timeout      time.Duration
	CheckTimeout time.Duration
}

// NewScreen creates the shared helper for a session.
func NewScreen(client *appium.Client) *Screen {
	return NewScreenWithWaiter(client, wait.New(client))
}

// NewScreenWithWaiter creates the helper with a custom waiter (tests use
// a short poll interval).
func NewScreenWithWaiter(client *appium.Client, w *wait.Waiter) *Screen {
	return &Screen{
		client:       client,
		waiter:       w,
		Timeout:      wait.DefaultTimeout,
		CheckTimeout: wait.DefaultCheckTimeout,
	}
}

// Client returns the underlying automation client.
func (s *Screen) Client() *appium.Client {
	return s.client
}

// Tap waits for the control to be interactable and clicks it.
func (s *Screen) Tap(loc appium.Locator) error {
	elem, err := s.waiter.Until(loc, wait.Interactable, s.Timeout)
	if err != nil {
		return err
	}
	return elem.Click()
}

// Type waits for the field to be visible, clears it, and types text.
func (s *Screen) Type(loc appium.Locator, text string) error {
	elem, err := s.waiter.Until(loc, wait.Visible, s.Timeout)
	if err != nil {
		return err
	}
	if err := elem.Clear(); err != nil {
		return err
	}
	return elem.Type(text)
}

// Text waits for the element to be visible and returns its text.
func (s *Screen) Text(loc appium.Locator) (string, error) {
	elem, err := s.waiter.Until(loc, wait.Visible, s.Timeout)
	if err != nil {
		return "", err
	}
	return elem.Text()
}

// Attribute waits for visibility and returns the named attribute.
func (s *Screen) Attribute(loc appium.Locator, name string) (string, error) {
	elem, err := s.waiter.Until(loc, wait.Visible, s.Timeout)
	if err != nil {
		return "", err
	}
	return elem.Attribute(name)
}

// Displayed is a soft check with the default short budget: true iff the
// element becomes visible in time, never an error.
func (s *Screen) Displayed(loc appium.Locator) bool {
	return s.waiter.Check(loc, wait.Visible, s.CheckTimeout)
}

// DisplayedWithin is Displayed with an explicit budget.
func (s *Screen) DisplayedWithin(loc appium.Locator, timeout time.Duration) bool {
	return s.waiter.Check(loc, wait.Visible, timeout)
}

// Present is a soft presence check (in the tree, visible or not).
func (s *Screen) Present(loc appium.Locator) bool {
	return s.waiter.Check(loc, wait.Present, s.CheckTimeout)
}

// Back navigates back via the device back button.
func (s *Screen) Back() error {
	return s.client.Back()
}

// Source returns the page source for debugging.
func (s *Screen) Source() (string, error) {
	return s.client.Source()
}

// Screenshot captures the current screen as PNG bytes.
func (s *Screen) Screenshot() ([]byte, error) {
	return s.client.Screenshot()
}
