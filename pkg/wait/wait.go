// Package wait implements explicit waits over the automation client:
// bounded poll loops that replace fixed sleeps. A hard wait returns the
// element or a timeout-classified error; a soft check swallows the
// timeout into a bool.
package wait

import (
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/logger"
)

// Condition is the predicate a wait polls for.
type Condition int

const (
	// Present: the element exists in the UI tree.
	Present Condition = iota
	// Visible: present, rendered, and has non-zero bounds.
	Visible
	// Interactable: visible and enabled for input.
	Interactable
)

// String returns the condition name for diagnostics.
func (c Condition) String() string {
	switch c {
	case Present:
		return "present"
	case Visible:
		return "visible"
	case Interactable:
		return "interactable"
	default:
		return "unknown"
	}
}

// Default wait budgets. Hard waits get the long budget; soft existence
// checks use the short one and never propagate the timeout.
const (
	DefaultTimeout      = 15 * time.Second
	DefaultCheckTimeout = 5 * time.Second
	DefaultInterval     = 200 * time.Millisecond
)

// Waiter polls the client for element conditions. No backoff: a fixed
// interval between attempts until the deadline passes.
type Waiter struct {
	client   *appium.Client
	interval time.Duration
}

// New creates a Waiter with the default poll interval.
func New(client *appium.Client) *Waiter {
	return &Waiter{client: client, interval: DefaultInterval}
}

// NewWithInterval creates a Waiter with a custom poll interval.
func NewWithInterval(client *appium.Client, interval time.Duration) *Waiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Waiter{client: client, interval: interval}
}

// Until polls until the condition holds for the locator or the timeout
// elapses. On success it returns the element that satisfied the
// condition. On timeout it returns core.ErrWaitTimeout carrying the
// locator, condition, and elapsed time.
func (w *Waiter) Until(loc appium.Locator, cond Condition, timeout time.Duration) (*appium.Element, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	start := time.Now()
	deadline := start.Add(timeout)

	for {
		elem, ok := w.evaluate(loc, cond)
		if ok {
			return elem, nil
		}

		if time.Now().After(deadline) {
			elapsed := time.Since(start)
			logger.Debug("wait timed out: %s %s after %v", loc, cond, elapsed)
			return nil, core.ErrWaitTimeout.WithDetails(map[string]interface{}{
				"locator":   loc.String(),
				"condition": cond.String(),
				"elapsed":   elapsed.String(),
				"timeout":   timeout.String(),
			})
		}
		time.Sleep(w.interval)
	}
}

// Check is the soft variant of Until: true iff the condition held within
// the timeout, false otherwise. It never returns an error.
func (w *Waiter) Check(loc appium.Locator, cond Condition, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	_, err := w.Until(loc, cond, timeout)
	return err == nil
}

// evaluate performs a single attempt. A false result means the condition
// did not hold this round; the caller decides whether to keep polling.
func (w *Waiter) evaluate(loc appium.Locator, cond Condition) (*appium.Element, bool) {
	elem, err := w.client.FindElement(loc)
	if err != nil || elem == nil {
		return nil, false
	}
	if cond == Present {
		return elem, true
	}

	displayed, err := elem.Displayed()
	if err != nil || !displayed {
		return nil, false
	}
	rect, err := elem.Rect()
	if err != nil || rect.Zero() {
		return nil, false
	}
	if cond == Visible {
		return elem, true
	}

	enabled, err := elem.Enabled()
	if err != nil || !enabled {
		return nil, false
	}
	return elem, true
}
