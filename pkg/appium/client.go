// Package appium is an HTTP client for a remote Appium automation server
// speaking the W3C WebDriver protocol. It covers the command surface the
// QA suite consumes: session lifecycle, element location and interaction,
// screenshots, page source, and back navigation. The server itself is a
// black box; everything on the device side belongs to it.
package appium

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devicelab-dev/appqa/pkg/core"
	"github.com/devicelab-dev/appqa/pkg/logger"
)

// W3C WebDriver element identifier key (standard constant)
const w3cElementKey = "element-6066-11e4-a52e-4f735466cecf"

// Client handles HTTP communication with the Appium server.
//
// A Client with an active session is not safe for concurrent use: the
// remote session processes one command at a time and makes no thread
// safety guarantees. Scenarios run sequentially with one session each.
type Client struct {
	serverURL string
	sessionID string
	client    *http.Client
	platform  string // ios, android
}

// NewClient creates a client for the given server URL.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		client: &http.Client{
			Timeout: 5 * time.Minute, // Long timeout for install/screenshot
		},
	}
}

// NewSession creates a session with the given W3C capabilities.
func (c *Client) NewSession(capabilities map[string]interface{}) error {
	body := map[string]interface{}{
		"capabilities": map[string]interface{}{
			"alwaysMatch": capabilities,
		},
	}

	resp, err := c.post("/session", body)
	if err != nil {
		return core.ErrServerUnreachable.WithCause(err)
	}

	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid session response")
	}

	c.sessionID, _ = value["sessionId"].(string)
	if c.sessionID == "" {
		return fmt.Errorf("no session ID in response")
	}

	if caps, ok := value["capabilities"].(map[string]interface{}); ok {
		if platform, ok := caps["platformName"].(string); ok {
			c.platform = strings.ToLower(platform)
		}
	}

	logger.Info("session created: %s (%s)", c.sessionID, c.platform)
	return nil
}

// DeleteSession ends the session. Safe to call without one.
func (c *Client) DeleteSession() error {
	if c.sessionID == "" {
		return nil
	}
	_, err := c.delete(c.sessionPath())
	logger.Info("session deleted: %s", c.sessionID)
	c.sessionID = ""
	return err
}

// SessionID returns the current session ID.
func (c *Client) SessionID() string {
	return c.sessionID
}

// HasSession returns true if a session is active.
func (c *Client) HasSession() bool {
	return c.sessionID != ""
}

// Platform returns the platform reported by the session (ios/android).
func (c *Client) Platform() string {
	return c.platform
}

// FindElement finds a single element. A driver-side miss returns
// core.ErrElementNotFound so callers can tell absence from transport
// failures.
func (c *Client) FindElement(loc Locator) (*Element, error) {
	if c.sessionID == "" {
		return nil, core.ErrNoSession
	}

	body := map[string]interface{}{
		"using": string(loc.Strategy),
		"value": loc.Value,
	}

	resp, err := c.post(c.sessionPath()+"/element", body)
	if err != nil {
		if isNoSuchElement(err) {
			return nil, core.ErrElementNotFound.WithDetails(map[string]interface{}{
				"locator": loc.String(),
			})
		}
		return nil, err
	}

	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return nil, core.ErrElementNotFound.WithDetails(map[string]interface{}{
			"locator": loc.String(),
		})
	}

	id := extractElementID(value)
	if id == "" {
		return nil, core.ErrElementNotFound.WithDetails(map[string]interface{}{
			"locator": loc.String(),
		})
	}

	return &Element{client: c, id: id, locator: loc}, nil
}

// FindElements finds all matching elements. An empty result is not an
// error.
func (c *Client) FindElements(loc Locator) ([]*Element, error) {
	if c.sessionID == "" {
		return nil, core.ErrNoSession
	}

	body := map[string]interface{}{
		"using": string(loc.Strategy),
		"value": loc.Value,
	}

	resp, err := c.post(c.sessionPath()+"/elements", body)
	if err != nil {
		return nil, err
	}

	values, ok := resp["value"].([]interface{})
	if !ok {
		return nil, nil
	}

	var elems []*Element
	for _, v := range values {
		if m, ok := v.(map[string]interface{}); ok {
			if id := extractElementID(m); id != "" {
				elems = append(elems, &Element{client: c, id: id, locator: loc})
			}
		}
	}
	return elems, nil
}

// Screenshot returns a screenshot of the current screen as PNG bytes.
func (c *Client) Screenshot() ([]byte, error) {
	resp, err := c.get(c.sessionPath() + "/screenshot")
	if err != nil {
		return nil, err
	}
	encoded, ok := resp["value"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid screenshot response")
	}
	return base64.StdEncoding.DecodeString(encoded)
}

// Source returns the page source XML for debugging.
func (c *Client) Source() (string, error) {
	resp, err := c.get(c.sessionPath() + "/source")
	if err != nil {
		return "", err
	}
	source, _ := resp["value"].(string)
	return source, nil
}

// Back navigates back using the device back button.
func (c *Client) Back() error {
	if c.platform == "android" || c.platform == "" {
		return c.PressKeyCode(4) // KEYCODE_BACK
	}
	_, err := c.post(c.sessionPath()+"/back", nil)
	return err
}

// PressKeyCode presses a key by keycode (Android).
func (c *Client) PressKeyCode(keycode int) error {
	_, err := c.post(c.sessionPath()+"/appium/device/press_keycode", map[string]interface{}{
		"keycode": keycode,
	})
	return err
}

// HideKeyboard hides the on-screen keyboard.
func (c *Client) HideKeyboard() error {
	_, err := c.post(c.sessionPath()+"/appium/device/hide_keyboard", nil)
	return err
}

// HTTP helpers

func (c *Client) sessionPath() string {
	return "/session/" + c.sessionID
}

func (c *Client) elementPath(elementID string) string {
	return c.sessionPath() + "/element/" + elementID
}

func (c *Client) get(path string) (map[string]interface{}, error) {
	return c.request("GET", path, nil)
}

func (c *Client) post(path string, body interface{}) (map[string]interface{}, error) {
	return c.request("POST", path, body)
}

func (c *Client) delete(path string) (map[string]interface{}, error) {
	return c.request("DELETE", path, nil)
}

func (c *Client) request(method, path string, body interface{}) (map[string]interface{}, error) {
	url := c.serverURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Surface WebDriver error payloads
	if errValue, ok := result["value"].(map[string]interface{}); ok {
		if errMsg, ok := errValue["message"].(string); ok {
			if errType, ok := errValue["error"].(string); ok {
				return result, fmt.Errorf("%s: %s", errType, errMsg)
			}
		}
	}

	return result, nil
}

// isNoSuchElement matches the W3C "no such element" error code.
func isNoSuchElement(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such element")
}

func extractElementID(value map[string]interface{}) string {
	// W3C format
	if id, ok := value[w3cElementKey].(string); ok {
		return id
	}
	// Legacy format
	if id, ok := value["ELEMENT"].(string); ok {
		return id
	}
	return ""
}
