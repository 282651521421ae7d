package appium

import (
	"fmt"
)

// Element is a handle to a located element, bound to the session that
// found it. Handles go stale when the UI changes; callers re-locate via
// the wait engine rather than retrying on a stale handle.
type Element struct {
	client  *Client
	id      string
	locator Locator
}

// ID returns the driver-assigned element ID.
func (e *Element) ID() string {
	return e.id
}

// Locator returns the locator that found this element.
func (e *Element) Locator() Locator {
	return e.locator
}

// Rect is an element's position and size in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the rect.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Zero reports whether the rect has no area.
func (r Rect) Zero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Click clicks the element.
func (e *Element) Click() error {
	_, err := e.client.post(e.client.elementPath(e.id)+"/click", nil)
	return err
}

// Clear clears the element's text.
func (e *Element) Clear() error {
	_, err := e.client.post(e.client.elementPath(e.id)+"/clear", nil)
	return err
}

// Type sends text to the element via the element value endpoint.
func (e *Element) Type(text string) error {
	_, err := e.client.post(e.client.elementPath(e.id)+"/value", map[string]interface{}{
		"text":  text,
		"value": splitChars(text),
	})
	return err
}

// Text returns the element's visible text.
func (e *Element) Text() (string, error) {
	resp, err := e.client.get(e.client.elementPath(e.id) + "/text")
	if err != nil {
		return "", err
	}
	text, _ := resp["value"].(string)
	return text, nil
}

// Attribute returns the named attribute value.
func (e *Element) Attribute(name string) (string, error) {
	resp, err := e.client.get(e.client.elementPath(e.id) + "/attribute/" + name)
	if err != nil {
		return "", err
	}
	value, _ := resp["value"].(string)
	return value, nil
}

// Rect returns the element's position and size.
func (e *Element) Rect() (Rect, error) {
	resp, err := e.client.get(e.client.elementPath(e.id) + "/rect")
	if err != nil {
		return Rect{}, err
	}
	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return Rect{}, fmt.Errorf("invalid rect response")
	}

	xf, _ := value["x"].(float64)
	yf, _ := value["y"].(float64)
	wf, _ := value["width"].(float64)
	hf, _ := value["height"].(float64)
	return Rect{X: int(xf), Y: int(yf), Width: int(wf), Height: int(hf)}, nil
}

// Displayed reports whether the element is rendered on screen.
func (e *Element) Displayed() (bool, error) {
	resp, err := e.client.get(e.client.elementPath(e.id) + "/displayed")
	if err != nil {
		return false, err
	}
	displayed, _ := resp["value"].(bool)
	return displayed, nil
}

// Enabled reports whether the element accepts input.
func (e *Element) Enabled() (bool, error) {
	resp, err := e.client.get(e.client.elementPath(e.id) + "/enabled")
	if err != nil {
		return false, err
	}
	enabled, _ := resp["value"].(bool)
	return enabled, nil
}

// splitChars renders text as the legacy value array some servers expect.
func splitChars(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}
