package appium

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// elementServer serves the element endpoints for a single fixed element.
func elementServer(t *testing.T, handlers map[string]func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *Element) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "/session/test-session/element/elem-1/"
		if len(r.URL.Path) > len(prefix) && r.URL.Path[:len(prefix)] == prefix {
			if h, ok := handlers[r.URL.Path[len(prefix):]]; ok {
				h(w, r)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	client.sessionID = "test-session"
	elem := &Element{client: client, id: "elem-1", locator: ByAccessibilityID("input-email")}
	return server, elem
}

func TestElement_ClickClearType(t *testing.T) {
	var clicked, cleared bool
	var typed string

	_, elem := elementServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"click": func(w http.ResponseWriter, r *http.Request) {
			clicked = true
			writeJSON(w, map[string]interface{}{"value": nil})
		},
		"clear": func(w http.ResponseWriter, r *http.Request) {
			cleared = true
			writeJSON(w, map[string]interface{}{"value": nil})
		},
		"value": func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Text string `json:"text"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			typed = body.Text
			writeJSON(w, map[string]interface{}{"value": nil})
		},
	})

	if err := elem.Click(); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if err := elem.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := elem.Type("test@example.com"); err != nil {
		t.Fatalf("Type failed: %v", err)
	}

	if !clicked || !cleared {
		t.Error("click/clear endpoints not hit")
	}
	if typed != "test@example.com" {
		t.Errorf("typed = %q", typed)
	}
}

func TestElement_Reads(t *testing.T) {
	_, elem := elementServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"text": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]interface{}{"value": "Please enter a valid email address"})
		},
		"attribute/content-desc": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]interface{}{"value": "input-email"})
		},
		"rect": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]interface{}{"value": map[string]interface{}{
				"x": 10.0, "y": 200.0, "width": 300.0, "height": 48.0,
			}})
		},
		"displayed": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]interface{}{"value": true})
		},
		"enabled": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]interface{}{"value": false})
		},
	})

	text, err := elem.Text()
	if err != nil || text != "Please enter a valid email address" {
		t.Errorf("Text() = %q, %v", text, err)
	}

	attr, err := elem.Attribute("content-desc")
	if err != nil || attr != "input-email" {
		t.Errorf("Attribute() = %q, %v", attr, err)
	}

	rect, err := elem.Rect()
	if err != nil {
		t.Fatalf("Rect failed: %v", err)
	}
	if rect.Width != 300 || rect.Height != 48 {
		t.Errorf("Rect = %+v", rect)
	}
	cx, cy := rect.Center()
	if cx != 160 || cy != 224 {
		t.Errorf("Center = (%d,%d)", cx, cy)
	}
	if rect.Zero() {
		t.Error("300x48 rect should not be zero")
	}

	displayed, err := elem.Displayed()
	if err != nil || !displayed {
		t.Errorf("Displayed() = %v, %v", displayed, err)
	}

	enabled, err := elem.Enabled()
	if err != nil || enabled {
		t.Errorf("Enabled() = %v, %v", enabled, err)
	}
}

func TestLocator_String(t *testing.T) {
	loc := ByAccessibilityID("button-LOGIN")
	if got := loc.String(); got != "accessibility id=button-LOGIN" {
		t.Errorf("String() = %q", got)
	}
	if loc.IsZero() {
		t.Error("constructed locator should not be zero")
	}
	if !(Locator{}).IsZero() {
		t.Error("empty locator should be zero")
	}

	ui := ByAndroidUIAutomator(`new UiSelector().text("LOGIN")`)
	if got := ui.String(); got != `-android uiautomator=new UiSelector().text("LOGIN")` {
		t.Errorf("String() = %q", got)
	}
}
