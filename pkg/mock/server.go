// Package mock provides a fake WebDriver server for testing the suite
// without a device. Tests script a UI state (which elements exist, when
// they become visible, what tapping them does) and point the real client
// at the server.
package mock

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
)

const w3cElementKey = "element-6066-11e4-a52e-4f735466cecf"

// minimal valid PNG (1x1 transparent pixel)
var pngPixel = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

// Element is the scripted state of a single UI element.
type Element struct {
	Text    string
	Visible bool
	Enabled bool
	Width   int
	Height  int
	Attrs   map[string]string

	// Timing: zero means effective immediately.
	presentAt time.Time
	visibleAt time.Time
}

// Server is a scripted WebDriver endpoint backed by httptest.
type Server struct {
	mu       sync.Mutex
	srv      *httptest.Server
	elements map[string]*Element // locator key -> state
	ids      map[string]string   // element id -> locator key
	nextID   int
	sessions int
	deletes  int
	onClick  map[string]func(*Server)
	failNext int // HTTP 500s to inject before recovering
}

// NewServer starts a mock server with an empty UI.
func NewServer() *Server {
	s := &Server{
		elements: make(map[string]*Element),
		ids:      make(map[string]string),
		onClick:  make(map[string]func(*Server)),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL returns the server base URL for appium.NewClient.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Sessions returns how many sessions were created.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// Deletes returns how many sessions were deleted.
func (s *Server) Deletes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletes
}

func key(loc appium.Locator) string {
	return string(loc.Strategy) + "\x00" + loc.Value
}

// Add registers an element that is immediately present. Zero Width/Height
// default to a tappable size; Enabled defaults are the caller's problem.
func (s *Server) Add(loc appium.Locator, el Element) {
	if el.Width == 0 {
		el.Width = 200
	}
	if el.Height == 0 {
		el.Height = 48
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements[key(loc)] = &el
}

// AddAfter registers an element that enters the tree after delay.
func (s *Server) AddAfter(loc appium.Locator, el Element, delay time.Duration) {
	el.presentAt = time.Now().Add(delay)
	s.Add(loc, el)
}

// ShowAfter makes an existing element report displayed after delay.
func (s *Server) ShowAfter(loc appium.Locator, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.elements[key(loc)]; ok {
		el.Visible = true
		el.visibleAt = time.Now().Add(delay)
	}
}

// Remove deletes the element from the scripted tree.
func (s *Server) Remove(loc appium.Locator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.elements, key(loc))
}

// OnClick registers a hook that runs when the element is clicked,
// letting tests script screen transitions.
func (s *Server) OnClick(loc appium.Locator, fn func(*Server)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClick[key(loc)] = fn
}

// Text returns the current text of a scripted element (e.g. typed input).
func (s *Server) Text(loc appium.Locator) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.elements[key(loc)]; ok {
		return el.Text
	}
	return ""
}

// FailNext injects n HTTP 500 responses before normal handling resumes.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// handlers

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.failNext > 0 {
		s.failNext--
		s.mu.Unlock()
		writeError(w, http.StatusInternalServerError, "unknown error", "injected failure")
		return
	}
	s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case r.Method == "POST" && path == "session":
		s.mu.Lock()
		s.sessions++
		n := s.sessions
		s.mu.Unlock()
		writeValue(w, map[string]interface{}{
			"sessionId": fmt.Sprintf("mock-session-%d", n),
			"capabilities": map[string]interface{}{
				"platformName": "Android",
			},
		})

	case r.Method == "DELETE" && len(parts) == 2 && parts[0] == "session":
		s.mu.Lock()
		s.deletes++
		s.mu.Unlock()
		writeValue(w, nil)

	case r.Method == "POST" && len(parts) == 3 && parts[2] == "element":
		s.findElement(w, r)

	case r.Method == "POST" && len(parts) == 3 && parts[2] == "elements":
		s.findElements(w, r)

	case len(parts) >= 5 && parts[2] == "element":
		s.elementCommand(w, r, parts[3], strings.Join(parts[4:], "/"))

	case r.Method == "GET" && len(parts) == 3 && parts[2] == "screenshot":
		writeValue(w, base64.StdEncoding.EncodeToString(pngPixel))

	case r.Method == "GET" && len(parts) == 3 && parts[2] == "source":
		writeValue(w, "<hierarchy/>")

	case r.Method == "POST" && strings.HasSuffix(path, "appium/device/press_keycode"):
		writeValue(w, nil)

	case r.Method == "POST" && strings.HasSuffix(path, "appium/device/hide_keyboard"):
		writeValue(w, nil)

	default:
		writeError(w, http.StatusNotFound, "unknown command", r.URL.Path)
	}
}

func (s *Server) findElement(w http.ResponseWriter, r *http.Request) {
	loc, ok := decodeLocator(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid argument", "bad locator")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(loc)
	el, exists := s.elements[k]
	if !exists || time.Now().Before(el.presentAt) {
		writeError(w, http.StatusNotFound, "no such element", "element not found: "+loc.String())
		return
	}

	s.nextID++
	id := "mock-elem-" + strconv.Itoa(s.nextID)
	s.ids[id] = k
	writeValue(w, map[string]interface{}{w3cElementKey: id})
}

func (s *Server) findElements(w http.ResponseWriter, r *http.Request) {
	loc, ok := decodeLocator(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid argument", "bad locator")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(loc)
	el, exists := s.elements[k]
	if !exists || time.Now().Before(el.presentAt) {
		writeValue(w, []interface{}{})
		return
	}

	s.nextID++
	id := "mock-elem-" + strconv.Itoa(s.nextID)
	s.ids[id] = k
	writeValue(w, []interface{}{map[string]interface{}{w3cElementKey: id}})
}

func (s *Server) elementCommand(w http.ResponseWriter, r *http.Request, elemID, cmd string) {
	s.mu.Lock()
	k, ok := s.ids[elemID]
	el := s.elements[k]
	s.mu.Unlock()

	if !ok || el == nil {
		writeError(w, http.StatusNotFound, "stale element reference", "unknown element "+elemID)
		return
	}

	switch {
	case cmd == "click" && r.Method == "POST":
		s.mu.Lock()
		hook := s.onClick[k]
		s.mu.Unlock()
		if hook != nil {
			hook(s)
		}
		writeValue(w, nil)

	case cmd == "clear" && r.Method == "POST":
		s.mu.Lock()
		el.Text = ""
		s.mu.Unlock()
		writeValue(w, nil)

	case cmd == "value" && r.Method == "POST":
		var body struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		el.Text += body.Text
		s.mu.Unlock()
		writeValue(w, nil)

	case cmd == "text" && r.Method == "GET":
		s.mu.Lock()
		text := el.Text
		s.mu.Unlock()
		writeValue(w, text)

	case strings.HasPrefix(cmd, "attribute/") && r.Method == "GET":
		name := strings.TrimPrefix(cmd, "attribute/")
		s.mu.Lock()
		val := el.Attrs[name]
		s.mu.Unlock()
		writeValue(w, val)

	case cmd == "rect" && r.Method == "GET":
		s.mu.Lock()
		width, height := el.Width, el.Height
		s.mu.Unlock()
		writeValue(w, map[string]interface{}{
			"x": 10, "y": 100, "width": width, "height": height,
		})

	case cmd == "displayed" && r.Method == "GET":
		s.mu.Lock()
		visible := el.Visible && !time.Now().Before(el.visibleAt)
		s.mu.Unlock()
		writeValue(w, visible)

	case cmd == "enabled" && r.Method == "GET":
		s.mu.Lock()
		enabled := el.Enabled
		s.mu.Unlock()
		writeValue(w, enabled)

	default:
		writeError(w, http.StatusNotFound, "unknown command", cmd)
	}
}

func decodeLocator(r *http.Request) (appium.Locator, bool) {
	var body struct {
		Using string `json:"using"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Using == "" {
		return appium.Locator{}, false
	}
	return appium.Locator{Strategy: appium.Strategy(body.Using), Value: body.Value}, true
}

func writeValue(w http.ResponseWriter, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"value": value})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"value": map[string]interface{}{
			"error":   code,
			"message": message,
		},
	})
}
