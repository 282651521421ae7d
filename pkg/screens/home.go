package screens

import (
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
)

// Home screen locator table: bottom navigation bar plus the anchors used
// to infer the current screen.
var (
	homeNavButton    = appium.ByAccessibilityID("Home")
	webviewNavButton = appium.ByAccessibilityID("Webview")
	loginNavButton   = appium.ByAccessibilityID("Login")
	formsNavButton   = appium.ByAccessibilityID("Forms")
	swipeNavButton   = appium.ByAccessibilityID("Swipe")
	dragNavButton    = appium.ByAccessibilityID("Drag")

	homeScreenLogo  = appium.ByAccessibilityID("Home-screen")
	formsInputField = appium.ByAccessibilityID("text-input")
	formsSwitch     = appium.ByAccessibilityID("switch")
	webviewURLInput = appium.ByAccessibilityID("URL input field")
)

// anchor priority for CurrentScreen; first visible match wins.
const screenAnchorTimeout = 2 * time.Second

// HomeScreen drives the home screen and the bottom navigation bar.
type HomeScreen struct {
	*Screen
}

// NewHomeScreen creates the home page object.
func NewHomeScreen(s *Screen) *HomeScreen {
	return &HomeScreen{Screen: s}
}

// Navigation

// GoToHome taps the Home tab.
func (h *HomeScreen) GoToHome() (*HomeScreen, error) {
	return h, h.Tap(homeNavButton)
}

// GoToLogin taps the Login tab.
func (h *HomeScreen) GoToLogin() (*HomeScreen, error) {
	return h, h.Tap(loginNavButton)
}

// GoToForms taps the Forms tab.
func (h *HomeScreen) GoToForms() (*HomeScreen, error) {
	return h, h.Tap(formsNavButton)
}

// GoToWebview taps the Webview tab.
func (h *HomeScreen) GoToWebview() (*HomeScreen, error) {
	return h, h.Tap(webviewNavButton)
}

// GoToSwipe taps the Swipe tab.
func (h *HomeScreen) GoToSwipe() (*HomeScreen, error) {
	return h, h.Tap(swipeNavButton)
}

// GoToDrag taps the Drag tab.
func (h *HomeScreen) GoToDrag() (*HomeScreen, error) {
	return h, h.Tap(dragNavButton)
}

// Checks

// HomeDisplayed reports whether the home screen is visible.
func (h *HomeScreen) HomeDisplayed() bool {
	return h.Displayed(homeScreenLogo)
}

// FormsDisplayed reports whether the forms screen is visible.
func (h *HomeScreen) FormsDisplayed() bool {
	return h.Displayed(formsInputField)
}

// WebviewDisplayed reports whether the webview screen is visible.
func (h *HomeScreen) WebviewDisplayed() bool {
	return h.Displayed(webviewURLInput)
}

// NavigationBarVisible reports whether the bottom navigation bar is
// visible. Two tabs are checked to avoid a single-element false positive.
func (h *HomeScreen) NavigationBarVisible() bool {
	return h.Displayed(homeNavButton) && h.Displayed(loginNavButton)
}

// AppLaunched reports whether the app launched into its default state.
func (h *HomeScreen) AppLaunched() bool {
	return h.NavigationBarVisible()
}

// CurrentScreen infers which screen is displayed by probing anchor
// elements in a fixed priority order; the first visible anchor wins.
func (h *HomeScreen) CurrentScreen() string {
	anchors := []struct {
		name string
		loc  appium.Locator
	}{
		{"Home", homeScreenLogo},
		{"Forms", formsInputField},
		{"Webview", webviewURLInput},
		{"Login", emailInput},
	}
	probe := screenAnchorTimeout
	if h.CheckTimeout < probe {
		probe = h.CheckTimeout
	}
	for _, a := range anchors {
		if h.DisplayedWithin(a.loc, probe) {
			return a.name
		}
	}
	return "Unknown"
}

// Forms screen actions

// EnterFormsText types into the forms input field.
func (h *HomeScreen) EnterFormsText(text string) error {
	return h.Type(formsInputField, text)
}

// FormsInputText reads the forms input field.
func (h *HomeScreen) FormsInputText() (string, error) {
	return h.Text(formsInputField)
}

// ToggleSwitch flips the switch on the forms screen.
func (h *HomeScreen) ToggleSwitch() error {
	return h.Tap(formsSwitch)
}
