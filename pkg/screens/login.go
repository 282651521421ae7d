package screens

import (
	"strings"
	"time"

	"github.com/devicelab-dev/appqa/pkg/appium"
)

// Login screen locator table.
var (
	loginTab  = appium.ByAccessibilityID("button-login-container")
	signupTab = appium.ByAccessibilityID("button-sign-up-container")

	emailInput    = appium.ByAccessibilityID("input-email")
	passwordInput = appium.ByAccessibilityID("input-password")
	loginButton   = appium.ByAccessibilityID("button-LOGIN")

	signupConfirmPasswordInput = appium.ByAccessibilityID("input-repeat-password")
	signupButton               = appium.ByAccessibilityID("button-SIGN UP")

	emailErrorText    = appium.ByXPath(`//android.widget.TextView[contains(@text, 'Please enter a valid email')]`)
	passwordErrorText = appium.ByXPath(`//android.widget.TextView[contains(@text, 'Please enter at least 8 characters')]`)

	alertTitle    = appium.ByID("android:id/alertTitle")
	alertMessage  = appium.ByID("android:id/message")
	alertOKButton = appium.ByID("android:id/button1")
)

// validation errors surface quickly after blur; a shorter budget keeps
// negative checks from dragging the suite out.
const validationErrorTimeout = 3 * time.Second

// LoginScreen drives the login/sign-up screen of the demo app.
type LoginScreen struct {
	*Screen
}

// NewLoginScreen creates the login page object.
func NewLoginScreen(s *Screen) *LoginScreen {
	return &LoginScreen{Screen: s}
}

// Navigation

// Open navigates to the login screen from the navigation bar.
func (l *LoginScreen) Open() (*LoginScreen, error) {
	return l, l.Tap(loginNavButton)
}

// SelectLoginTab selects the Login tab.
func (l *LoginScreen) SelectLoginTab() (*LoginScreen, error) {
	return l, l.Tap(loginTab)
}

// SelectSignupTab selects the Sign Up tab.
func (l *LoginScreen) SelectSignupTab() (*LoginScreen, error) {
	return l, l.Tap(signupTab)
}

// Form entry

// EnterEmail types into the email field.
func (l *LoginScreen) EnterEmail(email string) (*LoginScreen, error) {
	return l, l.Type(emailInput, email)
}

// EnterPassword types into the password field.
func (l *LoginScreen) EnterPassword(password string) (*LoginScreen, error) {
	return l, l.Type(passwordInput, password)
}

// SubmitLogin taps the LOGIN button.
func (l *LoginScreen) SubmitLogin() (*LoginScreen, error) {
	return l, l.Tap(loginButton)
}

// Login performs the complete login flow.
func (l *LoginScreen) Login(email, password string) error {
	if _, err := l.EnterEmail(email); err != nil {
		return err
	}
	if _, err := l.EnterPassword(password); err != nil {
		return err
	}
	_, err := l.SubmitLogin()
	return err
}

// Sign up

// EnterConfirmPassword types into the repeat-password field.
func (l *LoginScreen) EnterConfirmPassword(password string) (*LoginScreen, error) {
	return l, l.Type(signupConfirmPasswordInput, password)
}

// SubmitSignup taps the SIGN UP button.
func (l *LoginScreen) SubmitSignup() (*LoginScreen, error) {
	return l, l.Tap(signupButton)
}

// Checks and reads

// IsDisplayed reports whether the login form is visible.
func (l *LoginScreen) IsDisplayed() bool {
	return l.Displayed(emailInput)
}

// EmailErrorDisplayed reports whether the email validation error shows.
func (l *LoginScreen) EmailErrorDisplayed() bool {
	return l.DisplayedWithin(emailErrorText, validationErrorTimeout)
}

// PasswordErrorDisplayed reports whether the password validation error
// shows.
func (l *LoginScreen) PasswordErrorDisplayed() bool {
	return l.DisplayedWithin(passwordErrorText, validationErrorTimeout)
}

// EmailError reads the email validation error text.
func (l *LoginScreen) EmailError() (string, error) {
	return l.Text(emailErrorText)
}

// PasswordError reads the password validation error text.
func (l *LoginScreen) PasswordError() (string, error) {
	return l.Text(passwordErrorText)
}

// Alert handling

// AlertDisplayed reports whether a popup alert is visible.
func (l *LoginScreen) AlertDisplayed() bool {
	return l.Displayed(alertTitle)
}

// AlertTitle reads the alert title.
func (l *LoginScreen) AlertTitle() (string, error) {
	return l.Text(alertTitle)
}

// AlertMessage reads the alert message body.
func (l *LoginScreen) AlertMessage() (string, error) {
	return l.Text(alertMessage)
}

// DismissAlert taps the alert OK button.
func (l *LoginScreen) DismissAlert() (*LoginScreen, error) {
	return l, l.Tap(alertOKButton)
}

// LoginSucceeded reports whether login produced the success alert:
// alert visible with a title containing "Success".
func (l *LoginScreen) LoginSucceeded() bool {
	if !l.AlertDisplayed() {
		return false
	}
	title, err := l.AlertTitle()
	if err != nil {
		return false
	}
	return strings.Contains(title, "Success")
}
