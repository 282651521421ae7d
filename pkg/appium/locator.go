package appium

import "fmt"

// Strategy is a WebDriver element location strategy.
type Strategy string

// Location strategies supported by the Appium server.
const (
	StrategyAccessibilityID     Strategy = "accessibility id"
	StrategyID                  Strategy = "id"
	StrategyXPath               Strategy = "xpath"
	StrategyAndroidUIAutomator  Strategy = "-android uiautomator"
	StrategyIOSPredicateString  Strategy = "-ios predicate string"
	StrategyClassName           Strategy = "class name"
)

// Locator is an immutable (strategy, selector) pair identifying a UI
// element. Locators have no identity beyond their pair value; screens
// define them once as package-level tables.
type Locator struct {
	Strategy Strategy
	Value    string
}

// ByAccessibilityID locates by accessibility id (content-desc on Android,
// accessibility identifier on iOS).
func ByAccessibilityID(value string) Locator {
	return Locator{Strategy: StrategyAccessibilityID, Value: value}
}

// ByID locates by resource id.
func ByID(value string) Locator {
	return Locator{Strategy: StrategyID, Value: value}
}

// ByXPath locates by XPath over the UI tree.
func ByXPath(value string) Locator {
	return Locator{Strategy: StrategyXPath, Value: value}
}

// ByAndroidUIAutomator locates by a UiSelector expression.
func ByAndroidUIAutomator(value string) Locator {
	return Locator{Strategy: StrategyAndroidUIAutomator, Value: value}
}

// String returns a diagnostic representation used in error details.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Value)
}

// IsZero reports whether the locator is unset.
func (l Locator) IsZero() bool {
	return l.Strategy == "" && l.Value == ""
}
