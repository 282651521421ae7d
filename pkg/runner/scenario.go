// Package runner executes UI scenarios against a device session.
package runner

// Scenario is a named, taggable UI test. Run receives a live session
// with screen accessors already wired.
type Scenario struct {
	Name string
	Tags []string
	Run  func(s *Session) error
}

// HasTag reports whether the scenario carries the tag.
func (sc Scenario) HasTag(tag string) bool {
	for _, t := range sc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// selected applies include/exclude tag filters. An empty include list
// selects everything; exclude wins over include.
func selected(sc Scenario, include, exclude []string) bool {
	for _, tag := range exclude {
		if sc.HasTag(tag) {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, tag := range include {
		if sc.HasTag(tag) {
			return true
		}
	}
	return false
}
