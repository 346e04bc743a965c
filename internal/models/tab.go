package models

// Tab identifies one of the four top-level views.
// Exactly one tab is active at a time; selecting a tab is an
// unconditional overwrite with no history stack.
type Tab int

const (
	TabHome Tab = iota
	TabWorkouts
	TabCoach
	TabProfile
)

// AllTabs returns the tabs in display order
func AllTabs() []Tab {
	return []Tab{TabHome, TabWorkouts, TabCoach, TabProfile}
}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabWorkouts:
		return "Workouts"
	case TabCoach:
		return "Coach"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Next returns the tab to the right, wrapping around
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(AllTabs()))
}

// Prev returns the tab to the left, wrapping around
func (t Tab) Prev() Tab {
	n := len(AllTabs())
	return Tab((int(t) + n - 1) % n)
}

// TabFromDigit maps the keys 1-4 to a tab. The second return value is
// false for any other rune.
func TabFromDigit(r rune) (Tab, bool) {
	switch r {
	case '1':
		return TabHome, true
	case '2':
		return TabWorkouts, true
	case '3':
		return TabCoach, true
	case '4':
		return TabProfile, true
	default:
		return TabHome, false
	}
}
