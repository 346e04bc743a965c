package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rodrigo/fitdeck/internal/coach"
	"github.com/rodrigo/fitdeck/internal/models"
)

func newTestModel() Model {
	m := NewModel(&coach.MockClient{Model: "gemini-2.5-flash"}, "gemini-2.5-flash")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.tab != models.TabHome {
		t.Errorf("initial tab = %v, want %v", m.tab, models.TabHome)
	}
	if len(m.messages) != 0 {
		t.Errorf("initial transcript length = %d, want 0", len(m.messages))
	}
	if m.loading {
		t.Error("model should not start in loading state")
	}
	if !m.ready {
		t.Error("model should be ready after window size message")
	}
}

func TestTabCycling(t *testing.T) {
	m := newTestModel()

	want := []models.Tab{
		models.TabWorkouts,
		models.TabCoach,
		models.TabProfile,
		models.TabHome, // wraps around
	}
	for _, expected := range want {
		updated, _ := m.Update(keyMsg("tab"))
		m = updated.(Model)
		if m.tab != expected {
			t.Fatalf("after tab key, tab = %v, want %v", m.tab, expected)
		}
	}

	updated, _ := m.Update(keyMsg("shift+tab"))
	m = updated.(Model)
	if m.tab != models.TabProfile {
		t.Errorf("after shift+tab from home, tab = %v, want %v", m.tab, models.TabProfile)
	}
}

func TestDigitShortcuts(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want models.Tab
	}{
		{"digit 1 selects home", "1", models.TabHome},
		{"digit 2 selects workouts", "2", models.TabWorkouts},
		{"digit 3 selects coach", "3", models.TabCoach},
		{"digit 4 selects profile", "4", models.TabProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			updated, _ := m.Update(keyMsg(tt.key))
			m = updated.(Model)
			if m.tab != tt.want {
				t.Errorf("tab = %v, want %v", m.tab, tt.want)
			}
		})
	}
}

func TestDigitsTypeIntoChatOnCoachTab(t *testing.T) {
	m := newTestModel()
	m.tab = models.TabCoach

	updated, _ := m.Update(keyMsg("2"))
	m = updated.(Model)

	if m.tab != models.TabCoach {
		t.Errorf("tab = %v, digit keys must not switch tabs while chatting", m.tab)
	}
	if m.textarea.Value() != "2" {
		t.Errorf("textarea value = %q, want %q", m.textarea.Value(), "2")
	}
}

func TestOnlyActiveTabRendered(t *testing.T) {
	m := newTestModel()

	tests := []struct {
		tab      models.Tab
		contains string
		excludes string
	}{
		{models.TabHome, "Scheduled workout", "Workout library"},
		{models.TabWorkouts, "Workout library", "Scheduled workout"},
		{models.TabCoach, "Ready to train?", "Workout library"},
		{models.TabProfile, "Weekly target", "Workout library"},
	}

	for _, tt := range tests {
		t.Run(tt.tab.String(), func(t *testing.T) {
			m.tab = tt.tab
			view := m.contentView()
			if !containsIgnoringANSI(view, tt.contains) {
				t.Errorf("view for %v missing %q", tt.tab, tt.contains)
			}
			if containsIgnoringANSI(view, tt.excludes) {
				t.Errorf("view for %v leaked content %q from another tab", tt.tab, tt.excludes)
			}
		})
	}
}

func TestEscQuitsWhenIdle(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc while idle should return a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("esc returned %v, want quit", msg)
	}
}

func TestEscIgnoredWhileLoading(t *testing.T) {
	m := newTestModel()
	m.loading = true

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(Model)

	if cmd != nil {
		t.Error("esc during an in-flight request must be a no-op")
	}
	if !m.loading {
		t.Error("loading flag must survive esc; requests cannot be cancelled")
	}
}

func TestEscLeavesWorkoutDetail(t *testing.T) {
	m := newTestModel()
	m.tab = models.TabWorkouts

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)
	if m.detail == nil {
		t.Fatal("enter on workouts tab should open the detail view")
	}

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(Model)
	if m.detail != nil {
		t.Error("esc should close the detail view")
	}
	if cmd != nil {
		t.Error("esc from detail view must not quit the app")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	m.loading = true

	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c should always return a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("ctrl+c returned %v, want quit", msg)
	}
}
