package models

import "testing"

func TestTabString(t *testing.T) {
	tests := []struct {
		tab  Tab
		want string
	}{
		{TabHome, "Home"},
		{TabWorkouts, "Workouts"},
		{TabCoach, "Coach"},
		{TabProfile, "Profile"},
		{Tab(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.tab.String(); got != tt.want {
			t.Errorf("Tab(%d).String() = %q, want %q", tt.tab, got, tt.want)
		}
	}
}

func TestTabCycling(t *testing.T) {
	if got := TabProfile.Next(); got != TabHome {
		t.Errorf("TabProfile.Next() = %v, want TabHome", got)
	}
	if got := TabHome.Prev(); got != TabProfile {
		t.Errorf("TabHome.Prev() = %v, want TabProfile", got)
	}

	// A full cycle returns to the starting tab
	tab := TabCoach
	for i := 0; i < len(AllTabs()); i++ {
		tab = tab.Next()
	}
	if tab != TabCoach {
		t.Errorf("full Next() cycle ended on %v, want TabCoach", tab)
	}
}

func TestTabFromDigit(t *testing.T) {
	tests := []struct {
		r    rune
		want Tab
		ok   bool
	}{
		{'1', TabHome, true},
		{'2', TabWorkouts, true},
		{'3', TabCoach, true},
		{'4', TabProfile, true},
		{'5', TabHome, false},
		{'a', TabHome, false},
	}

	for _, tt := range tests {
		got, ok := TabFromDigit(tt.r)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("TabFromDigit(%q) = (%v, %v), want (%v, %v)", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMessageConstructors(t *testing.T) {
	user := NewUserMessage("give me a leg workout")
	if user.Role != RoleUser || user.Text != "give me a leg workout" {
		t.Errorf("NewUserMessage = %+v", user)
	}

	coach := NewCoachMessage("Squats 4x8...")
	if coach.Role != RoleCoach || coach.Text != "Squats 4x8..." {
		t.Errorf("NewCoachMessage = %+v", coach)
	}
}

func TestWorkoutSessionExerciseCount(t *testing.T) {
	w := WorkoutSession{
		Name:     "Leg Day",
		Category: CategoryStrength,
		Exercises: []Exercise{
			{Name: "Back Squat", Sets: 4, Reps: "8"},
			{Name: "Romanian Deadlift", Sets: 3, Reps: "10"},
		},
	}

	if got := w.ExerciseCount(); got != 2 {
		t.Errorf("ExerciseCount() = %d, want 2", got)
	}
}
