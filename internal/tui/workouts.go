package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/rodrigo/fitdeck/internal/models"
)

// workoutItem adapts a WorkoutSession for the bubbles list component
type workoutItem struct {
	session models.WorkoutSession
}

func (i workoutItem) Title() string { return i.session.Name }

func (i workoutItem) Description() string {
	return fmt.Sprintf("%s · %d min · %d exercises",
		i.session.Category, i.session.Minutes, i.session.ExerciseCount())
}

func (i workoutItem) FilterValue() string { return i.session.Name }

func newWorkoutList(sessions []models.WorkoutSession) list.Model {
	items := make([]list.Item, len(sessions))
	for i, s := range sessions {
		items[i] = workoutItem{session: s}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorPrimary).
		BorderLeftForeground(colorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorTextDim).
		BorderLeftForeground(colorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Workout library"
	l.Styles.Title = sectionTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

// renderWorkoutsTab renders either the workout browser or the detail
// view of the selected session.
func (m Model) renderWorkoutsTab() string {
	if m.detail != nil {
		return m.renderWorkoutDetail(*m.detail)
	}
	return m.workouts.View()
}

func (m Model) renderWorkoutDetail(w models.WorkoutSession) string {
	contentWidth := m.width - 4

	var b strings.Builder
	b.WriteString(titleStyle.Render(w.Name))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%s · %d min", w.Category, w.Minutes,
	)))
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("Equipment"))
	b.WriteString("\n")
	var gear []string
	for _, e := range w.Equipment {
		gear = append(gear, string(e))
	}
	b.WriteString(exerciseRowStyle.Render(strings.Join(gear, ", ")))
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("Exercises"))
	b.WriteString("\n")
	for _, ex := range w.Exercises {
		b.WriteString(exerciseRowStyle.Render(fmt.Sprintf(
			"%s  %dx%s",
			exerciseNameStyle.Render(ex.Name), ex.Sets, ex.Reps,
		)))
		b.WriteString("\n")
	}

	return contentPanelStyle.Width(contentWidth - 2).Render(
		strings.TrimRight(b.String(), "\n"),
	)
}
