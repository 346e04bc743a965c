package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rodrigo/fitdeck/internal/fitness"
)

// renderHomeTab renders the daily stat cards and today's scheduled workout
func (m Model) renderHomeTab() string {
	contentWidth := m.width - 4

	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("Today"))
	b.WriteString("\n")

	cardWidth := (contentWidth-2)/4 - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	var cards []string
	for _, stat := range fitness.TodayStats() {
		card := statCardStyle.Width(cardWidth).Render(
			statValueStyle.Render(stat.Value) + "\n" +
				statLabelStyle.Render(stat.Label) + "\n" +
				hintStyle.Render(stat.Hint),
		)
		cards = append(cards, card)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	today := fitness.TodayWorkout()
	b.WriteString(sectionTitleStyle.Render("Scheduled workout"))
	b.WriteString("\n")

	var w strings.Builder
	w.WriteString(titleStyle.Render(today.Name))
	w.WriteString("\n")
	w.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%s · %d min · %d exercises",
		today.Category, today.Minutes, today.ExerciseCount(),
	)))
	w.WriteString("\n\n")
	for _, ex := range today.Exercises {
		w.WriteString(exerciseRowStyle.Render(fmt.Sprintf(
			"%s  %dx%s",
			exerciseNameStyle.Render(ex.Name), ex.Sets, ex.Reps,
		)))
		w.WriteString("\n")
	}

	b.WriteString(contentPanelStyle.Width(contentWidth - 2).Render(
		strings.TrimRight(w.String(), "\n"),
	))

	return b.String()
}
