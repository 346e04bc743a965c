package tui

import (
	"fmt"
	"strings"

	"github.com/rodrigo/fitdeck/internal/fitness"
)

// renderProfileTab renders the static athlete profile card
func (m Model) renderProfileTab() string {
	contentWidth := m.width - 4
	p := fitness.DefaultProfile()

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Goal", p.Goal},
		{"Level", p.Level},
		{"Weekly target", fmt.Sprintf("%d sessions", p.WeeklyTarget)},
		{"Current streak", fmt.Sprintf("%d days", p.StreakDays)},
	}
	for _, row := range rows {
		b.WriteString(statLabelStyle.Render(fmt.Sprintf("%-16s", row.label)))
		b.WriteString(exerciseNameStyle.Render(row.value))
		b.WriteString("\n")
	}

	return contentPanelStyle.Width(contentWidth - 2).Render(
		strings.TrimRight(b.String(), "\n"),
	)
}
