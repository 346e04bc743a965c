package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rodrigo/fitdeck/internal/models"
)

var tabIcons = map[models.Tab]string{
	models.TabHome:     "🏠",
	models.TabWorkouts: "🏋",
	models.TabCoach:    "💬",
	models.TabProfile:  "👤",
}

// renderTabBar renders the four-tab navigation bar, highlighting the
// active tab.
func (m Model) renderTabBar() string {
	var tabs []string
	for _, t := range models.AllTabs() {
		label := tabIcons[t] + " " + t.String()
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return tabBarStyle.Width(m.width - 4).Render(row)
}

// renderStatusBar renders the bottom key hints for the active tab
func (m Model) renderStatusBar(width int) string {
	var hints []string
	switch m.tab {
	case models.TabCoach:
		hints = []string{
			statusKeyStyle.Render("enter") + statusDescStyle.Render(" send"),
			statusKeyStyle.Render("ctrl+y") + statusDescStyle.Render(" copy reply"),
		}
	case models.TabWorkouts:
		if m.detail != nil {
			hints = []string{
				statusKeyStyle.Render("esc") + statusDescStyle.Render(" back"),
			}
		} else {
			hints = []string{
				statusKeyStyle.Render("↑/↓") + statusDescStyle.Render(" browse"),
				statusKeyStyle.Render("enter") + statusDescStyle.Render(" details"),
			}
		}
	default:
		hints = []string{
			statusKeyStyle.Render("1-4") + statusDescStyle.Render(" jump to tab"),
		}
	}

	hints = append(hints,
		statusKeyStyle.Render("tab")+statusDescStyle.Render(" next tab"),
		statusKeyStyle.Render("esc")+statusDescStyle.Render(" quit"),
	)

	bar := strings.Join(hints, statusDescStyle.Render("  │  "))
	return statusBarStyle.Width(width).Render(bar)
}
