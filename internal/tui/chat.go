package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rodrigo/fitdeck/internal/models"
	"github.com/rodrigo/fitdeck/internal/render"
)

// Canned replies shown in the transcript instead of raw errors.
const (
	apologyReply       = "Sorry, I'm having trouble reaching your coach right now. Let's try again in a minute."
	emptyReplyFallback = "I didn't quite catch that. Give me another rep — ask again!"
)

// handleSend implements the chat submit path: a blank prompt and an
// in-flight request are both silent no-ops.
func (m Model) handleSend() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.textarea.Value())
	if prompt == "" || m.loading {
		return m, nil
	}

	m.messages = append(m.messages, models.NewUserMessage(prompt))
	m.textarea.Reset()
	m.loading = true
	m.animationFrame = 0
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.sendMessage(prompt),
		m.spinner.Tick,
		animationTick(),
	)
}

// sendMessage returns a command that asks the coach and wraps the
// outcome in a response or error message. The context carries no
// deadline; a request runs until the transport itself gives up.
func (m Model) sendMessage(prompt string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		reply, err := client.Generate(context.Background(), prompt)
		if err != nil {
			return coachErrMsg{err: err}
		}
		return coachResponseMsg{text: reply}
	}
}

// copyLastReply copies the most recent coach message to the clipboard
func (m *Model) copyLastReply() {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Role == models.RoleCoach {
			_ = clipboard.WriteAll(m.messages[i].Text)
			return
		}
	}
}

// updateViewport rebuilds the transcript view from the message history
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	if len(m.messages) == 0 {
		m.viewport.SetContent(m.renderWelcome())
		return
	}

	var b strings.Builder
	bubbleWidth := m.viewport.Width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case models.RoleUser:
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(userBubbleStyle.MaxWidth(bubbleWidth).Render(msg.Text))
		case models.RoleCoach:
			b.WriteString(coachLabelStyle.Render("Coach"))
			b.WriteString("\n")
			rendered := m.renderMarkdown(msg.Text, bubbleWidth)
			b.WriteString(coachBubbleStyle.MaxWidth(bubbleWidth + 4).Render(rendered))
		}
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}

// renderMarkdown renders coach replies as markdown, falling back to
// plain text when rendering fails.
func (m Model) renderMarkdown(content string, width int) string {
	opts := render.LoadOptionsFromConfigWithWidth(width)
	rendered, err := render.Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// renderCoachTab renders the chat transcript, loading indicator and input
func (m Model) renderCoachTab() string {
	contentWidth := m.width - 4

	sections := []string{m.viewport.View()}

	if m.loading {
		sections = append(sections, m.renderLoadingIndicator())
	}

	inputLabel := inputLabelStyle.Render("Message")
	input := inputPanelStyle.Width(contentWidth - 2).Render(
		inputLabel + "\n" + m.textarea.View(),
	)
	sections = append(sections, input)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoadingIndicator renders the animated "coach is thinking" line
func (m Model) renderLoadingIndicator() string {
	label := "Coach is thinking"
	var b strings.Builder
	for i, r := range label {
		colorIdx := (i + m.animationFrame) % len(gradientColors)
		b.WriteString(lipgloss.NewStyle().
			Foreground(gradientColors[colorIdx]).
			Render(string(r)))
	}
	return "  " + m.spinner.View() + " " + b.String()
}

// renderWelcome renders the empty-transcript welcome screen
func (m Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(welcomeIconStyle.Render("  💪 ") + welcomeTitleStyle.Render("Ready to train?"))
	b.WriteString("\n\n")
	b.WriteString(welcomeStyle.Render("  Ask your coach about workouts, form, recovery or nutrition."))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("  Try: \"give me a leg workout\" or \"how do I fix my squat depth?\""))
	return b.String()
}
