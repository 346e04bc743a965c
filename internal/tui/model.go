package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rodrigo/fitdeck/internal/coach"
	"github.com/rodrigo/fitdeck/internal/fitness"
	"github.com/rodrigo/fitdeck/internal/models"
)

// animationTickMsg drives the loading animation
type animationTickMsg time.Time

// Message types for the TUI
type (
	coachResponseMsg struct {
		text string
	}
	coachErrMsg struct {
		err error
	}
)

// Model represents the TUI state. It is the sole owner of the
// transcript and the loading flag; both are mutated only inside Update.
type Model struct {
	client    coach.Client
	modelName string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	workouts list.Model

	// State
	tab            models.Tab
	messages       []models.ChatMessage
	loading        bool
	ready          bool
	animationFrame int
	detail         *models.WorkoutSession

	// Dimensions
	width  int
	height int
}

// NewModel creates the root TUI model
func NewModel(client coach.Client, modelName string) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask your coach anything..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:    client,
		modelName: modelName,
		textarea:  ta,
		spinner:   s,
		workouts:  newWorkoutList(fitness.Workouts()),
		tab:       models.TabHome,
		messages:  []models.ChatMessage{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case coachResponseMsg:
		text := msg.text
		if strings.TrimSpace(text) == "" {
			text = emptyReplyFallback
		}
		m.loading = false
		m.messages = append(m.messages, models.NewCoachMessage(text))
		m.updateViewport()
		m.viewport.GotoBottom()

	case coachErrMsg:
		// Unreachable service and error status deliberately collapse
		// into the same canned bubble; the error itself is not shown.
		m.loading = false
		m.messages = append(m.messages, models.NewCoachMessage(apologyReply))
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Forward key events to the focused child of the active tab
	if _, ok := msg.(tea.KeyMsg); ok {
		switch m.tab {
		case models.TabCoach:
			if !m.loading {
				m.textarea, cmd = m.textarea.Update(msg)
				cmds = append(cmds, cmd)
			}
		case models.TabWorkouts:
			if m.detail == nil {
				m.workouts, cmd = m.workouts.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	// The textarea owns plain keys on the coach tab, so the viewport
	// only sees page keys and non-key events like mouse wheel scroll.
	if m.tab == models.TabCoach {
		forward := true
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "pgup", "pgdown":
			default:
				forward = false
			}
		}
		if forward {
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes app-level key bindings. It returns handled=false
// for keys that should fall through to the active tab's components.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true

	case "esc":
		if m.tab == models.TabWorkouts {
			if m.detail != nil {
				m.detail = nil
				return m, nil, true
			}
			// Let the list close its own filter prompt.
			if m.workouts.FilterState() != list.Unfiltered {
				return m, nil, false
			}
		}
		// An in-flight request cannot be aborted; ignore esc while loading.
		if m.loading {
			return m, nil, true
		}
		return m, tea.Quit, true

	case "tab":
		m.tab = m.tab.Next()
		return m, nil, true

	case "shift+tab":
		m.tab = m.tab.Prev()
		return m, nil, true

	case "ctrl+y":
		if m.tab == models.TabCoach {
			m.copyLastReply()
		}
		return m, nil, true

	case "enter":
		switch m.tab {
		case models.TabCoach:
			model, cmd := m.handleSend()
			return model, cmd, true
		case models.TabWorkouts:
			if m.workouts.FilterState() == list.Filtering {
				return m, nil, false
			}
			if m.detail == nil {
				if item, ok := m.workouts.SelectedItem().(workoutItem); ok {
					w := item.session
					m.detail = &w
				}
			}
			return m, nil, true
		}

	default:
		// Digit shortcuts would collide with chat input on the coach
		// tab and with an active list filter on the workouts tab.
		if m.tab != models.TabCoach && m.workouts.FilterState() != list.Filtering {
			if r := []rune(msg.String()); len(r) == 1 {
				if tab, ok := models.TabFromDigit(r[0]); ok {
					m.tab = tab
					return m, nil, true
				}
			}
		}
	}

	return m, nil, false
}

// layout recomputes component sizes after a resize
func (m *Model) layout() {
	headerHeight := 3 // Header panel with border
	tabsHeight := 3   // Tab bar
	inputHeight := 4  // Input panel with border
	statusHeight := 2 // Status bar
	padding := 1

	vpHeight := m.height - headerHeight - tabsHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
	m.workouts.SetSize(contentWidth, vpHeight+inputHeight)
	m.updateViewport()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Warming up...")
	}

	sections := []string{
		m.renderHeader(),
		m.renderTabBar(),
		m.contentView(),
		m.renderStatusBar(m.width - 4),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// contentView dispatches rendering to the active tab's view.
// Exactly one tab view is rendered at a time.
func (m Model) contentView() string {
	switch m.tab {
	case models.TabHome:
		return m.renderHomeTab()
	case models.TabWorkouts:
		return m.renderWorkoutsTab()
	case models.TabCoach:
		return m.renderCoachTab()
	case models.TabProfile:
		return m.renderProfileTab()
	default:
		return ""
	}
}

func (m Model) renderHeader() string {
	contentWidth := m.width - 4
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("⚡ fitdeck"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.modelName),
	)
	return headerStyle.Width(contentWidth).Render(headerContent)
}

// RunApp starts the fitdeck TUI
func RunApp(client coach.Client, modelName string) error {
	m := NewModel(client, modelName)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
