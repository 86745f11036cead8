package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/termform/internal/form"
)

// Default size used until the first WindowSizeMsg arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for a single form
type Model struct {
	form  *form.Form
	theme Theme

	// UI state
	Width    int
	Height   int
	viewport viewport.Model

	// Help
	Help help.Model
	Keys keyMap
}

// New creates a model that drives f
func New(f *form.Form, theme Theme) Model {
	h := help.New()
	h.Styles.ShortKey = theme.Subtle.Bold(true)
	h.Styles.ShortDesc = theme.Subtle
	h.Styles.ShortSeparator = theme.Subtle
	h.Styles.FullKey = theme.Subtle.Bold(true)
	h.Styles.FullDesc = theme.Subtle
	h.Styles.FullSeparator = theme.Subtle

	m := Model{
		form:  f,
		theme: theme,
		Help:  h,
		Keys:  newKeyMap(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Form returns the form the model drives
func (m Model) Form() *form.Form {
	return m.form
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.form.Cancel()
			return m, tea.Quit
		}
		for _, ev := range translateKey(msg) {
			m.form.HandleKey(ev)
		}
		if m.form.Result().IsTerminal() {
			return m, tea.Quit
		}
		m.syncViewport()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.form.Result().IsTerminal() {
		return ""
	}
	helpText := m.Help.View(m.Keys.forView(m.form.View()))
	return RenderApplicationContainer(m.theme, m.form.Title(), m.viewport.View(), helpText, m.Width, m.Height)
}

func (m *Model) resize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	m.Width = width
	m.Height = height
	m.Help.Width = bodyWidth(width)
	m.viewport = viewport.New(bodyWidth(width), bodyHeight(height))
	m.syncViewport()
}

// syncViewport re-renders the body and scrolls so the focused control is
// fully visible.
func (m *Model) syncViewport() {
	content, top, end := renderBody(m.form.View(), m.theme, m.viewport.Width)
	m.viewport.SetContent(content)

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case end >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(end - m.viewport.Height + 1)
	}
}
