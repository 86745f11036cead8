package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/termform/internal/version"
)

// Application branding constants
const (
	AppName   = "termform"
	GitHubURL = "github.com/muurk/termform"
)

// Layout constants
const (
	MinTerminalWidth = 40 // Narrowest width the layout is laid out for
	LabelWidth       = 22 // Column reserved for field labels
	InputWidth       = 32 // Width of text and select input boxes
	MaxDropdownRows  = 10 // Options shown at once in an open dropdown
	chromeHeight     = 6  // Outer border, header and footer lines
)

// Theme holds the styles used to render a form
type Theme struct {
	Name string

	Border        lipgloss.Color
	Title         lipgloss.Style
	Subtle        lipgloss.Style
	Section       lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Required      lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Cursor        lipgloss.Style
	Placeholder   lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	Error         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}

// DarkTheme is the default theme
func DarkTheme() Theme {
	primary := lipgloss.Color("#7D56F4")
	accent := lipgloss.Color("#00D7FF")
	text := lipgloss.Color("#FFFFFF")
	subtle := lipgloss.Color("#8A8A8A")
	inputBg := lipgloss.Color("#3A3A3A")
	focusBg := lipgloss.Color("#1F4E99")
	green := lipgloss.Color("#43BF6D")
	red := lipgloss.Color("#FF5F5F")

	return Theme{
		Name:          "dark",
		Border:        primary,
		Title:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		Subtle:        lipgloss.NewStyle().Foreground(subtle),
		Section:       lipgloss.NewStyle().Foreground(primary).Bold(true).Underline(true),
		Label:         lipgloss.NewStyle().Foreground(text),
		LabelFocused:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Required:      lipgloss.NewStyle().Foreground(red),
		Input:         lipgloss.NewStyle().Foreground(text).Background(inputBg),
		InputFocused:  lipgloss.NewStyle().Foreground(text).Background(focusBg),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Placeholder:   lipgloss.NewStyle().Foreground(subtle),
		Option:        lipgloss.NewStyle().Foreground(text),
		OptionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(accent).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(red),
		Button:        lipgloss.NewStyle().Foreground(text).Background(inputBg).Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(green).Bold(true).Padding(0, 2),
	}
}

// LightTheme suits terminals with a light background
func LightTheme() Theme {
	primary := lipgloss.Color("#005FD7")
	text := lipgloss.Color("#000000")
	subtle := lipgloss.Color("#6C6C6C")
	inputBg := lipgloss.Color("#E4E4E4")
	focusBg := lipgloss.Color("#AFD7FF")
	red := lipgloss.Color("#D70000")

	return Theme{
		Name:          "light",
		Border:        primary,
		Title:         lipgloss.NewStyle().Foreground(primary).Bold(true),
		Subtle:        lipgloss.NewStyle().Foreground(subtle),
		Section:       lipgloss.NewStyle().Foreground(primary).Bold(true).Underline(true),
		Label:         lipgloss.NewStyle().Foreground(text),
		LabelFocused:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		Required:      lipgloss.NewStyle().Foreground(red),
		Input:         lipgloss.NewStyle().Foreground(text).Background(inputBg),
		InputFocused:  lipgloss.NewStyle().Foreground(text).Background(focusBg),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Placeholder:   lipgloss.NewStyle().Foreground(subtle),
		Option:        lipgloss.NewStyle().Foreground(text),
		OptionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(red),
		Button:        lipgloss.NewStyle().Foreground(text).Background(inputBg).Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Bold(true).Padding(0, 2),
	}
}

// ThemeNames lists the accepted theme names
var ThemeNames = []string{"dark", "light"}

// ThemeByName returns the named theme. Unknown names fall back to dark.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return DarkTheme(), false
	}
}

// BuildHeaderContent renders the form title with the app name and version
func BuildHeaderContent(theme Theme, title string, width int) string {
	left := theme.Title.Render(title)
	right := theme.Subtle.Render(AppName + " " + version.Version)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderApplicationContainer wraps content in the full-screen frame: header
// with the form title, the scrollable body and a footer with key help.
func RenderApplicationContainer(theme Theme, title, content, footerText string, terminalWidth, terminalHeight int) string {
	inner := terminalWidth - 4

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(theme.Border).
		Width(inner).
		Padding(0, 1)
	styledHeader := headerStyle.Render(BuildHeaderContent(theme, title, inner-2))

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(theme.Border).
		Width(inner).
		Padding(0, 1)
	styledFooter := footerStyle.Render(theme.Subtle.Render(footerText))

	styledContent := lipgloss.NewStyle().
		Width(inner).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// bodyHeight returns the rows left for the form body
func bodyHeight(terminalHeight int) int {
	h := terminalHeight - chromeHeight
	if h < 3 {
		return 3
	}
	return h
}

// bodyWidth returns the columns left for the form body
func bodyWidth(terminalWidth int) int {
	w := terminalWidth - 4
	if w < MinTerminalWidth {
		return MinTerminalWidth
	}
	return w
}
