package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite warns that path already exists and asks whether to replace
// it. Only "y" or "yes" (any case) confirms; anything else, including EOF,
// declines.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	width := GetTerminalWidth()

	title := WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  Output file exists", WarningMarker))
	body := lipgloss.NewStyle().Foreground(TextColor).Render("   " + path + " will be replaced.")

	box := resultBoxStyle(width, WarningColor).
		Render(strings.Join([]string{"", title, "", body, ""}, "\n"))

	fmt.Fprintln(out, box)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Fprint(out, promptStyle.Render("Overwrite? [y/N]: "))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && input == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Fprintln(out, cancelStyle.Render("  Keeping the existing file."))
	return false
}
