package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders rows as two aligned columns under a header line
func RenderTable(keyHeader, valueHeader string, rows []Detail) string {
	keyWidth := lipgloss.Width(keyHeader)
	for _, r := range rows {
		if w := lipgloss.Width(r.Key); w > keyWidth {
			keyWidth = w
		}
	}
	keyCol := lipgloss.NewStyle().Width(keyWidth + 2).PaddingLeft(2)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, keyCol.Render(TableHeaderStyle.Render(keyHeader))+"  "+TableHeaderStyle.Render(valueHeader))
	for _, r := range rows {
		lines = append(lines, keyCol.Render(TableKeyStyle.Render(r.Key))+"  "+TableValueStyle.Render(r.Value))
	}
	return strings.Join(lines, "\n")
}
