package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
)

// body accumulates rendered blocks and tracks which lines belong to the
// focused control so the viewport can follow it.
type body struct {
	blocks   []string
	lines    int
	focusTop int
	focusEnd int
}

func (b *body) add(s string, focused bool) {
	h := lipgloss.Height(s)
	if focused {
		b.focusTop = b.lines
		b.focusEnd = b.lines + h - 1
	}
	b.blocks = append(b.blocks, s)
	b.lines += h
}

func (b *body) String() string {
	return strings.Join(b.blocks, "\n")
}

// renderBody renders every field, the submit button and the error summary.
// It returns the content and the first and last line of the focused control.
func renderBody(v form.View, theme Theme, width int) (string, int, int) {
	b := &body{}

	for i, fv := range v.Fields {
		if fv.Section != "" {
			if i > 0 {
				b.add("", false)
			}
			b.add(theme.Section.Render(fv.Section), false)
		}
		b.add(renderField(fv, theme), fv.Focused)
	}

	b.add("", false)
	b.add(renderSubmit(v.SubmitFocused, theme, width), v.SubmitFocused)

	if v.ErrorCount > 0 {
		noun := "errors"
		if v.ErrorCount == 1 {
			noun = "error"
		}
		summary := theme.Error.Render(fmt.Sprintf("%d validation %s", v.ErrorCount, noun))
		b.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary), false)
	}

	return b.String(), b.focusTop, b.focusEnd
}

func renderField(fv form.FieldView, theme Theme) string {
	marker := "  "
	if fv.Focused {
		marker = theme.LabelFocused.Render("▸ ")
	}

	var rows []string
	if fv.Kind == field.KindCheckbox {
		rows = append(rows, marker+renderCheckbox(fv, theme))
	} else {
		line := marker + renderLabel(fv, theme)
		switch fv.Kind {
		case field.KindText:
			line += renderText(fv, theme)
		case field.KindSelect:
			line += renderSelect(fv, theme)
		}
		rows = append(rows, line)
		if fv.Open {
			rows = append(rows, renderOptions(fv, theme)...)
		}
	}

	if fv.Error != "" {
		indent := strings.Repeat(" ", LabelWidth+2)
		rows = append(rows, indent+theme.Error.Render("✗ "+fv.Error))
	}
	return strings.Join(rows, "\n")
}

func renderLabel(fv form.FieldView, theme Theme) string {
	style := theme.Label
	if fv.Focused {
		style = theme.LabelFocused
	}
	label := style.Render(fv.Label)
	if fv.Required {
		label += theme.Required.Render(" *")
	}
	return lipgloss.NewStyle().Width(LabelWidth).Render(label)
}

func inputStyle(fv form.FieldView, theme Theme) lipgloss.Style {
	if fv.Focused {
		return theme.InputFocused.Width(InputWidth)
	}
	return theme.Input.Width(InputWidth)
}

// renderText shows the value with a cursor cell when focused. Text wider than
// the input box scrolls to keep the cursor visible.
func renderText(fv form.FieldView, theme Theme) string {
	style := inputStyle(fv, theme)

	if fv.Text == "" {
		placeholder := theme.Placeholder.Render(fv.Placeholder)
		if fv.Focused {
			return style.Render(theme.Cursor.Render(" ") + placeholder)
		}
		return style.Render(placeholder)
	}

	runes := []rune(fv.Text)
	cursor := utf8.RuneCountInString(fv.Text[:fv.Cursor])
	start, end := textWindow(runes, cursor, InputWidth)
	visible := runes[start:end]
	cursor -= start

	if !fv.Focused {
		return style.Render(string(visible))
	}

	under := " "
	after := ""
	if cursor < len(visible) {
		under = string(visible[cursor])
		after = string(visible[cursor+1:])
	}
	line := string(visible[:cursor]) + theme.Cursor.Render(under) + after
	return style.Render(line)
}

// textWindow returns the runes [start, end) that fit in width terminal cells
// with the cursor cell visible. Wide runes count as two cells.
func textWindow(runes []rune, cursor, width int) (start, end int) {
	cursorCells := 1
	if cursor < len(runes) {
		cursorCells = runewidth.RuneWidth(runes[cursor])
	}

	used := cursorCells
	for _, r := range runes[:cursor] {
		used += runewidth.RuneWidth(r)
	}
	for used > width && start < cursor {
		used -= runewidth.RuneWidth(runes[start])
		start++
	}

	end = start
	used = 0
	for end < len(runes) {
		w := runewidth.RuneWidth(runes[end])
		if used+w > width {
			break
		}
		used += w
		end++
	}
	return start, end
}

func renderSelect(fv form.FieldView, theme Theme) string {
	style := inputStyle(fv, theme)
	arrow := " ▼"
	if fv.Open {
		arrow = " ▲"
	}

	display := fv.Display()
	if display == "" {
		hint := fv.Placeholder
		if hint == "" {
			hint = "Select..."
		}
		display = theme.Placeholder.Render(hint)
	}
	return style.Render(display) + arrow
}

// renderOptions renders a window of at most MaxDropdownRows options that
// always contains the highlighted one.
func renderOptions(fv form.FieldView, theme Theme) []string {
	indent := strings.Repeat(" ", LabelWidth+2)
	start, end := dropdownWindow(len(fv.Options), fv.Highlighted)

	var rows []string
	for i := start; i < end; i++ {
		opt := fv.Options[i]
		prefix := "  "
		if i == fv.Selected {
			prefix = "✓ "
		}
		style := theme.Option
		if i == fv.Highlighted {
			style = theme.OptionActive
		}
		rows = append(rows, indent+style.Width(InputWidth).Render(prefix+opt.Label))
	}
	if end-start < len(fv.Options) {
		rows = append(rows, indent+theme.Subtle.Render(fmt.Sprintf("  %d/%d", fv.Highlighted+1, len(fv.Options))))
	}
	return rows
}

// dropdownWindow returns the [start, end) range of visible options
func dropdownWindow(total, highlighted int) (int, int) {
	if total <= MaxDropdownRows {
		return 0, total
	}
	start := 0
	if highlighted >= MaxDropdownRows {
		start = highlighted - MaxDropdownRows + 1
	}
	return start, start + MaxDropdownRows
}

func renderCheckbox(fv form.FieldView, theme Theme) string {
	box := "[ ]"
	if fv.Checked {
		box = "[x]"
	}
	boxStyle := theme.Label
	labelStyle := theme.Label
	if fv.Focused {
		boxStyle = theme.InputFocused
		labelStyle = theme.LabelFocused
	}

	line := boxStyle.Render(box) + " " + labelStyle.Render(fv.Label)
	if fv.Required {
		line += theme.Required.Render(" *")
	}
	return line
}

func renderSubmit(focused bool, theme Theme, width int) string {
	style := theme.Button
	if focused {
		style = theme.ButtonFocused
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render("Submit"))
}
