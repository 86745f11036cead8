package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
)

// keyMap defines the bindings shown in the help footer. Dispatch itself is
// done by the form; these only describe it.
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Choose key.Binding
	Submit key.Binding
	Close  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Choose, k.Submit, k.Close, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle, k.Choose},
		{k.Submit, k.Close, k.Cancel, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Choose: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "choose"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// forView enables only the bindings that apply to the focused control
func (k keyMap) forView(v form.View) keyMap {
	var focused *form.FieldView
	for i := range v.Fields {
		if v.Fields[i].Focused {
			focused = &v.Fields[i]
		}
	}

	open := focused != nil && focused.Open
	k.Toggle.SetEnabled(focused != nil && focused.Kind == field.KindCheckbox)
	k.Choose.SetEnabled(focused != nil && focused.Kind == field.KindSelect)
	k.Submit.SetEnabled(v.SubmitFocused)
	k.Close.SetEnabled(open)
	k.Cancel.SetEnabled(!open)
	if open {
		k.Next.SetHelp("tab", "next")
		k.Prev.SetHelp("shift+tab", "prev")
	}
	return k
}

// translateKey converts a Bubble Tea key message into form key events. Pasted
// text arrives as several runes and yields one event per rune.
func translateKey(msg tea.KeyMsg) []form.KeyEvent {
	switch msg.Type {
	case tea.KeyTab:
		return one(form.Key(form.KeyTab))
	case tea.KeyShiftTab:
		return one(form.ShiftTab())
	case tea.KeyUp:
		return one(form.Key(form.KeyUp))
	case tea.KeyDown:
		return one(form.Key(form.KeyDown))
	case tea.KeyLeft:
		return one(form.Key(form.KeyLeft))
	case tea.KeyRight:
		return one(form.Key(form.KeyRight))
	case tea.KeyHome:
		return one(form.Key(form.KeyHome))
	case tea.KeyEnd:
		return one(form.Key(form.KeyEnd))
	case tea.KeyEnter:
		return one(form.Key(form.KeyEnter))
	case tea.KeySpace:
		return one(form.Key(form.KeySpace))
	case tea.KeyEsc:
		return one(form.Key(form.KeyEsc))
	case tea.KeyBackspace:
		return one(form.Key(form.KeyBackspace))
	case tea.KeyDelete:
		return one(form.Key(form.KeyDelete))
	case tea.KeyCtrlA:
		return one(form.Ctrl('a'))
	case tea.KeyCtrlE:
		return one(form.Ctrl('e'))
	case tea.KeyCtrlU:
		return one(form.Ctrl('u'))
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]form.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, form.Rune(r))
		}
		return events
	}
	return nil
}

func one(ev form.KeyEvent) []form.KeyEvent {
	return []form.KeyEvent{ev}
}
