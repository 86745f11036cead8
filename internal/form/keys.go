package form

import (
	"fmt"
	"strings"
)

// KeyCode identifies a key
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune            // printable character in KeyEvent.Rune
	KeySpace
	KeyTab
	KeyBacktab // shift+tab reported as its own key by some terminals
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "unknown",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBacktab:   "shift+tab",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
}

// String returns the key name
func (k KeyCode) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// KeyEvent is a single key press with its modifiers
type KeyEvent struct {
	Code  KeyCode
	Rune  rune
	Shift bool
	Ctrl  bool
}

// Key returns an event for a non-character key
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// Rune returns an event for a printable character
func Rune(r rune) KeyEvent {
	if r == ' ' {
		return KeyEvent{Code: KeySpace, Rune: ' '}
	}
	return KeyEvent{Code: KeyRune, Rune: r}
}

// Ctrl returns an event for ctrl+r
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Ctrl: true}
}

// ShiftTab returns a shift+tab event
func ShiftTab() KeyEvent {
	return KeyEvent{Code: KeyTab, Shift: true}
}

// normalize folds equivalent encodings into one form
func (e KeyEvent) normalize() KeyEvent {
	switch {
	case e.Code == KeyBacktab:
		return KeyEvent{Code: KeyTab, Shift: true}
	case e.Code == KeyRune && e.Rune == ' ' && !e.Ctrl:
		return KeyEvent{Code: KeySpace, Rune: ' ', Shift: e.Shift}
	case e.Code == KeyRune && e.Ctrl:
		e.Rune = []rune(strings.ToLower(string(e.Rune)))[0]
	}
	return e
}

// String returns a readable form such as "ctrl+a" or "shift+tab"
func (e KeyEvent) String() string {
	var name string
	if e.Code == KeyRune {
		name = string(e.Rune)
	} else {
		name = e.Code.String()
	}
	if e.Code == KeyBacktab {
		return name
	}
	if e.Shift && e.Code != KeyRune {
		name = "shift+" + name
	}
	if e.Ctrl {
		name = "ctrl+" + name
	}
	return name
}
