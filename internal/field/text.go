package field

import (
	"unicode"
	"unicode/utf8"
)

// textState is the sub-state of a text input. cursor is a byte offset into
// value and always sits on a rune boundary.
type textState struct {
	value       string
	cursor      int
	placeholder string
}

func (t *textState) set(s string) {
	t.value = s
	t.cursor = len(s)
}

// Cursor returns the cursor byte offset of a text field (0 for other kinds)
func (f *Field) Cursor() int {
	if f.text == nil {
		return 0
	}
	return f.text.cursor
}

// Placeholder returns the display-only hint of a text field
func (f *Field) Placeholder() string {
	if f.text == nil {
		return ""
	}
	return f.text.placeholder
}

// InsertRune inserts a printable rune at the cursor
func (f *Field) InsertRune(r rune) bool {
	if f.text == nil || !unicode.IsPrint(r) {
		return false
	}
	t := f.text
	t.value = t.value[:t.cursor] + string(r) + t.value[t.cursor:]
	t.cursor += utf8.RuneLen(r)
	return f.changed(true)
}

// Backspace deletes the rune before the cursor
func (f *Field) Backspace() bool {
	if f.text == nil || f.text.cursor == 0 {
		return false
	}
	t := f.text
	_, size := utf8.DecodeLastRuneInString(t.value[:t.cursor])
	t.value = t.value[:t.cursor-size] + t.value[t.cursor:]
	t.cursor -= size
	return f.changed(true)
}

// Delete deletes the rune at the cursor
func (f *Field) Delete() bool {
	if f.text == nil || f.text.cursor >= len(f.text.value) {
		return false
	}
	t := f.text
	_, size := utf8.DecodeRuneInString(t.value[t.cursor:])
	t.value = t.value[:t.cursor] + t.value[t.cursor+size:]
	return f.changed(true)
}

// ClearText empties the text and moves the cursor to the start
func (f *Field) ClearText() bool {
	if f.text == nil {
		return false
	}
	hadText := f.text.value != ""
	f.text.value = ""
	f.text.cursor = 0
	return f.changed(hadText)
}

// CursorLeft moves the cursor one rune left, stopping at the start
func (f *Field) CursorLeft() {
	if f.text == nil || f.text.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.text.value[:f.text.cursor])
	f.text.cursor -= size
}

// CursorRight moves the cursor one rune right, stopping at the end
func (f *Field) CursorRight() {
	if f.text == nil || f.text.cursor >= len(f.text.value) {
		return
	}
	_, size := utf8.DecodeRuneInString(f.text.value[f.text.cursor:])
	f.text.cursor += size
}

// CursorHome moves the cursor to the start of the text
func (f *Field) CursorHome() {
	if f.text != nil {
		f.text.cursor = 0
	}
}

// CursorEnd moves the cursor to the end of the text
func (f *Field) CursorEnd() {
	if f.text != nil {
		f.text.cursor = len(f.text.value)
	}
}
