package form

import (
	"fmt"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/logging"
)

// Status is the lifecycle state of a form
type Status int

const (
	StatusActive Status = iota
	StatusSubmitted
	StatusCancelled
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSubmitted:
		return "submitted"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// IsTerminal reports whether the form no longer accepts input
func (s Status) IsTerminal() bool {
	return s != StatusActive
}

// SubmitID names the virtual submit control in logs
const SubmitID = "<submit>"

// Form is an ordered set of fields driven by key events
type Form struct {
	title    string
	fields   []*field.Field
	index    map[string]int
	sections map[int]string
	focus    focusManager
	status   Status

	// escGuard is set when the previous key committed a dropdown choice. The
	// next Esc is then taken as dismissing that dropdown, not the form.
	escGuard bool
}

func newForm(title string, fields []*field.Field, sections map[int]string) *Form {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.ID()] = i
	}
	return &Form{
		title:    title,
		fields:   fields,
		index:    index,
		sections: sections,
		focus:    newFocusManager(len(fields)),
		status:   StatusActive,
	}
}

// Title returns the form title
func (f *Form) Title() string { return f.title }

// Len returns the number of fields
func (f *Form) Len() int { return len(f.fields) }

// Result returns the current status
func (f *Form) Result() Status { return f.status }

// IDs returns the field ids in declaration order
func (f *Form) IDs() []string {
	ids := make([]string, len(f.fields))
	for i, fld := range f.fields {
		ids[i] = fld.ID()
	}
	return ids
}

// FocusedID returns the focused field id, or "" when the submit control is
// focused.
func (f *Form) FocusedID() string {
	if i := f.focus.field(); i >= 0 {
		return f.fields[i].ID()
	}
	return ""
}

// IsSubmitFocused reports whether the submit control has focus
func (f *Form) IsSubmitFocused() bool {
	return f.focus.isSubmit()
}

func (f *Form) focusName() string {
	if id := f.FocusedID(); id != "" {
		return id
	}
	return SubmitID
}

func (f *Form) focused() *field.Field {
	if i := f.focus.field(); i >= 0 {
		return f.fields[i]
	}
	return nil
}

// closeDropdown discards an open dropdown on the focused field
func (f *Form) closeDropdown() {
	if fld := f.focused(); fld != nil {
		fld.CloseDropdown()
	}
}

// AdvanceFocus moves focus one position, wrapping over the fields and the
// submit control. An open dropdown is closed without committing.
func (f *Form) AdvanceFocus(dir Direction) {
	if f.status.IsTerminal() {
		return
	}
	from := f.focusName()
	f.closeDropdown()
	f.focus.advance(dir)
	logging.LogFocus(from, f.focusName())
}

// FocusField moves focus to the field with the given id
func (f *Form) FocusField(id string) error {
	i, ok := f.index[id]
	if !ok {
		return formerr.NewConfigError(id, "unknown field")
	}
	f.moveFocus(i)
	return nil
}

// FocusSubmit moves focus to the submit control
func (f *Form) FocusSubmit() {
	from := f.focusName()
	f.closeDropdown()
	f.focus.focusSubmit()
	logging.LogFocus(from, f.focusName())
}

func (f *Form) moveFocus(i int) {
	from := f.focusName()
	f.closeDropdown()
	f.focus.focusField(i)
	logging.LogFocus(from, f.focusName())
}

// AttemptSubmit validates every field in order. Every failing field records
// its own error, not only the first, so a view can show all problems at once;
// the first failing field receives focus and the form stays Active. With no
// failures the form becomes Submitted. It reports whether the form is
// submitted.
func (f *Form) AttemptSubmit() bool {
	if f.status.IsTerminal() {
		return f.status == StatusSubmitted
	}

	first := -1
	for i, fld := range f.fields {
		if msg := fld.Validate(); msg != "" {
			logging.LogValidation(fld.ID(), msg)
			if first < 0 {
				first = i
			}
		}
	}

	if first >= 0 {
		f.moveFocus(first)
		return false
	}

	f.closeDropdown()
	f.setStatus(StatusSubmitted)
	return true
}

// Cancel abandons the form without validation
func (f *Form) Cancel() {
	if f.status.IsTerminal() {
		return
	}
	f.closeDropdown()
	f.setStatus(StatusCancelled)
}

func (f *Form) setStatus(s Status) {
	logging.LogStatus(f.title, f.status.String(), s.String())
	f.status = s
}

// ValidationErrors returns the current field errors in declaration order
func (f *Form) ValidationErrors() []*formerr.Error {
	var errs []*formerr.Error
	for _, fld := range f.fields {
		if msg := fld.Error(); msg != "" {
			errs = append(errs, formerr.NewValidationError(fld.ID(), msg))
		}
	}
	return errs
}

// Check runs a field's validators against text without changing the field
func (f *Form) Check(id, text string) (string, error) {
	i, ok := f.index[id]
	if !ok {
		return "", formerr.NewConfigError(id, "unknown field")
	}
	return f.fields[i].Check(text), nil
}

// HandleKey applies a key event to the focused control. Events are ignored
// once the form is terminal.
func (f *Form) HandleKey(ev KeyEvent) {
	if f.status.IsTerminal() {
		return
	}
	name := f.focusName()
	handled := f.dispatch(ev.normalize())
	logging.LogKey(name, ev.String(), handled)
}

func (f *Form) dispatch(ev KeyEvent) bool {
	fld := f.focused()
	open := fld != nil && fld.IsOpen()
	guarded := f.escGuard
	f.escGuard = false

	switch ev.Code {
	case KeyTab:
		if ev.Shift {
			f.AdvanceFocus(Backward)
		} else {
			f.AdvanceFocus(Forward)
		}
		return true

	case KeyUp, KeyDown:
		if open {
			if ev.Code == KeyUp {
				fld.MoveHighlight(-1)
			} else {
				fld.MoveHighlight(1)
			}
			return true
		}
		if ev.Code == KeyUp {
			f.AdvanceFocus(Backward)
		} else {
			f.AdvanceFocus(Forward)
		}
		return true

	case KeyEsc:
		if open {
			fld.CloseDropdown()
			return true
		}
		if guarded {
			return true
		}
		f.Cancel()
		return true

	case KeyEnter:
		if fld == nil {
			f.AttemptSubmit()
			return true
		}
		if open {
			fld.CommitHighlighted()
			f.escGuard = true
			return true
		}
		return false
	}

	if fld == nil {
		return false
	}

	switch fld.Kind() {
	case field.KindText:
		return handleText(fld, ev)
	case field.KindSelect:
		if ev.Code != KeySpace {
			return false
		}
		if open {
			fld.CommitHighlighted()
			f.escGuard = true
		} else {
			fld.OpenDropdown()
		}
		return true
	case field.KindCheckbox:
		if ev.Code != KeySpace {
			return false
		}
		fld.Toggle()
		return true
	}
	return false
}

func handleText(fld *field.Field, ev KeyEvent) bool {
	switch ev.Code {
	case KeyLeft:
		fld.CursorLeft()
	case KeyRight:
		fld.CursorRight()
	case KeyHome:
		fld.CursorHome()
	case KeyEnd:
		fld.CursorEnd()
	case KeyBackspace:
		fld.Backspace()
	case KeyDelete:
		fld.Delete()
	case KeySpace:
		fld.InsertRune(' ')
	case KeyRune:
		if !ev.Ctrl {
			return fld.InsertRune(ev.Rune)
		}
		switch ev.Rune {
		case 'a':
			fld.CursorHome()
		case 'e':
			fld.CursorEnd()
		case 'u':
			fld.ClearText()
		default:
			return false
		}
	default:
		return false
	}
	return true
}
