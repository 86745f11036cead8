package field

import (
	"fmt"

	"github.com/muurk/termform/internal/formerr"
)

// selectState is the sub-state of a select field. selected is -1 when no
// option has been committed.
type selectState struct {
	options     []Option
	highlighted int
	selected    int
	open        bool
}

func newSelectState(id string, options []Option) (*selectState, error) {
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt.Value] {
			return nil, formerr.NewConfigError(id, fmt.Sprintf("duplicate option value %q", opt.Value))
		}
		seen[opt.Value] = true
	}
	return &selectState{
		options:  append([]Option(nil), options...),
		selected: -1,
	}, nil
}

func (s *selectState) selectedValue() string {
	if s.selected < 0 {
		return ""
	}
	return s.options[s.selected].Value
}

func (s *selectState) selectValue(value string) error {
	if value == "" {
		s.selected = -1
		s.highlighted = 0
		return nil
	}
	for i, opt := range s.options {
		if opt.Value == value {
			s.selected = i
			s.highlighted = i
			return nil
		}
	}
	return fmt.Errorf("%q is not one of the options", value)
}

// resetHighlight moves the highlight back to the committed option
func (s *selectState) resetHighlight() {
	if s.selected >= 0 {
		s.highlighted = s.selected
	} else {
		s.highlighted = 0
	}
}

// Options returns a copy of a select field's options
func (f *Field) Options() []Option {
	if f.sel == nil {
		return nil
	}
	return append([]Option(nil), f.sel.options...)
}

// Highlighted returns the index of the highlighted option
func (f *Field) Highlighted() int {
	if f.sel == nil {
		return 0
	}
	return f.sel.highlighted
}

// Selected returns the index of the committed option, or -1
func (f *Field) Selected() int {
	if f.sel == nil {
		return -1
	}
	return f.sel.selected
}

// SelectedLabel returns the display label of the committed option
func (f *Field) SelectedLabel() string {
	if f.sel == nil || f.sel.selected < 0 {
		return ""
	}
	return f.sel.options[f.sel.selected].Label
}

// IsOpen reports whether a select field's dropdown is open
func (f *Field) IsOpen() bool {
	return f.sel != nil && f.sel.open
}

// OpenDropdown opens the dropdown with the committed option highlighted.
// A select without options stays closed.
func (f *Field) OpenDropdown() bool {
	if f.sel == nil || f.sel.open || len(f.sel.options) == 0 {
		return false
	}
	f.sel.resetHighlight()
	f.sel.open = true
	return true
}

// CloseDropdown closes the dropdown and discards any highlight change
func (f *Field) CloseDropdown() {
	if f.sel == nil || !f.sel.open {
		return
	}
	f.sel.open = false
	f.sel.resetHighlight()
}

// MoveHighlight moves the highlight by delta, wrapping at both ends
func (f *Field) MoveHighlight(delta int) {
	if f.sel == nil || len(f.sel.options) == 0 {
		return
	}
	n := len(f.sel.options)
	f.sel.highlighted = ((f.sel.highlighted+delta)%n + n) % n
}

// CommitHighlighted selects the highlighted option and closes the dropdown.
// It reports whether the committed value changed.
func (f *Field) CommitHighlighted() bool {
	if f.sel == nil {
		return false
	}
	s := f.sel
	s.open = false
	if len(s.options) == 0 {
		return false
	}
	changed := s.selected != s.highlighted
	s.selected = s.highlighted
	return f.changed(changed)
}
