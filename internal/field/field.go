package field

import (
	"fmt"
	"strings"

	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/validation"
)

// Kind identifies which sub-state a field carries
type Kind int

const (
	KindText Kind = iota
	KindSelect
	KindCheckbox
)

// String returns the kind name used in definition files
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSelect:
		return "select"
	case KindCheckbox:
		return "checkbox"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a definition-file kind name to a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "input":
		return KindText, nil
	case "select", "dropdown":
		return KindSelect, nil
	case "checkbox", "bool":
		return KindCheckbox, nil
	default:
		return 0, fmt.Errorf("unknown field type %q (expected text, select or checkbox)", name)
	}
}

// Option is one choice of a select field
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Spec describes a field to build. Value holds the initial value: a string
// for text and select fields (the option value), a bool for checkboxes.
type Spec struct {
	ID          string
	Label       string
	Kind        Kind
	Placeholder string
	Options     []Option
	Value       any
	Required    bool
	Validators  []validation.Validator
}

// Field is a single editable form input
type Field struct {
	id         string
	label      string
	kind       Kind
	required   bool
	validators []validation.Validator
	err        string

	// Exactly one of these is non-nil, matching kind
	text *textState
	sel  *selectState
	box  *checkboxState
}

// New builds a field from spec
func New(spec Spec) (*Field, error) {
	if strings.TrimSpace(spec.ID) == "" {
		return nil, formerr.NewConfigError("", "field id cannot be empty")
	}

	label := spec.Label
	if label == "" {
		label = spec.ID
	}

	f := &Field{
		id:         spec.ID,
		label:      label,
		kind:       spec.Kind,
		required:   spec.Required,
		validators: append([]validation.Validator(nil), spec.Validators...),
	}

	switch spec.Kind {
	case KindText:
		f.text = &textState{placeholder: spec.Placeholder}
	case KindSelect:
		st, err := newSelectState(spec.ID, spec.Options)
		if err != nil {
			return nil, err
		}
		f.sel = st
	case KindCheckbox:
		f.box = &checkboxState{}
	default:
		return nil, formerr.NewConfigError(spec.ID, fmt.Sprintf("unsupported field kind %v", spec.Kind))
	}

	if spec.Value != nil {
		if err := f.SetValue(spec.Value); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ID returns the field identity (also its serialization key)
func (f *Field) ID() string { return f.id }

// Label returns the human label
func (f *Field) Label() string { return f.label }

// Kind returns the field kind
func (f *Field) Kind() Kind { return f.kind }

// Required reports whether the field must be filled in
func (f *Field) Required() bool { return f.required }

// Error returns the current validation message, or "" when none
func (f *Field) Error() string { return f.err }

// ClearError removes the current validation message
func (f *Field) ClearError() { f.err = "" }

// Value returns the field's serializable value: a string for text and select
// fields ("" when nothing is selected), a bool for checkboxes.
func (f *Field) Value() any {
	switch f.kind {
	case KindCheckbox:
		return f.box.checked
	default:
		return f.Text()
	}
}

// Text returns the string validators run against. Checkboxes report "true"
// when checked and "" otherwise.
func (f *Field) Text() string {
	switch f.kind {
	case KindText:
		return f.text.value
	case KindSelect:
		return f.sel.selectedValue()
	case KindCheckbox:
		if f.box.checked {
			return "true"
		}
		return ""
	}
	return ""
}

// SetValue replaces the field value programmatically. Text and select fields
// take a string, checkboxes a bool. A select value must match an option, or be
// "" to clear the selection.
func (f *Field) SetValue(v any) error {
	switch f.kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return f.typeError("string", v)
		}
		f.text.set(s)

	case KindSelect:
		s, ok := v.(string)
		if !ok {
			return f.typeError("string", v)
		}
		if err := f.sel.selectValue(s); err != nil {
			return formerr.NewConfigError(f.id, err.Error())
		}

	case KindCheckbox:
		b, ok := v.(bool)
		if !ok {
			return f.typeError("bool", v)
		}
		f.box.checked = b
	}

	f.err = ""
	return nil
}

func (f *Field) typeError(want string, got any) error {
	return formerr.NewConfigError(f.id, fmt.Sprintf("%s field expects a %s value, got %T", f.kind, want, got))
}

// Check runs the field's validation pipeline against text without touching the
// field. It returns the failure message, or "" when text passes.
func (f *Field) Check(text string) string {
	if f.required {
		if msg := f.requiredMessage(text); msg != "" {
			return msg
		}
	}
	return validation.Message(validation.Run(text, f.validators...))
}

// Validate runs the pipeline against the current value, stores the result as
// the field error and returns it.
func (f *Field) Validate() string {
	f.err = f.Check(f.Text())
	return f.err
}

func (f *Field) requiredMessage(text string) string {
	if text != "" {
		return ""
	}
	if f.kind == KindCheckbox {
		return fmt.Sprintf("%s must be checked", f.label)
	}
	return fmt.Sprintf("%s is required", f.label)
}

// changed clears the error after a value mutation
func (f *Field) changed(ok bool) bool {
	if ok {
		f.err = ""
	}
	return ok
}
