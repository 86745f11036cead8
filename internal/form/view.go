package form

import "github.com/muurk/termform/internal/field"

// FieldView is a snapshot of one field for rendering
type FieldView struct {
	ID       string
	Label    string
	Kind     field.Kind
	Required bool
	Focused  bool
	Error    string

	// Section is set on the first field of a titled block
	Section string

	// Text fields
	Text        string
	Cursor      int
	Placeholder string

	// Select fields; Selected and Highlighted are -1 when unset
	Options     []field.Option
	Selected    int
	Highlighted int
	Open        bool

	// Checkbox fields
	Checked bool
}

// Display returns the text shown for the field value
func (v FieldView) Display() string {
	switch v.Kind {
	case field.KindSelect:
		if v.Selected >= 0 && v.Selected < len(v.Options) {
			return v.Options[v.Selected].Label
		}
		return ""
	case field.KindCheckbox:
		if v.Checked {
			return "[x]"
		}
		return "[ ]"
	default:
		return v.Text
	}
}

// View is a read-only snapshot of the whole form
type View struct {
	Title         string
	Fields        []FieldView
	SubmitFocused bool
	Status        Status
	ErrorCount    int
}

// View returns a snapshot of the form. Mutating it has no effect on the form.
func (f *Form) View() View {
	v := View{
		Title:         f.title,
		Fields:        make([]FieldView, len(f.fields)),
		SubmitFocused: f.focus.isSubmit(),
		Status:        f.status,
	}
	focused := f.focus.field()
	for i, fld := range f.fields {
		fv := FieldView{
			ID:          fld.ID(),
			Label:       fld.Label(),
			Kind:        fld.Kind(),
			Required:    fld.Required(),
			Focused:     i == focused,
			Error:       fld.Error(),
			Section:     f.sections[i],
			Selected:    -1,
			Highlighted: -1,
		}
		switch fld.Kind() {
		case field.KindText:
			fv.Text = fld.Text()
			fv.Cursor = fld.Cursor()
			fv.Placeholder = fld.Placeholder()
		case field.KindSelect:
			fv.Options = fld.Options()
			fv.Selected = fld.Selected()
			fv.Highlighted = fld.Highlighted()
			fv.Open = fld.IsOpen()
			fv.Placeholder = fld.Placeholder()
		case field.KindCheckbox:
			fv.Checked = fld.Checked()
		}
		if fv.Error != "" {
			v.ErrorCount++
		}
		v.Fields[i] = fv
	}
	return v
}
