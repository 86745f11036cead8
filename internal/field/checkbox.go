package field

type checkboxState struct {
	checked bool
}

// Checked reports whether a checkbox is checked
func (f *Field) Checked() bool {
	return f.box != nil && f.box.checked
}

// Toggle flips a checkbox
func (f *Field) Toggle() bool {
	if f.box == nil {
		return false
	}
	f.box.checked = !f.box.checked
	return f.changed(true)
}
