package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/validation"
)

func priorityOptions() []Option {
	return []Option{
		{Value: "low", Label: "Low"},
		{Value: "medium", Label: "Medium"},
		{Value: "high", Label: "High"},
	}
}

func mustNew(t *testing.T, spec Spec) *Field {
	t.Helper()
	f, err := New(spec)
	if err != nil {
		t.Fatalf("New(%+v) error = %v", spec, err)
	}
	return f
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"text", KindText, false},
		{"", KindText, false},
		{"Select", KindSelect, false},
		{"checkbox", KindCheckbox, false},
		{"radio", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"empty id", Spec{Label: "Name"}},
		{"blank id", Spec{ID: "   "}},
		{"duplicate option", Spec{ID: "p", Kind: KindSelect, Options: []Option{{Value: "a"}, {Value: "a"}}}},
		{"unknown select value", Spec{ID: "p", Kind: KindSelect, Options: priorityOptions(), Value: "urgent"}},
		{"checkbox with string", Spec{ID: "c", Kind: KindCheckbox, Value: "yes"}},
		{"text with bool", Spec{ID: "t", Value: true}},
		{"unknown kind", Spec{ID: "x", Kind: Kind(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.spec)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if !formerr.IsConfigError(err) {
				t.Errorf("New() error = %v, want configuration error", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	f := mustNew(t, Spec{ID: "name"})
	if f.Label() != "name" {
		t.Errorf("Label() = %q, want id fallback", f.Label())
	}
	if f.Kind() != KindText {
		t.Errorf("Kind() = %v, want text", f.Kind())
	}
	if f.Value() != "" || f.Cursor() != 0 || f.Error() != "" {
		t.Error("new text field should be empty with cursor 0 and no error")
	}
}

func TestInitialValues(t *testing.T) {
	text := mustNew(t, Spec{ID: "city", Value: "Springfield"})
	if text.Value() != "Springfield" || text.Cursor() != len("Springfield") {
		t.Errorf("text initial value = %v cursor %d", text.Value(), text.Cursor())
	}

	sel := mustNew(t, Spec{ID: "priority", Kind: KindSelect, Options: priorityOptions(), Value: "medium"})
	if sel.Selected() != 1 || sel.Highlighted() != 1 || sel.Value() != "medium" {
		t.Errorf("select initial selection = %d/%d value %v", sel.Selected(), sel.Highlighted(), sel.Value())
	}
	if sel.SelectedLabel() != "Medium" {
		t.Errorf("SelectedLabel() = %q", sel.SelectedLabel())
	}

	box := mustNew(t, Spec{ID: "terms", Kind: KindCheckbox, Value: true})
	if box.Value() != true || !box.Checked() {
		t.Error("checkbox initial value should be checked")
	}
}

func TestSelectWithoutSelectionSerializesEmpty(t *testing.T) {
	sel := mustNew(t, Spec{ID: "state", Kind: KindSelect, Options: priorityOptions()})
	if sel.Value() != "" {
		t.Errorf("Value() = %#v, want empty string", sel.Value())
	}
	if sel.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", sel.Selected())
	}
}

func TestOptionsAreCopied(t *testing.T) {
	opts := priorityOptions()
	sel := mustNew(t, Spec{ID: "priority", Kind: KindSelect, Options: opts})
	opts[0].Label = "changed"

	got := sel.Options()
	if diff := cmp.Diff(priorityOptions(), got); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
	got[1].Value = "mutated"
	if sel.Options()[1].Value != "medium" {
		t.Error("Options() should return a copy")
	}
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"empty text", Spec{ID: "name", Label: "Name", Required: true}, "Name is required"},
		{"unselected select", Spec{ID: "state", Label: "State", Kind: KindSelect, Options: priorityOptions(), Required: true}, "State is required"},
		{"unchecked checkbox", Spec{ID: "terms", Label: "Terms", Kind: KindCheckbox, Required: true}, "Terms must be checked"},
		{"optional empty text", Spec{ID: "notes"}, ""},
		{"optional unchecked checkbox", Spec{ID: "news", Kind: KindCheckbox}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNew(t, tt.spec)
			if got := f.Validate(); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
			if f.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", f.Error(), tt.want)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	f := mustNew(t, Spec{
		ID:         "email",
		Label:      "Email",
		Required:   true,
		Validators: []validation.Validator{validation.MinLength(10), validation.Email()},
	})

	if got := f.Validate(); got != "Email is required" {
		t.Errorf("empty: Validate() = %q", got)
	}

	_ = f.SetValue("a@b")
	if got := f.Validate(); got != "Must be at least 10 characters" {
		t.Errorf("short: Validate() = %q, want first validator to win", got)
	}

	_ = f.SetValue("ann@example")
	if got := f.Validate(); got != "Invalid email address" {
		t.Errorf("undotted: Validate() = %q", got)
	}

	_ = f.SetValue("ann@example.com")
	if got := f.Validate(); got != "" {
		t.Errorf("valid: Validate() = %q", got)
	}
}

func TestCheckDoesNotMutate(t *testing.T) {
	f := mustNew(t, Spec{ID: "zip", Label: "ZIP", Validators: []validation.Validator{validation.ZipCode()}})
	if msg := f.Check("abc"); msg != "Invalid ZIP code format" {
		t.Errorf("Check() = %q", msg)
	}
	if f.Error() != "" || f.Value() != "" {
		t.Error("Check() must not touch the field")
	}
}

func TestValueChangeClearsError(t *testing.T) {
	f := mustNew(t, Spec{ID: "name", Label: "Name", Required: true})
	f.Validate()
	if f.Error() == "" {
		t.Fatal("expected an error after validating an empty required field")
	}

	f.CursorLeft()
	if f.Error() == "" {
		t.Error("cursor movement alone should not clear the error")
	}

	f.InsertRune('A')
	if f.Error() != "" {
		t.Error("inserting text should clear the error")
	}

	box := mustNew(t, Spec{ID: "terms", Label: "Terms", Kind: KindCheckbox, Required: true})
	box.Validate()
	box.Toggle()
	if box.Error() != "" {
		t.Error("toggling should clear the error")
	}
}

func TestKindMismatchIsNoop(t *testing.T) {
	box := mustNew(t, Spec{ID: "terms", Kind: KindCheckbox})
	if box.InsertRune('x') || box.Backspace() || box.Delete() || box.ClearText() {
		t.Error("text operations on a checkbox should be no-ops")
	}
	if box.OpenDropdown() || box.CommitHighlighted() || box.IsOpen() {
		t.Error("select operations on a checkbox should be no-ops")
	}

	text := mustNew(t, Spec{ID: "name"})
	if text.Toggle() || text.Checked() {
		t.Error("checkbox operations on text should be no-ops")
	}
	if text.Options() != nil || text.Selected() != -1 {
		t.Error("select accessors on text should report nothing")
	}
}
