package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/block"
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/validation"
)

func TestLoadTicket(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "ticket.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.Source != filepath.Join("testdata", "ticket.yaml") {
		t.Errorf("Source = %q", def.Source)
	}

	f, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := map[string]any{
		"summary":  "",
		"code":     "",
		"priority": "medium",
		"zip":      "12345",
		"urgent":   true,
	}
	if diff := cmp.Diff(want, f.ToFlatMap().Map()); diff != "" {
		t.Errorf("initial values mismatch (-want +got):\n%s", diff)
	}

	opts := f.View().Fields[2].Options
	wantOpts := []field.Option{{Value: "low", Label: "low"}, {Value: "medium", Label: "medium"}, {Value: "high", Label: "high"}}
	if diff := cmp.Diff(wantOpts, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		id   string
		text string
		want string
	}{
		{"summary", "", "Summary is required"},
		{"summary", "abc", "Must be at least 5 characters"},
		{"summary", "a valid summary", ""},
		{"code", "abc-1", "Use ABC-123"},
		{"code", "ABC-42", ""},
		{"zip", "1234", "Invalid ZIP code format"},
	}
	for _, tt := range tests {
		got, err := f.Check(tt.id, tt.text)
		if err != nil {
			t.Fatalf("Check(%q) error = %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("Check(%q, %q) = %q, want %q", tt.id, tt.text, got, tt.want)
		}
	}
}

func TestBuiltinMatchesBuilder(t *testing.T) {
	def, err := Builtin("shipping")
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	got, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want, err := form.NewBuilder("Shipping Information").
		Field(field.Spec{ID: "name", Label: "Full Name", Placeholder: "John Doe", Required: true}).
		Field(field.Spec{ID: "email", Label: "Email", Placeholder: "john@example.com", Required: true,
			Validators: []validation.Validator{validation.Email()}}).
		Field(field.Spec{ID: "phone", Label: "Phone", Placeholder: "(555) 123-4567",
			Validators: []validation.Validator{validation.Phone()}}).
		Block(block.Descriptor{Kind: block.KindAddress, Group: "shipping", Title: "Shipping Address", Required: true}).
		Field(field.Spec{ID: "newsletter", Label: "Subscribe to newsletter", Kind: field.KindCheckbox}).
		Field(field.Spec{ID: "terms", Label: "I agree to the terms and conditions", Kind: field.KindCheckbox, Required: true}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if diff := cmp.Diff(want.View(), got.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}

	want.AttemptSubmit()
	got.AttemptSubmit()
	if diff := cmp.Diff(want.View(), got.View()); diff != "" {
		t.Errorf("validation mismatch (-want +got):\n%s", diff)
	}
	if def.Output != "shipping.json" {
		t.Errorf("Output = %q", def.Output)
	}
}

func TestBuiltinNames(t *testing.T) {
	if diff := cmp.Diff([]string{"contact", "shipping"}, BuiltinNames()); diff != "" {
		t.Errorf("BuiltinNames() mismatch (-want +got):\n%s", diff)
	}
	for _, name := range BuiltinNames() {
		def, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q) error = %v", name, err)
		}
		if _, err := def.Build(); err != nil {
			t.Errorf("Builtin(%q).Build() error = %v", name, err)
		}
	}
}

func TestScalarValuesKeepSourceText(t *testing.T) {
	doc := `title: Values
fields:
  - id: zip
    value: 02134
  - id: agent
    value: 007
  - id: ratio
    value: 1.50
  - id: quoted
    value: "0042"
  - id: tier
    type: select
    options: ["01", "02"]
    value: 01
  - id: empty
    value: ~
  - id: agree
    type: checkbox
    value: true
`
	def, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := map[string]any{
		"zip":    "02134",
		"agent":  "007",
		"ratio":  "1.50",
		"quoted": "0042",
		"tier":   "01",
		"empty":  "",
		"agree":  true,
	}
	if diff := cmp.Diff(want, f.ToFlatMap().Map()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestNonScalarValueRejected(t *testing.T) {
	_, err := Parse([]byte("title: X\nfields:\n  - id: a\n    value: [1, 2]\n"))
	if !formerr.IsConfigError(err) {
		t.Errorf("Parse() error = %v, want config error", err)
	}
}

func TestParseJSON(t *testing.T) {
	def, err := Parse([]byte(`{"title":"J","fields":[{"id":"a","type":"checkbox","required":true}]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if f.AttemptSubmit() {
		t.Error("a required unchecked checkbox should fail")
	}
}

func TestInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "  \n"},
		{"no fields", "title: Nothing\n"},
		{"unknown key", "title: X\ncolour: red\nfields:\n  - id: a\n"},
		{"bad yaml", "fields: [\n"},
		{"unknown type", "fields:\n  - id: a\n    type: slider\n"},
		{"unknown block", "fields:\n  - block: payment\n    group: card\n"},
		{"empty group", "fields:\n  - block: address\n"},
		{"unknown validator", "fields:\n  - id: a\n    validators: [ssn]\n"},
		{"bad pattern", "fields:\n  - id: a\n    validators:\n      - rule: pattern\n        pattern: '('\n"},
		{"min without value", "fields:\n  - id: a\n    validators: [min_length]\n"},
		{"options on text", "fields:\n  - id: a\n    options: [x]\n"},
		{"duplicate", "fields:\n  - id: a\n  - id: a\n"},
		{"block with id", "fields:\n  - block: contact\n    group: c\n    id: x\n"},
		{"title on field", "fields:\n  - id: a\n    title: A\n"},
		{"bad select value", "fields:\n  - id: a\n    type: select\n    options: [x]\n    value: y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.doc))
			if err == nil {
				_, err = def.Build()
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !formerr.IsConfigError(err) {
				t.Errorf("error = %v, want config error", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !formerr.IsIOError(err) {
		t.Errorf("Load() error = %v, want IO error", err)
	}
}

func TestLoadWrapsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("title: only\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !formerr.IsConfigError(err) {
		t.Fatalf("Load() error = %v, want config error", err)
	}
}
