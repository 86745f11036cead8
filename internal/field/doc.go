// Package field implements the single editable units a form is made of.
//
// A Field has an identity, a label, a kind and exactly one kind-specific
// sub-state:
//
//   - KindText: text value, cursor byte offset and optional placeholder
//   - KindSelect: option list, highlighted index, committed index, open flag
//   - KindCheckbox: checked flag
//
// Fields are built from a Spec, a plain configuration struct:
//
//	f, err := field.New(field.Spec{
//	    ID:         "email",
//	    Label:      "Email",
//	    Kind:       field.KindText,
//	    Required:   true,
//	    Validators: []validation.Validator{validation.Email()},
//	})
//
// Mutating methods report whether the value changed. Any value change clears
// the field's error; only Validate sets it again.
//
// Fields are not safe for concurrent use. A form owns its fields and is
// driven from a single goroutine.
package field
