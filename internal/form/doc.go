// Package form implements the form state machine: an ordered set of fields,
// the focus model, per-kind key handling, validation on submit and flat
// serialization of the result.
//
// # Building
//
// Forms are assembled from field specifications and block descriptors:
//
//	f, err := form.NewBuilder("Shipping Information").
//	    Field(field.Spec{ID: "name", Label: "Full Name", Required: true}).
//	    Field(field.Spec{ID: "email", Label: "Email", Validators: []validation.Validator{validation.Email()}}).
//	    Block(block.Address("shipping", true)).
//	    Field(field.Spec{ID: "newsletter", Label: "Subscribe", Kind: field.KindCheckbox}).
//	    Build()
//
// Build rejects duplicate ids, empty ids and empty block groups.
//
// # Driving
//
// The caller feeds key events and polls the result:
//
//	for f.Result() == form.StatusActive {
//	    f.HandleKey(nextKey())
//	}
//	if f.Result() == form.StatusSubmitted {
//	    err := f.WriteJSON("shipping.json")
//	}
//
// Focus cycles through every field and then a virtual submit control. Enter
// on the submit control validates every field; the first failing field
// receives focus. Esc closes an open dropdown, otherwise it cancels the form;
// an Esc pressed straight after a dropdown choice was committed only dismisses
// that dropdown.
// Once the form is Submitted or Cancelled further input is ignored.
//
// # Reading
//
// Renderers read the form through View, which returns copies. Nothing outside
// this package holds a reference to a field.
//
// # Thread Safety
//
// A Form is not safe for concurrent use. Exactly one control path (normally
// the terminal event loop) may drive it at a time.
package form
