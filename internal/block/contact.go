package block

import (
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/validation"
)

func (d Descriptor) contactSpecs() []field.Spec {
	return []field.Spec{
		{
			ID:          d.FieldID("name"),
			Label:       "Full Name",
			Placeholder: "John Doe",
			Required:    d.Required,
		},
		{
			ID:          d.FieldID("email"),
			Label:       "Email",
			Placeholder: "john@example.com",
			Required:    d.Required,
			Validators:  []validation.Validator{validation.Email()},
		},
		{
			ID:          d.FieldID("phone"),
			Label:       "Phone",
			Placeholder: "(555) 123-4567",
			Required:    d.Required,
			Validators:  []validation.Validator{validation.Phone()},
		},
	}
}
