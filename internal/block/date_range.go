package block

import (
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/validation"
)

// dateRangeSpecs validates each date's shape only. start <= end is not checked.
func (d Descriptor) dateRangeSpecs() []field.Spec {
	return []field.Spec{
		{
			ID:          d.FieldID("start"),
			Label:       "Start Date",
			Placeholder: "YYYY-MM-DD",
			Required:    d.Required,
			Validators:  []validation.Validator{validation.Date()},
		},
		{
			ID:          d.FieldID("end"),
			Label:       "End Date",
			Placeholder: "YYYY-MM-DD",
			Required:    d.Required,
			Validators:  []validation.Validator{validation.Date()},
		},
	}
}
