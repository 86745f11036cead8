package block

import (
	"fmt"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/validation"
)

// USStates lists the 50 states and the District of Columbia as (abbreviation, name)
var USStates = [][2]string{
	{"AL", "Alabama"},
	{"AK", "Alaska"},
	{"AZ", "Arizona"},
	{"AR", "Arkansas"},
	{"CA", "California"},
	{"CO", "Colorado"},
	{"CT", "Connecticut"},
	{"DE", "Delaware"},
	{"FL", "Florida"},
	{"GA", "Georgia"},
	{"HI", "Hawaii"},
	{"ID", "Idaho"},
	{"IL", "Illinois"},
	{"IN", "Indiana"},
	{"IA", "Iowa"},
	{"KS", "Kansas"},
	{"KY", "Kentucky"},
	{"LA", "Louisiana"},
	{"ME", "Maine"},
	{"MD", "Maryland"},
	{"MA", "Massachusetts"},
	{"MI", "Michigan"},
	{"MN", "Minnesota"},
	{"MS", "Mississippi"},
	{"MO", "Missouri"},
	{"MT", "Montana"},
	{"NE", "Nebraska"},
	{"NV", "Nevada"},
	{"NH", "New Hampshire"},
	{"NJ", "New Jersey"},
	{"NM", "New Mexico"},
	{"NY", "New York"},
	{"NC", "North Carolina"},
	{"ND", "North Dakota"},
	{"OH", "Ohio"},
	{"OK", "Oklahoma"},
	{"OR", "Oregon"},
	{"PA", "Pennsylvania"},
	{"RI", "Rhode Island"},
	{"SC", "South Carolina"},
	{"SD", "South Dakota"},
	{"TN", "Tennessee"},
	{"TX", "Texas"},
	{"UT", "Utah"},
	{"VT", "Vermont"},
	{"VA", "Virginia"},
	{"WA", "Washington"},
	{"WV", "West Virginia"},
	{"WI", "Wisconsin"},
	{"WY", "Wyoming"},
	{"DC", "District of Columbia"},
}

// StateOptions returns the select options for USStates
func StateOptions() []field.Option {
	opts := make([]field.Option, 0, len(USStates))
	for _, s := range USStates {
		opts = append(opts, field.Option{
			Value: s[0],
			Label: fmt.Sprintf("%s (%s)", s[1], s[0]),
		})
	}
	return opts
}

func (d Descriptor) addressSpecs() []field.Spec {
	return []field.Spec{
		{
			ID:          d.FieldID("street1"),
			Label:       "Street Address",
			Placeholder: "123 Main St",
			Required:    d.Required,
		},
		{
			// Line 2 is never required
			ID:          d.FieldID("street2"),
			Label:       "Address Line 2",
			Placeholder: "Apt, Suite, Unit, etc. (optional)",
		},
		{
			ID:          d.FieldID("city"),
			Label:       "City",
			Placeholder: "City",
			Required:    d.Required,
		},
		{
			ID:       d.FieldID("state"),
			Label:    "State",
			Kind:     field.KindSelect,
			Options:  StateOptions(),
			Required: d.Required,
		},
		{
			ID:          d.FieldID("zip"),
			Label:       "ZIP Code",
			Placeholder: "12345 or 12345-6789",
			Required:    d.Required,
			Validators:  []validation.Validator{validation.ZipCode()},
		},
	}
}
