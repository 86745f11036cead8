// Package block expands named field groups into concrete form fields.
//
// A Descriptor names a template (address, contact, date range), a group id and
// a group-level required flag. Expand turns it into an ordered list of fields
// whose ids are "{group}_{suffix}", with validators already attached:
//
//	fields, err := block.Expand(block.Address("shipping", true))
//	// shipping_street1, shipping_street2, shipping_city, shipping_state, shipping_zip
//
// The required flag propagates to every generated field except those that are
// always optional (address line 2).
//
// Expansion is deterministic and has no side effects. DateRange does not check
// that the start date precedes the end date; each date is validated on its own.
package block

import (
	"fmt"
	"strings"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/formerr"
)

// Kind identifies a block template
type Kind int

const (
	KindAddress Kind = iota
	KindContact
	KindDateRange
)

// String returns the template name used in definition files
func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindContact:
		return "contact"
	case KindDateRange:
		return "date_range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a definition-file template name to a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "address":
		return KindAddress, nil
	case "contact":
		return KindContact, nil
	case "date_range", "daterange", "date-range":
		return KindDateRange, nil
	default:
		return 0, fmt.Errorf("unknown block type %q (expected address, contact or date_range)", name)
	}
}

// Descriptor describes a block to expand
type Descriptor struct {
	Kind     Kind
	Group    string
	Required bool
	Title    string
}

// Address describes a US postal address block
func Address(group string, required bool) Descriptor {
	return Descriptor{Kind: KindAddress, Group: group, Required: required}
}

// Contact describes a name/email/phone block
func Contact(group string, required bool) Descriptor {
	return Descriptor{Kind: KindContact, Group: group, Required: required}
}

// DateRange describes a start/end date block
func DateRange(group string, required bool) Descriptor {
	return Descriptor{Kind: KindDateRange, Group: group, Required: required}
}

// FieldID returns the id of a generated field
func (d Descriptor) FieldID(suffix string) string {
	return d.Group + "_" + suffix
}

// Specs returns the field specifications the block expands to
func (d Descriptor) Specs() ([]field.Spec, error) {
	if strings.TrimSpace(d.Group) == "" {
		return nil, formerr.NewConfigError("", fmt.Sprintf("%s block group id cannot be empty", d.Kind))
	}

	switch d.Kind {
	case KindAddress:
		return d.addressSpecs(), nil
	case KindContact:
		return d.contactSpecs(), nil
	case KindDateRange:
		return d.dateRangeSpecs(), nil
	default:
		return nil, formerr.NewConfigError("", fmt.Sprintf("unsupported block kind %v", d.Kind))
	}
}

// Expand builds the block's fields
func Expand(d Descriptor) ([]*field.Field, error) {
	specs, err := d.Specs()
	if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, 0, len(specs))
	for _, spec := range specs {
		f, err := field.New(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s block %q: %w", d.Kind, d.Group, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
