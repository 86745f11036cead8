package form

import (
	"fmt"
	"strings"

	"github.com/muurk/termform/internal/block"
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/formerr"
)

// entry is one builder step: a single field or a block
type entry struct {
	spec  *field.Spec
	block *block.Descriptor
}

// Builder assembles a Form from field specs and block descriptors. The first
// invalid step is remembered and returned by Build.
type Builder struct {
	title   string
	entries []entry
	err     error
}

// NewBuilder starts a form with the given title
func NewBuilder(title string) *Builder {
	return &Builder{title: title}
}

// Field appends a single field
func (b *Builder) Field(spec field.Spec) *Builder {
	if b.err == nil && strings.TrimSpace(spec.ID) == "" {
		b.err = formerr.NewConfigError("", fmt.Sprintf("field #%d has an empty id", b.count()+1))
	}
	b.entries = append(b.entries, entry{spec: &spec})
	return b
}

// Block appends the fields a block expands to
func (b *Builder) Block(d block.Descriptor) *Builder {
	if b.err == nil && strings.TrimSpace(d.Group) == "" {
		b.err = formerr.NewConfigError("", fmt.Sprintf("%s block has an empty group id", d.Kind))
	}
	b.entries = append(b.entries, entry{block: &d})
	return b
}

func (b *Builder) count() int {
	return len(b.entries)
}

// Build constructs the form. It fails on empty or duplicate ids, empty block
// groups and invalid initial values.
func (b *Builder) Build() (*Form, error) {
	if b.err != nil {
		return nil, b.err
	}

	var fields []*field.Field
	sections := make(map[int]string)
	seen := make(map[string]bool)

	add := func(f *field.Field) error {
		if seen[f.ID()] {
			return formerr.NewConfigError(f.ID(), "duplicate field id")
		}
		seen[f.ID()] = true
		fields = append(fields, f)
		return nil
	}

	for _, e := range b.entries {
		if e.spec != nil {
			f, err := field.New(*e.spec)
			if err != nil {
				return nil, err
			}
			if err := add(f); err != nil {
				return nil, err
			}
			continue
		}

		expanded, err := block.Expand(*e.block)
		if err != nil {
			return nil, err
		}
		if e.block.Title != "" && len(expanded) > 0 {
			sections[len(fields)] = e.block.Title
		}
		for _, f := range expanded {
			if err := add(f); err != nil {
				return nil, err
			}
		}
	}

	return newForm(b.title, fields, sections), nil
}
