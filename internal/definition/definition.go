package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/termform/internal/block"
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/validation"
)

// Definition is a parsed form document
type Definition struct {
	Title  string  `yaml:"title" json:"title"`
	Output string  `yaml:"output,omitempty" json:"output,omitempty"`
	Fields []Entry `yaml:"fields" json:"fields"`

	// Source is the file the definition was read from, if any
	Source string `yaml:"-" json:"-"`
}

// Entry is either a single field or, when Block is set, a block of fields
type Entry struct {
	Block    string `yaml:"block,omitempty" json:"block,omitempty"`
	Group    string `yaml:"group,omitempty" json:"group,omitempty"`
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`

	ID          string   `yaml:"id,omitempty" json:"id,omitempty"`
	Label       string   `yaml:"label,omitempty" json:"label,omitempty"`
	Type        string   `yaml:"type,omitempty" json:"type,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []Option `yaml:"options,omitempty" json:"options,omitempty"`
	Value       *Scalar  `yaml:"value,omitempty" json:"value,omitempty"`
	Validators  []Rule   `yaml:"validators,omitempty" json:"validators,omitempty"`
}

// IsBlock reports whether the entry describes a block
func (e Entry) IsBlock() bool {
	return e.Block != ""
}

// Option is a select option. A bare scalar sets both value and label.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// UnmarshalYAML accepts either a scalar or a value/label mapping
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Value = node.Value
		o.Label = node.Value
		return nil
	}
	type plain Option
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = Option(p)
	if o.Label == "" {
		o.Label = o.Value
	}
	return nil
}

// Rule is a validator reference
type Rule struct {
	Rule    string `yaml:"rule"`
	Value   int    `yaml:"value,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// UnmarshalYAML accepts either a bare rule name or a mapping
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Rule = node.Value
		return nil
	}
	type plain Rule
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Rule(p)
	return nil
}

// Validator returns the validator the rule names
func (r Rule) Validator() (validation.Validator, error) {
	name := strings.ToLower(strings.TrimSpace(r.Rule))
	switch name {
	case "required":
		rule := validation.Required()
		if r.Message != "" {
			rule.Message = r.Message
		}
		return rule, nil
	case "email":
		return validation.Email(), nil
	case "min_length", "max_length":
		if r.Value <= 0 {
			return nil, fmt.Errorf("%s needs a positive value", name)
		}
		if name == "min_length" {
			return validation.MinLength(r.Value), nil
		}
		return validation.MaxLength(r.Value), nil
	case "pattern":
		if r.Pattern == "" {
			return nil, errors.New("pattern rule needs a pattern")
		}
		return validation.Pattern(r.Pattern, r.Message)
	case "zip", "zip_code":
		return validation.ZipCode(), nil
	case "phone":
		return validation.Phone(), nil
	case "date":
		return validation.Date(), nil
	default:
		return nil, fmt.Errorf("unknown validator %q", r.Rule)
	}
}

// Load reads a definition from a file
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, formerr.NewIOError(fmt.Sprintf("failed to read definition %s", path), err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadFS reads a definition from a filesystem
func LoadFS(fsys fs.FS, name string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, formerr.NewIOError(fmt.Sprintf("failed to read definition %s", name), err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	def.Source = name
	return def, nil
}

// Parse decodes a YAML (or JSON) document. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, formerr.NewConfigError("", "definition is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, formerr.NewConfigError("", fmt.Sprintf("invalid definition: %v", err))
	}
	if len(def.Fields) == 0 {
		return nil, formerr.NewConfigError("", "definition has no fields")
	}
	return &def, nil
}

// Builder converts the definition into a form builder
func (d *Definition) Builder() (*form.Builder, error) {
	b := form.NewBuilder(d.Title)
	for i, e := range d.Fields {
		if e.IsBlock() {
			desc, err := e.descriptor()
			if err != nil {
				return nil, err
			}
			b.Block(desc)
			continue
		}

		spec, err := e.spec()
		if err != nil {
			return nil, fmt.Errorf("field #%d: %w", i+1, err)
		}
		b.Field(spec)
	}
	return b, nil
}

// Build converts the definition into a form
func (d *Definition) Build() (*form.Form, error) {
	b, err := d.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build()
}

func (e Entry) descriptor() (block.Descriptor, error) {
	kind, err := block.ParseKind(e.Block)
	if err != nil {
		return block.Descriptor{}, formerr.NewConfigError(e.Group, err.Error())
	}
	if e.ID != "" || e.Type != "" || len(e.Options) > 0 || len(e.Validators) > 0 {
		return block.Descriptor{}, formerr.NewConfigError(e.Group, "block entries only take group, title and required")
	}
	return block.Descriptor{
		Kind:     kind,
		Group:    e.Group,
		Required: e.Required,
		Title:    e.Title,
	}, nil
}

func (e Entry) spec() (field.Spec, error) {
	kind, err := field.ParseKind(e.Type)
	if err != nil {
		return field.Spec{}, formerr.NewConfigError(e.ID, err.Error())
	}
	if e.Group != "" || e.Title != "" {
		return field.Spec{}, formerr.NewConfigError(e.ID, "group and title are only valid on block entries")
	}

	spec := field.Spec{
		ID:          e.ID,
		Label:       e.Label,
		Kind:        kind,
		Placeholder: e.Placeholder,
		Required:    e.Required,
		Value:       scalarValue(kind, e.Value),
	}

	for _, opt := range e.Options {
		spec.Options = append(spec.Options, field.Option{Value: opt.Value, Label: opt.Label})
	}
	if kind != field.KindSelect && len(spec.Options) > 0 {
		return field.Spec{}, formerr.NewConfigError(e.ID, fmt.Sprintf("%s fields do not take options", kind))
	}

	for _, r := range e.Validators {
		v, err := r.Validator()
		if err != nil {
			return field.Spec{}, formerr.NewConfigError(e.ID, err.Error())
		}
		spec.Validators = append(spec.Validators, v)
	}
	return spec, nil
}

// Scalar is an initial value as written in the document. Text keeps the
// source text so `value: 02134` stays "02134" instead of becoming a number.
type Scalar struct {
	Text    string
	Decoded any
}

// UnmarshalYAML records both the raw scalar text and its decoded value
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	s.Text = node.Value
	return node.Decode(&s.Decoded)
}

// MarshalJSON writes the decoded value
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Decoded)
}

// scalarValue picks the initial value for a field of the given kind. Text
// and select fields take the source text verbatim; checkboxes take the
// decoded boolean.
func scalarValue(kind field.Kind, s *Scalar) any {
	if s == nil || s.Decoded == nil {
		return nil
	}
	if kind == field.KindCheckbox {
		return s.Decoded
	}
	return s.Text
}
