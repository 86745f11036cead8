package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muurk/termform/internal/formerr"
	"github.com/muurk/termform/internal/logging"
)

// Values is a flat id to value mapping that keeps declaration order.
// Values are strings, or bools for checkboxes.
type Values struct {
	keys   []string
	values map[string]any
}

func newValues(n int) *Values {
	return &Values{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

func (v *Values) set(key string, val any) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = val
}

// Keys returns the ids in declaration order
func (v *Values) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Get returns the value for id
func (v *Values) Get(id string) (any, bool) {
	val, ok := v.values[id]
	return val, ok
}

// Len returns the number of entries
func (v *Values) Len() int {
	return len(v.keys)
}

// Map returns an unordered copy
func (v *Values) Map() map[string]any {
	m := make(map[string]any, len(v.values))
	for k, val := range v.values {
		m[k] = val
	}
	return m
}

// MarshalJSON encodes the values as one flat object in declaration order
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToFlatMap returns every field value keyed by id in declaration order
func (f *Form) ToFlatMap() *Values {
	v := newValues(len(f.fields))
	for _, fld := range f.fields {
		v.set(fld.ID(), fld.Value())
	}
	return v
}

// MarshalIndent returns the pretty-printed JSON object written by WriteJSON
func (f *Form) MarshalIndent() ([]byte, error) {
	raw, err := f.ToFlatMap().MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// WriteJSON writes the flat map to path as pretty-printed JSON. The file is
// replaced atomically; on failure the previous content is left in place.
func (f *Form) WriteJSON(path string) error {
	data, err := f.MarshalIndent()
	if err != nil {
		err = formerr.NewIOError("failed to encode form values", err)
		logging.LogWrite(path, len(f.fields), 0, err)
		return err
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		logging.LogWrite(path, len(f.fields), 0, err)
		return err
	}

	logging.LogWrite(path, len(f.fields), len(data), nil)
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return formerr.NewIOError(fmt.Sprintf("failed to create temp file in %s", dir), err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return formerr.NewIOError("failed to write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return formerr.NewIOError("failed to close temp file", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return formerr.NewIOError("failed to set file mode", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return formerr.NewIOError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// ReadJSON loads a flat JSON object such as one written by WriteJSON
func ReadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, formerr.NewIOError(fmt.Sprintf("failed to read %s", path), err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, formerr.NewConfigError("", fmt.Sprintf("%s is not a flat JSON object: %v", path, err))
	}
	return m, nil
}

// SetValue replaces one field value. Text and select fields take a string,
// checkboxes a bool.
func (f *Form) SetValue(id string, v any) error {
	i, ok := f.index[id]
	if !ok {
		return formerr.NewConfigError(id, "unknown field")
	}
	if f.focus.field() == i {
		f.fields[i].CloseDropdown()
	}
	return f.fields[i].SetValue(v)
}

// SetValues hydrates the form from a flat map. Unknown ids are rejected before
// any field changes; values are then applied in declaration order and the
// first type or option mismatch stops the update.
func (f *Form) SetValues(values map[string]any) error {
	for id := range values {
		if _, ok := f.index[id]; !ok {
			return formerr.NewConfigError(id, "unknown field")
		}
	}
	for _, fld := range f.fields {
		v, ok := values[fld.ID()]
		if !ok {
			continue
		}
		if err := f.SetValue(fld.ID(), v); err != nil {
			return err
		}
	}
	return nil
}
