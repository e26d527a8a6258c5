package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Mapping is an ordered string-keyed mapping from a parsed profile document.
// Values are *Mapping, []any, string, int, float64, bool or nil.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (m *Mapping) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key, if present.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key. A nil Mapping has no keys.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Plain converts the mapping to nested map[string]any / []any values, for
// libraries that expect plain Go containers.
func (m *Mapping) Plain() map[string]any {
	out := make(map[string]any, m.Len())
	for _, k := range m.Keys() {
		out[k] = plainValue(m.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Mapping:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes the mapping as a JSON object with keys in document order.
// Strings are not HTML-escaped, so values such as font URLs survive verbatim.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRaw(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeRaw(&buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeRaw(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// Profile is a parsed design profile. The root is always a mapping.
type Profile struct {
	Source string
	Root   *Mapping
}

// Name returns meta.name when it is a non-empty string.
func (p *Profile) Name() string {
	if s, ok := Lookup(p.Root, "meta", "name").(string); ok {
		return s
	}
	return ""
}

// DisplayName returns the profile name, falling back to the source path.
func (p *Profile) DisplayName() string {
	if n := p.Name(); n != "" {
		return n
	}
	return p.Source
}

// Section returns a top-level section, or nil when absent.
func (p *Profile) Section(name string) any {
	return Lookup(p.Root, name)
}

// LookupOK walks path through nested mappings. Walking into anything that is
// not a mapping yields (nil, false).
func LookupOK(v any, path ...string) (any, bool) {
	cur := v
	for _, key := range path {
		m, ok := cur.(*Mapping)
		if !ok {
			return nil, false
		}
		cur, ok = m.Get(key)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Lookup is LookupOK without the presence flag.
func Lookup(v any, path ...string) any {
	out, _ := LookupOK(v, path...)
	return out
}

// Truthy reports whether v counts as set: nil, "", false and numeric zero do
// not; every mapping and sequence does, even when empty.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// EntryCount is the number of entries v holds: keys of a mapping, items of a
// sequence, characters of a string. Other scalars hold none.
func EntryCount(v any) int {
	switch t := v.(type) {
	case *Mapping:
		return t.Len()
	case []any:
		return len(t)
	case string:
		return utf8.RuneCountInString(t)
	default:
		return 0
	}
}

// DisplayValue renders a document value the way it is interpolated into
// generated text: strings verbatim, numbers in shortest form, sequences
// comma-joined.
func DisplayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return FormatNumber(t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			if e == nil {
				continue
			}
			parts[i] = DisplayValue(e)
		}
		return strings.Join(parts, ",")
	case *Mapping:
		return "[object Object]"
	default:
		return ""
	}
}

// FormatNumber renders f in its shortest form: 3 rather than 3.0, 4.5 as is.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
