package jsonschema

import (
	"bytes"

	"github.com/elliotchance/orderedmap/v2"
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema is a JSON Schema document. Keywords keep their insertion order,
// which is also the order they are encoded in. Values are JSON scalars,
// slices, nested *Schema or []*Schema.
//
// The zero value is an empty schema ready to use.
type Schema struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New returns an empty schema.
func New() *Schema { return &Schema{} }

func (s *Schema) m() *orderedmap.OrderedMap[string, any] {
	if s.fields == nil {
		s.fields = orderedmap.NewOrderedMap[string, any]()
	}
	return s.fields
}

// Set stores v under key. An existing key keeps its position.
func (s *Schema) Set(key string, v any) *Schema {
	s.m().Set(key, v)
	return s
}

// Get returns the value stored under key.
func (s *Schema) Get(key string) (any, bool) {
	if s == nil || s.fields == nil {
		return nil, false
	}
	return s.fields.Get(key)
}

// Has reports whether key is present.
func (s *Schema) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Schema) Delete(key string) bool {
	if s == nil || s.fields == nil {
		return false
	}
	return s.fields.Delete(key)
}

// Len returns the number of keywords.
func (s *Schema) Len() int {
	if s == nil || s.fields == nil {
		return 0
	}
	return s.fields.Len()
}

// Keys returns the keywords in order.
func (s *Schema) Keys() []string {
	if s == nil || s.fields == nil {
		return nil
	}
	keys := make([]string, 0, s.fields.Len())
	for el := s.fields.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// Merge copies every keyword of o into s. Keywords of o win.
func (s *Schema) Merge(o *Schema) *Schema {
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		s.Set(k, v)
	}
	return s
}

// Type returns the "type" keyword when it is a string.
func (s *Schema) Type() string {
	v, _ := s.Get("type")
	t, _ := v.(string)
	return t
}

// Schema returns the nested schema stored under key, or nil.
func (s *Schema) Schema(key string) *Schema {
	v, _ := s.Get(key)
	sub, _ := v.(*Schema)
	return sub
}

// Schemas returns the schema list stored under key, or nil.
func (s *Schema) Schemas(key string) []*Schema {
	v, _ := s.Get(key)
	list, _ := v.([]*Schema)
	return list
}

// Strings returns the string list stored under key, or nil.
func (s *Schema) Strings(key string) []string {
	v, _ := s.Get(key)
	list, _ := v.([]string)
	return list
}

// Map converts s into plain maps and slices, recursively.
func (s *Schema) Map() map[string]any {
	out := make(map[string]any, s.Len())
	for _, k := range s.Keys() {
		v, _ := s.Get(k)
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Schema:
		return t.Map()
	case []*Schema:
		out := make([]any, len(t))
		for i, sub := range t {
			out[i] = sub.Map()
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes s with keywords in insertion order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		v, _ := s.Get(k)
		vb, err := j.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes s as a mapping node with keywords in insertion order.
func (s *Schema) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range s.Keys() {
		v, _ := s.Get(k)
		vn := &yaml.Node{}
		if err := vn.Encode(v); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
	}
	return n, nil
}

// JSON returns the indented JSON encoding of s.
func (s *Schema) JSON() ([]byte, error) {
	return j.MarshalIndent(s, "", "  ")
}

// YAML returns the YAML encoding of s.
func (s *Schema) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
