package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// FieldMap is an insertion-ordered mapping from field key to raw string
// value. The zero value is an empty map ready to use.
type FieldMap struct {
	keys   []string
	values map[string]string
}

// NewFieldMap builds a FieldMap from alternating key/value arguments. A
// trailing key without a value is stored with an empty value.
func NewFieldMap(pairs ...string) FieldMap {
	var m FieldMap
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		m.Set(pairs[i], value)
	}
	return m
}

// FieldMapFrom copies a plain map. Keys are inserted in sorted order so the
// result is deterministic.
func FieldMapFrom(values map[string]string) FieldMap {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var m FieldMap
	for _, key := range keys {
		m.Set(key, values[key])
	}
	return m
}

// Get returns the value stored under key, or "" when absent.
func (m FieldMap) Get(key string) string {
	return m.values[key]
}

// Lookup returns the value stored under key and whether it was present.
func (m FieldMap) Lookup(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key. New keys are appended to the iteration order;
// existing keys keep their position.
func (m *FieldMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key from the map.
func (m *FieldMap) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, existing := range m.keys {
		if existing == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m FieldMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len reports the number of entries.
func (m FieldMap) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy.
func (m FieldMap) Clone() FieldMap {
	var out FieldMap
	for _, key := range m.keys {
		out.Set(key, m.values[key])
	}
	return out
}

// Map returns a plain map copy of the entries.
func (m FieldMap) Map() map[string]string {
	out := make(map[string]string, len(m.keys))
	for _, key := range m.keys {
		out[key] = m.values[key]
	}
	return out
}

// Equal reports whether both maps hold the same entries in the same order.
func (m FieldMap) Equal(other FieldMap) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key || other.values[key] != m.values[key] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of strings, keeping document
// order.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("model: decode fields: %w", err)
	}
	if tok == nil {
		*m = FieldMap{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("model: decode fields: expected object")
	}

	var out FieldMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("model: decode fields: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("model: decode fields: expected string key")
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("model: decode field %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("model: decode fields: %w", err)
	}
	*m = out
	return nil
}

// MarshalYAML encodes the map as a YAML mapping preserving key order.
func (m FieldMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.values[key]},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a flat YAML mapping, keeping document order.
func (m *FieldMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("model: decode fields: expected mapping, line %d", node.Line)
	}
	var out FieldMap
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("model: decode field %q: expected scalar, line %d", keyNode.Value, valueNode.Line)
		}
		out.Set(keyNode.Value, valueNode.Value)
	}
	*m = out
	return nil
}
