// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// orderedMap is a decoded JSON/YAML object that keeps key insertion order.
type orderedMap struct {
	values map[string]any
	keys   []string
}

// newOrderedMap returns an empty ordered map with preallocated storage.
func newOrderedMap(size int) *orderedMap {
	return &orderedMap{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// set stores value under key; a repeated key keeps its first position.
func (m *orderedMap) set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// get returns value stored under key.
func (m *orderedMap) get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	value, ok := m.values[key]
	return value, ok
}

// Keys returns keys in insertion order.
func (m *orderedMap) Keys() []string {
	if m == nil {
		return nil
	}

	return m.keys
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *orderedMap) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			out.WriteByte(',')
		}

		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		valueData, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}

		out.Write(keyData)
		out.WriteByte(':')
		out.Write(valueData)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// decodeOrderedJSON decodes one JSON document into ordered values.
// Objects become *orderedMap, arrays []any, numbers json.Number.
func decodeOrderedJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeJSONValue(decoder)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return value, nil
}

// decodeJSONValue reads one value from token stream.
func decodeJSONValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := newOrderedMap(8)
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyToken)
			}

			value, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}

			object.set(key, value)
		}

		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		return object, nil
	case '[':
		items := make([]any, 0)
		for decoder.More() {
			value, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}

		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// decodeOrderedYAML decodes one YAML document into ordered values.
func decodeOrderedYAML(data []byte) (any, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	if document.Kind == 0 {
		return nil, errors.New("empty document")
	}

	return yamlNodeValue(&document, map[*yaml.Node]bool{})
}

// yamlTimestamp is an unquoted YAML timestamp kept in its source spelling.
type yamlTimestamp string

// yamlNodeValue converts yaml.Node tree into ordered values. Anchored nodes
// being expanded are tracked in active, an alias back into one is an error.
func yamlNodeValue(node *yaml.Node, active map[*yaml.Node]bool) (any, error) {
	if node.Anchor != "" {
		if active[node] {
			return nil, fmt.Errorf("line %d: %w: anchor %q refers to itself", node.Line, ErrSchemaTooDeep, node.Anchor)
		}

		active[node] = true
		defer delete(active, node)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return yamlNodeValue(node.Content[0], active)
	case yaml.AliasNode:
		return yamlNodeValue(node.Alias, active)
	case yaml.MappingNode:
		object := newOrderedMap(len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be scalar", keyNode.Line)
			}

			value, err := yamlNodeValue(node.Content[i+1], active)
			if err != nil {
				return nil, err
			}

			object.set(keyNode.Value, value)
		}

		return object, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := yamlNodeValue(child, active)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}

		return items, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!timestamp" {
			return yamlTimestamp(node.Value), nil
		}

		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}

// asString returns string value or empty string.
func asString(value any) string {
	text, _ := value.(string)
	return text
}

// asSlice returns slice value or nil.
func asSlice(value any) []any {
	items, _ := value.([]any)
	return items
}

// asOrderedMap returns object value or nil.
func asOrderedMap(value any) *orderedMap {
	object, _ := value.(*orderedMap)
	return object
}

// scalarText renders scalar values as plain text; strings stay unquoted.
func scalarText(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case yamlTimestamp:
		return string(typed)
	case json.Number:
		return typed.String()
	case nil:
		return "null"
	default:
		return mustJSONInline(typed)
	}
}

// mustJSONInline marshals values as single-line JSON text for markdown snippets.
func mustJSONInline(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return strings.TrimSpace(string(data))
}
