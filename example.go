// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatExamples renders node examples as markdown. The first example decides
// the layout: objects become one fenced YAML block each, scalars become
// space-joined inline code spans. Reports false when node has no examples.
func FormatExamples(node *PropertyNode) (string, bool, error) {
	if node == nil || len(node.Examples) == 0 {
		return "", false, nil
	}

	if !isStructuredExample(node.Examples[0]) {
		parts := make([]string, 0, len(node.Examples))
		for _, example := range node.Examples {
			parts = append(parts, "`"+escapeInline(scalarText(example))+"`")
		}

		return strings.Join(parts, " "), true, nil
	}

	blocks := make([]string, 0, len(node.Examples))
	for _, example := range node.Examples {
		data, err := marshalExampleYAML(example)
		if err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
		}

		blocks = append(blocks, "```yaml\n"+strings.TrimRight(string(data), "\n")+"\n```")
	}

	return strings.Join(blocks, "\n\n"), true, nil
}

// isStructuredExample reports whether example value is a map/record.
func isStructuredExample(value any) bool {
	switch value.(type) {
	case *orderedMap, map[string]any:
		return true
	default:
		return false
	}
}

// marshalExampleYAML serializes one example value as YAML keeping key order.
func marshalExampleYAML(value any) ([]byte, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, err
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds yaml.Node tree from decoded schema value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case yamlTimestamp:
		return yamlScalarNode("!!timestamp", string(typed)), nil

	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}

		float64Value, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(float64Value, 'g', -1, 64)), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case uint64:
		return yamlScalarNode("!!int", strconv.FormatUint(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case *orderedMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range typed.Keys() {
			item, _ := typed.get(key)
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range keys {
			valueNode, err := yamlNodeForValue(typed[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("unsupported example value type %T", typed)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
