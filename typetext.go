// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import "strings"

// ResolveTypeText renders node type as inline text. Enum values win over
// object shape, object shape over declared type names. With wrap set, object
// members are joined with line breaks.
func ResolveTypeText(node *PropertyNode, wrap bool) string {
	return resolveTypeText(node, wrap, 0)
}

// resolveTypeText is ResolveTypeText with recursion depth tracking.
func resolveTypeText(node *PropertyNode, wrap bool, depth int) string {
	if node == nil {
		return "any"
	}

	if len(node.Enum) > 0 {
		parts := make([]string, 0, len(node.Enum))
		for _, value := range node.Enum {
			parts = append(parts, `"`+scalarText(value)+`"`)
		}

		return strings.Join(parts, " | ")
	}

	if node.IsObject() {
		if depth >= maxSchemaDepth {
			return "object"
		}

		if len(node.Properties) == 0 {
			return "{}"
		}

		separator := ", "
		if wrap {
			separator = ",\n"
		}

		members := make([]string, 0, len(node.Properties))
		for _, prop := range node.Properties {
			members = append(members, prop.Name+": "+resolveTypeText(prop.Node, wrap, depth+1))
		}

		return "{ " + strings.Join(members, separator) + " }"
	}

	if len(node.Type) == 0 {
		return "any"
	}

	return strings.Join(node.Type, " | ")
}
