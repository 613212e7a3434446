// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"strings"
)

// RenderProperty renders one property section: heading, labeled attribute
// list, examples, nested field summary for objects and preserved extra text.
func RenderProperty(key string, node *PropertyNode, tr Translator, extra string) (string, error) {
	if node == nil {
		node = &PropertyNode{}
	}

	attributes := []string{
		bulletLine(tr.Label("props.type"), "`"+escapeInline(ResolveTypeText(node, false))+"`"),
		bulletLine(tr.Label("props.description"), escapeText(node.Description)),
	}

	if node.Format != "" {
		attributes = append(attributes, bulletLine(tr.Label("props.format"), escapeText(node.Format)))
	}

	for _, prop := range node.Doc.Props {
		attributes = append(attributes, bulletLine(tr.Label("props."+prop.Key), escapeText(prop.Value)))
	}

	examples, hasExamples, err := FormatExamples(node)
	if err != nil {
		return "", err
	}

	exampleBlock := ""
	if hasExamples {
		if isStructuredExample(node.Examples[0]) {
			attributes = append(attributes, "- "+tr.Label("props.examples")+":")
			exampleBlock = examples
		} else {
			attributes = append(attributes, bulletLine(tr.Label("props.examples"), examples))
		}
	}

	for i, line := range attributes {
		attributes[i] = strings.TrimRight(line, " ")
	}

	fields := ""
	if node.IsObject() {
		fields = objectFieldsSection(node, tr)
	}

	return joinSections(
		"## "+key,
		strings.Join(attributes, "\n"),
		exampleBlock,
		fields,
		extra,
	), nil
}

// objectFieldsSection renders translated intro sentence and one item per nested member.
func objectFieldsSection(node *PropertyNode, tr Translator) string {
	lines := make([]string, 0, len(node.Properties))
	for _, prop := range node.Properties {
		description := ""
		if prop.Node != nil {
			description = prop.Node.Description
		}

		lines = append(lines, strings.TrimRight("- `"+escapeInline(prop.Name)+"`: "+escapeText(description), " "))
	}

	return joinSections(tr.Label("objectFieldsDesc"), strings.Join(lines, "\n"))
}
