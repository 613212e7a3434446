// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"html"
	"strings"
)

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// escapeText escapes HTML special characters (& < > ' ") in plain text values.
func escapeText(value string) string {
	return html.EscapeString(value)
}

// joinSections joins non-blank markdown sections with one blank line.
func joinSections(sections ...string) string {
	out := make([]string, 0, len(sections))
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		out = append(out, section)
	}

	return strings.Join(out, "\n\n")
}

// bulletLine renders one "- label: value" list item.
func bulletLine(label, value string) string {
	return "- " + label + ": " + value
}
