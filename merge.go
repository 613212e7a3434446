// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// headingPattern matches ATX heading lines and captures heading text.
var headingPattern = regexp.MustCompile(`^#+\s+(.*)`)

// MergedContent maps heading text to the lines that follow it.
// Headings with the same text share one entry.
type MergedContent map[string]string

// ParseMergedMarkdown splits markdown into heading -> body entries. Body lines
// are trimmed and joined with newlines; text before the first heading and a
// leading front matter block are ignored.
func ParseMergedMarkdown(md string) MergedContent {
	out := MergedContent{}
	if md == "" {
		return out
	}

	md = normalizeLineEndings(stripFrontMatter(md))

	currentKey := ""
	for line := range strings.SplitSeq(md, "\n") {
		if matched := headingPattern.FindStringSubmatch(line); matched != nil {
			currentKey = strings.TrimSpace(matched[1])
			continue
		}

		if currentKey == "" {
			continue
		}

		line = strings.TrimSpace(line)
		if body, ok := out[currentKey]; ok {
			out[currentKey] = body + "\n" + line
		} else {
			out[currentKey] = line
		}
	}

	return out
}

// stripFrontMatter removes leading front matter block; malformed blocks keep the raw text.
func stripFrontMatter(md string) string {
	var matter map[string]any
	body, err := frontmatter.Parse(strings.NewReader(md), &matter)
	if err != nil {
		return md
	}

	return string(body)
}

// stripGenerated removes previously generated property body from recovered
// content, leaving only text a human appended after it.
func stripGenerated(extra, generated string) string {
	if generated == "" {
		return extra
	}

	if rest, ok := strings.CutPrefix(extra, generated); ok {
		return rest
	}

	return extra
}
