// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Request configures one schema-to-markdown transform.
type Request struct {
	// Write persists result to OutputPath; nil means true.
	Write *bool `yaml:"write,omitempty"`
	// Cwd resolves relative paths; empty means process working directory.
	Cwd string `yaml:"cwd,omitempty"`
	// SchemaPath is the schema file, JSON or YAML.
	SchemaPath string `yaml:"schemaPath"`
	// Locale selects label dictionary; empty means en-US.
	Locale string `yaml:"locale,omitempty"`
	// SchemaMarkdown is merge source path; empty means SchemaPath with .md extension.
	SchemaMarkdown string `yaml:"schemaMarkdown,omitempty"`
	// Frontmatter is inserted before the title.
	Frontmatter string `yaml:"frontmatter,omitempty"`
	// Heading is inserted after the description.
	Heading string `yaml:"heading,omitempty"`
	// OutputPath is the markdown destination.
	OutputPath string `yaml:"outputPath,omitempty"`
}

// RenderOptions configures in-memory document rendering.
type RenderOptions struct {
	// Locale selects label dictionary; empty means en-US.
	Locale string
	// Frontmatter is inserted before the title.
	Frontmatter string
	// Heading is inserted after the description.
	Heading string
	// MergeSource is previously generated or hand-written markdown whose
	// per-property text is carried into the result.
	MergeSource string
}

// Bool returns pointer to value, for Request.Write.
func Bool(value bool) *bool {
	return &value
}

// ShouldWrite reports whether result is persisted.
func (req Request) ShouldWrite() bool {
	return (req.Write == nil || *req.Write) && req.OutputPath != ""
}

// MergeSourcePath returns explicit merge source or schema path with .md extension.
func (req Request) MergeSourcePath() string {
	if req.SchemaMarkdown != "" {
		return req.SchemaMarkdown
	}

	return strings.TrimSuffix(req.SchemaPath, filepath.Ext(req.SchemaPath)) + ".md"
}

// Normalize applies defaults and resolves relative paths against Cwd, which
// itself becomes absolute. Normalizing a normalized request changes nothing.
func (req Request) Normalize() (Request, error) {
	if strings.TrimSpace(req.SchemaPath) == "" {
		return Request{}, ErrMissingSchemaPath
	}

	cwd, err := filepath.Abs(req.Cwd)
	if err != nil {
		return Request{}, fmt.Errorf("resolve working directory: %w", err)
	}

	req.Cwd = cwd

	if req.Locale == "" {
		req.Locale = DefaultLocale
	}

	req.SchemaPath = resolvePath(req.Cwd, req.SchemaPath)
	if req.SchemaMarkdown != "" {
		req.SchemaMarkdown = resolvePath(req.Cwd, req.SchemaMarkdown)
	}

	if req.OutputPath != "" {
		req.OutputPath = resolvePath(req.Cwd, req.OutputPath)
	}

	return req, nil
}

// resolvePath joins relative path to cwd; absolute path is returned as is.
func resolvePath(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(cwd, path)
}

// Transform loads schema file fresh, renders markdown and persists it when requested.
func Transform(ctx context.Context, req Request) (string, error) {
	req, err := req.Normalize()
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := LoadSchemaFile(req.SchemaPath)
	if err != nil {
		return "", err
	}

	return transformNormalized(ctx, doc, req)
}

// TransformSchema renders already loaded schema, merging text from the merge
// source file when it exists, and persists the result when requested.
func TransformSchema(ctx context.Context, doc SchemaDocument, req Request) (string, error) {
	req, err := req.Normalize()
	if err != nil {
		return "", err
	}

	return transformNormalized(ctx, doc, req)
}

// transformNormalized renders and persists schema for a request that already
// went through Normalize.
func transformNormalized(ctx context.Context, doc SchemaDocument, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mergeSource, err := readMergeSource(req.MergeSourcePath())
	if err != nil {
		return "", err
	}

	md, err := RenderDocument(doc, RenderOptions{
		Locale:      req.Locale,
		Frontmatter: req.Frontmatter,
		Heading:     req.Heading,
		MergeSource: mergeSource,
	})
	if err != nil {
		return "", err
	}

	if !req.ShouldWrite() {
		return md, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := writeOutput(req.OutputPath, md); err != nil {
		return "", err
	}

	return md, nil
}

// RenderDocument renders schema into markdown without touching the filesystem.
func RenderDocument(doc SchemaDocument, opt RenderOptions) (string, error) {
	locale := opt.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	tr := NewTranslator(MergeDocConfig(DefaultDocConfig(), doc.Doc).Dictionary(locale))
	merged := ParseMergedMarkdown(opt.MergeSource)

	sections := make([]string, 0, len(doc.Properties)+4)
	sections = append(sections,
		opt.Frontmatter,
		"# "+doc.Title,
		doc.Description,
		opt.Heading,
	)

	for _, prop := range doc.Properties {
		extra, err := preservedContent(prop, tr, merged)
		if err != nil {
			return "", err
		}

		block, err := RenderProperty(prop.Name, prop.Node, tr, extra)
		if err != nil {
			return "", fmt.Errorf("render property %q: %w", prop.Name, err)
		}

		sections = append(sections, block)
	}

	return strings.TrimSpace(joinSections(sections...)), nil
}

// preservedContent returns text recovered for property heading minus the
// part this renderer would generate itself.
func preservedContent(prop Property, tr Translator, merged MergedContent) (string, error) {
	key := strings.TrimSpace(prop.Name)
	extra, ok := merged[key]
	if !ok {
		return "", nil
	}

	generated, err := RenderProperty(prop.Name, prop.Node, tr, "")
	if err != nil {
		return "", fmt.Errorf("render property %q: %w", prop.Name, err)
	}

	return strings.TrimSpace(stripGenerated(extra, ParseMergedMarkdown(generated)[key])), nil
}

// readMergeSource reads merge markdown; a missing file yields empty text.
func readMergeSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("%w: %w", ErrReadMergeSource, err)
	}

	return string(data), nil
}

// writeOutput creates parent directory and overwrites path with markdown text.
func writeOutput(path, md string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w %q: %w", ErrCreateOutputDir, filepath.Dir(path), err)
	}

	//nolint:gosec // generated documentation is meant to be world-readable.
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	return nil
}
