// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchTransformKeepsInputOrder(t *testing.T) {
	t.Parallel()

	cfg := BatchConfig{
		Cwd:   "testdata",
		Write: Bool(false),
		Src: []Request{
			{SchemaPath: "simple.json"},
			{SchemaPath: "doc.json", Locale: "zh-CN"},
			{SchemaPath: "simple.yaml"},
		},
	}

	got, err := BatchTransform(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for index, req := range cfg.Requests() {
		want, err := Transform(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, want, got[index], "entry %d", index)
	}
}

func TestBatchTransformWithLimit(t *testing.T) {
	t.Parallel()

	cfg := BatchConfig{
		Cwd:         "testdata",
		Write:       Bool(false),
		Concurrency: 1,
		Src:         []Request{{SchemaPath: "doc.json"}, {SchemaPath: "simple.json"}},
	}

	got, err := BatchTransform(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "# 日志配置")
	assert.Contains(t, got[1], "# Config")
}

func TestBatchTransformEntryOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	cfg := BatchConfig{
		Cwd:    dir,
		Locale: "zh-CN",
		Write:  Bool(false),
		Src: []Request{
			{SchemaPath: "config.json", OutputPath: "skipped.md"},
			{SchemaPath: "config.json", OutputPath: "written.md", Locale: "en-US", Write: Bool(true)},
		},
	}

	got, err := BatchTransform(context.Background(), cfg)
	require.NoError(t, err)

	assert.Contains(t, got[0], "- 类型: `string`")
	assert.Contains(t, got[1], "- Type: `string`")
	assert.NoFileExists(t, filepath.Join(dir, "skipped.md"))

	written, err := os.ReadFile(filepath.Join(dir, "written.md"))
	require.NoError(t, err)
	assert.Equal(t, got[1], string(written))
}

func TestBatchTransformRelativeCwd(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(project, "s.json"), endToEndSchema)
	writeFile(t, filepath.Join(project, "s.md"), "## name\n\nKeep me.\n")

	cfg := BatchConfig{
		Cwd: relativeToWorkdir(t, project),
		Src: []Request{{SchemaPath: "s.json", OutputPath: "docs/out.md"}},
	}

	got, err := BatchTransform(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Keep me.")

	written, err := os.ReadFile(filepath.Join(project, "docs", "out.md"))
	require.NoError(t, err)
	assert.Equal(t, got[0], string(written))
}

func TestBatchTransformFailsAsWhole(t *testing.T) {
	t.Parallel()

	cfg := BatchConfig{
		Cwd:   "testdata",
		Write: Bool(false),
		Src: []Request{
			{SchemaPath: "simple.json"},
			{SchemaPath: "missing.json"},
		},
	}

	got, err := BatchTransform(context.Background(), cfg)
	require.ErrorIs(t, err, ErrBatchEntry)
	require.ErrorIs(t, err, ErrReadSchemaFile)
	assert.Contains(t, err.Error(), "missing.json")
	assert.Nil(t, got)
}

func TestBatchTransformEmpty(t *testing.T) {
	t.Parallel()

	got, err := BatchTransform(context.Background(), BatchConfig{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadBatchConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "docs.yaml")
	writeFile(t, configPath, `
cwd: schemas
locale: zh-CN
write: false
concurrency: 2
src:
  - schemaPath: app.schema.json
    outputPath: ../docs/app.md
  - schemaPath: other.schema.yaml
    locale: en-US
    write: true
    frontmatter: |
      ---
      title: Other
      ---
`)

	cfg, err := LoadBatchConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "schemas"), cfg.Cwd)
	assert.Equal(t, 2, cfg.Concurrency)
	require.Len(t, cfg.Src, 2)

	requests := cfg.Requests()
	assert.Equal(t, "zh-CN", requests[0].Locale)
	assert.False(t, *requests[0].Write)
	assert.Equal(t, filepath.Join(dir, "schemas"), requests[0].Cwd)
	assert.Equal(t, "en-US", requests[1].Locale)
	assert.True(t, *requests[1].Write)
	assert.Equal(t, "---\ntitle: Other\n---\n", requests[1].Frontmatter)
}

func TestLoadBatchConfigDefaultsCwdToConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "docs.yaml")
	writeFile(t, configPath, "src:\n  - schemaPath: a.json\n")

	cfg, err := LoadBatchConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Cwd)
	assert.Nil(t, cfg.Requests()[0].Write)
}

func TestLoadBatchConfigErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadBatchConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrReadBatchConfig)

	configPath := filepath.Join(dir, "bad.yaml")
	writeFile(t, configPath, "src: [unclosed")

	_, err = LoadBatchConfig(configPath)
	require.ErrorIs(t, err, ErrDecodeBatchConfig)
}
