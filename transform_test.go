// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "update golden files")

const endToEndSchema = `{
  "title": "Config",
  "description": "Top-level configuration.",
  "properties": {
    "name": {"type": "string", "description": "Display name."}
  }
}`

func TestTransformGolden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		schema string
		locale string
		golden string
	}{
		{schema: "simple.json", golden: "simple.golden.md"},
		{schema: "doc.json", locale: "zh-CN", golden: "doc.golden.md"},
		{schema: "merge-md.json", golden: "merge-md.golden.md"},
	}

	for _, tc := range cases {
		t.Run(tc.schema, func(t *testing.T) {
			t.Parallel()

			got, err := Transform(context.Background(), Request{
				Cwd:        "testdata",
				SchemaPath: tc.schema,
				Locale:     tc.locale,
				Write:      Bool(false),
			})
			require.NoError(t, err)

			assertGolden(t, filepath.Join("testdata", tc.golden), got)
		})
	}
}

func TestTransformEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	got, err := Transform(context.Background(), Request{
		Cwd:        dir,
		SchemaPath: "config.json",
		Write:      Bool(false),
	})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	for _, want := range []string{
		"# Config",
		"Top-level configuration.",
		"## name",
		"- Type: `string`",
		"- Description: Display name.",
	} {
		assert.Contains(t, lines, want)
	}
}

func TestTransformWritesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	got, err := Transform(context.Background(), Request{
		Cwd:        dir,
		SchemaPath: "config.json",
		OutputPath: filepath.Join("docs", "nested", "README.md"),
	})
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "docs", "nested", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, got, string(written))
}

func TestTransformSkipsWriteWhenDisabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	_, err := Transform(context.Background(), Request{
		Cwd:        dir,
		SchemaPath: "config.json",
		OutputPath: "out.md",
		Write:      Bool(false),
	})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out.md"))
}

func TestTransformFrontmatterAndHeading(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	got, err := Transform(context.Background(), Request{
		Cwd:         dir,
		SchemaPath:  "config.json",
		Frontmatter: "\n---\nsidebar: auto\n---\n\n",
		Heading:     "  ## Options  \n",
		Write:       Bool(false),
	})
	require.NoError(t, err)

	want := "---\nsidebar: auto\n---\n\n# Config\n\nTop-level configuration.\n\n## Options\n\n## name\n\n"
	assert.True(t, strings.HasPrefix(got, want), "unexpected document head:\n%s", got)
}

func TestTransformIdempotentMerge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "simple.json")
	data, err := os.ReadFile(filepath.Join("testdata", "simple.json"))
	require.NoError(t, err)
	writeFile(t, schemaPath, string(data))

	req := Request{
		Cwd:            dir,
		SchemaPath:     "simple.json",
		SchemaMarkdown: "README.md",
		OutputPath:     "README.md",
	}

	first, err := Transform(context.Background(), req)
	require.NoError(t, err)

	again, err := Transform(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, again, "regenerating from own output must not change it")

	const note = "Hand written note about `mode`.\nSecond line."
	edited := strings.Replace(first, "- Description: Run mode.", "- Description: Run mode.\n\n"+note, 1)
	edited = strings.Replace(edited, "- `tls`: TLS settings.", "- `tls`: TLS settings.\n\nServer note.", 1)
	writeFile(t, filepath.Join(dir, "README.md"), edited)

	regenerated, err := Transform(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, edited, regenerated)
	assert.Equal(t, 1, strings.Count(regenerated, note))
	assert.Equal(t, 1, strings.Count(regenerated, "- Type: `\"safe\" | \"fast\"`"))

	stable, err := Transform(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, regenerated, stable)
}

func TestTransformDefaultMergeSourceUsesSchemaName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)
	writeFile(t, filepath.Join(dir, "config.md"), "## name\n\nFrom the side file.\n")

	got, err := Transform(context.Background(), Request{Cwd: dir, SchemaPath: "config.json", Write: Bool(false)})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "- Description: Display name.\n\nFrom the side file."), got)
}

func TestTransformMergeSourceDirectoryFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config.md"), 0o755))

	_, err := Transform(context.Background(), Request{Cwd: dir, SchemaPath: "config.json", Write: Bool(false)})
	require.ErrorIs(t, err, ErrReadMergeSource)
}

func TestTransformErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Transform(context.Background(), Request{Cwd: dir})
	require.ErrorIs(t, err, ErrMissingSchemaPath)

	_, err = Transform(context.Background(), Request{Cwd: dir, SchemaPath: "missing.json"})
	require.ErrorIs(t, err, ErrReadSchemaFile)

	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)
	writeFile(t, filepath.Join(dir, "blocker"), "file, not a directory")

	_, err = Transform(context.Background(), Request{
		Cwd:        dir,
		SchemaPath: "config.json",
		OutputPath: filepath.Join("blocker", "out.md"),
	})
	require.ErrorIs(t, err, ErrCreateOutputDir)
}

func TestTransformCanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json"), endToEndSchema)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Transform(ctx, Request{Cwd: dir, SchemaPath: "config.json", OutputPath: "out.md"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "out.md"))
}

func TestRenderDocumentUnknownLocale(t *testing.T) {
	t.Parallel()

	doc, err := ParseSchema([]byte(endToEndSchema), SchemaFormatJSON)
	require.NoError(t, err)

	got, err := RenderDocument(doc, RenderOptions{Locale: "fr-FR"})
	require.NoError(t, err)
	assert.Contains(t, got, "- i18n_props.type: `string`")
}

func TestRequestNormalize(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "abs.json")
	req, err := Request{Cwd: "/work", SchemaPath: abs, OutputPath: "docs/out.md", SchemaMarkdown: "notes.md"}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, abs, req.SchemaPath)
	assert.Equal(t, filepath.Join("/work", "docs", "out.md"), req.OutputPath)
	assert.Equal(t, filepath.Join("/work", "notes.md"), req.MergeSourcePath())
	assert.Equal(t, DefaultLocale, req.Locale)
	assert.True(t, req.ShouldWrite())

	req, err = Request{Cwd: "/work", SchemaPath: "schemas/app.schema.json"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "schemas", "app.schema.md"), req.MergeSourcePath())
	assert.False(t, req.ShouldWrite())
}

func TestRequestNormalizeIsStable(t *testing.T) {
	t.Parallel()

	once, err := Request{Cwd: "testdata", SchemaPath: "merge-md.json", OutputPath: "out/merge.md"}.Normalize()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(once.Cwd))

	twice, err := once.Normalize()
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, filepath.Join(once.Cwd, "merge-md.md"), twice.MergeSourcePath())
}

func TestTransformRelativeCwdKeepsMergeAndOutput(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(project, "s.json"), endToEndSchema)
	writeFile(t, filepath.Join(project, "s.md"), "## name\n\nKeep me.\n")

	got, err := Transform(context.Background(), Request{
		Cwd:        relativeToWorkdir(t, project),
		SchemaPath: "s.json",
		OutputPath: "out.md",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "- Description: Display name.\n\nKeep me."), got)

	written, err := os.ReadFile(filepath.Join(project, "out.md"))
	require.NoError(t, err)
	assert.Equal(t, got, string(written))
	assert.NoDirExists(t, filepath.Join(project, "proj"))
}

// relativeToWorkdir returns path relative to the test process working directory.
func relativeToWorkdir(t *testing.T, path string) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	rel, err := filepath.Rel(wd, path)
	require.NoError(t, err)
	require.False(t, filepath.IsAbs(rel))

	return rel
}

// assertGolden compares output with golden file, rewriting it under -update.
func assertGolden(t *testing.T, goldenPath, got string) {
	t.Helper()

	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o600))
	}

	wantBytes, err := os.ReadFile(goldenPath)
	require.NoError(t, err)

	want := strings.TrimSuffix(string(wantBytes), "\n")
	if got == want {
		return
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: goldenPath,
		ToFile:   "got",
		Context:  3,
	})
	t.Fatalf("golden mismatch; run `go test . -run TestTransformGolden -update`\n%s", diff)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
