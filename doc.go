// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

/*
Package jsonschema2md renders Markdown documentation from JSON Schema files
with translated labels and keeps hand-written text across regenerations.

Only a subset of JSON Schema is consumed: title, description, properties,
type (or typeof), enum, format, examples and the "doc" extension keyword that
overrides locale labels and adds per-property label/value rows.

Render one schema and write the result:

	md, err := jsonschema2md.Transform(ctx, jsonschema2md.Request{
		SchemaPath: "config.schema.json",
		OutputPath: "docs/config.md",
		Locale:     "zh-CN",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Text written under a property heading of the merge source (by default the
schema path with ".md" extension, or Request.SchemaMarkdown) is carried into
the regenerated section for the same property. Pointing the merge source at
the generated output makes regeneration keep human edits:

	md, err := jsonschema2md.Transform(ctx, jsonschema2md.Request{
		SchemaPath:     "config.schema.json",
		SchemaMarkdown: "docs/config.md",
		OutputPath:     "docs/config.md",
	})

Render many schemas concurrently; results follow input order:

	results, err := jsonschema2md.BatchTransform(ctx, jsonschema2md.BatchConfig{
		Locale: "en-US",
		Write:  jsonschema2md.Bool(false),
		Src: []jsonschema2md.Request{
			{SchemaPath: "a.schema.json"},
			{SchemaPath: "b.schema.yaml", Locale: "zh-CN"},
		},
	})

Render an in-memory schema without touching the filesystem:

	doc, err := jsonschema2md.ParseSchema(schemaBytes, jsonschema2md.SchemaFormatJSON)
	if err != nil {
		return err
	}

	md, err := jsonschema2md.RenderDocument(doc, jsonschema2md.RenderOptions{})
*/
package jsonschema2md
