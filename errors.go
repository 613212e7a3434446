// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema JSON or YAML decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaRootType is returned when schema root is not an object.
	ErrSchemaRootType = errors.New("schema root must be object")
	// ErrSchemaMissingField is returned when title, description or properties is absent.
	ErrSchemaMissingField = errors.New("schema missing required field")
	// ErrSchemaTooDeep is returned when nested properties exceed the supported depth.
	ErrSchemaTooDeep = errors.New("schema nesting too deep")
	// ErrMissingSchemaPath is returned when a transform request has no schema path.
	ErrMissingSchemaPath = errors.New("schema path is required")
	// ErrReadMergeSource is returned when an existing merge markdown file cannot be read.
	ErrReadMergeSource = errors.New("read merge source")
	// ErrCreateOutputDir is returned when output parent directory creation fails.
	ErrCreateOutputDir = errors.New("create output directory")
	// ErrWriteOutput is returned when rendered markdown persistence fails.
	ErrWriteOutput = errors.New("write output")
	// ErrEncodeExampleYAML is returned when example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
	// ErrReadBatchConfig is returned when batch config file loading fails.
	ErrReadBatchConfig = errors.New("read batch config")
	// ErrDecodeBatchConfig is returned when batch config YAML decoding fails.
	ErrDecodeBatchConfig = errors.New("decode batch config")
	// ErrBatchEntry is returned when one batch entry fails.
	ErrBatchEntry = errors.New("batch entry")
)
