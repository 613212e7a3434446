// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// maxSchemaDepth caps property nesting accepted at ingestion and walked by type resolver.
const maxSchemaDepth = 64

const (
	// SchemaFormatJSON decodes schema source as JSON.
	SchemaFormatJSON SchemaFormat = "json"
	// SchemaFormatYAML decodes schema source as YAML.
	SchemaFormatYAML SchemaFormat = "yaml"
)

// SchemaFormat selects schema source decoder.
type SchemaFormat string

const (
	// KindScalar marks a node rendered from its type, enum or format.
	KindScalar NodeKind = iota
	// KindObject marks a node with nested properties rendered recursively.
	KindObject
)

// NodeKind classifies a property node once at ingestion.
type NodeKind int

// String returns kind name.
func (kind NodeKind) String() string {
	if kind == KindObject {
		return "object"
	}

	return "scalar"
}

// SchemaDocument is the consumed subset of one schema file.
type SchemaDocument struct {
	// Title is rendered as the top-level heading.
	Title string
	// Description is rendered under the title.
	Description string
	// Properties keeps the schema's own key order.
	Properties []Property
	// Doc holds schema-level locale overrides.
	Doc DocConfig
}

// Property is one named schema property.
type Property struct {
	Name string
	Node *PropertyNode
}

// PropertyNode is one classified schema property.
type PropertyNode struct {
	// Type holds declared type names; a single string type is a one-item list.
	Type        []string
	Description string
	Format      string
	Enum        []any
	Examples    []any
	// Properties is set for object nodes only.
	Properties []Property
	Doc        PropertyDoc
	Kind       NodeKind
}

// IsObject reports whether node renders as nested object.
func (node *PropertyNode) IsObject() bool {
	return node != nil && node.Kind == KindObject
}

// PropertyDoc holds per-property label/value overrides.
type PropertyDoc struct {
	Props []DocProp
}

// DocProp is one extra labeled value rendered under a property.
type DocProp struct {
	Key   string
	Value string
}

// LoadSchemaFile reads and parses schema file. Every call reads the file again,
// nothing is cached between calls.
func LoadSchemaFile(path string) (SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SchemaDocument{}, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	doc, err := ParseSchema(data, schemaFormatForPath(path))
	if err != nil {
		return SchemaDocument{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// schemaFormatForPath picks decoder by file extension.
func schemaFormatForPath(path string) SchemaFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SchemaFormatYAML
	default:
		return SchemaFormatJSON
	}
}

// ParseSchema decodes schema bytes and classifies every property node.
func ParseSchema(data []byte, format SchemaFormat) (SchemaDocument, error) {
	var (
		raw any
		err error
	)

	switch format {
	case SchemaFormatYAML:
		raw, err = decodeOrderedYAML(data)
	default:
		raw, err = decodeOrderedJSON(data)
	}

	if err != nil {
		return SchemaDocument{}, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root := asOrderedMap(raw)
	if root == nil {
		return SchemaDocument{}, ErrSchemaRootType
	}

	for _, field := range []string{"title", "description", "properties"} {
		if _, ok := root.get(field); !ok {
			return SchemaDocument{}, fmt.Errorf("%w %q", ErrSchemaMissingField, field)
		}
	}

	properties, err := buildProperties(root, "", 1)
	if err != nil {
		return SchemaDocument{}, err
	}

	docValue, _ := root.get("doc")
	docConfig, err := docConfigFromValue(docValue)
	if err != nil {
		return SchemaDocument{}, err
	}

	title, _ := root.get("title")
	description, _ := root.get("description")
	return SchemaDocument{
		Title:       scalarText(title),
		Description: scalarText(description),
		Properties:  properties,
		Doc:         docConfig,
	}, nil
}

// buildProperties classifies children of object "properties" keyword in declared order.
func buildProperties(object *orderedMap, path string, depth int) ([]Property, error) {
	value, _ := object.get("properties")
	children := asOrderedMap(value)
	if children == nil {
		if value != nil {
			return nil, fmt.Errorf("%w: %s: properties must be an object", ErrDecodeSchema, orRoot(path))
		}

		return nil, nil
	}

	if depth > maxSchemaDepth {
		return nil, fmt.Errorf("%w: %s exceeds %d levels", ErrSchemaTooDeep, orRoot(path), maxSchemaDepth)
	}

	out := make([]Property, 0, len(children.Keys()))
	for _, name := range children.Keys() {
		childValue, _ := children.get(name)
		node, err := buildPropertyNode(childValue, appendPath(path, name), depth)
		if err != nil {
			return nil, err
		}

		out = append(out, Property{Name: name, Node: node})
	}

	return out, nil
}

// buildPropertyNode converts one decoded schema node into classified PropertyNode.
func buildPropertyNode(value any, path string, depth int) (*PropertyNode, error) {
	object := asOrderedMap(value)
	if object == nil {
		return nil, fmt.Errorf("%w: %s: property schema must be an object", ErrDecodeSchema, path)
	}

	node := &PropertyNode{
		Type: typeNames(object),
	}

	if description, ok := object.get("description"); ok {
		node.Description = scalarText(description)
	}

	if format, ok := object.get("format"); ok {
		node.Format = scalarText(format)
	}

	if enum, ok := object.get("enum"); ok {
		node.Enum = asSlice(enum)
	}

	if examples, ok := object.get("examples"); ok {
		node.Examples = asSlice(examples)
	}

	docValue, _ := object.get("doc")
	node.Doc = propertyDocFromValue(docValue)

	_, hasProperties := object.get("properties")
	if hasProperties || slices.Contains(node.Type, "object") {
		node.Kind = KindObject
		properties, err := buildProperties(object, path, depth+1)
		if err != nil {
			return nil, err
		}

		node.Properties = properties
	}

	return node, nil
}

// typeNames reads "type" (or "typeof" fallback) as a list of names.
func typeNames(object *orderedMap) []string {
	value, ok := object.get("type")
	if !ok {
		value, ok = object.get("typeof")
	}

	if !ok {
		return nil
	}

	if items, isList := value.([]any); isList {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, scalarText(item))
		}

		return out
	}

	return []string{scalarText(value)}
}

// propertyDocFromValue reads "doc.props" overrides in declared order.
func propertyDocFromValue(value any) PropertyDoc {
	props, _ := asOrderedMap(value).get("props")
	object := asOrderedMap(props)
	if object == nil {
		return PropertyDoc{}
	}

	out := PropertyDoc{Props: make([]DocProp, 0, len(object.Keys()))}
	for _, key := range object.Keys() {
		item, _ := object.get(key)
		out.Props = append(out.Props, DocProp{Key: key, Value: scalarText(item)})
	}

	return out
}

// appendPath joins path segments with a dot while preserving empty root prefix.
func appendPath(base, segment string) string {
	if base == "" {
		return segment
	}

	return base + "." + segment
}

// orRoot names empty property path.
func orRoot(path string) string {
	if path == "" {
		return "(root)"
	}

	return path
}
