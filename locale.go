// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when request does not select a locale.
	DefaultLocale = "en-US"
	// i18nPlaceholderPrefix prefixes label paths missing from the dictionary.
	i18nPlaceholderPrefix = "i18n_"
)

// DocConfig is the locale label configuration, built-in or schema "doc" override.
type DocConfig struct {
	Locales map[string]LocaleConfig `yaml:"locales"`
}

// LocaleConfig holds labels for one locale.
type LocaleConfig struct {
	Props            map[string]string `yaml:"props"`
	ObjectFieldsDesc string            `yaml:"objectFieldsDesc"`
}

// DefaultDocConfig returns a fresh copy of built-in locale labels.
func DefaultDocConfig() DocConfig {
	return DocConfig{
		Locales: map[string]LocaleConfig{
			"en-US": {
				ObjectFieldsDesc: "The meaning of each field is as follows:",
				Props: map[string]string{
					"type":        "Type",
					"description": "Description",
					"format":      "Format",
					"examples":    "Examples",
					"level":       "Level",
				},
			},
			"zh-CN": {
				ObjectFieldsDesc: "其中，各个字段的含义如下：",
				Props: map[string]string{
					"type":        "类型",
					"description": "描述",
					"format":      "格式",
					"examples":    "示例",
					"level":       "级别",
				},
			},
		},
	}
}

// MergeDocConfig overlays override on base per locale. A non-empty
// objectFieldsDesc replaces the base one, props merge key by key.
// Neither input is modified.
func MergeDocConfig(base, override DocConfig) DocConfig {
	out := DocConfig{Locales: make(map[string]LocaleConfig, len(base.Locales)+len(override.Locales))}
	for id, locale := range base.Locales {
		out.Locales[id] = locale.clone()
	}

	for id, overlay := range override.Locales {
		merged := out.Locales[id].clone()
		if overlay.ObjectFieldsDesc != "" {
			merged.ObjectFieldsDesc = overlay.ObjectFieldsDesc
		}

		maps.Copy(merged.Props, overlay.Props)
		out.Locales[id] = merged
	}

	return out
}

// clone returns deep copy with non-nil props.
func (locale LocaleConfig) clone() LocaleConfig {
	props := make(map[string]string, len(locale.Props))
	maps.Copy(props, locale.Props)
	return LocaleConfig{
		ObjectFieldsDesc: locale.ObjectFieldsDesc,
		Props:            props,
	}
}

// Dictionary returns label lookup tree for locale; unknown locale yields empty dictionary.
// Locale is matched as written first, then in canonical BCP 47 form (zh_cn -> zh-CN).
func (config DocConfig) Dictionary(locale string) map[string]any {
	entry, ok := config.lookupLocale(locale)
	if !ok {
		return map[string]any{}
	}

	props := make(map[string]any, len(entry.Props))
	for key, value := range entry.Props {
		props[key] = value
	}

	return map[string]any{
		"objectFieldsDesc": entry.ObjectFieldsDesc,
		"props":            props,
	}
}

// lookupLocale finds locale entry by exact key or canonical language tag.
func (config DocConfig) lookupLocale(locale string) (LocaleConfig, bool) {
	if entry, ok := config.Locales[locale]; ok {
		return entry, true
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LocaleConfig{}, false
	}

	entry, ok := config.Locales[tag.String()]
	return entry, ok
}

// Translator resolves dotted label paths against one locale dictionary.
type Translator struct {
	dict map[string]any
}

// NewTranslator binds translator to locale dictionary.
func NewTranslator(dict map[string]any) Translator {
	return Translator{dict: dict}
}

// Lookup walks path segments through dictionary. Empty path returns the whole
// dictionary. Misses return "i18n_<path>" placeholder instead of failing.
func (tr Translator) Lookup(path string) any {
	if path == "" {
		if tr.dict == nil {
			return i18nPlaceholderPrefix
		}

		return tr.dict
	}

	var current any = tr.dict
	for segment := range strings.SplitSeq(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return i18nPlaceholderPrefix + path
		}

		current, ok = object[segment]
		if !ok {
			return i18nPlaceholderPrefix + path
		}
	}

	return current
}

// Label resolves path to label text; non-text values yield placeholder.
func (tr Translator) Label(path string) string {
	if text, ok := tr.Lookup(path).(string); ok {
		return text
	}

	return i18nPlaceholderPrefix + path
}

// docConfigFromValue reads schema "doc" keyword into DocConfig.
func docConfigFromValue(value any) (DocConfig, error) {
	if value == nil {
		return DocConfig{}, nil
	}

	doc := asOrderedMap(value)
	if doc == nil {
		return DocConfig{}, fmt.Errorf("%w: doc must be an object", ErrDecodeSchema)
	}

	localesValue, _ := doc.get("locales")
	locales := asOrderedMap(localesValue)
	if locales == nil {
		return DocConfig{}, nil
	}

	out := DocConfig{Locales: make(map[string]LocaleConfig, len(locales.Keys()))}
	for _, id := range locales.Keys() {
		entryValue, _ := locales.get(id)
		entry := asOrderedMap(entryValue)
		if entry == nil {
			return DocConfig{}, fmt.Errorf("%w: doc.locales.%s must be an object", ErrDecodeSchema, id)
		}

		locale := LocaleConfig{Props: map[string]string{}}
		if desc, ok := entry.get("objectFieldsDesc"); ok {
			locale.ObjectFieldsDesc = scalarText(desc)
		}

		propsValue, _ := entry.get("props")
		props := asOrderedMap(propsValue)
		for _, key := range props.Keys() {
			label, _ := props.get(key)
			locale.Props[key] = scalarText(label)
		}

		out.Locales[id] = locale
	}

	return out, nil
}
