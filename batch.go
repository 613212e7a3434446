// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

package jsonschema2md

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// BatchConfig is shared defaults plus an ordered list of transform requests.
type BatchConfig struct {
	// Write is the default for entries without own write flag; nil means true.
	Write *bool `yaml:"write,omitempty"`
	// Cwd is the default working directory for entries.
	Cwd string `yaml:"cwd,omitempty"`
	// Locale is the default locale for entries.
	Locale string `yaml:"locale,omitempty"`
	// Src lists transform requests; result order follows this list.
	Src []Request `yaml:"src"`
	// Concurrency caps parallel transforms; zero runs all at once.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LoadBatchConfig reads YAML batch config. Relative cwd is resolved against
// config file directory, empty cwd defaults to it.
func LoadBatchConfig(path string) (BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BatchConfig{}, fmt.Errorf("%w: %w", ErrReadBatchConfig, err)
	}

	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BatchConfig{}, fmt.Errorf("%w %q: %w", ErrDecodeBatchConfig, path, err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return BatchConfig{}, fmt.Errorf("%w: %w", ErrReadBatchConfig, err)
	}

	if cfg.Cwd == "" {
		cfg.Cwd = baseDir
	} else {
		cfg.Cwd = resolvePath(baseDir, cfg.Cwd)
	}

	return cfg, nil
}

// Requests returns entries with shared defaults applied to unset fields.
func (cfg BatchConfig) Requests() []Request {
	out := make([]Request, 0, len(cfg.Src))
	for _, req := range cfg.Src {
		if req.Cwd == "" {
			req.Cwd = cfg.Cwd
		} else if cfg.Cwd != "" {
			req.Cwd = resolvePath(cfg.Cwd, req.Cwd)
		}

		if req.Locale == "" {
			req.Locale = cfg.Locale
		}

		if req.Write == nil {
			req.Write = cfg.Write
		}

		out = append(out, req)
	}

	return out
}

// BatchTransform runs Transform for every entry concurrently and returns
// results in input order. The first failure cancels remaining entries before
// they persist anything; files already written stay in place.
func BatchTransform(ctx context.Context, cfg BatchConfig) ([]string, error) {
	requests := cfg.Requests()
	results := make([]string, len(requests))

	group, groupCtx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		group.SetLimit(cfg.Concurrency)
	}

	for index, req := range requests {
		group.Go(func() error {
			md, err := Transform(groupCtx, req)
			if err != nil {
				return fmt.Errorf("%w %d (%s): %w", ErrBatchEntry, index, req.SchemaPath, err)
			}

			results[index] = md
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
