// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonschema2md

// jsonschema2md generates Markdown docs from JSON Schema with translated labels.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/jsonschema2md"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/jsonschema2md"
	_buildTime string
)

// errStaleOutput is returned by --check when generated markdown differs from output file.
var errStaleOutput = errors.New("generated markdown differs from output file")

// cliOptions describes jsonschema2md CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Locales  localesCommand  `command:"locales" description:"Print built-in locale labels as YAML"`
	Markdown markdownCommand `command:"md" description:"Convert one JSON Schema to markdown"`
	Batch    batchCommand    `command:"batch" description:"Convert schemas listed in a YAML batch file"`
}

// renderFlags groups single transform rendering flags.
type renderFlags struct {
	Cwd             string `short:"C" long:"cwd" description:"Working directory for relative paths (defaults to current directory)"`
	Locale          string `short:"l" long:"locale" description:"Label locale (built-in: en-US, zh-CN)" default:"en-US"`
	SchemaMarkdown  string `short:"m" long:"schema-markdown" description:"Markdown file to carry hand-written text from (defaults to schema path with .md extension)"`
	Frontmatter     string `long:"frontmatter" description:"Text inserted before the title"`
	FrontmatterFile string `long:"frontmatter-file" description:"File with text inserted before the title"`
	Heading         string `long:"heading" description:"Text inserted after the schema description"`
	HeadingFile     string `long:"heading-file" description:"File with text inserted after the schema description"`
}

// outputFlags groups persistence mode flags.
type outputFlags struct {
	DryRun bool `short:"n" long:"dry-run" description:"Print markdown to stdout and never write output files"`
	Check  bool `long:"check" description:"Fail with a unified diff when output file is not up to date"`
	Quiet  bool `short:"q" long:"quiet" description:"Do not print progress to stderr"`
}

// markdownCommand converts one schema file to markdown.
type markdownCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Input schema file path (.json, .yaml, .yml)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags renderFlags `group:"Markdown Render"`
	OutputFlags outputFlags `group:"Output"`
}

// Execute runs md subcommand.
func (command *markdownCommand) Execute(_ []string) error {
	frontmatter, err := textOrFile(command.RenderFlags.Frontmatter, command.RenderFlags.FrontmatterFile)
	if err != nil {
		return err
	}

	heading, err := textOrFile(command.RenderFlags.Heading, command.RenderFlags.HeadingFile)
	if err != nil {
		return err
	}

	return command.runner.runMarkdown(jsonschema2md.Request{
		Cwd:            command.RenderFlags.Cwd,
		SchemaPath:     command.Args.Schema,
		Locale:         command.RenderFlags.Locale,
		SchemaMarkdown: command.RenderFlags.SchemaMarkdown,
		Frontmatter:    frontmatter,
		Heading:        heading,
		OutputPath:     command.Args.Output,
	}, command.OutputFlags)
}

// batchCommand converts every schema listed in batch config.
type batchCommand struct {
	runner *cliRunner
	Args   struct {
		Config string `positional-arg-name:"config" description:"YAML batch config file path" required:"yes"`
	} `positional-args:"yes"`

	Concurrency int         `short:"j" long:"jobs" description:"Maximum parallel transforms (0 uses config value, unlimited by default)"`
	OutputFlags outputFlags `group:"Output"`
}

// Execute runs batch subcommand.
func (command *batchCommand) Execute(_ []string) error {
	return command.runner.runBatch(command.Args.Config, command.Concurrency, command.OutputFlags)
}

// localesCommand exports built-in locale labels.
type localesCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output YAML file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs locales subcommand.
func (command *localesCommand) Execute(_ []string) error {
	return command.runner.runLocales(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "jsonschema2md"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runMarkdown executes single schema transform in print, check or write mode.
func (runner *cliRunner) runMarkdown(req jsonschema2md.Request, mode outputFlags) error {
	ctx := context.Background()
	toStdout := mode.DryRun || strings.TrimSpace(req.OutputPath) == ""

	if mode.Check {
		if strings.TrimSpace(req.OutputPath) == "" {
			return errors.New("--check requires output path")
		}

		req.Write = jsonschema2md.Bool(false)
		rendered, err := jsonschema2md.Transform(ctx, req)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}

		normalized, err := req.Normalize()
		if err != nil {
			return err
		}

		return runner.checkOutput(normalized.OutputPath, rendered)
	}

	if toStdout {
		req.Write = jsonschema2md.Bool(false)
	}

	runner.progress(mode, "generate doc for %s", req.SchemaPath)
	rendered, err := jsonschema2md.Transform(ctx, req)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if toStdout {
		if _, err := io.WriteString(runner.stdout, rendered+"\n"); err != nil {
			return fmt.Errorf("write markdown to stdout: %w", err)
		}

		return nil
	}

	runner.progress(mode, "write doc to %s", req.OutputPath)
	return nil
}

// runBatch executes batch config in print, check or write mode.
func (runner *cliRunner) runBatch(configPath string, concurrency int, mode outputFlags) error {
	cfg, err := jsonschema2md.LoadBatchConfig(configPath)
	if err != nil {
		return err
	}

	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	if mode.DryRun || mode.Check {
		cfg.Write = jsonschema2md.Bool(false)
		for index := range cfg.Src {
			cfg.Src[index].Write = jsonschema2md.Bool(false)
		}
	}

	requests := cfg.Requests()
	for _, req := range requests {
		runner.progress(mode, "generate doc for %s", req.SchemaPath)
	}

	results, err := jsonschema2md.BatchTransform(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	switch {
	case mode.Check:
		stale := 0
		for index, req := range requests {
			normalized, err := req.Normalize()
			if err != nil {
				return err
			}

			if normalized.OutputPath == "" {
				continue
			}

			if err := runner.checkOutput(normalized.OutputPath, results[index]); err != nil {
				if !errors.Is(err, errStaleOutput) {
					return err
				}

				stale++
			}
		}

		if stale > 0 {
			return fmt.Errorf("%w: %d of %d", errStaleOutput, stale, len(requests))
		}

		return nil
	case mode.DryRun:
		if _, err := io.WriteString(runner.stdout, strings.Join(results, "\n\n")+"\n"); err != nil {
			return fmt.Errorf("write markdown to stdout: %w", err)
		}

		return nil
	default:
		for _, req := range requests {
			normalized, err := req.Normalize()
			if err != nil {
				return err
			}

			if normalized.ShouldWrite() {
				runner.progress(mode, "write doc to %s", normalized.OutputPath)
			}
		}

		return nil
	}
}

// runLocales writes built-in locale config as YAML to stdout or file.
func (runner *cliRunner) runLocales(outputPath string) error {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	document := struct {
		Doc jsonschema2md.DocConfig `yaml:"doc"`
	}{Doc: jsonschema2md.DefaultDocConfig()}

	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("encode locales: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode locales: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(out.Bytes()); err != nil {
			return fmt.Errorf("write locales to stdout: %w", err)
		}

		return nil
	}

	//nolint:gosec // exported locale labels are meant to be world-readable.
	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write locales file %q: %w", outputPath, err)
	}

	return nil
}

// checkOutput compares rendered markdown with output file and prints unified diff when they differ.
// One trailing newline in the file is ignored, so written files and redirected stdout both pass.
func (runner *cliRunner) checkOutput(outputPath, rendered string) error {
	data, err := os.ReadFile(outputPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read output file %q: %w", outputPath, err)
	}

	existing := strings.TrimSuffix(string(data), "\n")
	if existing == rendered {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(existing),
		B:        difflib.SplitLines(rendered),
		FromFile: outputPath,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff output file %q: %w", outputPath, err)
	}

	if _, err := io.WriteString(runner.stdout, diff); err != nil {
		return fmt.Errorf("write diff to stdout: %w", err)
	}

	return fmt.Errorf("%w: %s", errStaleOutput, outputPath)
}

// progress writes one progress line to stderr unless quiet mode is set.
func (runner *cliRunner) progress(mode outputFlags, format string, args ...any) {
	if mode.Quiet {
		return
	}

	_, _ = fmt.Fprintf(runner.stderr, format+"\n", args...)
}

// textOrFile returns inline text, or file content when path is set.
func textOrFile(text, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file %q: %w", path, err)
	}

	return string(data), nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Locales.runner = runner
	options.Markdown.runner = runner
	options.Batch.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"md": strings.TrimSpace(fmt.Sprintf(`
Convert one JSON or YAML schema to markdown.
Text under a property heading in the merge source (schema path with .md
extension, or --schema-markdown) is kept in the regenerated section.

Examples:
> $ %s md config.schema.json > config.md
> $ %s md -l zh-CN -m docs/config.md config.schema.json docs/config.md
> $ %s md --check config.schema.json docs/config.md
`, programName, programName, programName)),
		"batch": strings.TrimSpace(fmt.Sprintf(`
Convert every schema listed in a YAML batch file concurrently.
Shared cwd, locale and write values apply to entries that do not set them.

Example config:
> locale: en-US
> src:
>   - schemaPath: schemas/app.schema.json
>     outputPath: docs/app.md

Examples:
> $ %s batch docs.yaml
> $ %s batch --check docs.yaml
`, programName, programName)),
		"locales": strings.TrimSpace(fmt.Sprintf(`
Print built-in locale labels as YAML.
Use it as a starting point for a schema "doc" override.

Examples:
> $ %s locales > locales.yaml
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
