package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-decor/internal/config"
	"github.com/goliatone/go-decor/internal/logger"
	"github.com/goliatone/go-decor/pkg/orchestrator"
	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/renderers/templated"
	"github.com/goliatone/go-decor/pkg/source"
)

// errUsage reports that help was printed instead of running.
var errUsage = errors.New("usage")

var _ orchestrator.Logger = (*logger.Logger)(nil)

type options struct {
	configPath          string
	template            string
	output              string
	renderer            string
	set                 []string
	extensions          []string
	strict              bool
	sanitize            bool
	frontMatter         bool
	jobs                int
	logLevel            string
	showDefaultTemplate bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "decor [input...]",
		Short: "Render Markdown into an HTML template",
		Long: `decor converts Markdown documents into HTML by filling the slot elements
(data-decor-element) of a template. Slots missing from a custom template are
taken from the built-in default unless --strict is given.

With no input but a --template, the built-in showcase content is rendered so
the template can be previewed. Use "-" to read Markdown from stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, stdin, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.template, "template", "t", "", "template file or URL")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty, single input only)")
	flags.BoolVar(&opts.showDefaultTemplate, "show-default-template", false, "print the built-in template and exit")
	flags.StringVarP(&opts.renderer, "renderer", "r", "", "renderer to use (template|html)")
	flags.StringArrayVar(&opts.set, "set", nil, "document parameter as key=value (repeatable)")
	flags.StringSliceVar(&opts.extensions, "extensions", nil, "markdown extensions (gfm, table, strikethrough, linkify, tasklist, typographer)")
	flags.BoolVar(&opts.strict, "strict", false, "fail when the template lacks any slot")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "sanitise raw HTML found in the markdown")
	flags.BoolVar(&opts.frontMatter, "front-matter", false, "read document parameters from YAML front matter")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "concurrent renders for several inputs")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/decor/config.yaml)")
	persistent.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(newTemplateCmd(stdin, stdout))
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.showDefaultTemplate {
		_, err := io.WriteString(stdout, templated.DefaultTemplate())
		return err
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if len(args) == 0 && cfg.Template == "" {
		_ = cmd.Help()
		return errUsage
	}
	if len(args) > 1 && cfg.Output != "" {
		return fmt.Errorf("--output cannot be used with %d inputs", len(args))
	}

	params, err := parseParameters(cfg.Parameters, opts.set)
	if err != nil {
		return err
	}

	log, err := logger.Parse(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	orchOptions := []orchestrator.Option{
		orchestrator.WithLogger(log),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithLoaderOptions(source.WithHTTPFallback(cfg.HTTPTimeout)),
	}
	if opts.frontMatter {
		orchOptions = append(orchOptions, orchestrator.WithTransformer(orchestrator.FrontMatterTransformer{}))
	}
	orch := orchestrator.New(orchOptions...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	base := orchestrator.Request{
		Strict: cfg.Strict,
		RenderOptions: render.RenderOptions{
			Parameters:   params,
			SanitizeHTML: cfg.SanitizeHTML,
			Extensions:   cfg.Extensions,
			Theme:        themeConfig(cfg.Theme),
		},
	}
	if cfg.Template != "" {
		src, err := source.Detect(cfg.Template)
		if err != nil {
			return err
		}
		base.Page, err = orch.ResolvePage(ctx, orchestrator.Request{TemplateSource: src, Strict: cfg.Strict})
		if err != nil {
			return err
		}
	}

	targets, err := plan(args, cfg.Output, stdin)
	if err != nil {
		return err
	}

	requests := make([]orchestrator.Request, len(targets))
	for i, target := range targets {
		req := base
		req.Markdown = target.markdown
		req.MarkdownSource = target.source
		requests[i] = req
	}

	results, batchErr := orch.GenerateBatch(ctx, requests, cfg.Jobs)
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		if err := write(targets[i].output, result.Output, stdout); err != nil {
			return err
		}
		if targets[i].output != "" {
			log.FileWritten(targets[i].output, len(result.Output))
		}
	}
	return batchErr
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.Template = opts.template
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("renderer") {
		cfg.Renderer = opts.renderer
	}
	if flags.Changed("extensions") {
		cfg.Extensions = opts.extensions
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("sanitize") {
		cfg.SanitizeHTML = opts.sanitize
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseParameters(base map[string]string, pairs []string) (map[string]string, error) {
	params := maps.Clone(base)
	if params == nil {
		params = make(map[string]string, len(pairs))
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func themeConfig(t config.Theme) *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.CSSVars) == 0 {
		return nil
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: t.CSSVars,
	}
}

type target struct {
	source   source.Source
	markdown []byte
	output   string
}

// plan maps inputs to outputs. A single input goes to output or stdout;
// several inputs each write <name>.html next to the input.
func plan(args []string, output string, stdin io.Reader) ([]target, error) {
	if len(args) == 0 {
		return []target{{markdown: []byte(templated.DefaultContent()), output: output}}, nil
	}

	targets := make([]target, 0, len(args))
	for _, arg := range args {
		var t target
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			t.markdown = data
		} else {
			src, err := source.Detect(arg)
			if err != nil {
				return nil, err
			}
			t.source = src
		}

		switch {
		case len(args) == 1:
			t.output = output
		case arg == "-":
			return nil, errors.New("stdin input requires a single input")
		default:
			t.output = htmlName(t.source)
			if t.source.Kind() == source.KindFile && t.output == t.source.Location() {
				return nil, fmt.Errorf("input %s would be overwritten by its output", arg)
			}
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func htmlName(src source.Source) string {
	location := src.Location()
	if src.Kind() == source.KindURL {
		name := path.Base(strings.SplitN(strings.SplitN(location, "?", 2)[0], "#", 2)[0])
		if name == "/" || name == "." || name == "" {
			name = "index"
		}
		return strings.TrimSuffix(name, path.Ext(name)) + ".html"
	}
	return strings.TrimSuffix(location, filepath.Ext(location)) + ".html"
}

func write(output string, data []byte, stdout io.Writer) error {
	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
