// Package generator coordinates the full pipeline from stored template to
// rendered document bytes: store lookup, category adaptation, condition
// evaluation, variable substitution, and renderer dispatch.
package generator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/adapter"
	"github.com/goliatone/go-docgen/pkg/catalog"
	"github.com/goliatone/go-docgen/pkg/condition"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/htmldoc"
	"github.com/goliatone/go-docgen/pkg/store"
	"github.com/goliatone/go-docgen/pkg/template"
)

const defaultRendererName = "html"

// Option customises the generator configuration.
type Option func(*Generator)

// WithStore injects the template store consulted for Request.TemplateID
// lookups.
func WithStore(s store.Store) Option {
	return func(g *Generator) {
		g.store = s
	}
}

// WithAdapter overrides the category adapter.
func WithAdapter(a *adapter.Adapter) Option {
	return func(g *Generator) {
		g.adapter = a
	}
}

// WithEvaluator overrides the condition evaluator used by the default
// substitution engine. Ignored when WithEngine is also supplied.
func WithEvaluator(evaluator condition.Evaluator) Option {
	return func(g *Generator) {
		g.evaluator = evaluator
	}
}

// WithEngine injects a fully configured substitution engine.
func WithEngine(engine *render.Engine) Option {
	return func(g *Generator) {
		g.engine = engine
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request does not
// name one. Only consulted when a theme selector is configured.
func WithDefaultTheme(name, variant string) Option {
	return func(g *Generator) {
		g.defaultTheme = name
		g.defaultVariant = variant
	}
}

// Generator coordinates the pipeline. Missing dependencies are initialised
// with the built-in implementations so callers can start with a single
// constructor call: an in-memory store seeded with the official catalog, the
// built-in category profiles, and the HTML renderer.
type Generator struct {
	store           store.Store
	adapter         *adapter.Adapter
	evaluator       condition.Evaluator
	engine          *render.Engine
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.store == nil {
		seeded := store.NewMemory()
		seeded.Seed(catalog.Official()...)
		g.store = seeded
	}
	if g.adapter == nil {
		g.adapter = adapter.New()
	}
	if g.engine == nil {
		engineOptions := []render.EngineOption{}
		if g.evaluator != nil {
			engineOptions = append(engineOptions, render.WithEvaluator(g.evaluator))
		}
		g.engine = render.NewEngine(engineOptions...)
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		html, err := htmldoc.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: initialise html renderer: %w", err)
			return
		}
		g.registry.MustRegister(html)
	}
}

// Request describes the inputs required to generate a document.
type Request struct {
	// TemplateID selects a stored template. Optional when Template is set.
	TemplateID string

	// Template bypasses the store when the caller already holds a template.
	Template *template.Template

	// Entity, when set, specialises the template for an entity category
	// before rendering.
	Entity template.EntityKind

	// Bindings supplies runtime values for the template's variables.
	Bindings template.Bindings

	// Renderer names the renderer to use. If empty, the generator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Empty values fall back to the configured defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions for the renderer.
	RenderOptions render.RenderOptions
}

// Generate executes the store → adapter → substitution → renderer sequence
// and returns the rendered bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}

	tpl, err := g.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Entity != "" && req.Entity != tpl.TipoEntidad {
		tpl = g.adapter.Adapt(tpl, req.Entity)
	}

	doc, err := g.engine.Assemble(tpl, req.Bindings)
	if err != nil {
		return nil, fmt.Errorf("generator: assemble document: %w", err)
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := g.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("generator: render output: %w", err)
	}
	return output, nil
}

func (g *Generator) resolveTemplate(ctx context.Context, req Request) (template.Template, error) {
	if req.Template != nil {
		return req.Template.Clone(), nil
	}
	if req.TemplateID == "" {
		return template.Template{}, errors.New("generator: template id or template is required")
	}
	tpl, err := g.store.Get(ctx, req.TemplateID)
	if err != nil {
		return template.Template{}, fmt.Errorf("generator: resolve template %q: %w", req.TemplateID, err)
	}
	return tpl, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("generator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	if target != "" {
		renderer, err := g.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("generator: renderer %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("generator: no renderers registered")
	}

	renderer, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("generator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (g *Generator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if g.themeSelector == nil {
		return nil, nil
	}
	name := req.ThemeName
	if name == "" {
		name = g.defaultTheme
	}
	if name == "" {
		return nil, nil
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = g.defaultVariant
	}

	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("generator: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}
	return rendererConfig(selection), nil
}

// rendererConfig flattens a theme selection into the configuration renderers
// consume: variant overlays applied over the base manifest, CSS variables
// derived from tokens, and an asset resolver rooted at the manifest prefix.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		tokens[k] = v
	}
	partials := make(map[string]string, len(manifest.Templates))
	for k, v := range manifest.Templates {
		partials[k] = v
	}
	assets := make(map[string]string, len(manifest.Assets.Files))
	for k, v := range manifest.Assets.Files {
		assets[k] = v
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
		for k, v := range variant.Templates {
			partials[k] = v
		}
		for k, v := range variant.Assets.Files {
			assets[k] = v
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cssVars["--"+k] = v
	}

	prefix := manifest.Assets.Prefix
	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := assets[key]
			if !ok {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}
