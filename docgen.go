// Package docgen exposes the document generation pipeline from the module
// root: template store, category adaptation, condition evaluation, variable
// substitution, and renderer dispatch for LOPIVI compliance documents.
package docgen

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/generator"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Template is the stored document template shape.
type Template = template.Template

// Bindings maps declared variable identifiers to runtime values.
type Bindings = template.Bindings

// RenderOptions describes per-request overrides renderers can use.
type RenderOptions = render.RenderOptions

// Request describes the inputs required to generate a document.
type Request = generator.Request

// Generator coordinates the full generation pipeline.
type Generator = generator.Generator

// Option customises the generator configuration.
type Option = generator.Option

// NewGenerator exposes the pipeline constructor from the top-level module.
func NewGenerator(options ...Option) *Generator {
	return generator.New(options...)
}

// GenerateHTML resolves the template, applies the bindings, and renders HTML.
// It is the simplest entry point for callers that just want a document.
func GenerateHTML(ctx context.Context, templateID string, entity template.EntityKind, bindings Bindings, options ...Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, Request{
		TemplateID: templateID,
		Entity:     entity,
		Bindings:   bindings,
		Renderer:   "html",
	})
}
