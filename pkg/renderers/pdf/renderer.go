// Package pdf renders assembled documents to PDF by delegating the HTML page
// to an external converter. The converter is an injected collaborator: it can
// be slow, can be missing entirely, and its failures are reported as
// render.KindRenderFailure so callers never mistake them for template
// problems.
package pdf

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/htmldoc"
)

// ErrNoConverter is reported when the renderer is constructed without a
// working converter.
var ErrNoConverter = errors.New("pdf: no converter configured")

// Converter turns a rendered HTML page into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html []byte) ([]byte, error)
}

// ConverterFunc adapts a function into a Converter.
type ConverterFunc func(ctx context.Context, html []byte) ([]byte, error)

// Convert delegates to the underlying function.
func (fn ConverterFunc) Convert(ctx context.Context, html []byte) ([]byte, error) {
	return fn(ctx, html)
}

// Option customises the renderer.
type Option func(*Renderer)

// WithPageRenderer overrides the HTML stage feeding the converter.
func WithPageRenderer(page render.Renderer) Option {
	return func(r *Renderer) {
		if page != nil {
			r.page = page
		}
	}
}

// Renderer converts documents to PDF through an HTML intermediate.
type Renderer struct {
	page      render.Renderer
	converter Converter
}

// New constructs the PDF renderer around the supplied converter.
func New(converter Converter, options ...Option) (*Renderer, error) {
	r := &Renderer{converter: converter}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.page == nil {
		page, err := htmldoc.New()
		if err != nil {
			return nil, fmt.Errorf("pdf renderer: configure page renderer: %w", err)
		}
		r.page = page
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

// Render produces PDF bytes, surfacing converter problems as render failures.
func (r *Renderer) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if r.converter == nil {
		return nil, render.NewRenderFailure(r.Name(), ErrNoConverter)
	}

	page, err := r.page.Render(ctx, doc, options)
	if err != nil {
		return nil, err
	}

	out, err := r.converter.Convert(ctx, page)
	if err != nil {
		return nil, render.NewRenderFailure(r.Name(), err)
	}
	return out, nil
}
