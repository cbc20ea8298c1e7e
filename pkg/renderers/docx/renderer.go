// Package docx renders assembled documents to DOCX through an injected
// HTML-to-DOCX converter, following the same external-collaborator contract
// as the PDF renderer.
package docx

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/htmldoc"
)

// ErrNoConverter is reported when the renderer is constructed without a
// working converter.
var ErrNoConverter = errors.New("docx: no converter configured")

// Converter turns a rendered HTML page into DOCX bytes.
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

// Renderer converts documents to DOCX through an HTML intermediate.
type Renderer struct {
	page      render.Renderer
	converter Converter
}

// New constructs the DOCX renderer around the supplied converter.
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
			return nil, fmt.Errorf("docx renderer: configure page renderer: %w", err)
		}
		r.page = page
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "docx"
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Render produces DOCX bytes, surfacing converter problems as render
// failures.
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
