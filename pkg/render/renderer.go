package render

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/template"
)

// RenderedSection is a section that survived condition filtering, with its
// placeholders substituted. Nivel is the nesting depth (0 for top-level
// sections) so renderers can pick heading levels.
type RenderedSection struct {
	ID            string
	Titulo        string
	Contenido     string
	TipoContenido template.ContentKind
	Nivel         int
}

// Document is the assembled output of the substitution engine, handed to a
// Renderer to produce final bytes.
type Document struct {
	TemplateID    string
	Nombre        string
	TipoDocumento template.DocumentKind
	TipoEntidad   template.EntityKind
	Version       string
	Secciones     []RenderedSection
	Estilos       template.StyleSet
	// Encabezado and PiePagina are the style header/footer fragments after
	// substitution; renderers repeat them per page or per document as the
	// target format allows.
	Encabezado string
	PiePagina  string
	Metadatos  map[string]any
}

// Markup concatenates the surviving section contents in order with no
// implicit separator: whatever whitespace or structure the author wrote is
// preserved exactly.
func (d Document) Markup() string {
	var out []byte
	for _, s := range d.Secciones {
		out = append(out, s.Contenido...)
	}
	return string(out)
}

// Renderer converts an assembled Document into a byte representation (HTML,
// PDF, DOCX, …). Implementations backed by external converters can be slow
// and can fail independently of template correctness; such failures must be
// reported as *Error with KindRenderFailure so callers can tell them apart
// from template-logic problems.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}
