// Package htmldoc renders assembled documents as standalone HTML pages with
// the template's style descriptor translated to CSS. It is the default
// renderer and the input stage for the PDF and DOCX converters.
package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/render"
	rendertemplate "github.com/goliatone/go-docgen/pkg/render/template"
	"github.com/goliatone/go-docgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate page-template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads page templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits styled HTML pages for assembled documents.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a complete HTML page for the document.
func (r *Renderer) Render(_ context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, render.NewBadTemplate(r.Name(), fmt.Errorf("template engine is nil"))
	}
	if len(doc.Secciones) == 0 && doc.Nombre == "" {
		return nil, render.NewBadTemplate(r.Name(), fmt.Errorf("empty document"))
	}

	title := options.Title
	if title == "" {
		title = doc.Nombre
	}

	result, err := r.templates.RenderTemplate("templates/document.tmpl", map[string]any{
		"title":      title,
		"doc":        documentContext(doc),
		"styles":     styleCSS(doc.Estilos),
		"themeVars":  themeVarsCSS(options.Theme),
		"encabezado": doc.Encabezado,
		"piePagina":  doc.PiePagina,
	})
	if err != nil {
		return nil, render.NewRenderFailure(r.Name(), fmt.Errorf("render page template: %w", err))
	}
	return []byte(result), nil
}

type sectionContext struct {
	ID           string
	Titulo       string
	Contenido    string
	HeadingLevel int
	IsList       bool
	IsSignature  bool
	Items        []string
}

type docContext struct {
	TemplateID    string
	Nombre        string
	TipoDocumento string
	TipoEntidad   string
	Version       string
	Secciones     []sectionContext
}

func documentContext(doc render.Document) docContext {
	out := docContext{
		TemplateID:    doc.TemplateID,
		Nombre:        doc.Nombre,
		TipoDocumento: string(doc.TipoDocumento),
		TipoEntidad:   string(doc.TipoEntidad),
		Version:       doc.Version,
	}
	for _, s := range doc.Secciones {
		level := s.Nivel + 2
		if level > 6 {
			level = 6
		}
		sc := sectionContext{
			ID:           s.ID,
			Titulo:       s.Titulo,
			Contenido:    s.Contenido,
			HeadingLevel: level,
			IsList:       s.TipoContenido == template.ContentList,
			IsSignature:  s.TipoContenido == template.ContentSignature,
		}
		if sc.IsList {
			sc.Items = listItems(s.Contenido)
		}
		out.Secciones = append(out.Secciones, sc)
	}
	return out
}

// listItems splits authored list content into items, one per non-empty line,
// trimming the common "-"/"*" bullet prefixes.
func listItems(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

func styleCSS(estilos template.StyleSet) string {
	var b strings.Builder

	b.WriteString("body {\n")
	if estilos.FuenteTexto != "" {
		fmt.Fprintf(&b, "  font-family: %s;\n", estilos.FuenteTexto)
	}
	if estilos.ColorTexto != "" {
		fmt.Fprintf(&b, "  color: %s;\n", estilos.ColorTexto)
	}
	m := estilos.Margenes
	if m.Superior != 0 || m.Inferior != 0 || m.Izquierdo != 0 || m.Derecho != 0 {
		fmt.Fprintf(&b, "  margin: %dmm %dmm %dmm %dmm;\n", m.Superior, m.Derecho, m.Inferior, m.Izquierdo)
	}
	b.WriteString("}\n")

	b.WriteString("h1, h2, h3, h4, h5, h6 {\n")
	if estilos.FuenteTitulos != "" {
		fmt.Fprintf(&b, "  font-family: %s;\n", estilos.FuenteTitulos)
	}
	if estilos.ColorPrimario != "" {
		fmt.Fprintf(&b, "  color: %s;\n", estilos.ColorPrimario)
	}
	b.WriteString("}\n")

	if estilos.ColorSecundario != "" {
		fmt.Fprintf(&b, "header, footer { color: %s; }\n", estilos.ColorSecundario)
	}
	return b.String()
}

// themeVarsCSS flattens resolved go-theme tokens into a :root block so page
// templates can reference them as CSS custom properties.
func themeVarsCSS(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	vars := cfg.CSSVars
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s;\n", key, vars[key])
	}
	b.WriteString("}")
	return b.String()
}
