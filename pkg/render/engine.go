package render

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docgen/pkg/condition"
	"github.com/goliatone/go-docgen/pkg/template"
)

// EngineOption customises the substitution engine.
type EngineOption func(*Engine)

// WithEvaluator injects the condition evaluator used to filter sections.
func WithEvaluator(evaluator condition.Evaluator) EngineOption {
	return func(e *Engine) {
		if evaluator != nil {
			e.evaluator = evaluator
		}
	}
}

// WithSanitizer applies fn to every bound value before insertion. The default
// engine inserts values verbatim, trusting the template author, so installing
// a sanitizer is the opt-in control for untrusted bindings.
func WithSanitizer(fn func(string) string) EngineOption {
	return func(e *Engine) {
		e.sanitize = fn
	}
}

// WithPolicy installs a bluemonday policy as the value sanitizer.
func WithPolicy(policy *bluemonday.Policy) EngineOption {
	return func(e *Engine) {
		if policy != nil {
			e.sanitize = policy.Sanitize
		}
	}
}

// Engine substitutes `{variable}` placeholders into section content and
// assembles whole documents. Placeholders with no matching binding stay in
// the output verbatim; callers own completeness.
type Engine struct {
	evaluator condition.Evaluator
	sanitize  func(string) string
}

// NewEngine constructs an Engine. Without options it uses the permissive
// condition evaluator and no value sanitization.
func NewEngine(options ...EngineOption) *Engine {
	e := &Engine{evaluator: condition.New()}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Substitute replaces every `{id}` occurrence in content that has a binding
// with the bound value's string form. Unbound placeholders pass through
// unchanged.
func (e *Engine) Substitute(content string, bindings template.Bindings) string {
	if len(bindings) == 0 {
		return content
	}
	return template.ExpandPlaceholders(content, func(id string) (string, bool) {
		value, ok := bindings[id]
		if !ok {
			return "", false
		}
		text := stringify(value)
		if e.sanitize != nil {
			text = e.sanitize(text)
		}
		return text, true
	})
}

// RenderSection evaluates the section's conditions and, when it passes,
// returns its substituted content. The second result reports inclusion.
func (e *Engine) RenderSection(s template.Section, bindings template.Bindings) (string, bool, error) {
	ok, err := e.evaluator.Evaluate(s, bindings)
	if err != nil {
		return "", false, fmt.Errorf("render: evaluate section %q: %w", s.ID, err)
	}
	if !ok {
		return "", false, nil
	}
	return e.Substitute(s.Contenido, bindings), true, nil
}

// Assemble filters the template's sections through the condition evaluator,
// substitutes bindings into the survivors in ascending order, and returns the
// document ready for a Renderer. Subsections follow their parent and are
// filtered by their own conditions.
func (e *Engine) Assemble(tpl template.Template, bindings template.Bindings) (Document, error) {
	doc := Document{
		TemplateID:    tpl.ID,
		Nombre:        tpl.Nombre,
		TipoDocumento: tpl.TipoDocumento,
		TipoEntidad:   tpl.TipoEntidad,
		Version:       tpl.Version,
		Estilos:       tpl.Estilos,
		Encabezado:    e.Substitute(tpl.Estilos.Encabezado, bindings),
		PiePagina:     e.Substitute(tpl.Estilos.PiePagina, bindings),
		Metadatos:     copyMetadata(tpl.Estructura.Metadatos),
	}

	secciones, err := e.renderSections(tpl.Estructura.Secciones, bindings, 0)
	if err != nil {
		return Document{}, err
	}
	doc.Secciones = secciones
	return doc, nil
}

// copyMetadata detaches the document's metadata from the template so callers
// can annotate the result without mutating the source.
func copyMetadata(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (e *Engine) renderSections(sections []template.Section, bindings template.Bindings, nivel int) ([]RenderedSection, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	ordered := append([]template.Section(nil), sections...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Orden < ordered[j].Orden
	})

	var out []RenderedSection
	for _, s := range ordered {
		contenido, include, err := e.RenderSection(s, bindings)
		if err != nil {
			return nil, err
		}
		if !include {
			continue
		}
		out = append(out, RenderedSection{
			ID:            s.ID,
			Titulo:        e.Substitute(s.Titulo, bindings),
			Contenido:     contenido,
			TipoContenido: s.TipoContenido,
			Nivel:         nivel,
		})

		children, err := e.renderSections(s.Subsecciones, bindings, nivel+1)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(value)
	}
}
