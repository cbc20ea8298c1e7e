package template

import (
	"regexp"
	"sort"
)

// placeholderPattern matches `{variableId}` tokens. Identifiers are
// alphanumeric plus underscore; anything else between braces is left alone so
// authored content such as JSON fragments survives scanning.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// ExpandPlaceholders rewrites content in a single pass, replacing each
// `{id}` token with the value resolve returns for it. Tokens resolve reports
// no value for are left verbatim, so a value that itself contains a
// placeholder is never re-expanded.
func ExpandPlaceholders(content string, resolve func(id string) (string, bool)) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		id := match[1 : len(match)-1]
		if value, ok := resolve(id); ok {
			return value
		}
		return match
	})
}

// Placeholders extracts the distinct variable identifiers referenced by the
// given content, in first-appearance order.
func Placeholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		id := m[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ReferencedVariables collects every placeholder referenced by the template's
// sections (subsections included), condition predicates, and header/footer
// fragments, sorted alphabetically.
func (t Template) ReferencedVariables() []string {
	seen := make(map[string]struct{})
	collectSectionRefs(t.Estructura.Secciones, seen)
	for _, id := range Placeholders(t.Estilos.Encabezado) {
		seen[id] = struct{}{}
	}
	for _, id := range Placeholders(t.Estilos.PiePagina) {
		seen[id] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// UndeclaredPlaceholders reports referenced variables the template does not
// declare. Declaration completeness is best effort: the store does not reject
// templates that fail this check, but authoring tools surface it.
func (t Template) UndeclaredPlaceholders() []string {
	var out []string
	for _, id := range t.ReferencedVariables() {
		if !t.DeclaresVariable(id) {
			out = append(out, id)
		}
	}
	return out
}

func collectSectionRefs(sections []Section, seen map[string]struct{}) {
	for _, s := range sections {
		for _, id := range Placeholders(s.Contenido) {
			seen[id] = struct{}{}
		}
		for _, c := range s.Condiciones {
			if c.Variable != "" {
				seen[c.Variable] = struct{}{}
			}
		}
		collectSectionRefs(s.Subsecciones, seen)
	}
}
