// Package adapter specializes a base template for an organization category by
// appending category-specific sections and variables. Adaptation is pure: the
// base template is never mutated and the same inputs always yield the same
// output. Persisting the adapted copy is a separate, explicit step. Once
// stored it diverges independently, with no link back to the base.
package adapter

import (
	"fmt"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Extra describes a category-specific section to append. Orders are assigned
// at adaptation time (max existing order + 1, + 2, …) so extras can never
// collide with or reorder the base sections.
type Extra struct {
	ID            string
	Titulo        string
	Contenido     string
	TipoContenido template.ContentKind
	Obligatoria   bool
	Condiciones   []template.Condition
	Subsecciones  []template.Section
}

// Profile carries everything a category contributes to a base template.
type Profile struct {
	Secciones []Extra
	Variables []template.Variable
}

// Option customises an Adapter.
type Option func(*Adapter)

// WithProfile overrides or registers the profile used for a category.
func WithProfile(kind template.EntityKind, profile Profile) Option {
	return func(a *Adapter) {
		a.profiles[kind] = profile
	}
}

// Adapter derives organization-specific template variants.
type Adapter struct {
	profiles map[template.EntityKind]Profile
}

// New constructs an Adapter seeded with the built-in category profiles.
func New(options ...Option) *Adapter {
	a := &Adapter{profiles: defaultProfiles()}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Adapt produces the category variant of base. The result's identifier is the
// base identifier suffixed with the category, existing sections and variables
// are untouched, and category extras are appended after them. Categories
// without a registered profile (including "otro") yield a plain copy.
func (a *Adapter) Adapt(base template.Template, kind template.EntityKind) template.Template {
	out := base.Clone()
	out.ID = fmt.Sprintf("%s_%s", base.ID, kind)
	out.TipoEntidad = kind

	profile, ok := a.profiles[kind]
	if !ok {
		return out
	}

	next := out.MaxOrder() + 1
	for _, extra := range profile.Secciones {
		kindContent := extra.TipoContenido
		if kindContent == "" {
			kindContent = template.ContentText
		}
		out.Estructura.Secciones = append(out.Estructura.Secciones, template.Section{
			ID:            extra.ID,
			Titulo:        extra.Titulo,
			Contenido:     extra.Contenido,
			TipoContenido: kindContent,
			Obligatoria:   extra.Obligatoria,
			Editable:      true,
			Orden:         next,
			Condiciones:   append([]template.Condition(nil), extra.Condiciones...),
			Subsecciones:  append([]template.Section(nil), extra.Subsecciones...),
		})
		next++
	}

	for _, v := range profile.Variables {
		if out.DeclaresVariable(v.ID) {
			continue
		}
		out.Variables = append(out.Variables, v)
	}

	return out
}
