package template

// Builder assembles templates programmatically, assigning sequential section
// orders so authored catalogs cannot violate the unique-order invariant.
type Builder struct {
	t         Template
	nextOrder int
}

// NewBuilder starts a template for the given identifier and document kind.
// Templates start active, non-official, at version "1.0".
func NewBuilder(id string, kind DocumentKind) *Builder {
	return &Builder{
		t: Template{
			ID:            id,
			TipoDocumento: kind,
			TipoEntidad:   EntityOther,
			Version:       "1.0",
			Activa:        true,
		},
		nextOrder: 1,
	}
}

// Name sets the human-readable template name.
func (b *Builder) Name(nombre string) *Builder {
	b.t.Nombre = nombre
	return b
}

// Description sets the template description.
func (b *Builder) Description(descripcion string) *Builder {
	b.t.Descripcion = descripcion
	return b
}

// Entity sets the organization category the template targets.
func (b *Builder) Entity(kind EntityKind) *Builder {
	b.t.TipoEntidad = kind
	return b
}

// Version overrides the default template version.
func (b *Builder) Version(version string) *Builder {
	b.t.Version = version
	return b
}

// Author records who created the template.
func (b *Builder) Author(creadoPor string) *Builder {
	b.t.CreadoPor = creadoPor
	return b
}

// Official marks the template as a system-seeded official blueprint.
func (b *Builder) Official() *Builder {
	b.t.Oficial = true
	return b
}

// Style attaches the presentation descriptor.
func (b *Builder) Style(estilos StyleSet) *Builder {
	b.t.Estilos = estilos
	return b
}

// SectionOption customises a section added through the builder.
type SectionOption func(*Section)

// AsKind sets the section's content kind; sections default to plain text.
func AsKind(kind ContentKind) SectionOption {
	return func(s *Section) {
		s.TipoContenido = kind
	}
}

// Optional clears the mandatory flag set by default on builder sections.
func Optional() SectionOption {
	return func(s *Section) {
		s.Obligatoria = false
	}
}

// ReadOnly clears the editable flag set by default on builder sections.
func ReadOnly() SectionOption {
	return func(s *Section) {
		s.Editable = false
	}
}

// When attaches a condition; call repeatedly to AND predicates together.
func When(variable string, op Operator, valor string) SectionOption {
	return func(s *Section) {
		s.Condiciones = append(s.Condiciones, Condition{
			Variable: variable,
			Operador: op,
			Valor:    valor,
		})
	}
}

// Subsection nests a child section; children inherit no conditions from the
// parent and are ordered by insertion.
func Subsection(id, titulo, contenido string, options ...SectionOption) SectionOption {
	return func(s *Section) {
		child := Section{
			ID:            id,
			Titulo:        titulo,
			Contenido:     contenido,
			TipoContenido: ContentText,
			Obligatoria:   true,
			Editable:      true,
			Orden:         len(s.Subsecciones) + 1,
		}
		for _, opt := range options {
			if opt != nil {
				opt(&child)
			}
		}
		s.Subsecciones = append(s.Subsecciones, child)
	}
}

// Section appends a section with the next available order index.
func (b *Builder) Section(id, titulo, contenido string, options ...SectionOption) *Builder {
	s := Section{
		ID:            id,
		Titulo:        titulo,
		Contenido:     contenido,
		TipoContenido: ContentText,
		Obligatoria:   true,
		Editable:      true,
		Orden:         b.nextOrder,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	b.nextOrder++
	b.t.Estructura.Secciones = append(b.t.Estructura.Secciones, s)
	return b
}

// Variable declares an input the template expects.
func (b *Builder) Variable(v Variable) *Builder {
	b.t.Variables = append(b.t.Variables, v)
	return b
}

// Build returns the assembled template.
func (b *Builder) Build() Template {
	return b.t.Clone()
}
