package template

import "time"

// DocumentKind enumerates the compliance documents a template can produce.
type DocumentKind string

const (
	DocumentProtectionPlan  DocumentKind = "plan_proteccion"
	DocumentConductCode     DocumentKind = "codigo_conducta"
	DocumentActionProtocols DocumentKind = "protocolos_actuacion"
	DocumentRiskAssessment  DocumentKind = "evaluacion_riesgos"
	DocumentTrainingManual  DocumentKind = "manual_formacion"
)

// EntityKind enumerates the organization categories templates are adapted for.
type EntityKind string

const (
	EntitySports    EntityKind = "deportivo"
	EntityEducation EntityKind = "educativo"
	EntitySocial    EntityKind = "social"
	EntityReligious EntityKind = "religioso"
	EntityOther     EntityKind = "otro"
)

// ContentKind describes how a section's content should be interpreted by
// renderers.
type ContentKind string

const (
	ContentText      ContentKind = "texto"
	ContentList      ContentKind = "lista"
	ContentTable     ContentKind = "tabla"
	ContentImage     ContentKind = "imagen"
	ContentSignature ContentKind = "firma"
	ContentVariables ContentKind = "bloque_variables"
)

// VariableType enumerates the value kinds a declared variable accepts.
type VariableType string

const (
	VariableText    VariableType = "texto"
	VariableNumber  VariableType = "numero"
	VariableDate    VariableType = "fecha"
	VariableList    VariableType = "lista"
	VariableBoolean VariableType = "booleano"
	VariableTable   VariableType = "tabla"
	VariableImage   VariableType = "imagen"
)

// VariableCategory groups declared variables for authoring UIs.
type VariableCategory string

const (
	CategoryEntity        VariableCategory = "entidad"
	CategoryResponsible   VariableCategory = "responsables"
	CategoryActivities    VariableCategory = "actividades"
	CategoryConfiguration VariableCategory = "configuracion"
	CategoryCustom        VariableCategory = "personalizada"
)

// Operator enumerates the comparison predicates a section condition supports.
type Operator string

const (
	OpEquals      Operator = "=="
	OpNotEquals   Operator = "!="
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
)

// Condition is a single predicate attached to a section. All conditions on a
// section must hold for the section to be included; there is no OR or nested
// grouping.
type Condition struct {
	Variable string   `json:"variable" yaml:"variable"`
	Operador Operator `json:"operador" yaml:"operador"`
	Valor    string   `json:"valor" yaml:"valor"`
}

// Section is a titled content fragment. Contenido may reference declared
// variables with `{variableId}` placeholders; there is no escaping mechanism
// for literal braces.
type Section struct {
	ID            string      `json:"id" yaml:"id"`
	Titulo        string      `json:"titulo" yaml:"titulo"`
	Contenido     string      `json:"contenido" yaml:"contenido"`
	TipoContenido ContentKind `json:"tipoContenido" yaml:"tipoContenido"`
	Obligatoria   bool        `json:"obligatoria" yaml:"obligatoria"`
	Editable      bool        `json:"editable" yaml:"editable"`
	Orden         int         `json:"orden" yaml:"orden"`
	Condiciones   []Condition `json:"condiciones,omitempty" yaml:"condiciones,omitempty"`
	Subsecciones  []Section   `json:"subsecciones,omitempty" yaml:"subsecciones,omitempty"`
}

// Variable declares an input a template expects at generation time.
type Variable struct {
	ID           string           `json:"id" yaml:"id"`
	Nombre       string           `json:"nombre" yaml:"nombre"`
	Descripcion  string           `json:"descripcion,omitempty" yaml:"descripcion,omitempty"`
	Tipo         VariableType     `json:"tipo" yaml:"tipo"`
	Requerida    bool             `json:"requerida" yaml:"requerida"`
	ValorDefecto any              `json:"valorDefecto,omitempty" yaml:"valorDefecto,omitempty"`
	Opciones     []string         `json:"opciones,omitempty" yaml:"opciones,omitempty"`
	Validacion   string           `json:"validacion,omitempty" yaml:"validacion,omitempty"`
	Categoria    VariableCategory `json:"categoria,omitempty" yaml:"categoria,omitempty"`
	Entidades    []EntityKind     `json:"entidades,omitempty" yaml:"entidades,omitempty"`
}

// Margins captures page margins in millimetres.
type Margins struct {
	Superior  int `json:"superior" yaml:"superior"`
	Inferior  int `json:"inferior" yaml:"inferior"`
	Izquierdo int `json:"izquierdo" yaml:"izquierdo"`
	Derecho   int `json:"derecho" yaml:"derecho"`
}

// StyleSet is the presentation descriptor attached to a template. Encabezado
// and PiePagina are themselves placeholder-bearing fragments rendered on every
// page, so they participate in variable substitution like section content.
type StyleSet struct {
	FuenteTitulos   string  `json:"fuenteTitulos,omitempty" yaml:"fuenteTitulos,omitempty"`
	FuenteTexto     string  `json:"fuenteTexto,omitempty" yaml:"fuenteTexto,omitempty"`
	ColorPrimario   string  `json:"colorPrimario,omitempty" yaml:"colorPrimario,omitempty"`
	ColorSecundario string  `json:"colorSecundario,omitempty" yaml:"colorSecundario,omitempty"`
	ColorTexto      string  `json:"colorTexto,omitempty" yaml:"colorTexto,omitempty"`
	Margenes        Margins `json:"margenes" yaml:"margenes"`
	Encabezado      string  `json:"encabezado,omitempty" yaml:"encabezado,omitempty"`
	PiePagina       string  `json:"piePagina,omitempty" yaml:"piePagina,omitempty"`
}

// Structure holds the ordered sections plus format metadata.
type Structure struct {
	Secciones []Section      `json:"secciones" yaml:"secciones"`
	Formato   string         `json:"formato,omitempty" yaml:"formato,omitempty"`
	Metadatos map[string]any `json:"metadatos,omitempty" yaml:"metadatos,omitempty"`
}

// Template is a named, versioned document blueprint. Section Orden values are
// unique within a template and define render order. Templates are never hard
// deleted; Activa=false retires them.
type Template struct {
	ID                 string         `json:"id" yaml:"id"`
	Nombre             string         `json:"nombre" yaml:"nombre"`
	Descripcion        string         `json:"descripcion,omitempty" yaml:"descripcion,omitempty"`
	TipoDocumento      DocumentKind   `json:"tipoDocumento" yaml:"tipoDocumento"`
	TipoEntidad        EntityKind     `json:"tipoEntidad" yaml:"tipoEntidad"`
	Version            string         `json:"version" yaml:"version"`
	Estructura         Structure      `json:"estructura" yaml:"estructura"`
	Configuracion      map[string]any `json:"configuracion,omitempty" yaml:"configuracion,omitempty"`
	Variables          []Variable     `json:"variables" yaml:"variables"`
	Estilos            StyleSet       `json:"estilos" yaml:"estilos"`
	FechaCreacion      time.Time      `json:"fechaCreacion" yaml:"fechaCreacion"`
	FechaActualizacion time.Time      `json:"fechaActualizacion" yaml:"fechaActualizacion"`
	CreadoPor          string         `json:"creadoPor,omitempty" yaml:"creadoPor,omitempty"`
	Activa             bool           `json:"activa" yaml:"activa"`
	Oficial            bool           `json:"oficial" yaml:"oficial"`
}

// Bindings maps declared variable identifiers to the runtime values supplied
// for a single generation call.
type Bindings map[string]any

// Sections returns the template's sections.
func (t Template) Sections() []Section {
	return t.Estructura.Secciones
}

// MaxOrder reports the highest Orden value across the template's top-level
// sections, or zero when the template has none.
func (t Template) MaxOrder() int {
	max := 0
	for _, s := range t.Estructura.Secciones {
		if s.Orden > max {
			max = s.Orden
		}
	}
	return max
}

// DeclaresVariable reports whether the template declares a variable with the
// given identifier.
func (t Template) DeclaresVariable(id string) bool {
	for _, v := range t.Variables {
		if v.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the template so callers can mutate the result
// without aliasing the original's slices or maps.
func (t Template) Clone() Template {
	out := t
	out.Estructura.Secciones = cloneSections(t.Estructura.Secciones)
	out.Estructura.Metadatos = cloneAnyMap(t.Estructura.Metadatos)
	out.Configuracion = cloneAnyMap(t.Configuracion)
	out.Variables = cloneVariables(t.Variables)
	return out
}

func cloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Condiciones = append([]Condition(nil), s.Condiciones...)
		out[i].Subsecciones = cloneSections(s.Subsecciones)
	}
	return out
}

func cloneVariables(in []Variable) []Variable {
	if in == nil {
		return nil
	}
	out := make([]Variable, len(in))
	for i, v := range in {
		out[i] = v
		out[i].Opciones = append([]string(nil), v.Opciones...)
		out[i].Entidades = append([]EntityKind(nil), v.Entidades...)
	}
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
