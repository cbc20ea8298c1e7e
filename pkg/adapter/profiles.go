package adapter

import "github.com/goliatone/go-docgen/pkg/template"

// defaultProfiles returns the built-in category extras. Conditional sections
// carry their predicates here; the adapter never evaluates them. Inclusion is
// decided at generation time against the caller's bindings.
func defaultProfiles() map[template.EntityKind]Profile {
	return map[template.EntityKind]Profile{
		template.EntitySports: {
			Secciones: []Extra{
				{
					ID:          "protocolo_competiciones",
					Titulo:      "Protocolo en competiciones y eventos deportivos",
					Contenido:   "Durante las competiciones organizadas por {nombreEntidad}, el delegado de protección supervisará los desplazamientos, vestuarios y pernoctaciones de los menores participantes.",
					Obligatoria: true,
					Condiciones: []template.Condition{
						{Variable: "competiciones", Operador: template.OpEquals, Valor: "true"},
					},
				},
				{
					ID:          "normas_vestuarios",
					Titulo:      "Normas de uso de vestuarios",
					Contenido:   "Los vestuarios de las instalaciones de {nombreEntidad} contarán con supervisión adulta en zonas comunes, nunca en espacios de privacidad individual.",
					Obligatoria: true,
				},
			},
			Variables: []template.Variable{
				{
					ID:        "competiciones",
					Nombre:    "¿Participa en competiciones?",
					Tipo:      template.VariableBoolean,
					Requerida: false,
					Categoria: template.CategoryActivities,
					Entidades: []template.EntityKind{template.EntitySports},
				},
				{
					ID:        "modalidadDeportiva",
					Nombre:    "Modalidad deportiva principal",
					Tipo:      template.VariableText,
					Requerida: false,
					Categoria: template.CategoryActivities,
					Entidades: []template.EntityKind{template.EntitySports},
				},
			},
		},
		template.EntityEducation: {
			Secciones: []Extra{
				{
					ID:          "protocolo_aulas",
					Titulo:      "Protocolo de actuación en el aula",
					Contenido:   "El personal docente de {nombreEntidad} aplicará el protocolo de detección temprana en el aula y comunicará cualquier indicio al responsable de protección.",
					Obligatoria: true,
				},
				{
					ID:          "actividades_extraescolares",
					Titulo:      "Actividades extraescolares",
					Contenido:   "Las actividades fuera del horario lectivo de {nombreEntidad} mantendrán las mismas garantías de supervisión que la actividad ordinaria.",
					Obligatoria: false,
					Condiciones: []template.Condition{
						{Variable: "extraescolares", Operador: template.OpEquals, Valor: "true"},
					},
				},
			},
			Variables: []template.Variable{
				{
					ID:        "extraescolares",
					Nombre:    "¿Ofrece actividades extraescolares?",
					Tipo:      template.VariableBoolean,
					Requerida: false,
					Categoria: template.CategoryActivities,
					Entidades: []template.EntityKind{template.EntityEducation},
				},
				{
					ID:        "etapasEducativas",
					Nombre:    "Etapas educativas impartidas",
					Tipo:      template.VariableList,
					Requerida: false,
					Opciones:  []string{"infantil", "primaria", "secundaria", "bachillerato"},
					Categoria: template.CategoryEntity,
					Entidades: []template.EntityKind{template.EntityEducation},
				},
			},
		},
		template.EntitySocial: {
			Secciones: []Extra{
				{
					ID:          "protocolo_voluntariado",
					Titulo:      "Protocolo para personal voluntario",
					Contenido:   "Todo el voluntariado de {nombreEntidad} acreditará la certificación negativa del Registro Central de Delincuentes Sexuales antes de iniciar su actividad.",
					Obligatoria: true,
				},
			},
			Variables: []template.Variable{
				{
					ID:        "numeroVoluntarios",
					Nombre:    "Número de personas voluntarias",
					Tipo:      template.VariableNumber,
					Requerida: false,
					Categoria: template.CategoryEntity,
					Entidades: []template.EntityKind{template.EntitySocial},
				},
			},
		},
		template.EntityReligious: {
			Secciones: []Extra{
				{
					ID:          "protocolo_catequesis",
					Titulo:      "Protocolo en actividades de formación religiosa",
					Contenido:   "Las sesiones de formación de {nombreEntidad} se realizarán en espacios visibles, con puertas abiertas o ventanas interiores, y nunca con un único adulto a solas con menores.",
					Obligatoria: true,
				},
				{
					ID:          "campamentos",
					Titulo:      "Campamentos y convivencias",
					Contenido:   "En las convivencias con pernoctación organizadas por {nombreEntidad} la ratio de adultos acreditados será la fijada en el plan de protección.",
					Obligatoria: false,
					Condiciones: []template.Condition{
						{Variable: "pernoctaciones", Operador: template.OpEquals, Valor: "true"},
					},
				},
			},
			Variables: []template.Variable{
				{
					ID:        "pernoctaciones",
					Nombre:    "¿Organiza actividades con pernoctación?",
					Tipo:      template.VariableBoolean,
					Requerida: false,
					Categoria: template.CategoryActivities,
					Entidades: []template.EntityKind{template.EntityReligious},
				},
			},
		},
	}
}
