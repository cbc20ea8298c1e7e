// Package catalog ships the official template catalog and a loader for
// user-provided catalog directories in JSON or YAML.
package catalog

import (
	"github.com/goliatone/go-docgen/pkg/template"
)

// Official returns the bundled official templates, one per document kind.
// The templates are generic; pass them through an adapter to specialise them
// for an entity category.
func Official() []template.Template {
	return []template.Template{
		protectionPlan(),
		conductCode(),
		actionProtocols(),
		riskAssessment(),
		trainingManual(),
	}
}

func commonVariables() []template.Variable {
	return []template.Variable{
		{
			ID:        "nombreEntidad",
			Nombre:    "Nombre de la entidad",
			Tipo:      template.VariableText,
			Requerida: true,
			Categoria: template.CategoryEntity,
		},
		{
			ID:        "delegadoProteccion",
			Nombre:    "Delegado/a de protección",
			Tipo:      template.VariableText,
			Requerida: true,
			Categoria: template.CategoryResponsible,
		},
		{
			ID:           "fechaAprobacion",
			Nombre:       "Fecha de aprobación",
			Tipo:         template.VariableDate,
			Requerida:    true,
			ValorDefecto: "",
			Categoria:    template.CategoryConfiguration,
		},
		{
			ID:        "numeroMenores",
			Nombre:    "Número de menores atendidos",
			Tipo:      template.VariableNumber,
			Requerida: false,
			Categoria: template.CategoryEntity,
		},
	}
}

func protectionPlan() template.Template {
	b := template.NewBuilder("plan_proteccion_oficial", template.DocumentProtectionPlan).
		Name("Plan de Protección de la Infancia").
		Description("Plan de protección frente a la violencia sobre la infancia y la adolescencia.").
		Official().
		Section("portada", "Plan de Protección",
			"Entidad: {nombreEntidad}\nDelegado/a de protección: {delegadoProteccion}\nFecha de aprobación: {fechaAprobacion}").
		Section("objeto", "Objeto y ámbito de aplicación",
			"El presente plan establece las medidas de protección integral de los menores "+
				"que participan en las actividades de {nombreEntidad}.").
		Section("delegado", "Delegado/a de protección",
			"{nombreEntidad} designa a {delegadoProteccion} como delegado/a de protección, "+
				"punto de contacto para menores, familias y personal.").
		Section("analisis_riesgos", "Análisis de riesgos",
			"La entidad atiende a {numeroMenores} menores. El análisis de riesgos se revisa anualmente.",
			template.When("numeroMenores", template.OpGreaterThan, "0")).
		Section("medidas", "Medidas de protección",
			"- Protocolo de actuación ante indicios de violencia\n"+
				"- Formación obligatoria del personal\n"+
				"- Canal de comunicación seguro",
			template.AsKind(template.ContentList)).
		Section("firma", "Firma y aprobación",
			"Firmado por {delegadoProteccion} en representación de {nombreEntidad}.",
			template.AsKind(template.ContentSignature))
	for _, v := range commonVariables() {
		b.Variable(v)
	}
	return b.Build()
}

func conductCode() template.Template {
	b := template.NewBuilder("codigo_conducta_oficial", template.DocumentConductCode).
		Name("Código de Conducta").
		Description("Normas de conducta del personal y voluntariado en el trato con menores.").
		Official().
		Section("portada", "Código de Conducta",
			"Entidad: {nombreEntidad}\nFecha de aprobación: {fechaAprobacion}").
		Section("principios", "Principios generales",
			"Todo el personal de {nombreEntidad} se compromete a respetar el interés superior del menor.").
		Section("conductas_debidas", "Conductas debidas",
			"- Tratar a los menores con respeto\n"+
				"- Comunicar al delegado/a de protección cualquier indicio de violencia\n"+
				"- Respetar la intimidad de los menores",
			template.AsKind(template.ContentList)).
		Section("conductas_prohibidas", "Conductas prohibidas",
			"- Permanecer a solas con un menor fuera de los espacios autorizados\n"+
				"- Mantener contacto privado por redes sociales con menores\n"+
				"- Aplicar castigos físicos o humillantes",
			template.AsKind(template.ContentList)).
		Section("compromiso", "Compromiso personal",
			"Declaro conocer y aceptar el presente código de conducta.",
			template.AsKind(template.ContentSignature), template.ReadOnly())
	for _, v := range commonVariables() {
		b.Variable(v)
	}
	return b.Build()
}

func actionProtocols() template.Template {
	b := template.NewBuilder("protocolos_actuacion_oficial", template.DocumentActionProtocols).
		Name("Protocolos de Actuación").
		Description("Protocolos de actuación ante situaciones de riesgo o violencia sobre menores.").
		Official().
		Section("portada", "Protocolos de Actuación",
			"Entidad: {nombreEntidad}\nDelegado/a de protección: {delegadoProteccion}").
		Section("deteccion", "Detección de situaciones de riesgo",
			"Indicadores de posible situación de violencia y vía de comunicación inmediata "+
				"con {delegadoProteccion}.").
		Section("comunicacion", "Comunicación y notificación",
			"Pasos de notificación interna y, cuando proceda, a servicios sociales, "+
				"fiscalía o fuerzas y cuerpos de seguridad.").
		Section("urgencia", "Actuación de urgencia",
			"Ante riesgo inminente para el menor se contactará de inmediato con el 112.",
			template.Optional(),
			template.When("atencionUrgencias", template.OpEquals, "true")).
		Section("registro", "Registro de actuaciones",
			"Toda actuación queda registrada con fecha, personas intervinientes y medidas adoptadas.")
	for _, v := range commonVariables() {
		b.Variable(v)
	}
	b.Variable(template.Variable{
		ID:        "atencionUrgencias",
		Nombre:    "¿La entidad atiende situaciones de urgencia?",
		Tipo:      template.VariableBoolean,
		Categoria: template.CategoryActivities,
	})
	return b.Build()
}

func riskAssessment() template.Template {
	b := template.NewBuilder("evaluacion_riesgos_oficial", template.DocumentRiskAssessment).
		Name("Evaluación de Riesgos").
		Description("Evaluación de riesgos de los espacios y actividades con menores.").
		Official().
		Section("portada", "Evaluación de Riesgos",
			"Entidad: {nombreEntidad}\nFecha de evaluación: {fechaAprobacion}").
		Section("espacios", "Espacios físicos",
			"Relación de espacios utilizados y medidas de visibilidad y supervisión.").
		Section("actividades", "Actividades evaluadas",
			"Actividades que implican contacto con menores y nivel de riesgo asociado.").
		Section("desplazamientos", "Desplazamientos y pernoctas",
			"Medidas específicas para salidas, desplazamientos y pernoctas fuera de las instalaciones.",
			template.Optional(),
			template.When("realizaSalidas", template.OpEquals, "true")).
		Section("plan_mejora", "Plan de mejora",
			"Medidas correctoras priorizadas con responsables y plazos.",
			template.AsKind(template.ContentTable))
	for _, v := range commonVariables() {
		b.Variable(v)
	}
	b.Variable(template.Variable{
		ID:        "realizaSalidas",
		Nombre:    "¿Se realizan salidas o pernoctas?",
		Tipo:      template.VariableBoolean,
		Categoria: template.CategoryActivities,
	})
	return b.Build()
}

func trainingManual() template.Template {
	b := template.NewBuilder("manual_formacion_oficial", template.DocumentTrainingManual).
		Name("Manual de Formación").
		Description("Contenidos formativos en protección de la infancia para personal y voluntariado.").
		Official().
		Section("portada", "Manual de Formación",
			"Entidad: {nombreEntidad}").
		Section("marco", "Marco normativo",
			"Introducción a la normativa de protección integral a la infancia frente a la violencia.").
		Section("buen_trato", "Cultura del buen trato",
			"Principios del buen trato y participación infantil en {nombreEntidad}.").
		Section("deteccion_formacion", "Detección e indicadores",
			"Formación en detección de indicios de violencia y procedimiento de comunicación.").
		Section("evaluacion", "Evaluación de la formación",
			"Cuestionario de evaluación y registro de asistentes.",
			template.Optional())
	for _, v := range commonVariables() {
		b.Variable(v)
	}
	return b.Build()
}
