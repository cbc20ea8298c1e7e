package catalog_test

import (
	"testing"

	"github.com/goliatone/go-docgen/pkg/catalog"
	"github.com/goliatone/go-docgen/pkg/template"
)

func TestOfficialCoversEveryDocumentKind(t *testing.T) {
	t.Parallel()

	got := make(map[template.DocumentKind]bool)
	for _, tpl := range catalog.Official() {
		if !tpl.Oficial {
			t.Errorf("template %q is not marked official", tpl.ID)
		}
		if !tpl.Activa {
			t.Errorf("template %q is not active", tpl.ID)
		}
		if got[tpl.TipoDocumento] {
			t.Errorf("document kind %q appears twice", tpl.TipoDocumento)
		}
		got[tpl.TipoDocumento] = true
	}

	for _, kind := range []template.DocumentKind{
		template.DocumentProtectionPlan,
		template.DocumentConductCode,
		template.DocumentActionProtocols,
		template.DocumentRiskAssessment,
		template.DocumentTrainingManual,
	} {
		if !got[kind] {
			t.Errorf("no official template for document kind %q", kind)
		}
	}
}

func TestOfficialTemplatesDeclareTheirPlaceholders(t *testing.T) {
	t.Parallel()

	for _, tpl := range catalog.Official() {
		if undeclared := tpl.UndeclaredPlaceholders(); len(undeclared) > 0 {
			t.Errorf("template %q references undeclared variables %v", tpl.ID, undeclared)
		}
	}
}

func TestOfficialTemplatesHaveSequentialSectionOrder(t *testing.T) {
	t.Parallel()

	for _, tpl := range catalog.Official() {
		for i, section := range tpl.Sections() {
			if section.Orden != i+1 {
				t.Errorf("template %q section %q has order %d, want %d",
					tpl.ID, section.ID, section.Orden, i+1)
			}
		}
	}
}
