package catalog_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-docgen/pkg/catalog"
)

const yamlTemplate = `
id: plan_basico
nombre: Plan básico
tipoDocumento: plan_proteccion
tipoEntidad: otro
version: "1.0"
estructura:
  secciones:
    - id: intro
      titulo: Introducción
      contenido: "Entidad: {nombreEntidad}"
      tipoContenido: texto
      obligatoria: true
      editable: true
      orden: 1
variables:
  - id: nombreEntidad
    nombre: Nombre de la entidad
    tipo: texto
    requerida: true
activa: true
`

const jsonTemplate = `{
  "id": "codigo_basico",
  "nombre": "Código básico",
  "tipoDocumento": "codigo_conducta",
  "tipoEntidad": "otro",
  "version": "1.0",
  "estructura": {
    "secciones": [
      {"id": "normas", "titulo": "Normas", "contenido": "Normas de conducta.", "tipoContenido": "texto", "obligatoria": true, "editable": true, "orden": 1}
    ]
  },
  "variables": [],
  "activa": true
}`

func TestLoadFSParsesYAMLAndJSON(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"plan.yaml":   {Data: []byte(yamlTemplate)},
		"codigo.json": {Data: []byte(jsonTemplate)},
		"README.md":   {Data: []byte("not a template")},
	}

	templates, err := catalog.LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}

	byID := make(map[string]bool)
	for _, tpl := range templates {
		byID[tpl.ID] = true
	}
	if !byID["plan_basico"] || !byID["codigo_basico"] {
		t.Fatalf("unexpected templates loaded: %v", byID)
	}
}

func TestLoadFSNilFilesystem(t *testing.T) {
	t.Parallel()

	templates, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if len(templates) != 0 {
		t.Fatalf("expected no templates, got %d", len(templates))
	}
}

func TestLoadFSRejectsDuplicates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/plan.yaml": {Data: []byte(yamlTemplate)},
		"b/plan.yaml": {Data: []byte(yamlTemplate)},
	}
	_, err := catalog.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate template") {
		t.Fatalf("expected duplicate template error, got %v", err)
	}
}

func TestLoadFSRejectsUnknownDocumentKind(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte(strings.Replace(yamlTemplate, "plan_proteccion", "otro_tipo", 1))},
	}
	_, err := catalog.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "unknown document kind") {
		t.Fatalf("expected unknown document kind error, got %v", err)
	}
}

func TestLoadFSRejectsMissingSections(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"empty.json": {Data: []byte(`{"id": "x", "tipoDocumento": "plan_proteccion", "estructura": {"secciones": []}}`)},
	}
	_, err := catalog.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "no sections") {
		t.Fatalf("expected no sections error, got %v", err)
	}
}
