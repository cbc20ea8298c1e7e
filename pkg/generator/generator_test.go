package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/store"
	"github.com/goliatone/go-docgen/pkg/template"
)

func TestGenerateOfficialTemplateByID(t *testing.T) {
	t.Parallel()

	g := New()
	output, err := g.Generate(context.Background(), Request{
		TemplateID: "plan_proteccion_oficial",
		Bindings: template.Bindings{
			"nombreEntidad":      "Club Deportivo Ejemplo",
			"delegadoProteccion": "María García",
			"fechaAprobacion":    "2025-03-01",
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, "Club Deportivo Ejemplo") {
		t.Error("expected entity name substituted into the output")
	}
	if !strings.Contains(html, "María García") {
		t.Error("expected the protection delegate substituted into the output")
	}
	if !strings.Contains(html, "Plan de Protección") {
		t.Error("expected the document title in the output")
	}
}

func TestGenerateAdaptsForEntityCategory(t *testing.T) {
	t.Parallel()

	g := New()
	output, err := g.Generate(context.Background(), Request{
		TemplateID: "plan_proteccion_oficial",
		Entity:     template.EntitySports,
		Bindings: template.Bindings{
			"nombreEntidad":      "Club Deportivo Ejemplo",
			"delegadoProteccion": "María García",
			"fechaAprobacion":    "2025-03-01",
			"competiciones":      true,
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(string(output), "Protocolo en competiciones") {
		t.Error("expected the sports competition section appended by the adapter")
	}
}

func TestGenerateUnknownTemplateIsNotFound(t *testing.T) {
	t.Parallel()

	g := New()
	_, err := g.Generate(context.Background(), Request{TemplateID: "desconocida"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound in the chain, got %v", err)
	}
}

func TestGenerateRequiresTemplateOrID(t *testing.T) {
	t.Parallel()

	g := New()
	_, err := g.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected an error when neither template nor id is supplied")
	}
}

func TestGenerateInlineTemplateBypassesStore(t *testing.T) {
	t.Parallel()

	tpl := template.NewBuilder("inline", template.DocumentConductCode).
		Name("Código inline").
		Section("normas", "Normas", "Entidad: {nombreEntidad}").
		Variable(template.Variable{ID: "nombreEntidad", Tipo: template.VariableText}).
		Build()

	g := New(WithStore(store.NewMemory()))
	output, err := g.Generate(context.Background(), Request{
		Template: &tpl,
		Bindings: template.Bindings{"nombreEntidad": "Parroquia San Juan"},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(string(output), "Parroquia San Juan") {
		t.Error("expected inline template rendered with bindings")
	}
}

type captureRenderer struct {
	name    string
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	if r.name == "" {
		return "capture"
	}
	return r.name
}

func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(doc.Nombre), nil
}

func TestGenerateFallsBackToDefaultRenderer(t *testing.T) {
	t.Parallel()

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	g := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()))
	output, err := g.Generate(context.Background(), Request{TemplateID: "codigo_conducta_oficial"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if string(output) != "Código de Conducta" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestGenerateNamedMissingRendererFails(t *testing.T) {
	t.Parallel()

	g := New()
	_, err := g.Generate(context.Background(), Request{
		TemplateID: "codigo_conducta_oficial",
		Renderer:   "inexistente",
	})
	if err == nil || !strings.Contains(err.Error(), "inexistente") {
		t.Fatalf("expected an error naming the missing renderer, got %v", err)
	}
}

func TestGenerateMissingDefaultUsesFirstRegistered(t *testing.T) {
	t.Parallel()

	renderer := &captureRenderer{name: "alterno"}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	g := New(WithRegistry(registry), WithDefaultRenderer("inexistente"))
	if _, err := g.Generate(context.Background(), Request{TemplateID: "codigo_conducta_oficial"}); err != nil {
		t.Fatalf("expected fallback to the only registered renderer, got %v", err)
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestGeneratePassesThemeConfigToRenderer(t *testing.T) {
	t.Parallel()

	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"oscuro": {
				Tokens: map[string]string{"brand": "#654321"},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "oscuro",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	g := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := g.Generate(context.Background(), Request{
		TemplateID:   "codigo_conducta_oficial",
		ThemeName:    "acme",
		ThemeVariant: "oscuro",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" || selector.calls[0].variant != "oscuro" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not overlaid, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.AssetURL == nil {
		t.Fatal("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url: %s", got)
	}
}

func TestGenerateWithoutSelectorSkipsTheme(t *testing.T) {
	t.Parallel()

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	g := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()))
	if _, err := g.Generate(context.Background(), Request{
		TemplateID: "codigo_conducta_oficial",
		ThemeName:  "acme",
	}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if renderer.options.Theme != nil {
		t.Fatal("expected no theme config without a selector")
	}
}
