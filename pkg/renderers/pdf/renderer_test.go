package pdf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/template"
)

func sampleDocument() render.Document {
	return render.Document{
		TemplateID:    "plan_proteccion",
		Nombre:        "Plan de Protección",
		TipoDocumento: template.DocumentProtectionPlan,
		Secciones: []render.RenderedSection{
			{ID: "intro", Titulo: "Introducción", Contenido: "Contenido."},
		},
	}
}

func TestRenderPassesPageToConverter(t *testing.T) {
	t.Parallel()

	var received []byte
	conv := ConverterFunc(func(_ context.Context, html []byte) ([]byte, error) {
		received = html
		return []byte("%PDF-1.7 fake"), nil
	})

	r, err := New(conv)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out, err := r.Render(context.Background(), sampleDocument(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "%PDF-1.7 fake" {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(string(received), "Plan de Protección") {
		t.Fatalf("converter did not receive the rendered page:\n%s", received)
	}
}

func TestRenderConverterFailureIsRenderFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("missing native dependency")
	conv := ConverterFunc(func(context.Context, []byte) ([]byte, error) {
		return nil, cause
	})

	r, err := New(conv)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = r.Render(context.Background(), sampleDocument(), render.RenderOptions{})
	if !render.IsRenderFailure(err) {
		t.Fatalf("expected render failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved in chain, got %v", err)
	}
}

func TestRenderWithoutConverterFails(t *testing.T) {
	t.Parallel()

	r, err := New(nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = r.Render(context.Background(), sampleDocument(), render.RenderOptions{})
	if !render.IsRenderFailure(err) {
		t.Fatalf("expected render failure, got %v", err)
	}
	if !errors.Is(err, ErrNoConverter) {
		t.Fatalf("expected ErrNoConverter, got %v", err)
	}
}
