//go:build integration

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Runs against a real PostgreSQL instance:
//
//	DOCGEN_POSTGRES_DSN=postgres://... go test -tags integration ./pkg/store
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DOCGEN_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DOCGEN_POSTGRES_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgresRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := NewPostgres(db)
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	stored, err := s.Create(ctx, sampleTemplate(t, "", template.DocumentProtectionPlan))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Delete(ctx, stored.ID) })

	got, err := s.Get(ctx, stored.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Nombre != stored.Nombre {
		t.Fatalf("expected name %q, got %q", stored.Nombre, got.Nombre)
	}

	got.Nombre = "Plantilla revisada"
	updated, err := s.Update(ctx, got)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.FechaCreacion.Equal(stored.FechaCreacion) {
		t.Fatalf("creation time changed on update: %v != %v", updated.FechaCreacion, stored.FechaCreacion)
	}

	plans, err := s.List(ctx, ByDocumentKind(template.DocumentProtectionPlan))
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	found := false
	for _, tpl := range plans {
		if tpl.ID == stored.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created template missing from filtered list")
	}

	if err := s.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Get(ctx, stored.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
