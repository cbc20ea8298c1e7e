// Package store persists document templates. It ships an in-memory store for
// tests and embedding, a PostgreSQL store for shared deployments, a JSON file
// cache, and a fallback composite that keeps reads working when the primary
// backend is unreachable.
package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-docgen/pkg/template"
)

// ErrNotFound is reported when the requested template does not exist.
var ErrNotFound = errors.New("store: template not found")

// Filter narrows List results. Nil fields match everything.
type Filter struct {
	TipoDocumento *template.DocumentKind
	TipoEntidad   *template.EntityKind
	SoloActivas   bool
}

// Matches reports whether the template satisfies the filter.
func (f Filter) Matches(tpl template.Template) bool {
	if f.TipoDocumento != nil && tpl.TipoDocumento != *f.TipoDocumento {
		return false
	}
	if f.TipoEntidad != nil && tpl.TipoEntidad != *f.TipoEntidad {
		return false
	}
	if f.SoloActivas && !tpl.Activa {
		return false
	}
	return true
}

// ByDocumentKind builds a filter matching active templates of one document
// kind.
func ByDocumentKind(kind template.DocumentKind) Filter {
	return Filter{TipoDocumento: &kind, SoloActivas: true}
}

// Store is the persistence contract for templates.
type Store interface {
	// List returns templates matching the filter, in a stable order.
	List(ctx context.Context, filter Filter) ([]template.Template, error)
	// Get returns the template with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (template.Template, error)
	// Create persists a new template, assigning an id when none is set,
	// and returns the stored copy.
	Create(ctx context.Context, tpl template.Template) (template.Template, error)
	// Update replaces an existing template or reports ErrNotFound.
	Update(ctx context.Context, tpl template.Template) (template.Template, error)
	// Delete removes a template or reports ErrNotFound.
	Delete(ctx context.Context, id string) error
}
