package store

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-docgen/pkg/template"
)

// flakyStore wraps a Memory store and fails every call once down is set.
type flakyStore struct {
	*Memory
	down bool
}

var errBackendDown = errors.New("backend unreachable")

func (s *flakyStore) List(ctx context.Context, filter Filter) ([]template.Template, error) {
	if s.down {
		return nil, errBackendDown
	}
	return s.Memory.List(ctx, filter)
}

func (s *flakyStore) Get(ctx context.Context, id string) (template.Template, error) {
	if s.down {
		return template.Template{}, errBackendDown
	}
	return s.Memory.Get(ctx, id)
}

func (s *flakyStore) Create(ctx context.Context, tpl template.Template) (template.Template, error) {
	if s.down {
		return template.Template{}, errBackendDown
	}
	return s.Memory.Create(ctx, tpl)
}

func (s *flakyStore) Update(ctx context.Context, tpl template.Template) (template.Template, error) {
	if s.down {
		return template.Template{}, errBackendDown
	}
	return s.Memory.Update(ctx, tpl)
}

func (s *flakyStore) Delete(ctx context.Context, id string) error {
	if s.down {
		return errBackendDown
	}
	return s.Memory.Delete(ctx, id)
}

func TestFallbackServesCachedReadsWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := &flakyStore{Memory: NewMemory()}
	cache := NewFileCache(t.TempDir())
	s := NewFallback(primary, cache)

	stored, err := s.Create(ctx, sampleTemplate(t, "plan", template.DocumentProtectionPlan))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	primary.down = true

	got, err := s.Get(ctx, stored.ID)
	if err != nil {
		t.Fatalf("expected cached read to succeed, got %v", err)
	}
	if got.ID != stored.ID {
		t.Fatalf("expected cached template %q, got %q", stored.ID, got.ID)
	}

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("expected cached list to succeed, got %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one cached template, got %d", len(all))
	}
}

func TestFallbackNotFoundIsAuthoritative(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := &flakyStore{Memory: NewMemory()}
	cache := NewFileCache(t.TempDir())
	// The cache holds a stale copy the primary has since lost track of.
	if err := cache.Put(sampleTemplate(t, "plan", template.DocumentProtectionPlan)); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	s := NewFallback(primary, cache)

	_, err := s.Get(ctx, "plan")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from primary to win over the cache, got %v", err)
	}
}

func TestFallbackWritesRequireThePrimary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := &flakyStore{Memory: NewMemory(), down: true}
	cache := NewFileCache(t.TempDir())
	s := NewFallback(primary, cache)

	if _, err := s.Create(ctx, sampleTemplate(t, "plan", template.DocumentProtectionPlan)); !errors.Is(err, errBackendDown) {
		t.Fatalf("expected create to surface the primary failure, got %v", err)
	}
	if _, err := cache.Get(ctx, "plan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected nothing cached after a failed write, got %v", err)
	}
}

func TestFallbackDeleteEvictsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	primary := &flakyStore{Memory: NewMemory()}
	cache := NewFileCache(t.TempDir())
	s := NewFallback(primary, cache)

	stored, err := s.Create(ctx, sampleTemplate(t, "plan", template.DocumentProtectionPlan))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := s.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, stored.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cache eviction after delete, got %v", err)
	}
}
