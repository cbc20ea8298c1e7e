package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Cache is the secondary tier consulted by Fallback when the primary backend
// is unreachable. FileCache satisfies it.
type Cache interface {
	List(ctx context.Context, filter Filter) ([]template.Template, error)
	Get(ctx context.Context, id string) (template.Template, error)
	Put(tpl template.Template) error
	Evict(id string) error
}

// Fallback composes a primary Store with a local Cache. Writes go to the
// primary and are mirrored into the cache on success; reads hit the primary
// first and fall back to the cache only when the primary fails outright.
// ErrNotFound from the primary is an authoritative answer, not a failure.
type Fallback struct {
	primary Store
	cache   Cache
}

// NewFallback composes the two tiers.
func NewFallback(primary Store, cache Cache) *Fallback {
	return &Fallback{primary: primary, cache: cache}
}

func (f *Fallback) List(ctx context.Context, filter Filter) ([]template.Template, error) {
	templates, err := f.primary.List(ctx, filter)
	if err != nil {
		return f.cache.List(ctx, filter)
	}
	for _, tpl := range templates {
		// Mirroring is best effort; a full cache disk must not fail reads.
		_ = f.cache.Put(tpl)
	}
	return templates, nil
}

func (f *Fallback) Get(ctx context.Context, id string) (template.Template, error) {
	tpl, err := f.primary.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return template.Template{}, err
		}
		return f.cache.Get(ctx, id)
	}
	_ = f.cache.Put(tpl)
	return tpl, nil
}

func (f *Fallback) Create(ctx context.Context, tpl template.Template) (template.Template, error) {
	stored, err := f.primary.Create(ctx, tpl)
	if err != nil {
		return template.Template{}, err
	}
	_ = f.cache.Put(stored)
	return stored, nil
}

func (f *Fallback) Update(ctx context.Context, tpl template.Template) (template.Template, error) {
	stored, err := f.primary.Update(ctx, tpl)
	if err != nil {
		return template.Template{}, err
	}
	_ = f.cache.Put(stored)
	return stored, nil
}

func (f *Fallback) Delete(ctx context.Context, id string) error {
	if err := f.primary.Delete(ctx, id); err != nil {
		return err
	}
	_ = f.cache.Evict(id)
	return nil
}
