package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-docgen/pkg/template"
)

// Clock abstracts wall-clock time for testability.
type Clock func() time.Time

// Memory is an in-memory Store. It keeps insertion order for List and returns
// deep copies so callers cannot mutate stored state.
type Memory struct {
	mu        sync.RWMutex
	templates map[string]template.Template
	order     []string
	clock     Clock
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock sets the clock used for creation and update timestamps.
func WithClock(clock Clock) MemoryOption {
	return func(m *Memory) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewMemory constructs an empty in-memory store.
func NewMemory(options ...MemoryOption) *Memory {
	m := &Memory{
		templates: make(map[string]template.Template),
		clock:     time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Seed loads templates without touching timestamps or ids, replacing entries
// that share an id. Intended for catalog bootstrap.
func (m *Memory) Seed(templates ...template.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tpl := range templates {
		if tpl.ID == "" {
			continue
		}
		if _, exists := m.templates[tpl.ID]; !exists {
			m.order = append(m.order, tpl.ID)
		}
		m.templates[tpl.ID] = tpl.Clone()
	}
}

func (m *Memory) List(_ context.Context, filter Filter) ([]template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]template.Template, 0, len(m.order))
	for _, id := range m.order {
		tpl := m.templates[id]
		if filter.Matches(tpl) {
			out = append(out, tpl.Clone())
		}
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tpl, ok := m.templates[id]
	if !ok {
		return template.Template{}, ErrNotFound
	}
	return tpl.Clone(), nil
}

func (m *Memory) Create(_ context.Context, tpl template.Template) (template.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := tpl.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := m.clock()
	stored.FechaCreacion = now
	stored.FechaActualizacion = now
	if _, exists := m.templates[stored.ID]; !exists {
		m.order = append(m.order, stored.ID)
	}
	m.templates[stored.ID] = stored
	return stored.Clone(), nil
}

func (m *Memory) Update(_ context.Context, tpl template.Template) (template.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.templates[tpl.ID]
	if !ok {
		return template.Template{}, ErrNotFound
	}
	stored := tpl.Clone()
	stored.FechaCreacion = current.FechaCreacion
	stored.FechaActualizacion = m.clock()
	m.templates[stored.ID] = stored
	return stored.Clone(), nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[id]; !ok {
		return ErrNotFound
	}
	delete(m.templates, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
