package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goliatone/go-docgen/pkg/template"
)

// FileCache is a JSON-file backed store meant to shadow a remote backend so
// previously seen templates remain available offline. It implements Store so
// it can also serve as a standalone local store.
type FileCache struct {
	dir  string
	file string

	mu        sync.RWMutex
	templates map[string]template.Template
	loaded    bool
}

// NewFileCache constructs a cache rooted at dir. Nothing touches disk until
// the first read or write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{
		dir:       dir,
		file:      filepath.Join(dir, "plantillas.json"),
		templates: make(map[string]template.Template),
	}
}

// load reads the cache file once. A corrupted file starts the cache fresh
// instead of failing reads.
func (c *FileCache) load() error {
	if c.loaded {
		return nil
	}
	c.loaded = true

	data, err := os.ReadFile(c.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read template cache: %w", err)
	}
	var templates map[string]template.Template
	if err := json.Unmarshal(data, &templates); err != nil {
		c.templates = make(map[string]template.Template)
		return nil
	}
	c.templates = templates
	return nil
}

// flush persists the in-memory map. Caller holds the write lock.
func (c *FileCache) flush() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	data, err := json.MarshalIndent(c.templates, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template cache: %w", err)
	}
	if err := os.WriteFile(c.file, data, 0o644); err != nil {
		return fmt.Errorf("write template cache: %w", err)
	}
	return nil
}

// Put stores a template in the cache, overwriting any previous copy.
func (c *FileCache) Put(tpl template.Template) error {
	if tpl.ID == "" {
		return fmt.Errorf("cache template: missing id")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return err
	}
	c.templates[tpl.ID] = tpl.Clone()
	return c.flush()
}

// Evict removes a template from the cache. Missing entries are not an error.
func (c *FileCache) Evict(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return err
	}
	if _, ok := c.templates[id]; !ok {
		return nil
	}
	delete(c.templates, id)
	return c.flush()
}

func (c *FileCache) List(_ context.Context, filter Filter) ([]template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, err
	}
	out := make([]template.Template, 0, len(c.templates))
	for _, tpl := range c.templates {
		if filter.Matches(tpl) {
			out = append(out, tpl.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].FechaCreacion.Equal(out[j].FechaCreacion) {
			return out[i].FechaCreacion.Before(out[j].FechaCreacion)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (c *FileCache) Get(_ context.Context, id string) (template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return template.Template{}, err
	}
	tpl, ok := c.templates[id]
	if !ok {
		return template.Template{}, ErrNotFound
	}
	return tpl.Clone(), nil
}

func (c *FileCache) Create(_ context.Context, tpl template.Template) (template.Template, error) {
	if tpl.ID == "" {
		return template.Template{}, fmt.Errorf("cache template: missing id")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return template.Template{}, err
	}
	c.templates[tpl.ID] = tpl.Clone()
	if err := c.flush(); err != nil {
		return template.Template{}, err
	}
	return tpl.Clone(), nil
}

func (c *FileCache) Update(_ context.Context, tpl template.Template) (template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return template.Template{}, err
	}
	if _, ok := c.templates[tpl.ID]; !ok {
		return template.Template{}, ErrNotFound
	}
	c.templates[tpl.ID] = tpl.Clone()
	if err := c.flush(); err != nil {
		return template.Template{}, err
	}
	return tpl.Clone(), nil
}

func (c *FileCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return err
	}
	if _, ok := c.templates[id]; !ok {
		return ErrNotFound
	}
	delete(c.templates, id)
	return c.flush()
}
