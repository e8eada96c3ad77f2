// Package session holds the state of one interactive user: the selected
// category, the inputs typed so far, the render settings and the generation
// history.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
)

// SidebarSize is the number of history entries front-ends show.
const SidebarSize = 5

// Generator is the part of orchestrator.Pipeline a session drives.
type Generator interface {
	Generate(ctx context.Context, req orchestrator.Request) (orchestrator.Result, error)
}

// Session is safe for concurrent use; the HTTP front-end shares one per
// process.
type Session struct {
	mu       sync.RWMutex
	category model.Category
	fields   model.FieldMap
	config   model.RenderConfig
	history  *history.Store
}

// Option customises a Session.
type Option func(*Session)

// WithHistory replaces the default history store.
func WithHistory(store *history.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.history = store
		}
	}
}

// WithConfig seeds the render settings.
func WithConfig(cfg model.RenderConfig) Option {
	return func(s *Session) {
		s.config = cfg.WithDefaults()
	}
}

// WithCategory seeds the selected category.
func WithCategory(category model.Category) Option {
	return func(s *Session) {
		if category.Valid() {
			s.category = category
		}
	}
}

// New creates a session on model.DefaultCategory with default settings.
func New(opts ...Option) *Session {
	s := &Session{
		category: model.DefaultCategory,
		config:   model.DefaultRenderConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.history == nil {
		s.history = history.NewStore()
	}
	return s
}

// Category returns the selected category.
func (s *Session) Category() model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// SelectCategory switches category. Inputs are cleared only when the
// category actually changes.
func (s *Session) SelectCategory(category model.Category) error {
	if !category.Valid() {
		return fmt.Errorf("session: %w: %d", model.ErrUnknownCategory, int(category))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if category != s.category {
		s.category = category
		s.fields = model.FieldMap{}
	}
	return nil
}

// Set stores one input value.
func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields.Set(key, value)
}

// SetFields replaces every input value.
func (s *Session) SetFields(fields model.FieldMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = fields.Clone()
}

// Fields returns a copy of the inputs.
func (s *Session) Fields() model.FieldMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields.Clone()
}

// Config returns the render settings.
func (s *Session) Config() model.RenderConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig replaces the render settings after validating them.
func (s *Session) SetConfig(cfg model.RenderConfig) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("session: render config: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	return nil
}

// Generate runs the pipeline on the current state and records a successful
// result in the history. The inputs are kept either way.
func (s *Session) Generate(ctx context.Context, gen Generator) (orchestrator.Result, history.Entry, error) {
	s.mu.RLock()
	req := orchestrator.Request{
		Category: s.category,
		Fields:   s.fields.Clone(),
		Config:   s.config,
	}
	s.mu.RUnlock()

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return orchestrator.Result{}, history.Entry{}, err
	}

	entry := s.history.Add(history.Entry{
		Category:  result.Category,
		Fields:    result.Fields,
		Payload:   result.Payload,
		PNG:       result.PNG,
		CreatedAt: result.CreatedAt,
	})
	return result, entry, nil
}

// Reuse restores the category and inputs of a history entry.
func (s *Session) Reuse(id string) (history.Entry, error) {
	entry, err := s.history.Get(id)
	if err != nil {
		return history.Entry{}, fmt.Errorf("session: reuse: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = entry.Category
	s.fields = entry.Fields.Clone()
	return entry, nil
}

// History exposes the history store.
func (s *Session) History() *history.Store {
	return s.history
}

// Sidebar returns the entries front-ends list, oldest first.
func (s *Session) Sidebar() []history.Entry {
	return s.history.Recent(SidebarSize)
}
