package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
)

type stubGenerator struct {
	requests []orchestrator.Request
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, req orchestrator.Request) (orchestrator.Result, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return orchestrator.Result{}, s.err
	}
	return orchestrator.Result{
		Category:  req.Category,
		Fields:    req.Fields.Clone(),
		Payload:   "payload-" + fmt.Sprint(len(s.requests)),
		PNG:       []byte("png"),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, len(s.requests), 0, time.UTC),
	}, nil
}

func sequentialIDs() history.Option {
	n := 0
	return history.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func TestSession_Defaults(t *testing.T) {
	s := New()
	if s.Category() != model.Text {
		t.Fatalf("expected Text, got %v", s.Category())
	}
	if diff := cmp.Diff(model.DefaultRenderConfig(), s.Config()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if s.Fields().Len() != 0 {
		t.Fatalf("expected empty fields")
	}
	if s.History().Capacity() != history.DefaultCapacity {
		t.Fatalf("unexpected history capacity %d", s.History().Capacity())
	}
}

func TestSession_SelectCategoryResetsOnlyOnChange(t *testing.T) {
	s := New(WithCategory(model.Link))
	s.Set(categories.FieldLink, "https://example.com")

	if err := s.SelectCategory(model.Link); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.Fields().Get(categories.FieldLink) != "https://example.com" {
		t.Fatalf("reselecting the same category must keep inputs")
	}

	if err := s.SelectCategory(model.Text); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.Fields().Len() != 0 {
		t.Fatalf("changing category must clear inputs, got %v", s.Fields().Keys())
	}

	if err := s.SelectCategory(model.Category(99)); !errors.Is(err, model.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSession_FieldsAreCopies(t *testing.T) {
	s := New()
	s.Set("number", "1")
	fields := s.Fields()
	fields.Set("number", "2")
	if s.Fields().Get("number") != "1" {
		t.Fatalf("mutating the returned map leaked into the session")
	}
}

func TestSession_SetConfigValidates(t *testing.T) {
	s := New()
	cfg := model.DefaultRenderConfig()
	cfg.BoxSize = 40
	if err := s.SetConfig(cfg); err == nil {
		t.Fatalf("expected invalid config error")
	}
	if s.Config().BoxSize != 10 {
		t.Fatalf("invalid config must not be stored")
	}

	cfg.BoxSize = 12
	if err := s.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if s.Config().BoxSize != 12 {
		t.Fatalf("config not stored")
	}
}

func TestSession_GenerateAppendsHistory(t *testing.T) {
	gen := &stubGenerator{}
	s := New(WithCategory(model.Text), WithHistory(history.NewStore(sequentialIDs())))
	s.Set(categories.FieldText, "hello")

	result, entry, err := s.Generate(context.Background(), gen)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Payload != "payload-1" || entry.ID != "id-1" || entry.Payload != "payload-1" {
		t.Fatalf("unexpected result %+v entry %+v", result, entry)
	}
	if gen.requests[0].Category != model.Text || gen.requests[0].Fields.Get(categories.FieldText) != "hello" {
		t.Fatalf("session state not forwarded: %+v", gen.requests[0])
	}
	if gen.requests[0].Config != model.DefaultRenderConfig() {
		t.Fatalf("config not forwarded")
	}
	if s.History().Len() != 1 {
		t.Fatalf("expected one history entry")
	}

	gen.err = errors.New("boom")
	if _, _, err := s.Generate(context.Background(), gen); err == nil {
		t.Fatalf("expected error")
	}
	if s.History().Len() != 1 {
		t.Fatalf("failed generations must not be recorded")
	}
	if s.Fields().Get(categories.FieldText) != "hello" {
		t.Fatalf("inputs must survive a failed generation")
	}
}

func TestSession_SidebarShowsLastFive(t *testing.T) {
	gen := &stubGenerator{}
	s := New(WithCategory(model.Text), WithHistory(history.NewStore(sequentialIDs())))
	for i := 0; i < 12; i++ {
		if _, _, err := s.Generate(context.Background(), gen); err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
	}
	if s.History().Len() != history.DefaultCapacity {
		t.Fatalf("expected capped history, got %d", s.History().Len())
	}

	var ids []string
	for _, entry := range s.Sidebar() {
		ids = append(ids, entry.ID)
	}
	if diff := cmp.Diff([]string{"id-8", "id-9", "id-10", "id-11", "id-12"}, ids); diff != "" {
		t.Fatalf("sidebar mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_Reuse(t *testing.T) {
	gen := &stubGenerator{}
	s := New(WithCategory(model.Link), WithHistory(history.NewStore(sequentialIDs())))
	s.Set(categories.FieldLink, "https://example.com")
	if _, _, err := s.Generate(context.Background(), gen); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := s.SelectCategory(model.Text); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Set(categories.FieldText, "other")

	entry, err := s.Reuse("id-1")
	if err != nil {
		t.Fatalf("reuse: %v", err)
	}
	if entry.Category != model.Link || s.Category() != model.Link {
		t.Fatalf("category not restored")
	}
	if !s.Fields().Equal(model.NewFieldMap(categories.FieldLink, "https://example.com")) {
		t.Fatalf("fields not restored: %v", s.Fields().Map())
	}

	if _, err := s.Reuse("missing"); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
