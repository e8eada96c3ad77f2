// Package qrgen is the top-level entry point: it wires the payload pipeline
// to the built-in HTML renderer.
package qrgen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/palette"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/html"
)

// Request aliases orchestrator.Request for callers of the root package.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// RenderConfig aliases model.RenderConfig.
type RenderConfig = model.RenderConfig

// RenderOptions describes per-request values, errors and results shown by a
// renderer.
type RenderOptions = render.RenderOptions

// NewPipeline builds a pipeline with the HTML renderer registered as the
// default. Options passed by the caller are applied after it, so a
// WithRenderers option replaces the built-in registry.
func NewPipeline(options ...orchestrator.Option) (*orchestrator.Pipeline, error) {
	page, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("qrgen: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(page); err != nil {
		return nil, fmt.Errorf("qrgen: register html renderer: %w", err)
	}
	opts := append([]orchestrator.Option{
		orchestrator.WithRenderers(registry),
		orchestrator.WithDefaultRenderer(html.Name),
	}, options...)
	return orchestrator.New(opts...), nil
}

// Generate encodes one payload with the default pipeline.
func Generate(ctx context.Context, category model.Category, fields model.FieldMap, cfg RenderConfig) (Result, error) {
	pipeline, err := NewPipeline()
	if err != nil {
		return Result{}, err
	}
	return pipeline.Generate(ctx, Request{Category: category, Fields: fields, Config: cfg})
}

// WithPalette returns cfg recoloured with a built-in theme.
func WithPalette(cfg RenderConfig, theme, variant string) (RenderConfig, error) {
	return palette.Builtin().Apply(cfg, theme, variant)
}
