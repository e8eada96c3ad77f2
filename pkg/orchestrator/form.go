package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
)

// Form builds the decorated presentation model for category: UI schema
// labels first, then widget resolution, then caller decorators.
func (p *Pipeline) Form(category model.Category) (model.Form, error) {
	if err := p.initialiseErr; err != nil {
		return model.Form{}, err
	}
	form, err := p.registry.Form(category, p.decorators...)
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: build form: %w", err)
	}
	return form, nil
}

// RenderForm builds the form for category and renders it with the named
// renderer, falling back to the default renderer when name is empty.
func (p *Pipeline) RenderForm(ctx context.Context, category model.Category, name string, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := p.Form(category)
	if err != nil {
		return nil, err
	}

	renderer, err := p.rendererFor(name)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer resolves a renderer by name using the same fallback rules as
// RenderForm.
func (p *Pipeline) Renderer(name string) (render.Renderer, error) {
	return p.rendererFor(name)
}

func (p *Pipeline) rendererFor(name string) (render.Renderer, error) {
	if p.renderers == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = p.defaultRenderer
	}

	if target != "" {
		renderer, err := p.renderers.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := p.renderers.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := p.renderers.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}
