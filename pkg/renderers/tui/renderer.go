// Package tui collects category fields through terminal prompts. It
// implements render.Renderer so the CLI can drive it like any other front-end;
// the rendered bytes are the collected fields.
package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/widgets"
)

// Name is the registry name of the renderer.
const Name = "tui"

const secretMask = "********"

// Renderer prompts for every field of a form and re-prompts the failing
// field until the category rules pass.
type Renderer struct {
	driver            PromptDriver
	out               io.Writer
	outputFormat      OutputFormat
	validator         Validator
	validatorSet      bool
	maxAttempts       int
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver on stdout, JSON
// output, built-in category rules).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		out:          os.Stdout,
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	if !r.validatorSet {
		r.validator = categories.Default()
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for the form and returns the serialized fields.
func (r *Renderer) Render(ctx context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Collect(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	return r.serialize(form, values)
}

// Collect prompts for every field of form, seeding answers from opts.Values
// and field defaults. Messages in opts.Errors are shown before the matching
// prompt.
func (r *Renderer) Collect(ctx context.Context, form model.Form, opts render.RenderOptions) (model.FieldMap, error) {
	if ctx == nil {
		return model.FieldMap{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FieldMap{}, err
	}
	if r.driver == nil {
		return model.FieldMap{}, errors.New("tui: prompt driver is nil")
	}

	values := seedValues(form, opts.Values)
	for _, message := range opts.FormErrors {
		r.notify(ctx, r.theme.ErrorPrefix+message)
	}

	pending := form.Fields
	fieldErrors := opts.Errors
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			for _, message := range fieldErrors[field.Key] {
				r.notify(ctx, r.theme.ErrorPrefix+message)
			}
			answer, err := r.promptField(ctx, field, values.Get(field.Key))
			if err != nil {
				return model.FieldMap{}, err
			}
			values.Set(field.Key, answer)
		}

		if r.validator == nil {
			break
		}
		err := r.validator.Validate(form.Category, values)
		if err == nil {
			break
		}
		var verr *categories.ValidationError
		if !errors.As(err, &verr) {
			return model.FieldMap{}, fmt.Errorf("tui: validate: %w", err)
		}
		if attempt >= r.maxAttempts {
			return model.FieldMap{}, fmt.Errorf("%w: %s", ErrTooManyAttempts, verr.Message)
		}

		if field, ok := form.Field(verr.Field); ok {
			pending = []model.Field{field}
			fieldErrors = map[string][]string{field.Key: {verr.Message}}
			continue
		}
		r.notify(ctx, r.theme.ErrorPrefix+verr.Message)
		pending = form.Fields
		fieldErrors = nil
	}

	if r.submitTransformer != nil {
		transformed, err := r.submitTransformer(values.Clone())
		if err != nil {
			return model.FieldMap{}, fmt.Errorf("tui: submit transformer: %w", err)
		}
		values = transformed
	}
	return values, nil
}

// PromptCategory asks the user to pick one of cats, preselecting current.
func (r *Renderer) PromptCategory(ctx context.Context, cats []model.Category, current model.Category) (model.Category, error) {
	if len(cats) == 0 {
		return 0, errors.New("tui: no categories to choose from")
	}
	names := make([]string, len(cats))
	defaultIndex := 0
	for i, category := range cats {
		names[i] = category.String()
		if category == current {
			defaultIndex = i
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + "Select QR Code Category",
		Options:      names,
		DefaultIndex: defaultIndex,
		PageSize:     len(names),
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(cats) {
		return 0, fmt.Errorf("tui: category selection %d out of range", idx)
	}
	return cats[idx], nil
}

// Confirm asks a yes/no question.
func (r *Renderer) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return r.driver.Confirm(ctx, ConfirmConfig{Message: r.theme.PromptPrefix + message, Default: def})
}

// Info prints a message through the driver.
func (r *Renderer) Info(ctx context.Context, message string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+message)
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, current string) (string, error) {
	message := r.theme.PromptPrefix + field.Label
	if field.Required {
		message += " *"
	}
	help := field.Help
	if help == "" && field.Placeholder != "" {
		help = field.Placeholder
	}

	switch field.Widget {
	case widgets.WidgetSelect:
		if len(field.Options) == 0 {
			break
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, current),
			Help:         help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Options) {
			return current, nil
		}
		return field.Options[idx], nil
	case widgets.WidgetPassword:
		return r.driver.Password(ctx, InputConfig{Message: message, Default: current, Help: help})
	case widgets.WidgetTextArea:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})
	}
	return r.driver.Input(ctx, InputConfig{Message: message, Default: current, Help: help})
}

func (r *Renderer) notify(ctx context.Context, message string) {
	_ = r.driver.Info(ctx, message)
}

func (r *Renderer) serialize(form model.Form, values model.FieldMap) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		pairs := make([]string, 0, values.Len())
		for _, key := range values.Keys() {
			pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(values.Get(key)))
		}
		return []byte(strings.Join(pairs, "&")), nil
	case OutputFormatPrettyText:
		var buf bytes.Buffer
		for _, key := range values.Keys() {
			label, value := key, values.Get(key)
			if field, ok := form.Field(key); ok {
				label = field.Label
				if field.Kind == model.FieldKindSecret && value != "" {
					value = secretMask
				}
			}
			fmt.Fprintf(&buf, "%s: %s\n", label, value)
		}
		return buf.Bytes(), nil
	default:
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return out, nil
	}
}

// seedValues orders values by form field, filling absent keys from the field
// defaults.
func seedValues(form model.Form, provided model.FieldMap) model.FieldMap {
	values := form.Defaults()
	for _, key := range values.Keys() {
		if value, ok := provided.Lookup(key); ok {
			values.Set(key, value)
		}
	}
	return values
}
