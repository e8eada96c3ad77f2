package tui

import (
	"io"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the fields as a JSON object in form order.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded pairs.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits one "Label: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// DefaultMaxAttempts bounds the prompt rounds for one form.
const DefaultMaxAttempts = 5

// Theme captures optional formatting hints the driver can apply when printing
// messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Validator checks collected fields. *categories.Registry satisfies it.
type Validator interface {
	Validate(category model.Category, fields model.FieldMap) error
}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(model.FieldMap) (model.FieldMap, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput redirects the default survey driver's messages. Ignored when a
// custom driver is supplied.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithValidator overrides the category rules used to re-prompt invalid
// fields. Pass nil to collect values without validation.
func WithValidator(validator Validator) Option {
	return func(r *Renderer) {
		r.validator = validator
		r.validatorSet = true
	}
}

// WithMaxAttempts bounds the number of prompt rounds.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
