package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/encoder"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/share"
	"github.com/goliatone/go-qrgen/pkg/uischema"
	"github.com/goliatone/go-qrgen/pkg/widgets"
)

// GenericFailureMessage is shown when inputs pass validation but produce
// nothing to encode.
const GenericFailureMessage = "Failed to generate QR code. Please check your inputs."

// ErrNothingToEncode is returned when a validated form formats to an empty
// payload. Its message is the one front-ends display.
var ErrNothingToEncode = errors.New(GenericFailureMessage)

// FormatObserver is notified after every Format call made by Generate.
type FormatObserver func(category model.Category, fields model.FieldMap, payload string)

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithRegistry injects the category handler registry.
func WithRegistry(registry *categories.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithEncoder injects the matrix encoder. The default is a cached go-qrcode
// encoder.
func WithEncoder(enc encoder.Encoder) Option {
	return func(p *Pipeline) {
		p.encoder = enc
	}
}

// WithClock overrides the time source used for Result.CreatedAt.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithFormatObserver registers a hook called with every formatted payload.
func WithFormatObserver(observer FormatObserver) Option {
	return func(p *Pipeline) {
		p.observer = observer
	}
}

// WithRenderers injects a renderer registry used by RenderForm.
func WithRenderers(registry *render.Registry) Option {
	return func(p *Pipeline) {
		p.renderers = registry
	}
}

// WithDefaultRenderer overrides the renderer used when RenderForm is called
// without an explicit name.
func WithDefaultRenderer(name string) Option {
	return func(p *Pipeline) {
		p.defaultRenderer = name
	}
}

// WithUIDecorators registers decorators that run against every form after the
// UI schema and widget decorators.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(p *Pipeline) {
		if len(decorators) == 0 {
			return
		}
		p.decorators = append(p.decorators, decorators...)
	}
}

// WithUISchemaFS supplies an fs.FS holding UI schema documents. Pass nil to
// disable the embedded defaults.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(p *Pipeline) {
		p.uiSchemaFS = fsys
		p.uiSchemaSpecified = true
	}
}

// Pipeline turns category inputs into encoded QR images. It is safe for
// concurrent use once constructed.
type Pipeline struct {
	registry          *categories.Registry
	encoder           encoder.Encoder
	clock             func() time.Time
	logger            *slog.Logger
	observer          FormatObserver
	renderers         *render.Registry
	defaultRenderer   string
	decorators        []model.Decorator
	uiSchemaFS        fs.FS
	uiSchemaSpecified bool
	initialiseErr     error
}

// New constructs a Pipeline applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Request describes one generation.
type Request struct {
	Category model.Category
	Fields   model.FieldMap
	// Config zero values are filled from model.DefaultRenderConfig.
	Config model.RenderConfig
}

// Result is a successful generation.
type Result struct {
	Category    model.Category
	Fields      model.FieldMap
	Payload     string
	PNG         []byte
	SVG         []byte
	Version     int
	Modules     int
	PNGFilename string
	SVGFilename string
	CreatedAt   time.Time
}

// Generate validates the fields, formats the payload and encodes it. The
// formatter only runs on valid input and the encoder only runs on a
// non-empty payload.
func (p *Pipeline) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := p.initialiseErr; err != nil {
		return Result{}, err
	}

	logger := p.logger.With(slog.String("category", req.Category.Slug()))

	if err := p.registry.Validate(req.Category, req.Fields); err != nil {
		logger.Debug("validation failed", slog.String("error", err.Error()))
		return Result{}, err
	}

	payload := p.registry.Format(req.Category, req.Fields)
	if p.observer != nil {
		p.observer(req.Category, req.Fields.Clone(), payload)
	}
	if payload == "" {
		logger.Warn("empty payload after validation")
		return Result{}, ErrNothingToEncode
	}

	cfg := req.Config.WithDefaults()
	img, err := p.encoder.Encode(ctx, payload, cfg)
	if err != nil {
		logger.Error("encode failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("orchestrator: encode: %w", err)
	}

	pngName, svgName := share.Filenames(req.Category)
	result := Result{
		Category:    req.Category,
		Fields:      req.Fields.Clone(),
		Payload:     payload,
		PNG:         img.PNG,
		SVG:         img.SVG,
		Version:     img.Version,
		Modules:     img.Modules,
		PNGFilename: pngName,
		SVGFilename: svgName,
		CreatedAt:   p.clock(),
	}
	logger.Info("generated",
		slog.Int("version", img.Version),
		slog.Int("payload_bytes", len(payload)),
	)
	return result, nil
}

// Preview returns the payload the fields would encode. It neither validates
// nor encodes, so invalid input may preview as an empty or partial payload.
func (p *Pipeline) Preview(category model.Category, fields model.FieldMap) string {
	return p.registry.Format(category, fields)
}

// Validate runs the category rules without formatting.
func (p *Pipeline) Validate(category model.Category, fields model.FieldMap) error {
	return p.registry.Validate(category, fields)
}

// Categories lists the categories the pipeline can generate, in declaration
// order.
func (p *Pipeline) Categories() []model.Category {
	return p.registry.List()
}

// Registry exposes the handler registry.
func (p *Pipeline) Registry() *categories.Registry {
	return p.registry
}

func (p *Pipeline) applyDefaults() {
	if p.registry == nil {
		p.registry = categories.Default()
	}
	if p.encoder == nil {
		p.encoder = encoder.NewCache(encoder.NewQR())
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.renderers == nil {
		p.renderers = render.NewRegistry()
	}
	p.ensureUIDecorators()
}

func (p *Pipeline) ensureUIDecorators() {
	builtin := make([]model.Decorator, 0, 2)

	if !p.uiSchemaSpecified && p.uiSchemaFS == nil {
		p.uiSchemaFS = uischema.EmbeddedFS()
	}
	if p.uiSchemaFS != nil {
		store, err := uischema.LoadFS(p.uiSchemaFS)
		if err != nil {
			p.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
			return
		}
		if !store.Empty() {
			builtin = append(builtin, uischema.NewDecorator(store))
		}
	}
	builtin = append(builtin, widgets.NewRegistry())

	p.decorators = append(builtin, p.decorators...)
}
