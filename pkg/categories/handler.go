package categories

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Handler serves a single category.
type Handler interface {
	Category() model.Category
	// Fields lists the inputs the handler reads, in form order.
	Fields() []model.FieldSpec
	// Validate returns nil or a *ValidationError for the first failing rule.
	Validate(fields model.FieldMap) error
	// Format builds the payload. It never fails; "" means nothing to encode.
	Format(fields model.FieldMap) string
}

// Registry stores handlers by category.
type Registry struct {
	mu       sync.RWMutex
	handlers map[model.Category]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[model.Category]Handler)}
}

// Register adds a handler. Duplicate categories return an error.
func (r *Registry) Register(handler Handler) error {
	if handler == nil {
		return fmt.Errorf("categories: handler is required")
	}
	category := handler.Category()
	if !category.Valid() {
		return fmt.Errorf("categories: %w: %d", model.ErrUnknownCategory, int(category))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[category]; exists {
		return fmt.Errorf("categories: handler for %q already registered", category)
	}
	r.handlers[category] = handler
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(handler Handler) {
	if err := r.Register(handler); err != nil {
		panic(err)
	}
}

// Get retrieves the handler for category.
func (r *Registry) Get(category model.Category) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[category]
	if !ok {
		return nil, fmt.Errorf("categories: no handler for %s: %w", category, model.ErrUnknownCategory)
	}
	return handler, nil
}

// MustGet panics if the handler is missing.
func (r *Registry) MustGet(category model.Category) Handler {
	handler, err := r.Get(category)
	if err != nil {
		panic(err)
	}
	return handler
}

// List returns the registered categories in declaration order.
func (r *Registry) List() []model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.handlers))
	for _, category := range model.Categories() {
		if _, ok := r.handlers[category]; ok {
			out = append(out, category)
		}
	}
	return out
}

// Has reports whether a handler is registered for category.
func (r *Registry) Has(category model.Category) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[category]
	return ok
}

// Form builds the presentation model for category and runs the decorators
// over it.
func (r *Registry) Form(category model.Category, decorators ...model.Decorator) (model.Form, error) {
	handler, err := r.Get(category)
	if err != nil {
		return model.Form{}, err
	}
	form := model.NewForm(category, handler.Fields())
	if err := model.ApplyDecorators(&form, decorators...); err != nil {
		return model.Form{}, fmt.Errorf("categories: decorate %s form: %w", category, err)
	}
	return form, nil
}

// Validate runs the handler rules for category.
func (r *Registry) Validate(category model.Category, fields model.FieldMap) error {
	handler, err := r.Get(category)
	if err != nil {
		return err
	}
	return handler.Validate(fields)
}

// Format builds the payload for category. Unknown categories yield "".
func (r *Registry) Format(category model.Category, fields model.FieldMap) string {
	handler, err := r.Get(category)
	if err != nil {
		return ""
	}
	return handler.Format(fields)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry holding every built-in handler.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, handler := range Builtins() {
			defaultRegistry.MustRegister(handler)
		}
	})
	return defaultRegistry
}

// Builtins returns a fresh instance of every built-in handler in category
// declaration order.
func Builtins() []Handler {
	return []Handler{
		NumberHandler{},
		WiFiHandler{},
		LinkHandler{},
		WhatsAppHandler{},
		TextHandler{},
		EmailHandler{},
		PhoneHandler{},
		SMSHandler{},
		LocationHandler{},
		EventHandler{},
		SocialHandler{},
		VCardHandler{},
		CryptoHandler{},
		BarcodeHandler{},
	}
}

// Validate dispatches through the default registry.
func Validate(category model.Category, fields model.FieldMap) error {
	return Default().Validate(category, fields)
}

// Format dispatches through the default registry.
func Format(category model.Category, fields model.FieldMap) string {
	return Default().Format(category, fields)
}
