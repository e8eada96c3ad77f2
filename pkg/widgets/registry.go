package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Built-in widget identifiers. The HTML renderer maps them onto input types;
// the terminal renderer onto prompt kinds.
const (
	WidgetText     = "text"
	WidgetTextArea = "textarea"
	WidgetSelect   = "select"
	WidgetPassword = "password"
	WidgetURL      = "url"
	WidgetEmail    = "email"
	WidgetTel      = "tel"
	WidgetDateTime = "datetime"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. Blank names and nil matchers are ignored.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for field. An explicit Widget or "widget" UI
// hint is honoured before matchers run.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator, setting Widget on every field that
// resolves.
func (r *Registry) Decorate(form *model.Form) error {
	if r == nil || form == nil {
		return nil
	}
	for i := range form.Fields {
		if widget, ok := r.Resolve(form.Fields[i]); ok {
			form.Fields[i].Widget = widget
		}
	}
	return nil
}

func explicitWidget(field model.Field) string {
	if widget := strings.TrimSpace(field.Widget); widget != "" {
		return widget
	}
	if field.UIHints != nil {
		return strings.TrimSpace(field.UIHints["widget"])
	}
	return ""
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, func(field model.Field) bool {
		return field.Kind == model.FieldKindSelect || len(field.Options) > 0
	})
	r.Register(WidgetPassword, 80, func(field model.Field) bool {
		return field.Kind == model.FieldKindSecret
	})
	r.Register(WidgetTextArea, 70, func(field model.Field) bool {
		return field.Kind == model.FieldKindTextArea
	})
	r.Register(WidgetDateTime, 60, func(field model.Field) bool {
		return strings.HasSuffix(field.Key, "_start") || strings.HasSuffix(field.Key, "_end")
	})
	r.Register(WidgetURL, 50, func(field model.Field) bool {
		return field.Key == "link"
	})
	r.Register(WidgetEmail, 50, func(field model.Field) bool {
		return field.Key == "email" || strings.HasSuffix(field.Key, "_email")
	})
	r.Register(WidgetTel, 50, func(field model.Field) bool {
		return strings.HasSuffix(field.Key, "_number") || strings.HasSuffix(field.Key, "_phone")
	})
	r.Register(WidgetText, 0, func(model.Field) bool { return true })
}
