package model

// FieldKind describes how a form layer should collect a value.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextArea FieldKind = "textarea"
	FieldKindSelect   FieldKind = "select"
	FieldKindSecret   FieldKind = "secret"
)

// FieldSpec declares a field read by a category handler. Handlers own the
// specs; presentation details live on Field.
type FieldSpec struct {
	Key      string
	Kind     FieldKind
	Required bool
	Options  []string
	Default  string
}

// Field is a single input in a rendered form. Struct tags keep the JSON shape
// stable for template engines and API clients.
type Field struct {
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	Kind        FieldKind         `json:"kind"`
	Required    bool              `json:"required"`
	Placeholder string            `json:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty"`
	Options     []string          `json:"options,omitempty"`
	Default     string            `json:"default,omitempty"`
	Widget      string            `json:"widget,omitempty"`
	UIHints     map[string]string `json:"ui_hints,omitempty"`
}

// Form is the presentation model for one category.
type Form struct {
	Category Category          `json:"category"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Fields   []Field           `json:"fields"`
	UIHints  map[string]string `json:"ui_hints,omitempty"`
}

// NewForm builds a form for category from the handler field specs, using
// DefaultLabeler for labels until a decorator supplies better ones.
func NewForm(category Category, specs []FieldSpec) Form {
	form := Form{
		Category: category,
		Title:    category.String(),
		Fields:   make([]Field, 0, len(specs)),
	}
	for _, spec := range specs {
		kind := spec.Kind
		if kind == "" {
			kind = FieldKindText
		}
		form.Fields = append(form.Fields, Field{
			Key:      spec.Key,
			Label:    DefaultLabeler(spec.Key),
			Kind:     kind,
			Required: spec.Required,
			Options:  append([]string(nil), spec.Options...),
			Default:  spec.Default,
		})
	}
	return form
}

// Field returns the field with the given key.
func (f Form) Field(key string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Keys returns the field keys in form order.
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		keys = append(keys, field.Key)
	}
	return keys
}

// Defaults returns a FieldMap seeded with every field's default value.
func (f Form) Defaults() FieldMap {
	var out FieldMap
	for _, field := range f.Fields {
		out.Set(field.Key, field.Default)
	}
	return out
}
