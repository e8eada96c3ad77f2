package uischema

import "github.com/goliatone/go-qrgen/pkg/model"

// Hint keys written to model.Form and model.Field UIHints.
const (
	HintIcon   = "icon"
	HintColumn = "layout.column"
	HintRows   = "layout.rows"
)

// Store keeps parsed category overlays. Treat it as immutable after LoadFS.
type Store struct {
	categories map[model.Category]CategoryConfig
}

// CategoryConfig is the overlay for one category form.
type CategoryConfig struct {
	Category model.Category
	Source   string
	Form     FormConfig
	Fields   map[string]FieldConfig
}

// FormConfig holds form-level presentation.
type FormConfig struct {
	Title    string            `json:"title" yaml:"title"`
	Subtitle string            `json:"subtitle" yaml:"subtitle"`
	Icon     string            `json:"icon" yaml:"icon"`
	UIHints  map[string]string `json:"uiHints" yaml:"uiHints"`
}

// FieldConfig customises one field.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string            `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	Column      string            `json:"column,omitempty" yaml:"column,omitempty"`
	Rows        int               `json:"rows,omitempty" yaml:"rows,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}

// Category returns the overlay for c.
func (s *Store) Category(c model.Category) (CategoryConfig, bool) {
	if s == nil {
		return CategoryConfig{}, false
	}
	cfg, ok := s.categories[c]
	return cfg, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.categories) == 0
}

// Categories lists the configured categories in declaration order.
func (s *Store) Categories() []model.Category {
	if s == nil {
		return nil
	}
	var out []model.Category
	for _, c := range model.Categories() {
		if _, ok := s.categories[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
