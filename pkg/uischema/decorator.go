package uischema

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Decorator applies a Store to forms.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator. A nil or empty store makes it a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate fills presentation details for the form's category. Configuring a
// field the form does not have is an error so typos surface early.
func (d *Decorator) Decorate(form *model.Form) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}
	cfg, ok := d.store.Category(form.Category)
	if !ok {
		return nil
	}

	if cfg.Form.Title != "" {
		form.Title = cfg.Form.Title
	}
	if cfg.Form.Subtitle != "" {
		form.Subtitle = cfg.Form.Subtitle
	}
	form.UIHints = mergeHints(form.UIHints, cfg.Form.UIHints)
	if cfg.Form.Icon != "" {
		form.UIHints = mergeHints(form.UIHints, map[string]string{HintIcon: cfg.Form.Icon})
	}

	index := make(map[string]int, len(form.Fields))
	for i, field := range form.Fields {
		index[field.Key] = i
	}

	keys := make([]string, 0, len(cfg.Fields))
	for key := range cfg.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		i, ok := index[key]
		if !ok {
			return fmt.Errorf("uischema: category %q (file %s) configures unknown field %q", form.Category.Slug(), cfg.Source, key)
		}
		applyField(&form.Fields[i], cfg.Fields[key])
	}
	return nil
}

func applyField(field *model.Field, cfg FieldConfig) {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}
	if cfg.HelpText != "" {
		field.Help = cfg.HelpText
	}
	if cfg.Widget != "" {
		field.Widget = cfg.Widget
	}
	field.UIHints = mergeHints(field.UIHints, cfg.UIHints)
	if cfg.Column != "" {
		field.UIHints = mergeHints(field.UIHints, map[string]string{HintColumn: cfg.Column})
	}
	if cfg.Rows > 0 {
		field.UIHints = mergeHints(field.UIHints, map[string]string{HintRows: strconv.Itoa(cfg.Rows)})
	}
}

func mergeHints(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
