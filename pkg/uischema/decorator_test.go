package uischema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/model"
)

func TestDecorator_EmbeddedSchemaFitsEveryForm(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	decorator := NewDecorator(store)
	for _, category := range model.Categories() {
		form, err := categories.Default().Form(category, decorator)
		if err != nil {
			t.Fatalf("%s: %v", category, err)
		}
		for _, field := range form.Fields {
			if field.Label == "" {
				t.Fatalf("%s: field %q has no label", category, field.Key)
			}
			if field.UIHints[HintColumn] == "" {
				t.Fatalf("%s: field %q has no column hint", category, field.Key)
			}
		}
	}
}

func TestDecorator_AppliesOverlay(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	form, err := categories.Default().Form(model.Event, NewDecorator(store))
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.Subtitle == "" {
		t.Fatalf("expected subtitle")
	}
	start, _ := form.Field("event_start")
	if start.Label != "Start Time" || start.Placeholder != "YYYY-MM-DDTHH:MM" || start.Help != "Format: 2025-01-01T14:00" {
		t.Fatalf("unexpected start field %+v", start)
	}
	description, _ := form.Field("event_description")
	if description.UIHints[HintRows] != "4" || description.UIHints[HintColumn] != "full" {
		t.Fatalf("unexpected description hints %v", description.UIHints)
	}

	wifi, err := categories.Default().Form(model.WiFiPassword, NewDecorator(store))
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if !strings.Contains(wifi.UIHints[HintIcon], "<svg") {
		t.Fatalf("expected icon hint, got %v", wifi.UIHints)
	}
}

func TestDecorator_RejectsUnknownField(t *testing.T) {
	store, err := LoadFS(fstest.MapFS{
		"x.yaml": {Data: []byte("categories:\n  link:\n    fields:\n      url:\n        label: URL\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = categories.Default().Form(model.Link, NewDecorator(store))
	if err == nil || !strings.Contains(err.Error(), `unknown field "url"`) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestDecorator_NilStoreIsNoop(t *testing.T) {
	form := model.NewForm(model.Text, categories.TextHandler{}.Fields())
	if err := NewDecorator(nil).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Title != "Text" {
		t.Fatalf("form changed: %+v", form)
	}
}
