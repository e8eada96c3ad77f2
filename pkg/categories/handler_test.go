package categories

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrgen/pkg/model"
)

func TestDefault_CoversEveryCategory(t *testing.T) {
	reg := Default()
	if diff := cmp.Diff(model.Categories(), reg.List()); diff != "" {
		t.Fatalf("registered categories mismatch (-want +got):\n%s", diff)
	}
	for _, category := range model.Categories() {
		handler := reg.MustGet(category)
		if handler.Category() != category {
			t.Fatalf("handler for %s reports %s", category, handler.Category())
		}
		if len(handler.Fields()) == 0 {
			t.Fatalf("handler for %s declares no fields", category)
		}
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(LinkHandler{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(LinkHandler{}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
	if reg.Has(model.Text) {
		t.Fatalf("text handler should not be registered")
	}
	if _, err := reg.Get(model.Text); !errors.Is(err, model.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if got := reg.Format(model.Text, model.NewFieldMap("text", "hi")); got != "" {
		t.Fatalf("expected empty payload for unregistered category, got %q", got)
	}
}

func TestRegistry_FormAppliesDecorators(t *testing.T) {
	reg := Default()
	form, err := reg.Form(model.WiFiPassword, model.DecoratorFunc(func(f *model.Form) error {
		f.Subtitle = "join a network"
		return nil
	}))
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if diff := cmp.Diff([]string{FieldWiFiSSID, FieldWiFiPassword, FieldWiFiEncryption}, form.Keys()); diff != "" {
		t.Fatalf("field keys mismatch (-want +got):\n%s", diff)
	}
	if form.Subtitle != "join a network" {
		t.Fatalf("decorator not applied: %+v", form)
	}
	encryption, _ := form.Field(FieldWiFiEncryption)
	if encryption.Kind != model.FieldKindSelect || encryption.Default != "WPA2" {
		t.Fatalf("unexpected encryption field %+v", encryption)
	}

	boom := errors.New("boom")
	_, err = reg.Form(model.Text, model.DecoratorFunc(func(*model.Form) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}
