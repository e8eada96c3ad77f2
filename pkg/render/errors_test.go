package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
)

func TestMapError_AttachesValidationErrorToField(t *testing.T) {
	form, err := categories.Default().Form(model.Link)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	verr := categories.Validate(model.Link, model.NewFieldMap("link", "ftp://x"))

	mapped := render.MapError(form, verr)
	want := map[string][]string{"link": {"URL should start with http:// or https://"}}
	if diff := cmp.Diff(want, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if mapped.Form != nil {
		t.Fatalf("expected no form errors, got %v", mapped.Form)
	}
}

func TestMapError_FallsBackToFormLevel(t *testing.T) {
	form, err := categories.Default().Form(model.Text)
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	foreign := &categories.ValidationError{Field: "wifi_ssid", Kind: categories.KindMissing, Message: "WiFi SSID is required!"}
	if diff := cmp.Diff([]string{"WiFi SSID is required!"}, render.MapError(form, foreign).Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	plain := errors.New("  Failed to generate QR code. Please check your inputs. ")
	mapped := render.MapError(form, plain)
	if mapped.Fields != nil {
		t.Fatalf("expected no field errors, got %v", mapped.Fields)
	}
	if diff := cmp.Diff([]string{"Failed to generate QR code. Please check your inputs."}, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	if got := render.MapError(form, nil); got.Fields != nil || got.Form != nil {
		t.Fatalf("nil error should map to nothing, got %+v", got)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	if diff := cmp.Diff([]string{"First", "Second", "third"}, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if render.MergeFormErrors(nil, " ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}

func TestCategoryOptions_MarksSelection(t *testing.T) {
	opts := render.CategoryOptions([]model.Category{model.Text, model.Link}, model.Link)
	want := []render.CategoryOption{
		{Slug: "text", Name: "Text"},
		{Slug: "link", Name: "Link", Selected: true},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}
