package model

import (
	"errors"
	"testing"
)

func TestCategories_DeclarationOrder(t *testing.T) {
	got := Categories()
	if len(got) != 14 {
		t.Fatalf("expected 14 categories, got %d", len(got))
	}
	if got[0] != Number || got[len(got)-1] != Barcode2D {
		t.Fatalf("unexpected order: first=%v last=%v", got[0], got[len(got)-1])
	}
	seen := make(map[string]struct{}, len(got))
	for _, c := range got {
		if c.Slug() == "" {
			t.Fatalf("category %d has no slug", int(c))
		}
		if _, dup := seen[c.Slug()]; dup {
			t.Fatalf("duplicate slug %q", c.Slug())
		}
		seen[c.Slug()] = struct{}{}
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{in: "wifi", want: WiFiPassword},
		{in: "WiFi Password", want: WiFiPassword},
		{in: "  2d barcode ", want: Barcode2D},
		{in: "VCARD", want: VCard},
		{in: "social media", want: SocialMedia},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCategory(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseCategory("fax"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategory_TextRoundTrip(t *testing.T) {
	text, err := SocialMedia.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(text) != "social" {
		t.Fatalf("expected slug, got %q", text)
	}
	var c Category
	if err := c.UnmarshalText(text); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != SocialMedia {
		t.Fatalf("expected SocialMedia, got %v", c)
	}
	if _, err := Category(99).MarshalText(); err == nil {
		t.Fatalf("expected error for undeclared category")
	}
}
