package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-qrgen/pkg/model"
)

func TestBuiltin(t *testing.T) {
	catalog := Builtin()
	if diff := cmp.Diff([]string{"classic", "forest", "ocean"}, catalog.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dark"}, catalog.Variants("ocean")); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
	if catalog.Provider() == nil {
		t.Fatalf("expected go-theme provider")
	}
}

func TestSelectAndResolve(t *testing.T) {
	catalog := Builtin()

	selection, err := catalog.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != DefaultTheme {
		t.Fatalf("expected default theme, got %q", selection.Theme)
	}
	colors, err := Resolve(selection)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(Colors{Foreground: "#000000", Background: "#FFFFFF", Accent: "#4CAF50"}, colors); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}

	selection, err = catalog.Select("ocean", "dark")
	if err != nil {
		t.Fatalf("select ocean/dark: %v", err)
	}
	colors, err = Resolve(selection)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if colors.Foreground != "#9AD1F5" || colors.Background != "#0B1D2A" || colors.Accent != "#1DA1F2" {
		t.Fatalf("variant tokens not merged over base: %+v", colors)
	}

	if _, err := catalog.Select("neon", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := catalog.Select("forest", "sepia"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestApply(t *testing.T) {
	cfg := model.DefaultRenderConfig()
	cfg.BoxSize = 7

	got, err := Builtin().Apply(cfg, "forest", "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Foreground != "#1E4D2B" || got.Background != "#F4F9F1" || got.BoxSize != 7 {
		t.Fatalf("unexpected config %+v", got)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("applied config invalid: %v", err)
	}

	unchanged, err := Builtin().Apply(cfg, "neon", "")
	if err == nil || unchanged != cfg {
		t.Fatalf("failed apply should return the input config and an error")
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	cases := map[string][]*theme.Manifest{
		"missing name": {{Version: "1.0.0", Tokens: map[string]string{TokenForeground: "#000", TokenBackground: "#fff"}}},
		"bad colour":   {{Name: "x", Version: "1.0.0", Tokens: map[string]string{TokenForeground: "black", TokenBackground: "#fff"}}},
		"bad variant": {{
			Name: "x", Version: "1.0.0",
			Tokens:   map[string]string{TokenForeground: "#000", TokenBackground: "#fff"},
			Variants: map[string]theme.Variant{"dark": {Tokens: map[string]string{TokenBackground: "nope"}}},
		}},
		"duplicate": {
			{Name: "x", Version: "1.0.0", Tokens: map[string]string{TokenForeground: "#000", TokenBackground: "#fff"}},
			{Name: "x", Version: "1.0.0", Tokens: map[string]string{TokenForeground: "#000", TokenBackground: "#fff"}},
		},
	}
	for name, manifests := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewCatalog(manifests...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
