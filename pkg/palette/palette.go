// Package palette maps go-theme manifests onto QR colours. A manifest carries
// the "qr.foreground" and "qr.background" tokens, optionally overridden per
// variant (for example "dark").
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Token names read from manifests.
const (
	TokenForeground = "qr.foreground"
	TokenBackground = "qr.background"
	TokenAccent     = "ui.accent"
)

// DefaultTheme is used when a selection names no theme.
const DefaultTheme = "classic"

var (
	// ErrUnknownTheme is returned for unregistered theme names.
	ErrUnknownTheme = errors.New("palette: unknown theme")
	// ErrUnknownVariant is returned for variants the theme does not declare.
	ErrUnknownVariant = errors.New("palette: unknown variant")
)

// Colors is the resolved colour set of a selection.
type Colors struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Accent     string `json:"accent,omitempty"`
}

// Catalog holds theme manifests and resolves selections against them. It
// implements theme.ThemeSelector.
type Catalog struct {
	manifests map[string]*theme.Manifest
	provider  theme.ThemeProvider
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog registers manifests with a go-theme registry and indexes them by
// name. Every manifest must define valid foreground and background tokens,
// and variant overrides must be valid colours.
func NewCatalog(manifests ...*theme.Manifest) (*Catalog, error) {
	registry := theme.NewRegistry()
	c := &Catalog{manifests: make(map[string]*theme.Manifest, len(manifests))}

	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("palette: manifest name is required")
		}
		if _, exists := c.manifests[name]; exists {
			return nil, fmt.Errorf("palette: theme %q already registered", name)
		}
		if err := validateManifest(manifest); err != nil {
			return nil, err
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("palette: register %q: %w", name, err)
		}
		c.manifests[name] = manifest
	}
	c.provider = registry
	return c, nil
}

// Provider exposes the underlying go-theme registry.
func (c *Catalog) Provider() theme.ThemeProvider {
	return c.provider
}

// Names lists the registered themes alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants lists the variants of name alphabetically.
func (c *Catalog) Variants(name string) []string {
	manifest, ok := c.manifests[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(manifest.Variants))
	for variant := range manifest.Variants {
		out = append(out, variant)
	}
	sort.Strings(out)
	return out
}

// Select resolves a theme and variant. An empty name selects DefaultTheme; an
// empty variant selects the base tokens.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTheme
	}
	manifest, ok := c.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownVariant, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Resolve returns the colours of a selection, variant tokens overriding the
// base manifest.
func Resolve(selection *theme.Selection) (Colors, error) {
	if selection == nil || selection.Manifest == nil {
		return Colors{}, errors.New("palette: selection has no manifest")
	}
	tokens := mergedTokens(selection.Manifest, selection.Variant)
	colors := Colors{
		Foreground: tokens[TokenForeground],
		Background: tokens[TokenBackground],
		Accent:     tokens[TokenAccent],
	}
	if _, err := model.ParseColor(colors.Foreground); err != nil {
		return Colors{}, fmt.Errorf("palette: theme %q: %s: %w", selection.Theme, TokenForeground, err)
	}
	if _, err := model.ParseColor(colors.Background); err != nil {
		return Colors{}, fmt.Errorf("palette: theme %q: %s: %w", selection.Theme, TokenBackground, err)
	}
	return colors, nil
}

// Apply selects name/variant and copies its colours onto cfg.
func (c *Catalog) Apply(cfg model.RenderConfig, name, variant string) (model.RenderConfig, error) {
	selection, err := c.Select(name, variant)
	if err != nil {
		return cfg, err
	}
	colors, err := Resolve(selection)
	if err != nil {
		return cfg, err
	}
	cfg.Foreground = colors.Foreground
	cfg.Background = colors.Background
	return cfg, nil
}

func mergedTokens(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		out[k] = v
	}
	if v, ok := manifest.Variants[variant]; ok {
		for k, value := range v.Tokens {
			out[k] = value
		}
	}
	return out
}

func validateManifest(manifest *theme.Manifest) error {
	for _, key := range []string{TokenForeground, TokenBackground} {
		if _, err := model.ParseColor(manifest.Tokens[key]); err != nil {
			return fmt.Errorf("palette: theme %q: %s: %w", manifest.Name, key, err)
		}
	}
	for name, variant := range manifest.Variants {
		for key, value := range variant.Tokens {
			if _, err := model.ParseColor(value); err != nil {
				return fmt.Errorf("palette: theme %q variant %q: %s: %w", manifest.Name, name, key, err)
			}
		}
	}
	return nil
}
