package palette

import theme "github.com/goliatone/go-theme"

// BuiltinManifests returns the bundled themes. Each call returns fresh
// manifests so callers may modify them.
func BuiltinManifests() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    "classic",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenForeground: "#000000",
				TokenBackground: "#FFFFFF",
				TokenAccent:     "#4CAF50",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{
					TokenForeground: "#FFFFFF",
					TokenBackground: "#111111",
				}},
			},
		},
		{
			Name:    "ocean",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenForeground: "#0B3C5D",
				TokenBackground: "#F2F8FC",
				TokenAccent:     "#1DA1F2",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{
					TokenForeground: "#9AD1F5",
					TokenBackground: "#0B1D2A",
				}},
			},
		},
		{
			Name:    "forest",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenForeground: "#1E4D2B",
				TokenBackground: "#F4F9F1",
				TokenAccent:     "#25D366",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{
					TokenForeground: "#B8E0C2",
					TokenBackground: "#10231A",
				}},
			},
		},
	}
}

// Builtin returns a catalog of the bundled themes.
func Builtin() *Catalog {
	catalog, err := NewCatalog(BuiltinManifests()...)
	if err != nil {
		// Bundled manifests are covered by tests.
		panic(err)
	}
	return catalog
}
