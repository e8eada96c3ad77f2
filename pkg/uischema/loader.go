package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// LoadFS walks fsys and parses every JSON/YAML document. A nil fsys yields an
// empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{categories: make(map[model.Category]CategoryConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Categories {
			category, err := model.ParseCategory(name)
			if err != nil {
				return fmt.Errorf("uischema: file %s: %w", path, err)
			}
			if _, exists := store.categories[category]; exists {
				return fmt.Errorf("uischema: duplicate category %q (file %s)", category.Slug(), path)
			}
			store.categories[category] = normaliseCategory(raw, category, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Categories map[string]categoryFile `json:"categories" yaml:"categories"`
}

type categoryFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// parseDocument accepts JSON first and falls back to YAML.
func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseCategory(raw categoryFile, category model.Category, source string) CategoryConfig {
	cfg := CategoryConfig{
		Category: category,
		Source:   source,
		Form:     raw.Form,
		Fields:   make(map[string]FieldConfig, len(raw.Fields)),
	}
	cfg.Form.Icon = SanitizeSVG(raw.Form.Icon)
	cfg.Form.UIHints = cloneHints(raw.Form.UIHints)
	for key, field := range raw.Fields {
		field.UIHints = cloneHints(field.UIHints)
		cfg.Fields[strings.TrimSpace(key)] = field
	}
	return cfg
}

func cloneHints(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
