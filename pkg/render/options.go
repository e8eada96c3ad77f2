package render

import (
	"time"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// RenderOptions carry per-request state renderers surface around the form
// without mutating it.
type RenderOptions struct {
	// Values pre-populates controls by field key.
	Values model.FieldMap
	// Errors holds inline messages keyed by field key.
	Errors map[string][]string
	// FormErrors are shown above the form.
	FormErrors []string
	// Preview is the payload the current values would encode.
	Preview string
	// Config seeds the rendering controls.
	Config model.RenderConfig
	// Categories lists the selectable categories.
	Categories []CategoryOption
	// Palettes lists the selectable colour themes.
	Palettes []string
	// Result is set after a successful generation.
	Result *Generated
	// History lists recent generations, oldest first.
	History []HistoryItem
}

// CategoryOption is one entry of the category picker.
type CategoryOption struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// CategoryOptions builds the picker entries with current selected.
func CategoryOptions(categories []model.Category, current model.Category) []CategoryOption {
	out := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryOption{
			Slug:     category.Slug(),
			Name:     category.String(),
			Selected: category == current,
		})
	}
	return out
}

// Generated describes a freshly generated code.
type Generated struct {
	ID          string
	Category    model.Category
	Payload     string
	PNG         []byte
	SVG         []byte
	Version     int
	PNGFilename string
	SVGFilename string
	ShareLinks  []ShareLink
}

// ShareLink is a labelled outbound URL.
type ShareLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// HistoryItem is a history sidebar row.
type HistoryItem struct {
	ID        string         `json:"id"`
	Category  model.Category `json:"category"`
	Payload   string         `json:"payload"`
	ImageURL  string         `json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
