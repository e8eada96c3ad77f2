package html

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/uischema"
	"github.com/goliatone/go-qrgen/pkg/widgets"
)

// Field inputs are posted as "field.<key>" so they cannot collide with the
// render settings.
const FieldInputPrefix = "field."

type pageView struct {
	Action     string                  `json:"action"`
	Stylesheet string                  `json:"stylesheet"`
	Category   string                  `json:"category"`
	Title      string                  `json:"title"`
	Subtitle   string                  `json:"subtitle"`
	Icon       string                  `json:"icon"`
	Fields     []fieldView             `json:"fields"`
	FormErrors []string                `json:"form_errors"`
	Preview    string                  `json:"preview"`
	Config     configView              `json:"config"`
	Categories []render.CategoryOption `json:"categories"`
	Palettes   []string                `json:"palettes"`
	Result     *resultView             `json:"result"`
	History    []historyView           `json:"history"`
}

type fieldView struct {
	Name        string       `json:"name"`
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Widget      string       `json:"widget"`
	InputType   string       `json:"input_type"`
	Placeholder string       `json:"placeholder"`
	Help        string       `json:"help"`
	Value       string       `json:"value"`
	Required    bool         `json:"required"`
	Column      string       `json:"column"`
	Rows        int          `json:"rows"`
	Options     []optionView `json:"options"`
	Errors      []string     `json:"errors"`
}

type historyView struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Payload   string `json:"payload"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

type optionView struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type configView struct {
	Version    int          `json:"version"`
	BoxSize    int          `json:"box_size"`
	Border     int          `json:"border"`
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Levels     []optionView `json:"levels"`
	MinVersion int          `json:"min_version"`
	MaxVersion int          `json:"max_version"`
	MinBoxSize int          `json:"min_box_size"`
	MaxBoxSize int          `json:"max_box_size"`
	MinBorder  int          `json:"min_border"`
	MaxBorder  int          `json:"max_border"`
}

type resultView struct {
	ID          string             `json:"id"`
	Category    string             `json:"category"`
	Payload     string             `json:"payload"`
	PNG         []byte             `json:"png"`
	SVG         string             `json:"svg"`
	SVGData     []byte             `json:"svg_data"`
	Version     int                `json:"version"`
	PNGFilename string             `json:"png_filename"`
	SVGFilename string             `json:"svg_filename"`
	ShareLinks  []render.ShareLink `json:"share_links"`
}

func buildPage(form model.Form, options render.RenderOptions) pageView {
	view := pageView{
		Category:   form.Category.Slug(),
		Title:      form.Title,
		Subtitle:   form.Subtitle,
		Icon:       uischema.SanitizeSVG(form.UIHints[uischema.HintIcon]),
		Fields:     make([]fieldView, 0, len(form.Fields)),
		FormErrors: options.FormErrors,
		Preview:    options.Preview,
		Config:     buildConfig(options.Config),
		Categories: options.Categories,
		Palettes:   options.Palettes,
	}
	for _, item := range options.History {
		view.History = append(view.History, historyView{
			ID:        item.ID,
			Category:  item.Category.String(),
			Payload:   item.Payload,
			ImageURL:  item.ImageURL,
			CreatedAt: item.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	for _, field := range form.Fields {
		view.Fields = append(view.Fields, buildField(field, options))
	}
	if options.Result != nil {
		view.Result = buildResult(*options.Result)
	}
	return view
}

func buildField(field model.Field, options render.RenderOptions) fieldView {
	value, ok := options.Values.Lookup(field.Key)
	if !ok {
		value = field.Default
	}
	widget := field.Widget
	if widget == "" {
		widget = widgets.WidgetText
	}

	view := fieldView{
		Name:        FieldInputPrefix + field.Key,
		ID:          "qr-" + field.Key,
		Label:       field.Label,
		Widget:      widget,
		InputType:   inputType(widget),
		Placeholder: field.Placeholder,
		Help:        field.Help,
		Value:       value,
		Required:    field.Required,
		Column:      field.UIHints[uischema.HintColumn],
		Errors:      options.Errors[field.Key],
	}
	if rows, err := strconv.Atoi(field.UIHints[uischema.HintRows]); err == nil && rows > 0 {
		view.Rows = rows
	} else if widget == widgets.WidgetTextArea {
		view.Rows = 4
	}
	for _, option := range field.Options {
		view.Options = append(view.Options, optionView{Value: option, Selected: option == value})
	}
	return view
}

func inputType(widget string) string {
	switch widget {
	case widgets.WidgetPassword, widgets.WidgetURL, widgets.WidgetEmail, widgets.WidgetTel:
		return widget
	case widgets.WidgetDateTime:
		return "datetime-local"
	default:
		return "text"
	}
}

func buildConfig(cfg model.RenderConfig) configView {
	cfg = cfg.WithDefaults()
	view := configView{
		Version:    cfg.Version,
		BoxSize:    cfg.BoxSize,
		Border:     cfg.Border,
		Foreground: cfg.Foreground,
		Background: cfg.Background,
		MinVersion: model.MinVersion,
		MaxVersion: model.MaxVersion,
		MinBoxSize: model.MinBoxSize,
		MaxBoxSize: model.MaxBoxSize,
		MinBorder:  model.MinBorder,
		MaxBorder:  model.MaxBorder,
	}
	for _, level := range model.ErrorCorrectionLevels() {
		view.Levels = append(view.Levels, optionView{Value: level.String(), Selected: level == cfg.ErrorCorrection})
	}
	return view
}

func buildResult(result render.Generated) *resultView {
	return &resultView{
		ID:          result.ID,
		Category:    result.Category.String(),
		Payload:     result.Payload,
		PNG:         result.PNG,
		SVG:         uischema.SanitizeSVG(strings.TrimSpace(string(result.SVG))),
		SVGData:     result.SVG,
		Version:     result.Version,
		PNGFilename: result.PNGFilename,
		SVGFilename: result.SVGFilename,
		ShareLinks:  result.ShareLinks,
	}
}
