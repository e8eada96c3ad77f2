package qrgen

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/renderers/html"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), html.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected stylesheet content")
	}
}

func TestEmbeddedTemplatesContainsPage(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("expected page template: %v", err)
	}
}

func TestNewPipelineRendersForm(t *testing.T) {
	pipeline, err := NewPipeline()
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	out, err := pipeline.RenderForm(context.Background(), model.Link, "", RenderOptions{})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	if !strings.Contains(string(out), "<title>QR Code Generator - Link</title>") {
		t.Fatalf("unexpected page:\n%s", out)
	}
}

func TestGenerate(t *testing.T) {
	cfg, err := WithPalette(model.RenderConfig{}, "forest", "")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	result, err := Generate(context.Background(), model.Text, model.NewFieldMap("text", "hello"), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Payload != "text:hello" || result.PNGFilename != "qr_code_text.png" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !strings.Contains(string(result.SVG), `fill="#1E4D2B"`) {
		t.Fatalf("palette colour missing from svg")
	}
}
