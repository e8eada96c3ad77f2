package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-qrgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-qrgen/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

type imageView struct {
	Category string `json:"category"`
	PNG      []byte `json:"png"`
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)
	assertGolden(t, "payload", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("payload", map[string]any{"payload": "  text:hello \n"}, w)
	})
}

func TestGoTemplateEngine_StructDataAndDataURI(t *testing.T) {
	engine := newEngine(t)
	assertGolden(t, "image", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("image.tmpl", imageView{Category: "link", PNG: []byte{1, 2, 3}}, w)
	})
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"theme": "ocean"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	assertGolden(t, "use-global", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	assertGolden(t, "use-filter", func(w io.Writer) (string, error) {
		return engine.Render("use-filter", map[string]any{"payload": "text:hello"}, w)
	})
}

func TestGoTemplateEngine_RenderInlineSource(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("unexpected output %q", got)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func assertGolden(t *testing.T, name string, render func(io.Writer) (string, error)) {
	t.Helper()

	result, written := testsupport.CaptureTemplateOutput(t, render)
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", name+".golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_BaseDirAndGlobalData(t *testing.T) {
	dir, err := filepath.Abs(filepath.Join("testdata", "templates"))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(dir),
		gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"theme": "ocean"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	assertGolden(t, "use-global", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
}

func TestGoTemplateEngine_IntegersStayIntegers(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ n }}|{{ nested.rows }}|{{ list.1 }}", map[string]any{
		"n":      10,
		"nested": struct{ Rows int `json:"rows"` }{Rows: 4},
		"list":   []int{1, 40},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "10|4|40" {
		t.Fatalf("unexpected output %q", got)
	}
}
