package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-qrgen/pkg/orchestrator"
)

func TestFieldFlags(t *testing.T) {
	var f fieldFlags
	for _, raw := range []string{"ssid=home", "password=a=b", "ssid=office"} {
		if err := f.Set(raw); err != nil {
			t.Fatalf("set %q: %v", raw, err)
		}
	}
	if got := f.String(); got != "ssid=office,password=a=b" {
		t.Fatalf("unexpected flags %q", got)
	}
	if err := f.Set("novalue"); err == nil {
		t.Fatalf("expected error for missing '='")
	}
	if err := f.Set("=x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestWriteResult(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	result := orchestrator.Result{
		PNG:         []byte("png"),
		SVG:         []byte("<svg/>"),
		PNGFilename: "qr_code_text.png",
		SVGFilename: "qr_code_text.svg",
	}
	if err := writeResult(dir, result); err != nil {
		t.Fatalf("write result: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "qr_code_text.svg"))
	if err != nil || string(data) != "<svg/>" {
		t.Fatalf("unexpected svg file %q: %v", data, err)
	}
}
