package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrgen/pkg/model"
)

func TestFilenames(t *testing.T) {
	cases := map[model.Category][2]string{
		model.WiFiPassword: {"qr_code_wifi_password.png", "qr_code_wifi_password.svg"},
		model.Barcode2D:    {"qr_code_2d_barcode.png", "qr_code_2d_barcode.svg"},
		model.VCard:        {"qr_code_vcard.png", "qr_code_vcard.svg"},
	}
	for category, want := range cases {
		png, svg := Filenames(category)
		if png != want[0] || svg != want[1] {
			t.Fatalf("%s: got %q %q, want %v", category, png, svg, want)
		}
	}
}

func TestLinks(t *testing.T) {
	links := Links("https://example.com/?a=1&b=2")

	labels := make([]string, 0, len(links))
	for _, link := range links {
		labels = append(labels, link.Label)
	}
	if diff := cmp.Diff([]string{"Share via Email", "Share on Twitter", "Share on WhatsApp"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	email := links[0].URL
	if !strings.HasPrefix(email, "mailto:?subject=QR%20Code&body=Check%20out") {
		t.Fatalf("unexpected email link %q", email)
	}
	if strings.Contains(email, "+") || strings.Contains(email, " ") {
		t.Fatalf("email link not fully escaped: %q", email)
	}

	for _, link := range links[1:] {
		parsed, err := url.Parse(link.URL)
		if err != nil {
			t.Fatalf("parse %q: %v", link.URL, err)
		}
		if got := parsed.Query().Get("text"); got != Message("https://example.com/?a=1&b=2") {
			t.Fatalf("%s text = %q", link.Label, got)
		}
	}
}
