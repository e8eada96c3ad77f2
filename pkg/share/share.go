// Package share builds download file names and outbound share links for a
// generated code.
package share

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// MessagePrefix starts every share message; the payload follows it.
const MessagePrefix = "Check out this QR Code I generated! It links to: "

// Link is a labelled share target.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Filenames returns the PNG and SVG download names for category, e.g.
// qr_code_wifi_password.png.
func Filenames(category model.Category) (png, svg string) {
	base := "qr_code_" + strings.ReplaceAll(strings.ToLower(category.String()), " ", "_")
	return base + ".png", base + ".svg"
}

// Message returns the share text for payload.
func Message(payload string) string {
	return MessagePrefix + payload
}

// Links returns the email, Twitter and WhatsApp share links for payload, in
// that order. Values are percent-encoded.
func Links(payload string) []Link {
	text := escape(Message(payload))
	return []Link{
		{Label: "Share via Email", URL: "mailto:?subject=" + escape("QR Code") + "&body=" + text},
		{Label: "Share on Twitter", URL: "https://twitter.com/intent/tweet?text=" + text},
		{Label: "Share on WhatsApp", URL: "https://wa.me/?text=" + text},
	}
}

// escape percent-encodes s for a query value, using %20 for spaces so the
// result also works inside mailto URIs.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
