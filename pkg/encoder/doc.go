// Package encoder turns a payload string into a QR symbol rendered as PNG and
// SVG. The matrix itself comes from github.com/skip2/go-qrcode; quiet zone,
// module size and colours are applied here from model.RenderConfig.
package encoder
