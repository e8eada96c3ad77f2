package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

type palette struct {
	fg, bg color.RGBA
}

func newPalette(cfg model.RenderConfig) (palette, error) {
	fg, err := model.ParseColor(cfg.Foreground)
	if err != nil {
		return palette{}, err
	}
	bg, err := model.ParseColor(cfg.Background)
	if err != nil {
		return palette{}, err
	}
	return palette{fg: fg, bg: bg}, nil
}

// renderPNG draws each dark module as a BoxSize square offset by Border
// modules of background.
func renderPNG(matrix [][]bool, cfg model.RenderConfig, pal palette) ([]byte, error) {
	size := (len(matrix) + 2*cfg.Border) * cfg.BoxSize
	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{pal.bg, pal.fg})

	offset := cfg.Border * cfg.BoxSize
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := offset + x*cfg.BoxSize
			y0 := offset + y*cfg.BoxSize
			for py := y0; py < y0+cfg.BoxSize; py++ {
				for px := x0; px < x0+cfg.BoxSize; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderSVG emits a viewBox in module units with one path of unit squares,
// scaled to BoxSize pixels per module.
func renderSVG(matrix [][]bool, cfg model.RenderConfig, pal palette) []byte {
	units := len(matrix) + 2*cfg.Border
	pixels := units * cfg.BoxSize

	var path strings.Builder
	for y, row := range matrix {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&path, "M%d %dh1v1h-1z", x+cfg.Border, y+cfg.Border)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		pixels, pixels, units, units)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`, units, units, model.HexColor(pal.bg))
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, `<path fill="%s" d="%s"/>`, model.HexColor(pal.fg), path.String())
	buf.WriteString("\n</svg>\n")
	return buf.Bytes()
}
