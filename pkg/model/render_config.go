package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Bounds accepted by RenderConfig.Validate.
const (
	MinVersion = 1
	MaxVersion = 40
	MinBoxSize = 5
	MaxBoxSize = 20
	MinBorder  = 1
	MaxBorder  = 10
)

// ErrorCorrection is the ordinal error-correction strength.
type ErrorCorrection int

const (
	ECLow ErrorCorrection = iota + 1
	ECMedium
	ECHigh
	ECHighest
)

var errorCorrectionNames = map[ErrorCorrection]string{
	ECLow:     "Low",
	ECMedium:  "Medium",
	ECHigh:    "High",
	ECHighest: "Highest",
}

// ErrorCorrectionLevels lists the levels from weakest to strongest.
func ErrorCorrectionLevels() []ErrorCorrection {
	return []ErrorCorrection{ECLow, ECMedium, ECHigh, ECHighest}
}

func (e ErrorCorrection) String() string {
	if name, ok := errorCorrectionNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCorrection(%d)", int(e))
}

// ParseErrorCorrection accepts the level names (any case) and the single
// letter QR notation L, M, Q, H.
func ParseErrorCorrection(raw string) (ErrorCorrection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "l":
		return ECLow, nil
	case "medium", "m":
		return ECMedium, nil
	case "high", "q":
		return ECHigh, nil
	case "highest", "h":
		return ECHighest, nil
	}
	return 0, fmt.Errorf("model: unknown error correction level %q", raw)
}

// MarshalText encodes the level name.
func (e ErrorCorrection) MarshalText() ([]byte, error) {
	if _, ok := errorCorrectionNames[e]; !ok {
		return nil, fmt.Errorf("model: invalid error correction level %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText decodes a level name.
func (e *ErrorCorrection) UnmarshalText(text []byte) error {
	parsed, err := ParseErrorCorrection(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// RenderConfig holds the encoding parameters for one generation call.
type RenderConfig struct {
	Version         int             `json:"version" yaml:"version"`
	BoxSize         int             `json:"box_size" yaml:"box_size"`
	Border          int             `json:"border" yaml:"border"`
	ErrorCorrection ErrorCorrection `json:"error_correction" yaml:"error_correction"`
	Foreground      string          `json:"foreground" yaml:"foreground"`
	Background      string          `json:"background" yaml:"background"`
}

// DefaultRenderConfig mirrors the initial sidebar values of the form.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Version:         1,
		BoxSize:         10,
		Border:          4,
		ErrorCorrection: ECMedium,
		Foreground:      "#000000",
		Background:      "#FFFFFF",
	}
}

// WithDefaults fills zero-valued fields from DefaultRenderConfig.
func (c RenderConfig) WithDefaults() RenderConfig {
	def := DefaultRenderConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.BoxSize == 0 {
		c.BoxSize = def.BoxSize
	}
	if c.Border == 0 {
		c.Border = def.Border
	}
	if c.ErrorCorrection == 0 {
		c.ErrorCorrection = def.ErrorCorrection
	}
	if strings.TrimSpace(c.Foreground) == "" {
		c.Foreground = def.Foreground
	}
	if strings.TrimSpace(c.Background) == "" {
		c.Background = def.Background
	}
	return c
}

// Validate reports every out-of-range or malformed parameter.
func (c RenderConfig) Validate() error {
	var errs []error
	if c.Version < MinVersion || c.Version > MaxVersion {
		errs = append(errs, fmt.Errorf("version must be between %d and %d, got %d", MinVersion, MaxVersion, c.Version))
	}
	if c.BoxSize < MinBoxSize || c.BoxSize > MaxBoxSize {
		errs = append(errs, fmt.Errorf("box size must be between %d and %d, got %d", MinBoxSize, MaxBoxSize, c.BoxSize))
	}
	if c.Border < MinBorder || c.Border > MaxBorder {
		errs = append(errs, fmt.Errorf("border must be between %d and %d, got %d", MinBorder, MaxBorder, c.Border))
	}
	if _, ok := errorCorrectionNames[c.ErrorCorrection]; !ok {
		errs = append(errs, fmt.Errorf("invalid error correction level %d", int(c.ErrorCorrection)))
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		errs = append(errs, fmt.Errorf("foreground: %w", err))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	return errors.Join(errs...)
}

// Key returns a deterministic identity for the configuration. Colours are
// normalised so "#fff" and "#FFFFFF" share a key.
func (c RenderConfig) Key() string {
	return fmt.Sprintf("v%d|box%d|border%d|ec%s|fg%s|bg%s",
		c.Version, c.BoxSize, c.Border, c.ErrorCorrection,
		normalizeHex(c.Foreground), normalizeHex(c.Background))
}

// ParseColor decodes "#RRGGBB" or "#RGB" (leading '#' optional) into an
// opaque colour.
func ParseColor(raw string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("model: invalid hex colour %q", raw)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("model: invalid hex colour %q", raw)
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}

// HexColor formats a colour as "#RRGGBB".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func normalizeHex(raw string) string {
	parsed, err := ParseColor(raw)
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(raw))
	}
	return HexColor(parsed)
}
