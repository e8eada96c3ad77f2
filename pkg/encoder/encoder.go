package encoder

import (
	"context"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/goliatone/go-qrgen/pkg/model"
)

var (
	// ErrEmptyPayload is returned when asked to encode "".
	ErrEmptyPayload = errors.New("encoder: empty payload")
	// ErrInvalidConfig wraps RenderConfig validation failures.
	ErrInvalidConfig = errors.New("encoder: invalid render config")
	// ErrEncodingFailure is returned when the payload does not fit any
	// version or the matrix library rejects it.
	ErrEncodingFailure = errors.New("encoder: encoding failed")
)

// Encoder produces a rendered QR symbol.
type Encoder interface {
	Encode(ctx context.Context, payload string, cfg model.RenderConfig) (Image, error)
}

// Image is a rendered QR symbol.
type Image struct {
	PNG []byte
	SVG []byte
	// Version is the symbol version actually used, which may exceed the
	// requested minimum.
	Version int
	// Modules is the matrix width without the quiet zone.
	Modules int
}

// QR encodes payloads with go-qrcode. The zero value is ready to use.
type QR struct{}

// NewQR returns the go-qrcode backed encoder.
func NewQR() *QR {
	return &QR{}
}

var recoveryLevels = map[model.ErrorCorrection]qrcode.RecoveryLevel{
	model.ECLow:     qrcode.Low,
	model.ECMedium:  qrcode.Medium,
	model.ECHigh:    qrcode.High,
	model.ECHighest: qrcode.Highest,
}

// Encode treats cfg.Version as a minimum: the smallest version that fits the
// payload is used when it is larger than the requested one.
func (QR) Encode(ctx context.Context, payload string, cfg model.RenderConfig) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	if payload == "" {
		return Image{}, ErrEmptyPayload
	}
	if err := cfg.Validate(); err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	matrix, version, err := buildMatrix(payload, cfg)
	if err != nil {
		return Image{}, err
	}

	pal, err := newPalette(cfg)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	png, err := renderPNG(matrix, cfg, pal)
	if err != nil {
		return Image{}, fmt.Errorf("%w: png: %v", ErrEncodingFailure, err)
	}

	return Image{
		PNG:     png,
		SVG:     renderSVG(matrix, cfg, pal),
		Version: version,
		Modules: len(matrix),
	}, nil
}

func buildMatrix(payload string, cfg model.RenderConfig) ([][]bool, int, error) {
	level := recoveryLevels[cfg.ErrorCorrection]

	code, err := qrcode.New(payload, level)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	if code.VersionNumber < cfg.Version {
		code, err = qrcode.NewWithForcedVersion(payload, cfg.Version, level)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: version %d: %v", ErrEncodingFailure, cfg.Version, err)
		}
	}

	code.DisableBorder = true
	// Bitmap pads the data stream in place; call it once per code.
	return code.Bitmap(), code.VersionNumber, nil
}
