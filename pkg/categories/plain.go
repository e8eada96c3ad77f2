package categories

import (
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Field keys read by the single-value handlers.
const (
	FieldNumber   = "number"
	FieldText     = "text"
	FieldLocation = "manual_location"
	FieldBarcode  = "barcode_text"
)

// NumberHandler encodes a free-form number as "number:<value>".
type NumberHandler struct{}

func (NumberHandler) Category() model.Category { return model.Number }

func (NumberHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldNumber, Kind: model.FieldKindText}}
}

func (NumberHandler) Validate(model.FieldMap) error { return nil }

func (NumberHandler) Format(fields model.FieldMap) string {
	return prefixed("number:", fields.Get(FieldNumber))
}

// TextHandler encodes arbitrary text as "text:<value>".
type TextHandler struct{}

func (TextHandler) Category() model.Category { return model.Text }

func (TextHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldText, Kind: model.FieldKindTextArea}}
}

func (TextHandler) Validate(model.FieldMap) error { return nil }

func (TextHandler) Format(fields model.FieldMap) string {
	return prefixed("text:", fields.Get(FieldText))
}

// LocationHandler encodes a free-text place as "location:<value>".
type LocationHandler struct{}

func (LocationHandler) Category() model.Category { return model.Location }

func (LocationHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldLocation, Kind: model.FieldKindText}}
}

func (LocationHandler) Validate(model.FieldMap) error { return nil }

func (LocationHandler) Format(fields model.FieldMap) string {
	return prefixed("location:", fields.Get(FieldLocation))
}

// BarcodeHandler encodes its text unchanged.
type BarcodeHandler struct{}

func (BarcodeHandler) Category() model.Category { return model.Barcode2D }

func (BarcodeHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldBarcode, Kind: model.FieldKindTextArea}}
}

func (BarcodeHandler) Validate(model.FieldMap) error { return nil }

func (BarcodeHandler) Format(fields model.FieldMap) string {
	return prefixed("", fields.Get(FieldBarcode))
}

// prefixed trims value and returns prefix+value, or "" when value is blank.
func prefixed(prefix, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return prefix + value
}
