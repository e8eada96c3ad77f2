package categories

import (
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
)

const FieldLink = "link"

// LinkHandler encodes a web address as-is.
type LinkHandler struct{}

func (LinkHandler) Category() model.Category { return model.Link }

func (LinkHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{{Key: FieldLink, Kind: model.FieldKindText, Required: true}}
}

func (LinkHandler) Validate(fields model.FieldMap) error {
	url := fields.Get(FieldLink)
	if url == "" {
		return missing(model.Link, FieldLink, "URL is required!")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return malformed(model.Link, FieldLink, "URL should start with http:// or https://")
	}
	return nil
}

func (LinkHandler) Format(fields model.FieldMap) string {
	return strings.TrimSpace(fields.Get(FieldLink))
}
