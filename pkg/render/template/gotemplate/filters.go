package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("datauri") {
		_ = pongo2.RegisterFilter("datauri", filterDataURI)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterDataURI turns a base64 string into a data URI; the parameter is the
// media type and defaults to image/png.
func filterDataURI(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	encoded := strings.TrimSpace(in.String())
	if encoded == "" {
		return pongo2.AsValue(""), nil
	}
	mediaType := "image/png"
	if param != nil && strings.TrimSpace(param.String()) != "" {
		mediaType = strings.TrimSpace(param.String())
	}
	return pongo2.AsSafeValue("data:" + mediaType + ";base64," + encoded), nil
}
