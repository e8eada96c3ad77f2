package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/schema/*
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled UI schema documents. Pass it to LoadFS to use
// the default presentation.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui/schema")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// LoadEmbedded parses the bundled documents.
func LoadEmbedded() (*Store, error) {
	return LoadFS(EmbeddedFS())
}
