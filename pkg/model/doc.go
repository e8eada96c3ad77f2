// Package model defines the value types shared by the payload pipeline and
// its front-ends: the closed Category enumeration, the ordered FieldMap built
// by a form layer, the RenderConfig handed to the matrix encoder, and the
// Form/Field presentation model consumed by renderers.
//
// Categories are fixed at compile time. Every category exposes a display
// name matching the labels shown to users ("WiFi Password", "2D Barcode")
// and a stable slug used in URLs, config files and CLI flags ("wifi",
// "barcode"). ParseCategory accepts either form.
package model
