// Package categories defines the closed set of QR payload categories. Each
// category is served by a Handler that declares its fields, validates raw
// user input and formats a payload string. Handlers are looked up through a
// Registry; Default returns one populated with every built-in category.
package categories
