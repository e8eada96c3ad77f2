// Package uischema loads the presentation overlay for category forms: titles,
// labels, placeholders, help text and layout hints. Handlers only declare
// field keys and kinds; a Decorator built from a Store fills in the rest.
package uischema
