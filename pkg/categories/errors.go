package categories

import (
	"errors"

	"github.com/goliatone/go-qrgen/pkg/model"
)

var (
	// ErrInputMissing marks a required field that was left empty.
	ErrInputMissing = errors.New("categories: input missing")
	// ErrInputMalformed marks a field whose value does not match the
	// expected shape.
	ErrInputMalformed = errors.New("categories: input malformed")
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	KindMissing   ErrorKind = "missing"
	KindMalformed ErrorKind = "malformed"
)

// ValidationError reports the first rule that failed for a category. The
// message is user facing and is returned verbatim by Error.
type ValidationError struct {
	Category model.Category
	Field    string
	Kind     ErrorKind
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel matching Kind so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindMissing:
		return ErrInputMissing
	case KindMalformed:
		return ErrInputMalformed
	}
	return nil
}

func missing(category model.Category, field, message string) error {
	return &ValidationError{Category: category, Field: field, Kind: KindMissing, Message: message}
}

func malformed(category model.Category, field, message string) error {
	return &ValidationError{Category: category, Field: field, Kind: KindMalformed, Message: message}
}
