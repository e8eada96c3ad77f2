package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/model"
)

// ErrorMapping splits an error into field-level and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapError attaches a *categories.ValidationError to its field when the form
// renders that field. Anything else becomes a form-level message so it is not
// lost.
func MapError(form model.Form, err error) ErrorMapping {
	var mapping ErrorMapping
	if err == nil {
		return mapping
	}

	var verr *categories.ValidationError
	if errors.As(err, &verr) {
		if _, ok := form.Field(verr.Field); ok {
			mapping.Fields = map[string][]string{verr.Field: {verr.Message}}
			return mapping
		}
		mapping.Form = normalizeMessages([]string{verr.Message})
		return mapping
	}

	mapping.Form = normalizeMessages([]string{err.Error()})
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
