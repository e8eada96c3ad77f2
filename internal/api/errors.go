package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-qrgen/pkg/categories"
	"github.com/goliatone/go-qrgen/pkg/encoder"
	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/palette"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// statusFor maps pipeline errors onto HTTP responses.
func statusFor(err error) (int, errorBody) {
	var verr *categories.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, errorBody{Error: verr.Message, Field: verr.Field, Kind: string(verr.Kind)}
	case errors.Is(err, orchestrator.ErrNothingToEncode):
		return http.StatusUnprocessableEntity, errorBody{Error: orchestrator.GenericFailureMessage}
	case errors.Is(err, encoder.ErrEncodingFailure), errors.Is(err, encoder.ErrInvalidConfig):
		return http.StatusUnprocessableEntity, errorBody{Error: err.Error()}
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: err.Error()}
	case errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, palette.ErrUnknownTheme),
		errors.Is(err, palette.ErrUnknownVariant):
		return http.StatusBadRequest, errorBody{Error: err.Error()}
	}
	return http.StatusInternalServerError, errorBody{Error: "internal error"}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
