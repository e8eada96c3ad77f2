// Package api serves the HTML form and the JSON API over one shared session.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/mux"

	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/palette"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/session"
)

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSession replaces the process-wide session.
func WithSession(sess *session.Session) Option {
	return func(s *Server) {
		s.session = sess
	}
}

// WithPalettes sets the colour themes offered by the form and the API.
func WithPalettes(catalog *palette.Catalog) Option {
	return func(s *Server) {
		s.palettes = catalog
	}
}

// WithPageRenderer sets the renderer for the HTML form. It defaults to the
// pipeline's default renderer.
func WithPageRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		s.page = renderer
	}
}

// WithOpenAPI overrides the document used for request validation.
func WithOpenAPI(doc *openapi3.T) Option {
	return func(s *Server) {
		s.doc = doc
	}
}

// Server wires the pipeline, the session and the renderers to HTTP routes.
type Server struct {
	pipeline  *orchestrator.Pipeline
	session   *session.Session
	palettes  *palette.Catalog
	page      render.Renderer
	logger    *slog.Logger
	doc       *openapi3.T
	validator *requestValidator
}

// New builds a Server around pipeline.
func New(ctx context.Context, pipeline *orchestrator.Pipeline, options ...Option) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("api: pipeline is required")
	}
	s := &Server{pipeline: pipeline}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.session == nil {
		s.session = session.New()
	}
	if s.palettes == nil {
		s.palettes = palette.Builtin()
	}
	if s.page == nil {
		renderer, err := pipeline.Renderer("")
		if err != nil {
			return nil, fmt.Errorf("api: page renderer: %w", err)
		}
		s.page = renderer
	}
	if s.doc == nil {
		doc, err := LoadSpec(ctx)
		if err != nil {
			return nil, err
		}
		s.doc = doc
	}
	validator, err := newRequestValidator(s.doc)
	if err != nil {
		return nil, err
	}
	s.validator = validator
	return s, nil
}

// Handler returns the routed, validated and logged HTTP handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests, s.validator.middleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", s.handleSpec).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	apiRouter.HandleFunc("/preview", s.handlePreview).Methods(http.MethodPost)
	apiRouter.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	apiRouter.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	apiRouter.HandleFunc("/history/{id}/image.png", s.handleHistoryImage).Methods(http.MethodGet)
	apiRouter.HandleFunc("/history/{id}/reuse", s.handleReuse).Methods(http.MethodPost)

	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleSubmit).Methods(http.MethodPost)
	return r
}

// Session exposes the shared session.
func (s *Server) Session() *session.Session {
	return s.session
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
