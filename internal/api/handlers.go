package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/share"
)

type categoryForm struct {
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Fields   []model.Field `json:"fields"`
}

type previewRequest struct {
	Category model.Category `json:"category"`
	Fields   model.FieldMap `json:"fields"`
}

type previewResponse struct {
	Payload string `json:"payload"`
}

type paletteRequest struct {
	Theme   string `json:"theme"`
	Variant string `json:"variant"`
}

type generateRequest struct {
	Category model.Category      `json:"category"`
	Fields   model.FieldMap      `json:"fields"`
	Config   *model.RenderConfig `json:"config"`
	Palette  *paletteRequest     `json:"palette"`
}

type generateResponse struct {
	ID          string         `json:"id"`
	Category    model.Category `json:"category"`
	Payload     string         `json:"payload"`
	Version     int            `json:"version"`
	Modules     int            `json:"modules"`
	PNG         []byte         `json:"png"`
	SVG         string         `json:"svg"`
	PNGFilename string         `json:"png_filename"`
	SVGFilename string         `json:"svg_filename"`
	ImageURL    string         `json:"image_url"`
	ShareLinks  []share.Link   `json:"share_links"`
	CreatedAt   time.Time      `json:"created_at"`
}

type historyEntry struct {
	ID        string         `json:"id"`
	Category  model.Category `json:"category"`
	Fields    model.FieldMap `json:"fields"`
	Payload   string         `json:"payload"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
}

func imageURL(id string) string {
	return "/api/history/" + id + "/image.png"
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(specYAML)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	cats := s.pipeline.Categories()
	out := make([]categoryForm, 0, len(cats))
	for _, category := range cats {
		form, err := s.pipeline.Form(category)
		if err != nil {
			s.fail(w, err)
			return
		}
		out = append(out, categoryForm{
			Slug:     category.Slug(),
			Name:     category.String(),
			Title:    form.Title,
			Subtitle: form.Subtitle,
			Fields:   form.Fields,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{Payload: s.pipeline.Preview(req.Category, req.Fields)})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cfg := s.session.Config()
	if req.Config != nil {
		cfg = *req.Config
	}
	if req.Palette != nil && req.Palette.Theme != "" {
		applied, err := s.palettes.Apply(cfg, req.Palette.Theme, req.Palette.Variant)
		if err != nil {
			s.fail(w, err)
			return
		}
		cfg = applied
	}

	result, err := s.pipeline.Generate(r.Context(), orchestrator.Request{
		Category: req.Category,
		Fields:   req.Fields,
		Config:   cfg,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	entry := s.session.History().Add(history.Entry{
		Category:  result.Category,
		Fields:    result.Fields,
		Payload:   result.Payload,
		PNG:       result.PNG,
		CreatedAt: result.CreatedAt,
	})
	writeJSON(w, http.StatusOK, generateResponse{
		ID:          entry.ID,
		Category:    result.Category,
		Payload:     result.Payload,
		Version:     result.Version,
		Modules:     result.Modules,
		PNG:         result.PNG,
		SVG:         string(result.SVG),
		PNGFilename: result.PNGFilename,
		SVGFilename: result.SVGFilename,
		ImageURL:    imageURL(entry.ID),
		ShareLinks:  share.Links(result.Payload),
		CreatedAt:   result.CreatedAt,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	entries := s.session.History().Entries()
	out := make([]historyEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntry{
			ID:        entry.ID,
			Category:  entry.Category,
			Fields:    entry.Fields,
			Payload:   entry.Payload,
			ImageURL:  imageURL(entry.ID),
			CreatedAt: entry.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHistoryImage(w http.ResponseWriter, r *http.Request) {
	entry, err := s.session.History().Get(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, err)
		return
	}
	png, _ := share.Filenames(entry.Category)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+png+`"`)
	_, _ = w.Write(entry.PNG)
}

func (s *Server) handleReuse(w http.ResponseWriter, r *http.Request) {
	entry, err := s.session.Reuse(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, previewRequest{Category: entry.Category, Fields: entry.Fields})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("error", err.Error()))
	}
	writeJSON(w, status, body)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
