package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/html"
	"github.com/goliatone/go-qrgen/pkg/session"
	"github.com/goliatone/go-qrgen/pkg/share"
)

// Form actions posted by the page.
const (
	actionSelect   = "select"
	actionPreview  = "preview"
	actionGenerate = "generate"
	actionReuse    = "reuse"
)

// pageState is what one page render shows besides the session.
type pageState struct {
	errors     map[string][]string
	formErrors []string
	preview    string
	result     *render.Generated
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := model.ParseCategory(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.session.SelectCategory(category); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	s.renderPage(w, r, pageState{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var state pageState
	action := r.PostForm.Get("action")

	if action == actionReuse {
		if _, err := s.session.Reuse(r.PostForm.Get("id")); err != nil {
			state.formErrors = render.MergeFormErrors(state.formErrors, err.Error())
		}
		s.renderPage(w, r, state)
		return
	}

	if raw := r.PostForm.Get("category"); raw != "" {
		category, err := model.ParseCategory(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		changed := category != s.session.Category()
		if err := s.session.SelectCategory(category); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if changed {
			// Inputs posted for the previous category are dropped.
			s.applyConfig(r, &state)
			s.renderPage(w, r, state)
			return
		}
	}

	form, err := s.pipeline.Form(s.session.Category())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.session.SetFields(postedFields(r, form))
	s.applyConfig(r, &state)

	switch action {
	case actionPreview:
		state.preview = s.pipeline.Preview(s.session.Category(), s.session.Fields())
	case actionGenerate:
		if len(state.formErrors) > 0 {
			break
		}
		s.generate(r, &state)
	}
	s.renderPage(w, r, state)
}

func (s *Server) generate(r *http.Request, state *pageState) {
	result, entry, err := s.session.Generate(r.Context(), s.pipeline)
	if err != nil {
		form, formErr := s.pipeline.Form(s.session.Category())
		if formErr != nil {
			state.formErrors = render.MergeFormErrors(state.formErrors, err.Error())
			return
		}
		mapping := render.MapError(form, err)
		state.errors = mapping.Fields
		state.formErrors = render.MergeFormErrors(state.formErrors, mapping.Form...)
		return
	}

	links := share.Links(result.Payload)
	shareLinks := make([]render.ShareLink, 0, len(links))
	for _, link := range links {
		shareLinks = append(shareLinks, render.ShareLink{Label: link.Label, URL: link.URL})
	}
	state.result = &render.Generated{
		ID:          entry.ID,
		Category:    result.Category,
		Payload:     result.Payload,
		PNG:         result.PNG,
		SVG:         result.SVG,
		Version:     result.Version,
		PNGFilename: result.PNGFilename,
		SVGFilename: result.SVGFilename,
		ShareLinks:  shareLinks,
	}
}

// applyConfig reads the sidebar controls. A selected palette overrides the
// colour pickers.
func (s *Server) applyConfig(r *http.Request, state *pageState) {
	cfg := s.session.Config()
	posted := r.PostForm

	setInt := func(name string, target *int) {
		raw := strings.TrimSpace(posted.Get(name))
		if raw == "" {
			return
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			state.formErrors = render.MergeFormErrors(state.formErrors, name+": "+err.Error())
			return
		}
		*target = value
	}
	setInt("version", &cfg.Version)
	setInt("box_size", &cfg.BoxSize)
	setInt("border", &cfg.Border)

	if raw := posted.Get("error_correction"); raw != "" {
		level, err := model.ParseErrorCorrection(raw)
		if err != nil {
			state.formErrors = render.MergeFormErrors(state.formErrors, err.Error())
		} else {
			cfg.ErrorCorrection = level
		}
	}
	if raw := strings.TrimSpace(posted.Get("foreground")); raw != "" {
		cfg.Foreground = raw
	}
	if raw := strings.TrimSpace(posted.Get("background")); raw != "" {
		cfg.Background = raw
	}
	if theme := strings.TrimSpace(posted.Get("palette")); theme != "" {
		applied, err := s.palettes.Apply(cfg, theme, posted.Get("variant"))
		if err != nil {
			state.formErrors = render.MergeFormErrors(state.formErrors, err.Error())
		} else {
			cfg = applied
		}
	}

	if err := s.session.SetConfig(cfg); err != nil {
		state.formErrors = render.MergeFormErrors(state.formErrors, err.Error())
	}
}

// postedFields reads the form inputs in form order. Unknown inputs are
// ignored.
func postedFields(r *http.Request, form model.Form) model.FieldMap {
	var fields model.FieldMap
	for _, field := range form.Fields {
		values, ok := r.PostForm[html.FieldInputPrefix+field.Key]
		if !ok || len(values) == 0 {
			continue
		}
		fields.Set(field.Key, values[0])
	}
	return fields
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, state pageState) {
	category := s.session.Category()
	values := s.session.Fields()

	options := render.RenderOptions{
		Values:     values,
		Errors:     state.errors,
		FormErrors: state.formErrors,
		Preview:    state.preview,
		Config:     s.session.Config(),
		Categories: render.CategoryOptions(s.pipeline.Categories(), category),
		Palettes:   s.palettes.Names(),
		Result:     state.result,
		History:    historyItems(s.session),
	}

	form, err := s.pipeline.Form(category)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.page.Render(r.Context(), form, options)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", s.page.ContentType())
	_, _ = w.Write(out)
}

func historyItems(sess *session.Session) []render.HistoryItem {
	entries := sess.Sidebar()
	items := make([]render.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, render.HistoryItem{
			ID:        entry.ID,
			Category:  entry.Category,
			Payload:   entry.Payload,
			ImageURL:  imageURL(entry.ID),
			CreatedAt: entry.CreatedAt,
		})
	}
	return items
}
