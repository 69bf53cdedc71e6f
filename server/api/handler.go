package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/joborder/config"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"
	"github.com/adrianliechti/joborder/pkg/pipeline"
	"github.com/adrianliechti/joborder/pkg/session"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config

	pipeline *pipeline.Pipeline
}

func New(cfg *config.Config) (*Handler, error) {
	p, err := cfg.Pipeline("")

	if err != nil {
		return nil, err
	}

	h := &Handler{
		Config: cfg,

		pipeline: p,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/health", h.handleHealth)

	r.Post("/upload", h.handleUpload)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.handleSession)
		r.Post("/validate", h.handleValidate)
		r.Get("/download", h.handleDownload)
		r.Get("/preview", h.handlePreview)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, HealthResponse{
		Status:    "healthy",
		Templates: h.pipeline.Variants(),
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func errorCode(err error) int {
	var renderErr *overlay.RenderError

	switch {
	case errors.Is(err, pipeline.ErrInvalidUpload):
		return http.StatusBadRequest

	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, layout.ErrLayoutNotFound):
		return http.StatusBadRequest

	case errors.As(err, &renderErr):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
