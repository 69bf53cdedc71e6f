package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/adrianliechti/joborder/pkg/aggregator"
	"github.com/adrianliechti/joborder/pkg/layout"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	writeJson(w, s.Specification)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	overrides, err := readOverrides(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	template := overrides["template"]
	delete(overrides, "template")

	if template == "" {
		template = layout.VariantAuto
	}

	output, instructions, err := h.pipeline.Generate(r.Context(), s.Specification, overrides, template)

	if err != nil {
		slog.ErrorContext(r.Context(), "job order generation failed", "session", s.ID, "error", err)
		writeError(w, errorCode(err), err)
		return
	}

	s.Status = StatusCompleted
	s.Template = template

	s.Validated = aggregator.Merge(s.Specification, overrides)

	s.Output = &Output{
		Name:        output.Name,
		ContentType: output.ContentType,

		Content: output.Content,
	}

	if err := h.saveSession(r, s); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	base := "/sessions/" + s.ID

	writeJson(w, ValidateResponse{
		SessionID: s.ID,

		Name:        output.Name,
		ContentType: output.ContentType,

		Instructions: len(instructions),

		DownloadURL: base + "/download",
		PreviewURL:  base + "/preview",
	})
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	if s.Output == nil {
		writeError(w, http.StatusNotFound, errors.New("job order not generated yet"))
		return
	}

	id := chi.URLParam(r, "id")

	if len(id) > 8 {
		id = id[:8]
	}

	name := fmt.Sprintf("joborder_%s%s", id, path.Ext(s.Output.Name))

	w.Header().Set("Content-Type", s.Output.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	w.Write(s.Output.Content)
}
