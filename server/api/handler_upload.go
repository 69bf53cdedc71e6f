package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/pipeline"

	"github.com/google/uuid"
)

const notFound = "Not found"

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, pipeline.MaxUploadSize+1<<20)

	file, err := readFile(r)

	if err != nil {
		code := http.StatusBadRequest

		if errors.Is(err, errUploadTooLarge) {
			code = http.StatusRequestEntityTooLarge
		}

		writeError(w, code, err)
		return
	}

	result, err := h.pipeline.Process(r.Context(), *file)

	if err != nil {
		slog.ErrorContext(r.Context(), "upload processing failed", "file", file.Name, "error", err)
		writeError(w, errorCode(err), err)
		return
	}

	s := &Session{
		ID: uuid.NewString(),

		Filename:     file.Name,
		DocumentType: result.DocumentType,

		Status:  StatusPending,
		Created: time.Now().UTC(),

		Specification: result.Specification,
	}

	if err := h.saveSession(r, s); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	elapsed := time.Since(start)

	slog.InfoContext(r.Context(), "upload processed", "session", s.ID, "type", s.DocumentType, "duration", elapsed)

	writeJson(w, UploadResponse{
		SessionID:    s.ID,
		DocumentType: s.DocumentType,

		ProcessingTime: fmt.Sprintf("%.2fs", elapsed.Seconds()),

		Preview: preview(result.Specification),
	})
}

func preview(spec *jobspec.Specification) Preview {
	value := func(s string) string {
		if s == "" {
			return notFound
		}

		return s
	}

	return Preview{
		InvoiceNumber: value(spec.InvoiceNumber),
		CustomerName:  value(spec.CustomerName),
		DoorSize:      value(spec.DoorSize),
		DoorThickness: value(spec.DoorThickness),
	}
}
