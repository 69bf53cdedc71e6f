package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

var errUploadTooLarge = errors.New("upload too large")

func readFile(r *http.Request) (*extractor.File, error) {
	file, header, err := r.FormFile("file")

	if err != nil {
		var maxErr *http.MaxBytesError

		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errUploadTooLarge, pipeline.MaxUploadSize)
		}

		return nil, errors.New("no file uploaded")
	}

	defer file.Close()

	if header.Filename == "" {
		return nil, errors.New("no file selected")
	}

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &extractor.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// readOverrides returns the first value of every submitted form field.
func readOverrides(r *http.Request) (map[string]string, error) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	overrides := make(map[string]string)

	for key, values := range r.PostForm {
		if len(values) > 0 {
			overrides[key] = values[0]
		}
	}

	return overrides, nil
}

func (h *Handler) loadSession(r *http.Request) (*Session, error) {
	id := chi.URLParam(r, "id")

	data, err := h.Sessions.Get(r.Context(), id)

	if err != nil {
		return nil, err
	}

	var s Session

	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (h *Handler) saveSession(r *http.Request, s *Session) error {
	data, err := json.Marshal(s)

	if err != nil {
		return err
	}

	return h.Sessions.Put(r.Context(), s.ID, data, h.SessionTTL)
}
