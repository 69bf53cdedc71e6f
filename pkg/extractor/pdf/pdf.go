package pdf

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"

	"github.com/ledongthuc/pdf"
)

var _ extractor.Provider = &Extractor{}

// Extractor reads the embedded text layer of digital PDFs. Scanned documents
// have no text layer and are reported as unsupported so a chain can move on.
type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if !isPDF(file) {
		return nil, extractor.ErrUnsupported
	}

	r, err := pdf.NewReader(bytes.NewReader(file.Content), int64(len(file.Content)))

	if err != nil {
		return nil, err
	}

	reader, err := r.GetPlainText()

	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(reader)

	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(data))

	if text == "" {
		return nil, extractor.ErrUnsupported
	}

	return &extractor.Document{
		Text: text,
	}, nil
}

func isPDF(file extractor.File) bool {
	if bytes.HasPrefix(file.Content, []byte("%PDF")) {
		return true
	}

	return file.ContentType == "application/pdf" || strings.EqualFold(path.Ext(file.Name), ".pdf")
}
