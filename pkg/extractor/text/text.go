package text

import (
	"bytes"
	"context"
	"path"
	"slices"
	"strings"
	"unicode"

	"github.com/adrianliechti/joborder/pkg/extractor"
)

var _ extractor.Provider = &Extractor{}

// Extractor passes plain text uploads through as full text. It yields no
// entities, so every field is recovered from the text heuristics.
type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if !detectText(file) {
		return nil, extractor.ErrUnsupported
	}

	return &extractor.Document{
		Text: strings.TrimSpace(string(file.Content)),
	}, nil
}

func detectText(file extractor.File) bool {
	if isSupported(file) {
		return true
	}

	if len(file.Content) == 0 || bytes.HasPrefix(file.Content, []byte("%PDF")) {
		return false
	}

	var printableCount int

	for _, b := range file.Content {
		if b == 0 {
			return false
		}

		if unicode.IsPrint(rune(b)) || b == '\n' || b == '\r' || b == '\t' {
			printableCount++
		}
	}

	return printableCount > (len(file.Content) * 90 / 100)
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
