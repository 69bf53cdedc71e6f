package multi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adrianliechti/joborder/pkg/extractor"
)

var _ extractor.Provider = &Extractor{}

type Extractor struct {
	providers []extractor.Provider
}

func New(provider ...extractor.Provider) *Extractor {
	return &Extractor{
		providers: provider,
	}
}

func (e *Extractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	var errs []error

	for _, p := range e.providers {
		result, err := p.Extract(ctx, input, options)

		if err != nil {
			if !errors.Is(err, extractor.ErrUnsupported) {
				slog.WarnContext(ctx, "extractor failed", "file", input.Name, "error", err)
				errs = append(errs, err)
			}

			continue
		}

		return result, nil
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return nil, extractor.ErrUnsupported
}
