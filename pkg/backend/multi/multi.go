package multi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"
)

var _ backend.Renderer = &Renderer{}

// Renderer tries each backend in order until one produces an output.
type Renderer struct {
	renderers []backend.Renderer
}

func New(renderer ...backend.Renderer) *Renderer {
	return &Renderer{
		renderers: renderer,
	}
}

func (r *Renderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	var errs []error

	for _, renderer := range r.renderers {
		result, err := renderer.Render(ctx, l, instructions)

		if err == nil {
			return result, nil
		}

		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		slog.WarnContext(ctx, "renderer failed", "layout", l.Name, "error", err)

		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, backend.ErrUnsupported
	}

	return nil, errors.Join(errs...)
}
