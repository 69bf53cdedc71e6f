package limiter

import (
	"context"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"

	"golang.org/x/time/rate"
)

type Renderer interface {
	Limiter
	backend.Renderer
}

type limitedRenderer struct {
	limiter  *rate.Limiter
	renderer backend.Renderer
}

func NewRenderer(l *rate.Limiter, r backend.Renderer) Renderer {
	return &limitedRenderer{
		limiter:  l,
		renderer: r,
	}
}

func (r *limitedRenderer) limiterSetup() {
}

func (r *limitedRenderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return r.renderer.Render(ctx, l, instructions)
}
