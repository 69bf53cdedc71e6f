package overlay

import (
	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/layout"
)

// Renderer resolves template variants through a registry before rendering.
type Renderer struct {
	registry *layout.Registry
}

func New(registry *layout.Registry) *Renderer {
	return &Renderer{
		registry: registry,
	}
}

// Render looks up the variant, detecting it when empty or "auto", and
// renders the specification onto it.
func (r *Renderer) Render(spec *jobspec.Specification, variant string) (*layout.Layout, []Instruction, error) {
	if variant == "" || variant == layout.VariantAuto {
		variant = layout.Detect(spec)
	}

	l, err := r.registry.Layout(variant)

	if err != nil {
		return nil, nil, err
	}

	instructions, err := Render(spec, l)

	if err != nil {
		return nil, nil, err
	}

	return l, instructions, nil
}
