package json

import (
	"context"
	"encoding/json"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"
)

var _ backend.Renderer = &Renderer{}

// Renderer emits the instructions as a JSON document for external writers.
type Renderer struct {
}

func New() *Renderer {
	return &Renderer{}
}

type document struct {
	Layout   string     `json:"layout"`
	PageSize [2]float64 `json:"page_size"`

	Instructions []overlay.Instruction `json:"instructions"`
}

func (r *Renderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	if instructions == nil {
		instructions = []overlay.Instruction{}
	}

	data, err := json.MarshalIndent(document{
		Layout:   l.Name,
		PageSize: l.PageSize,

		Instructions: instructions,
	}, "", "  ")

	if err != nil {
		return nil, err
	}

	return &backend.Output{
		Name:        "joborder-" + l.Name + ".json",
		ContentType: "application/json",

		Content: data,
	}, nil
}
