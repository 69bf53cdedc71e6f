package html

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"
)

var _ backend.Renderer = &Renderer{}

var (
	//go:embed page.html
	pageHTML string

	pageTemplate = template.Must(template.New("page").Parse(pageHTML))
)

// Renderer lays the instructions out as absolutely positioned HTML over the
// template background.
type Renderer struct {
	title string
}

type Option func(*Renderer)

func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{
		title: "Job Order",
	}

	for _, option := range options {
		option(r)
	}

	return r
}

type page struct {
	Title string

	Width  float64
	Height float64

	Background string

	Texts []overlay.Instruction
	Marks []overlay.Instruction
}

func (r *Renderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	p := page{
		Title: r.title,

		Width:  l.Width(),
		Height: l.Height(),

		Background: l.Background,
	}

	for _, i := range instructions {
		switch i.Kind {
		case overlay.KindText:
			p.Texts = append(p.Texts, i)
		case overlay.KindMark:
			p.Marks = append(p.Marks, i)
		}
	}

	var buf bytes.Buffer

	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}

	return &backend.Output{
		Name:        "joborder-" + l.Name + ".html",
		ContentType: "text/html; charset=utf-8",

		Content: buf.Bytes(),
	}, nil
}
