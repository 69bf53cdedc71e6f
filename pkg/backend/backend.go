package backend

import (
	"context"
	"errors"

	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"
)

var ErrUnsupported = errors.New("unsupported layout")

// Renderer turns overlay instructions into a final document.
type Renderer interface {
	Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*Output, error)
}

type Output struct {
	Name        string
	ContentType string

	Content []byte
}
