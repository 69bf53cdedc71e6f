package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/limiter"
	"github.com/adrianliechti/joborder/pkg/overlay"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	return &extractor.Document{Text: file.Name}, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	return &backend.Output{Name: l.Name}, nil
}

func TestExtractor(t *testing.T) {
	e := limiter.NewExtractor(rate.NewLimiter(rate.Inf, 1), stubExtractor{})

	doc, err := e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
	require.Equal(t, "a.pdf", doc.Text)

	e = limiter.NewExtractor(nil, stubExtractor{})

	_, err = e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
}

func TestExtractorCanceled(t *testing.T) {
	l := rate.NewLimiter(rate.Every(time.Hour), 1)
	l.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := limiter.NewExtractor(l, stubExtractor{}).Extract(ctx, extractor.File{Name: "a.pdf"}, nil)
	require.Error(t, err)
}

func TestRenderer(t *testing.T) {
	r := limiter.NewRenderer(rate.NewLimiter(rate.Inf, 1), stubRenderer{})

	result, err := r.Render(context.Background(), &layout.Layout{Name: "door"}, nil)
	require.NoError(t, err)
	require.Equal(t, "door", result.Name)
}
