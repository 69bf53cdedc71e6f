package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/extractor/retry"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls int
	fn    func(ctx context.Context, call int) (*extractor.Document, error)
}

func (s *stubProvider) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	s.calls++
	return s.fn(ctx, s.calls)
}

func TestRetrySucceedsOnSecondAttempt(t *testing.T) {
	p := &stubProvider{fn: func(ctx context.Context, call int) (*extractor.Document, error) {
		if call == 1 {
			return nil, errors.New("temporary")
		}

		return &extractor.Document{Text: "ok"}, nil
	}}

	e := retry.New(p, retry.WithInterval(time.Millisecond))

	doc, err := e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
	require.Equal(t, "ok", doc.Text)
	require.Equal(t, 2, p.calls)
}

func TestRetryExhausted(t *testing.T) {
	p := &stubProvider{fn: func(ctx context.Context, call int) (*extractor.Document, error) {
		return nil, errors.New("service down")
	}}

	e := retry.New(p, retry.WithInterval(time.Millisecond))

	_, err := e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.ErrorIs(t, err, extractor.ErrExtraction)
	require.Equal(t, 2, p.calls)
}

func TestRetryTimeout(t *testing.T) {
	p := &stubProvider{fn: func(ctx context.Context, call int) (*extractor.Document, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	e := retry.New(p, retry.WithTimeout(10*time.Millisecond), retry.WithInterval(time.Millisecond))

	_, err := e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.ErrorIs(t, err, extractor.ErrExtraction)
	require.Equal(t, 2, p.calls)
}

func TestRetryUnsupportedIsPermanent(t *testing.T) {
	p := &stubProvider{fn: func(ctx context.Context, call int) (*extractor.Document, error) {
		return nil, extractor.ErrUnsupported
	}}

	e := retry.New(p)

	_, err := e.Extract(context.Background(), extractor.File{Name: "a.gif"}, nil)
	require.ErrorIs(t, err, extractor.ErrUnsupported)
	require.Equal(t, 1, p.calls)
}
