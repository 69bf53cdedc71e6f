package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adrianliechti/joborder/pkg/extractor"

	"github.com/cenkalti/backoff/v5"
)

var _ extractor.Provider = &Extractor{}

// Extractor bounds each call of the wrapped provider with a timeout and
// retries failed attempts. Exhausted attempts surface as ErrExtraction.
type Extractor struct {
	provider extractor.Provider

	timeout  time.Duration
	attempts uint

	interval time.Duration
}

type Option func(*Extractor)

func WithTimeout(timeout time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = timeout
	}
}

func WithAttempts(attempts uint) Option {
	return func(e *Extractor) {
		e.attempts = attempts
	}
}

func WithInterval(interval time.Duration) Option {
	return func(e *Extractor) {
		e.interval = interval
	}
}

func New(provider extractor.Provider, options ...Option) *Extractor {
	e := &Extractor{
		provider: provider,

		timeout:  60 * time.Second,
		attempts: 2,

		interval: 500 * time.Millisecond,
	}

	for _, option := range options {
		option(e)
	}

	if e.attempts == 0 {
		e.attempts = 1
	}

	return e
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	var attempt int

	operation := func() (*extractor.Document, error) {
		attempt++

		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		doc, err := e.provider.Extract(ctx, file, options)

		if err == nil {
			return doc, nil
		}

		if errors.Is(err, extractor.ErrUnsupported) {
			return nil, backoff.Permanent(err)
		}

		slog.WarnContext(ctx, "extraction attempt failed", "file", file.Name, "attempt", attempt, "error", err)

		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.interval

	doc, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(e.attempts),
	)

	if err != nil {
		if errors.Is(err, extractor.ErrUnsupported) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", extractor.ErrExtraction, err)
	}

	return doc, nil
}
