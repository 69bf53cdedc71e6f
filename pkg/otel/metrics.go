package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Usage records upload and conversion statistics of the pipeline.
type Usage struct {
	uploads     metric.Int64Counter
	conversions metric.Int64Counter

	duration metric.Float64Histogram
}

func NewUsage() *Usage {
	meter := otel.Meter(instrumentationName)

	uploads, _ := meter.Int64Counter("joborder.uploads",
		metric.WithDescription("Number of processed uploads"),
	)

	conversions, _ := meter.Int64Counter("joborder.conversions",
		metric.WithDescription("Number of generated job orders"),
	)

	duration, _ := meter.Float64Histogram("joborder.processing.duration",
		metric.WithDescription("Processing time per document"),
		metric.WithUnit("s"),
	)

	return &Usage{
		uploads:     uploads,
		conversions: conversions,

		duration: duration,
	}
}

func (u *Usage) Upload(ctx context.Context, documentType string, duration time.Duration, err error) {
	if u == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("document.type", documentType),
		attribute.Bool("error", err != nil),
	)

	if u.uploads != nil {
		u.uploads.Add(ctx, 1, attrs)
	}

	if u.duration != nil {
		u.duration.Record(ctx, duration.Seconds(), attrs)
	}
}

func (u *Usage) Conversion(ctx context.Context, variant string, err error) {
	if u == nil || u.conversions == nil {
		return
	}

	u.conversions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("template", variant),
		attribute.Bool("error", err != nil),
	))
}
