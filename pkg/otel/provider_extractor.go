package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/joborder/pkg/extractor"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	name     string
	provider string

	extractor extractor.Provider

	durationMetric metric.Float64Histogram
}

func NewExtractor(provider, name string, p extractor.Provider) Extractor {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("joborder.extract.duration",
		metric.WithDescription("Duration of document extraction calls"),
		metric.WithUnit("s"),
	)

	return &observableExtractor{
		extractor: p,

		name:     name,
		provider: provider,

		durationMetric: durationMetric,
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "extract "+p.name)
	defer span.End()

	timestamp := time.Now()

	result, err := p.extractor.Extract(ctx, file, options)

	attrs := []attribute.KeyValue{
		attribute.String("extractor.provider", p.provider),
		attribute.String("extractor.name", p.name),
	}

	if options != nil && options.DocumentType != "" {
		attrs = append(attrs, attribute.String("document.type", options.DocumentType))
	}

	span.SetAttributes(attrs...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return result, err
	}

	if p.durationMetric != nil {
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return result, nil
}
