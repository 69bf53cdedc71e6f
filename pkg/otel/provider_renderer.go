package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Renderer interface {
	Observable
	backend.Renderer
}

type observableRenderer struct {
	name string

	renderer backend.Renderer

	durationMetric metric.Float64Histogram
}

func NewRenderer(name string, r backend.Renderer) Renderer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("joborder.render.duration",
		metric.WithDescription("Duration of job order rendering"),
		metric.WithUnit("s"),
	)

	return &observableRenderer{
		renderer: r,

		name: name,

		durationMetric: durationMetric,
	}
}

func (r *observableRenderer) otelSetup() {
}

func (r *observableRenderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "render "+r.name)
	defer span.End()

	timestamp := time.Now()

	result, err := r.renderer.Render(ctx, l, instructions)

	attrs := []attribute.KeyValue{
		attribute.String("renderer.name", r.name),
		attribute.String("layout.name", l.Name),
	}

	span.SetAttributes(attrs...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return result, err
	}

	if r.durationMetric != nil {
		r.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	return result, nil
}
