package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adrianliechti/joborder/pkg/aggregator"
	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/customer"
	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/normalizer"
	"github.com/adrianliechti/joborder/pkg/otel"
	"github.com/adrianliechti/joborder/pkg/overlay"
)

// Pipeline turns uploaded documents into specifications and specifications
// into rendered job orders.
type Pipeline struct {
	extractor extractor.Provider
	sniffer   extractor.Provider

	normalizer *normalizer.Normalizer
	resolver   *customer.Resolver

	registry *layout.Registry
	renderer *overlay.Renderer
	backend  backend.Renderer

	usage *otel.Usage
}

type Option func(*Pipeline)

// WithSniffer sets a cheap local extractor whose text helps to classify
// documents the file name says nothing about.
func WithSniffer(p extractor.Provider) Option {
	return func(pl *Pipeline) {
		pl.sniffer = p
	}
}

func WithNormalizer(n *normalizer.Normalizer) Option {
	return func(p *Pipeline) {
		p.normalizer = n
	}
}

func WithResolver(r *customer.Resolver) Option {
	return func(p *Pipeline) {
		p.resolver = r
	}
}

func WithUsage(u *otel.Usage) Option {
	return func(p *Pipeline) {
		p.usage = u
	}
}

func New(e extractor.Provider, registry *layout.Registry, b backend.Renderer, options ...Option) (*Pipeline, error) {
	if e == nil {
		return nil, errors.New("missing extractor")
	}

	if registry == nil {
		return nil, errors.New("missing layout registry")
	}

	if b == nil {
		return nil, errors.New("missing backend")
	}

	p := &Pipeline{
		extractor: e,

		normalizer: normalizer.New(),
		resolver:   customer.New(),

		registry: registry,
		renderer: overlay.New(registry),
		backend:  b,
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

type Result struct {
	DocumentType string

	Text string

	Specification *jobspec.Specification
	LineItems     []jobspec.LineItem
}

// Process extracts and aggregates the specification of one upload. A failed
// extraction degrades to an empty document; the result then only holds what
// the text heuristics recover.
func (p *Pipeline) Process(ctx context.Context, file extractor.File) (*Result, error) {
	start := time.Now()

	result, err := p.process(ctx, file)

	documentType := ""

	if result != nil {
		documentType = result.DocumentType
	}

	p.usage.Upload(ctx, documentType, time.Since(start), err)

	return result, err
}

func (p *Pipeline) process(ctx context.Context, file extractor.File) (*Result, error) {
	if err := ValidateUpload(file.Name, len(file.Content)); err != nil {
		return nil, err
	}

	documentType := DetectDocumentType(file.Name, p.sniff(ctx, file))

	doc, err := p.extractor.Extract(ctx, file, &extractor.ExtractOptions{
		DocumentType: documentType,
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.WarnContext(ctx, "extraction failed, continuing with empty document", "file", file.Name, "type", documentType, "error", err)

		doc = &extractor.Document{}
	}

	normalized, items := p.normalizer.Normalize(doc.Entities)

	name, err := p.resolver.Resolve(normalized.CustomerName, doc.Text)

	if err != nil {
		slog.WarnContext(ctx, "customer not resolved", "file", file.Name, "error", err)
	}

	normalized.CustomerName = name

	if normalized.VendorName != "" && strings.EqualFold(normalized.VendorName, normalized.CustomerName) {
		slog.WarnContext(ctx, "customer equals vendor, dropping", "name", normalized.CustomerName)
		normalized.CustomerName = ""
	}

	spec := aggregator.Aggregate(normalized, items, doc.Text)

	return &Result{
		DocumentType: documentType,

		Text: doc.Text,

		Specification: spec,
		LineItems:     items,
	}, nil
}

func (p *Pipeline) sniff(ctx context.Context, file extractor.File) string {
	if p.sniffer == nil {
		return ""
	}

	doc, err := p.sniffer.Extract(ctx, file, nil)

	if err != nil {
		return ""
	}

	return doc.Text
}

// Generate merges validated overrides into the specification and renders it
// onto the given template variant. An empty or "auto" variant is detected.
func (p *Pipeline) Generate(ctx context.Context, spec *jobspec.Specification, overrides map[string]string, variant string) (*backend.Output, []overlay.Instruction, error) {
	merged := aggregator.Merge(spec, overrides)

	l, instructions, err := p.renderer.Render(merged, variant)

	if err != nil {
		p.usage.Conversion(ctx, variant, err)
		return nil, nil, err
	}

	output, err := p.backend.Render(ctx, l, instructions)

	p.usage.Conversion(ctx, l.Name, err)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to render %s: %w", l.Name, err)
	}

	return output, instructions, nil
}

// Variants lists the registered template variants.
func (p *Pipeline) Variants() []string {
	return p.registry.Names()
}
