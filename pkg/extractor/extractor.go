package extractor

import (
	"context"
	"errors"
)

type Provider interface {
	Extract(ctx context.Context, input File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")

	// ErrExtraction marks a failed or timed out call to a document-understanding
	// service. Callers degrade to an empty document instead of aborting.
	ErrExtraction = errors.New("extraction failed")
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type ExtractOptions struct {
	// DocumentType is one of the DocumentType* constants and lets providers
	// pick a specialized processor.
	DocumentType string
}

const (
	DocumentTypeInvoice       = "invoice"
	DocumentTypePurchaseOrder = "purchase_order"
	DocumentTypeQuote         = "quote"
	DocumentTypeReceipt       = "receipt"
	DocumentTypeGeneral       = "general"
)

type Document struct {
	Text string

	Pages    []Page
	Entities []Entity
}

type Page struct {
	Page int

	Unit   string
	Width  float64
	Height float64
}

// Entity is a typed span as reported by the service. Labels are provider
// specific and untrusted; properties nest for composite entities such as
// line items.
type Entity struct {
	Type string
	Text string

	Confidence float64

	Properties []Entity
}
