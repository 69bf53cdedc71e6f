package pipeline

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"
)

var ErrInvalidUpload = errors.New("invalid upload")

const MaxUploadSize = 16 << 20

var AllowedExtensions = []string{
	".pdf",
	".png",
	".jpg",
	".jpeg",
}

var dangerousPatterns = []string{
	"../",
	"..\\",
	"<script",
	"<?php",
	".exe",
	".bat",
}

// ValidateUpload rejects uploads by name and size before anything is read.
func ValidateUpload(name string, size int) error {
	lower := strings.ToLower(name)

	if !slices.Contains(AllowedExtensions, path.Ext(lower)) {
		return fmt.Errorf("%w: unsupported file type %q", ErrInvalidUpload, path.Ext(name))
	}

	for _, p := range dangerousPatterns {
		if strings.Contains(lower, p) {
			return fmt.Errorf("%w: file name not allowed", ErrInvalidUpload)
		}
	}

	if size > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidUpload, MaxUploadSize)
	}

	return nil
}

type keywords struct {
	documentType string

	tokens  []string
	phrases []string
}

var nameKeywords = []keywords{
	{extractor.DocumentTypeQuote, nil, []string{"quote", "quotation", "estimate"}},
	{extractor.DocumentTypePurchaseOrder, []string{"po"}, []string{"purchase_order", "purchase"}},
	{extractor.DocumentTypeInvoice, []string{"inv", "bill"}, []string{"invoice"}},
	{extractor.DocumentTypeReceipt, []string{"rcpt"}, []string{"receipt"}},
}

var textKeywords = []keywords{
	{extractor.DocumentTypeQuote, nil, []string{"quotation", "quote", "estimate"}},
	{extractor.DocumentTypePurchaseOrder, nil, []string{"purchase order", "p.o.", "po number"}},
	{extractor.DocumentTypeInvoice, nil, []string{"invoice", "bill to", "invoice number"}},
}

// DetectDocumentType classifies an upload from its file name, then from the
// leading text of the document. Unknown documents are invoices.
func DetectDocumentType(name, text string) string {
	name = strings.ToLower(path.Base(name))

	tokens := strings.FieldsFunc(strings.TrimSuffix(name, path.Ext(name)), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})

	for _, k := range nameKeywords {
		if slices.ContainsFunc(k.tokens, func(t string) bool { return slices.Contains(tokens, t) }) {
			return k.documentType
		}

		if slices.ContainsFunc(k.phrases, func(p string) bool { return strings.Contains(name, p) }) {
			return k.documentType
		}
	}

	text = strings.ToLower(text)

	if len(text) > 4000 {
		text = text[:4000]
	}

	for _, k := range textKeywords {
		if slices.ContainsFunc(k.phrases, func(p string) bool { return strings.Contains(text, p) }) {
			return k.documentType
		}
	}

	return extractor.DocumentTypeInvoice
}
