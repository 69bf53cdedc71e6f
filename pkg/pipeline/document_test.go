package pipeline_test

import (
	"testing"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/pipeline"

	"github.com/stretchr/testify/require"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string

		expected string
	}{
		{"invoice_2024.pdf", "", extractor.DocumentTypeInvoice},
		{"quotation_march.pdf", "", extractor.DocumentTypeQuote},
		{"estimate_project.pdf", "", extractor.DocumentTypeQuote},
		{"po_12345.pdf", "", extractor.DocumentTypePurchaseOrder},
		{"purchase_order_abc.pdf", "", extractor.DocumentTypePurchaseOrder},
		{"receipt_xyz.pdf", "", extractor.DocumentTypeReceipt},
		{"random_document.pdf", "", extractor.DocumentTypeInvoice},
		{"report.pdf", "", extractor.DocumentTypeInvoice},
		{"scan.pdf", "QUOTATION No. Q-118", extractor.DocumentTypeQuote},
		{"scan.pdf", "P.O. 4411", extractor.DocumentTypePurchaseOrder},
		{"scan.pdf", "Tax Invoice", extractor.DocumentTypeInvoice},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.text, func(t *testing.T) {
			require.Equal(t, tt.expected, pipeline.DetectDocumentType(tt.name, tt.text))
		})
	}
}

func TestValidateUpload(t *testing.T) {
	require.NoError(t, pipeline.ValidateUpload("KDI-2507-003.pdf", 1024))
	require.NoError(t, pipeline.ValidateUpload("scan.JPEG", 1024))

	for _, name := range []string{"notes.docx", "noext", "../../etc/passwd.pdf", "a<script>.png", "setup.exe.pdf", "run.bat.jpg"} {
		require.ErrorIs(t, pipeline.ValidateUpload(name, 10), pipeline.ErrInvalidUpload, name)
	}

	require.ErrorIs(t, pipeline.ValidateUpload("large.pdf", pipeline.MaxUploadSize+1), pipeline.ErrInvalidUpload)
}
