package google_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/extractor/google"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestExtract(t *testing.T) {
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")

		json.NewEncoder(w).Encode(map[string]any{
			"document": map[string]any{
				"text": "INVOICE\nBill To: KENCANA CONSTRUCTION SDN BHD",
				"entities": []any{
					map[string]any{"type": "invoice_id", "mentionText": "KDI-2507-003", "confidence": 0.97},
					map[string]any{
						"type":        "line_item",
						"mentionText": "DOOR 43MM",
						"properties": []any{
							map[string]any{"type": "line_item/description", "mentionText": "DOOR 43MM"},
						},
					},
				},
			},
		})
	}))

	defer server.Close()

	c, err := google.New(context.Background(), "project",
		google.WithProcessor(extractor.DocumentTypeGeneral, "general-id"),
		google.WithProcessor(extractor.DocumentTypeInvoice, "invoice-id"),
		google.WithClientOptions(option.WithEndpoint(server.URL+"/"), option.WithoutAuthentication()),
	)

	require.NoError(t, err)

	input := extractor.File{
		Name:    "KDI-2507-003.pdf",
		Content: []byte("%PDF-1.7"),
	}

	result, err := c.Extract(context.Background(), input, &extractor.ExtractOptions{DocumentType: extractor.DocumentTypeInvoice})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.True(t, strings.HasSuffix(paths[0], "processors/invoice-id:process"), paths[0])

	require.Contains(t, result.Text, "KENCANA")
	require.Len(t, result.Entities, 2)
	require.Equal(t, "invoice_id", result.Entities[0].Type)
	require.InDelta(t, 0.97, result.Entities[0].Confidence, 0.0001)
	require.Equal(t, "line_item/description", result.Entities[1].Properties[0].Type)

	_, err = c.Extract(context.Background(), extractor.File{Name: "photo.gif"}, nil)
	require.ErrorIs(t, err, extractor.ErrUnsupported)
}

func TestNewRequiresGeneralProcessor(t *testing.T) {
	_, err := google.New(context.Background(), "project", google.WithProcessor(extractor.DocumentTypeInvoice, "invoice-id"))
	require.Error(t, err)
}
