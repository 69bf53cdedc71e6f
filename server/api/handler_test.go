package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrianliechti/joborder/config"
	jsonrenderer "github.com/adrianliechti/joborder/pkg/backend/json"
	"github.com/adrianliechti/joborder/pkg/customer"
	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/pipeline"
	"github.com/adrianliechti/joborder/pkg/session/memory"
	"github.com/adrianliechti/joborder/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	return &extractor.Document{
		Text: "SENDORA GROUP SDN BHD\nBill To: KENCANA CONSTRUCTION SDN BHD\nDoor Size: 3ft x 8ft",

		Entities: []extractor.Entity{
			{Type: "invoice_id", Text: "KDI-2507-003"},
			{Type: "line_item", Properties: []extractor.Entity{
				{Type: "description", Text: "6S-A057 DOOR 43MM D/L HONEYCOMB"},
			}},
		},
	}, nil
}

func testServer(t *testing.T) *httptest.Server {
	dir, err := filepath.Abs("../../templates")
	require.NoError(t, err)

	var layouts []*layout.Layout

	for _, name := range []string{"door", "frame", "combined"} {
		l, err := layout.Load(context.Background(), afs.New(), "file://localhost"+filepath.ToSlash(filepath.Join(dir, name+".yaml")))
		require.NoError(t, err)

		layouts = append(layouts, l)
	}

	registry, err := layout.NewRegistry(layouts...)
	require.NoError(t, err)

	cfg := &config.Config{
		Sessions:   memory.New(),
		SessionTTL: time.Hour,

		Registry: registry,
		Resolver: customer.New(),
	}

	cfg.RegisterExtractor("", stubExtractor{})
	cfg.RegisterBackend("", jsonrenderer.New())

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func upload(t *testing.T, server *httptest.Server, name string) *http.Response {
	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	f, err := w.CreateFormFile("file", name)
	require.NoError(t, err)

	f.Write([]byte("%PDF-1.7"))
	w.Close()

	resp, err := http.Post(server.URL+"/upload", w.FormDataContentType(), &body)
	require.NoError(t, err)

	return resp
}

func TestWorkflow(t *testing.T) {
	server := testServer(t)

	resp := upload(t, server, "KDI-2507-003.pdf")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uploaded api.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))

	require.NotEmpty(t, uploaded.SessionID)
	require.Equal(t, extractor.DocumentTypeInvoice, uploaded.DocumentType)
	require.Equal(t, "KDI-2507-003", uploaded.Preview.InvoiceNumber)
	require.Equal(t, "KENCANA CONSTRUCTION SDN BHD", uploaded.Preview.CustomerName)
	require.Equal(t, "915MM x 2440MM", uploaded.Preview.DoorSize)

	base := server.URL + "/sessions/" + uploaded.SessionID

	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var spec jobspec.Specification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&spec))
	require.Equal(t, "43mm", spec.DoorThickness)

	resp, err = http.Get(base + "/download")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	form := url.Values{
		"po_number":      {"PO-7781"},
		"door_thickness": {""},
		"template":       {"door"},
	}

	resp, err = http.PostForm(base+"/validate", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var validated api.ValidateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&validated))
	require.Equal(t, "joborder-door.json", validated.Name)
	require.Positive(t, validated.Instructions)

	resp, err = http.Get(base + "/download")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "joborder_"+uploaded.SessionID[:8]+".json")

	var doc struct {
		Layout string `json:"layout"`

		Instructions []struct {
			Content string `json:"content"`
			Source  string `json:"source"`
		} `json:"instructions"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Equal(t, "door", doc.Layout)

	var po string

	for _, i := range doc.Instructions {
		if i.Source == "po_no" {
			po = i.Content
		}
	}

	require.Equal(t, "PO-7781", po)

	resp, err = http.Get(base + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()

	var html bytes.Buffer
	html.ReadFrom(resp.Body)

	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	require.Contains(t, html.String(), "<table>")
	require.Contains(t, html.String(), "KENCANA CONSTRUCTION SDN BHD")
	require.Contains(t, html.String(), "PO-7781")
}

func TestUploadInvalid(t *testing.T) {
	server := testServer(t)

	resp := upload(t, server, "notes.docx")
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := http.Post(server.URL+"/upload", "text/plain", strings.NewReader("hello"))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadTooLarge(t *testing.T) {
	server := testServer(t)

	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	f, err := w.CreateFormFile("file", "large.pdf")
	require.NoError(t, err)

	f.Write(bytes.Repeat([]byte("x"), pipeline.MaxUploadSize+2<<20))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	server.Config.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Contains(t, rec.Body.String(), "upload too large")
}

func TestSessionNotFound(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/sessions/missing/")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidateUnknownTemplate(t *testing.T) {
	server := testServer(t)

	resp := upload(t, server, "invoice.pdf")
	defer resp.Body.Close()

	var uploaded api.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))

	resp, err := http.PostForm(server.URL+"/sessions/"+uploaded.SessionID+"/validate", url.Values{"template": {"window"}})
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health api.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))

	require.Equal(t, "healthy", health.Status)
	require.Equal(t, []string{"combined", "door", "frame"}, health.Templates)
}
