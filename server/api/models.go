package api

import (
	"time"

	"github.com/adrianliechti/joborder/pkg/jobspec"
)

const (
	StatusPending   = "pending_validation"
	StatusCompleted = "completed"
)

// Session is the stored state of one upload between extraction and download.
type Session struct {
	ID string `json:"id"`

	Filename     string `json:"filename"`
	DocumentType string `json:"document_type"`

	Status  string    `json:"status"`
	Created time.Time `json:"created"`

	Specification *jobspec.Specification `json:"specification"`
	Validated     *jobspec.Specification `json:"validated,omitempty"`

	Template string  `json:"template,omitempty"`
	Output   *Output `json:"output,omitempty"`
}

type Output struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`

	Content []byte `json:"content"`
}

type HealthResponse struct {
	Status    string   `json:"status"`
	Templates []string `json:"templates"`
}

type UploadResponse struct {
	SessionID    string `json:"session_id"`
	DocumentType string `json:"document_type"`

	ProcessingTime string `json:"processing_time"`

	Preview Preview `json:"preview"`
}

type Preview struct {
	InvoiceNumber string `json:"invoice_number"`
	CustomerName  string `json:"customer_name"`
	DoorSize      string `json:"door_size"`
	DoorThickness string `json:"door_thickness"`
}

type ValidateResponse struct {
	SessionID string `json:"session_id"`

	Name        string `json:"name"`
	ContentType string `json:"content_type"`

	Instructions int `json:"instructions"`

	DownloadURL string `json:"download_url"`
	PreviewURL  string `json:"preview_url"`
}
