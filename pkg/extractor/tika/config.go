package tika

import (
	"net/http"
)

var SupportedExtensions = []string{
	".pdf",

	".jpg", ".jpeg",
	".png",
}

var SupportedMimeTypes = []string{
	"application/pdf",

	"image/jpeg",
	"image/png",
}

type Response struct {
	Content string `json:"X-TIKA:content"`
	Pages   string `json:"xmpTPg:NPages"`
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithOCR enables OCR for scanned uploads, e.g. "eng" or "eng+msa".
func WithOCR(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}
