package google

import (
	"google.golang.org/api/option"
)

type Option func(*Client)

func WithLocation(location string) Option {
	return func(c *Client) {
		c.location = location
	}
}

// WithProcessor maps a document type to a Document AI processor id. The
// processor registered for extractor.DocumentTypeGeneral is the fallback.
func WithProcessor(documentType, processorID string) Option {
	return func(c *Client) {
		c.processors[documentType] = processorID
	}
}

func WithCredentialsFile(path string) Option {
	return func(c *Client) {
		c.options = append(c.options, option.WithCredentialsFile(path))
	}
}

func WithClientOptions(options ...option.ClientOption) Option {
	return func(c *Client) {
		c.options = append(c.options, options...)
	}
}

var SupportedMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}
