package google

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"

	"google.golang.org/api/documentai/v1"
	"google.golang.org/api/option"
)

var _ extractor.Provider = &Client{}

// Client calls a Google Document AI processor and keeps its entity and
// property labels as reported.
type Client struct {
	project  string
	location string

	processors map[string]string

	options []option.ClientOption

	service *documentai.Service
}

func New(ctx context.Context, project string, options ...Option) (*Client, error) {
	if project == "" {
		return nil, errors.New("invalid project")
	}

	c := &Client{
		project:  project,
		location: "us",

		processors: make(map[string]string),
	}

	for _, option := range options {
		option(c)
	}

	if _, ok := c.processors[extractor.DocumentTypeGeneral]; !ok {
		return nil, errors.New("missing general processor")
	}

	endpoint := fmt.Sprintf("https://%s-documentai.googleapis.com/", c.location)

	service, err := documentai.NewService(ctx, append([]option.ClientOption{option.WithEndpoint(endpoint)}, c.options...)...)

	if err != nil {
		return nil, err
	}

	c.service = service

	return c, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	mimeType := detectMimeType(file)

	if mimeType == "" {
		return nil, extractor.ErrUnsupported
	}

	name := fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.project, c.location, c.processor(options.DocumentType))

	req := &documentai.GoogleCloudDocumentaiV1ProcessRequest{
		RawDocument: &documentai.GoogleCloudDocumentaiV1RawDocument{
			Content:  base64.StdEncoding.EncodeToString(file.Content),
			MimeType: mimeType,
		},
	}

	resp, err := c.service.Projects.Locations.Processors.Process(name, req).Context(ctx).Do()

	if err != nil {
		return nil, err
	}

	if resp.Document == nil {
		return nil, errors.New("empty document")
	}

	return convertDocument(resp.Document), nil
}

func (c *Client) processor(documentType string) string {
	if id, ok := c.processors[documentType]; ok {
		return id
	}

	return c.processors[extractor.DocumentTypeGeneral]
}

func convertDocument(doc *documentai.GoogleCloudDocumentaiV1Document) *extractor.Document {
	result := &extractor.Document{
		Text: doc.Text,

		Entities: convertEntities(doc.Entities),
	}

	for i, page := range doc.Pages {
		if page.Dimension == nil {
			continue
		}

		result.Pages = append(result.Pages, extractor.Page{
			Page: i + 1,

			Unit:   page.Dimension.Unit,
			Width:  page.Dimension.Width,
			Height: page.Dimension.Height,
		})
	}

	return result
}

func convertEntities(entities []*documentai.GoogleCloudDocumentaiV1DocumentEntity) []extractor.Entity {
	var result []extractor.Entity

	for _, e := range entities {
		if e == nil {
			continue
		}

		result = append(result, extractor.Entity{
			Type: e.Type,
			Text: e.MentionText,

			Confidence: e.Confidence,

			Properties: convertEntities(e.Properties),
		})
	}

	return result
}

func detectMimeType(file extractor.File) string {
	if file.ContentType != "" {
		for _, t := range SupportedMimeTypes {
			if t == file.ContentType {
				return t
			}
		}
	}

	return SupportedMimeTypes[strings.ToLower(path.Ext(file.Name))]
}
