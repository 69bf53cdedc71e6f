package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/adrianliechti/joborder/pkg/extractor"
)

var _ extractor.Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string
	model string

	interval time.Duration
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url:   url,
		model: "prebuilt-invoice",

		interval: 2 * time.Second,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isSupported(file) {
		return nil, extractor.ErrUnsupported
	}

	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/documentintelligence/documentModels/" + c.model + ":analyze")

	query := u.Query()
	query.Set("api-version", "2024-11-30")

	u.RawQuery = query.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(file.Content))
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return nil, convertError(resp)
	}

	operationURL := resp.Header.Get("Operation-Location")

	if operationURL == "" {
		return nil, errors.New("missing operation location")
	}

	for {
		operation, err := c.poll(ctx, operationURL)

		if err != nil {
			return nil, err
		}

		if operation.Status == OperationStatusRunning || operation.Status == OperationStatusNotStarted {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.interval):
			}

			continue
		}

		if operation.Status != OperationStatusSucceeded {
			return nil, errors.New("operation " + string(operation.Status))
		}

		return convertResult(operation.Result), nil
	}
}

func (c *Client) poll(ctx context.Context, operationURL string) (*AnalyzeOperation, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var operation AnalyzeOperation

	if err := json.NewDecoder(resp.Body).Decode(&operation); err != nil {
		return nil, err
	}

	return &operation, nil
}

func convertResult(r AnalyzeResult) *extractor.Document {
	result := &extractor.Document{
		Text: strings.TrimSpace(r.Content),
	}

	for _, page := range r.Pages {
		result.Pages = append(result.Pages, extractor.Page{
			Page: page.PageNumber,

			Unit:   page.Unit,
			Width:  page.Width,
			Height: page.Height,
		})
	}

	for _, doc := range r.Documents {
		for _, name := range sortedKeys(doc.Fields) {
			field := doc.Fields[name]

			if name == "Items" {
				for _, item := range field.ValueArray {
					result.Entities = append(result.Entities, extractor.Entity{
						Type: "line_item",
						Text: item.Content,

						Confidence: item.Confidence,

						Properties: convertFields(item.ValueObject),
					})
				}

				continue
			}

			result.Entities = append(result.Entities, convertField(name, field))
		}
	}

	return result
}

func convertFields(fields map[string]Field) []extractor.Entity {
	var result []extractor.Entity

	for _, name := range sortedKeys(fields) {
		result = append(result, convertField(name, fields[name]))
	}

	return result
}

func convertField(name string, field Field) extractor.Entity {
	text := field.Content

	if text == "" {
		text = field.ValueString
	}

	return extractor.Entity{
		Type: snakeCase(name),
		Text: text,

		Confidence: field.Confidence,
	}
}

func sortedKeys(fields map[string]Field) []string {
	keys := make([]string, 0, len(fields))

	for k := range fields {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// snakeCase turns Azure field names (InvoiceId, VendorName) into the
// lower_snake labels used by other providers.
func snakeCase(s string) string {
	var sb strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteRune('_')
			}

			r = unicode.ToLower(r)
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
