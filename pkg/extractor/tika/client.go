package tika

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
	"strconv"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"
)

var _ extractor.Provider = &Client{}

// Client reads plain text from an Apache Tika server. Scanned uploads go
// through Tika's Tesseract OCR when a language is set.
type Client struct {
	client *http.Client

	url      string
	language string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if !isSupported(file) {
		return nil, extractor.ErrUnsupported
	}

	u, _ := url.JoinPath(c.url, "/tika/text")
	req, _ := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(file.Content))
	req.Header.Set("Accept", "application/json")

	if file.ContentType != "" {
		req.Header.Set("Content-Type", file.ContentType)
	}

	if c.language != "" {
		req.Header.Set("X-Tika-OCRLanguage", c.language)
	} else {
		req.Header.Set("X-Tika-OCRskipOcr", "true")
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var response Response

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	text := normalize(response.Content)

	if text == "" {
		return nil, extractor.ErrUnsupported
	}

	result := &extractor.Document{
		Text: text,
	}

	if n, err := strconv.Atoi(response.Pages); err == nil {
		for i := range n {
			result.Pages = append(result.Pages, extractor.Page{Page: i + 1})
		}
	}

	return result, nil
}

// normalize trims every line and collapses runs of blank lines.
func normalize(s string) string {
	var lines []string

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)

		if line == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}

		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
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
