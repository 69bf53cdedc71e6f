package layout

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON layout document.
func Parse(data []byte) (*Layout, error) {
	l, err := decode(data)

	if err != nil {
		return nil, err
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Load reads a layout from any location afs can resolve (file://, mem://,
// gs://, s3://). A missing name is taken from the file name.
func Load(ctx context.Context, fs afs.Service, url string) (*Layout, error) {
	data, err := fs.DownloadWithURL(ctx, url)

	if err != nil {
		return nil, fmt.Errorf("unable to load layout %s: %w", url, err)
	}

	l, err := decode(data)

	if err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", url, err)
	}

	if l.Name == "" {
		l.Name = strings.TrimSuffix(path.Base(url), path.Ext(url))
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

func decode(data []byte) (*Layout, error) {
	var l Layout

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&l); err != nil {
		return nil, err
	}

	return &l, nil
}
