package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/backend/html"
	"github.com/adrianliechti/joborder/pkg/backend/json"
	"github.com/adrianliechti/joborder/pkg/backend/multi"
	"github.com/adrianliechti/joborder/pkg/backend/raster"
	"github.com/adrianliechti/joborder/pkg/limiter"
	"github.com/adrianliechti/joborder/pkg/otel"
)

func (cfg *Config) RegisterBackend(id string, r backend.Renderer) {
	if cfg.backends == nil {
		cfg.backends = make(map[string]backend.Renderer)
	}

	cfg.backends[id] = r
}

// Backend returns the backend with the given id. The empty id is the chain
// of all configured backends in order.
func (cfg *Config) Backend(id string) (backend.Renderer, error) {
	if cfg.backends != nil {
		if r, ok := cfg.backends[id]; ok {
			return r, nil
		}
	}

	return nil, errors.New("backend not found: " + id)
}

type backendConfig struct {
	Type string `yaml:"type"`

	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"`
	Format string  `yaml:"format"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerBackends(f *configFile) error {
	var configs map[string]backendConfig

	if err := f.Backends.Decode(&configs); err != nil {
		return err
	}

	var backends []backend.Renderer

	for i := 0; i+1 < len(f.Backends.Content); i += 2 {
		id := f.Backends.Content[i].Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		r, err := cfg.createBackend(config)

		if err != nil {
			return err
		}

		if _, ok := r.(limiter.Renderer); !ok {
			r = limiter.NewRenderer(createLimiter(config.Limit), r)
		}

		if _, ok := r.(otel.Renderer); !ok {
			r = otel.NewRenderer(id, r)
		}

		backends = append(backends, r)

		cfg.RegisterBackend(id, r)
	}

	if _, ok := cfg.backends["json"]; !ok {
		r := otel.NewRenderer("json", json.New())

		backends = append(backends, r)

		cfg.RegisterBackend("json", r)
	}

	cfg.RegisterBackend("", multi.New(backends...))

	return nil
}

func (cfg *Config) createBackend(c backendConfig) (backend.Renderer, error) {
	switch strings.ToLower(c.Type) {
	case "raster":
		options := []raster.Option{
			raster.WithFS(cfg.fs),
		}

		if c.Scale > 0 {
			options = append(options, raster.WithScale(c.Scale))
		}

		switch strings.ToLower(c.Format) {
		case "", "png":
		case "jpg", "jpeg":
			options = append(options, raster.WithJPEG())
		default:
			return nil, errors.New("invalid raster format: " + c.Format)
		}

		return raster.New(options...), nil

	case "html":
		var options []html.Option

		if c.Title != "" {
			options = append(options, html.WithTitle(c.Title))
		}

		return html.New(options...), nil

	case "json":
		return json.New(), nil

	default:
		return nil, errors.New("invalid backend type: " + c.Type)
	}
}
