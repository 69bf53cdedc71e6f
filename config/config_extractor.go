package config

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/extractor/azure"
	"github.com/adrianliechti/joborder/pkg/extractor/google"
	"github.com/adrianliechti/joborder/pkg/extractor/multi"
	"github.com/adrianliechti/joborder/pkg/extractor/pdf"
	"github.com/adrianliechti/joborder/pkg/extractor/retry"
	"github.com/adrianliechti/joborder/pkg/extractor/text"
	"github.com/adrianliechti/joborder/pkg/extractor/tika"
	"github.com/adrianliechti/joborder/pkg/limiter"
	"github.com/adrianliechti/joborder/pkg/otel"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterExtractor(id string, p extractor.Provider) {
	if cfg.extractors == nil {
		cfg.extractors = make(map[string]extractor.Provider)
	}

	if _, ok := cfg.extractors[""]; !ok {
		cfg.extractors[""] = p
	}

	cfg.extractors[id] = p
}

func (cfg *Config) Extractor(id string) (extractor.Provider, error) {
	if cfg.extractors != nil {
		if p, ok := cfg.extractors[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("extractor not found: " + id)
}

type extractorConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Project     string `yaml:"project"`
	Location    string `yaml:"location"`
	Credentials string `yaml:"credentials"`

	Model    string `yaml:"model"`
	Language string `yaml:"language"`

	Processors map[string]string `yaml:"processors"`

	Limit *int `yaml:"limit"`
}

type extractorContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerExtractors(ctx context.Context, f *configFile) error {
	var configs map[string]extractorConfig

	if err := f.Extractors.Decode(&configs); err != nil {
		return err
	}

	var extractors []extractor.Provider

	for i := 0; i+1 < len(f.Extractors.Content); i += 2 {
		id := f.Extractors.Content[i].Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := extractorContext{
			Limiter: createLimiter(config.Limit),
		}

		p, err := createExtractor(ctx, config, context)

		if err != nil {
			return err
		}

		if _, ok := p.(limiter.Extractor); !ok {
			p = limiter.NewExtractor(context.Limiter, p)
		}

		if _, ok := p.(otel.Extractor); !ok {
			p = otel.NewExtractor(strings.ToLower(config.Type), id, p)
		}

		if isRemote(config.Type) {
			p = retry.New(p, retry.WithTimeout(cfg.timeout), retry.WithAttempts(cfg.attempts))
		}

		extractors = append(extractors, p)

		cfg.RegisterExtractor(id, p)
	}

	if len(extractors) == 0 {
		p, err := pdf.New()

		if err != nil {
			return err
		}

		extractors = append(extractors, otel.NewExtractor("pdf", "pdf", p))
	}

	if cfg.extractors == nil {
		cfg.extractors = make(map[string]extractor.Provider)
	}

	cfg.extractors[""] = multi.New(extractors...)

	return nil
}

func isRemote(t string) bool {
	switch strings.ToLower(t) {
	case "google", "azure", "tika":
		return true
	}

	return false
}

func createExtractor(ctx context.Context, cfg extractorConfig, context extractorContext) (extractor.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "google":
		return googleExtractor(ctx, cfg)

	case "azure":
		return azureExtractor(cfg)

	case "tika":
		return tikaExtractor(cfg)

	case "pdf":
		return pdf.New()

	case "text":
		return text.New()

	default:
		return nil, errors.New("invalid extractor type: " + cfg.Type)
	}
}

func googleExtractor(ctx context.Context, cfg extractorConfig) (extractor.Provider, error) {
	var options []google.Option

	if cfg.Location != "" {
		options = append(options, google.WithLocation(cfg.Location))
	}

	if cfg.Credentials != "" {
		options = append(options, google.WithCredentialsFile(cfg.Credentials))
	}

	for documentType, id := range cfg.Processors {
		options = append(options, google.WithProcessor(documentType, id))
	}

	return google.New(ctx, cfg.Project, options...)
}

func azureExtractor(cfg extractorConfig) (extractor.Provider, error) {
	var options []azure.Option

	if cfg.Token != "" {
		options = append(options, azure.WithToken(cfg.Token))
	}

	if cfg.Model != "" {
		options = append(options, azure.WithModel(cfg.Model))
	}

	return azure.New(cfg.URL, options...)
}

func tikaExtractor(cfg extractorConfig) (extractor.Provider, error) {
	var options []tika.Option

	if cfg.Language != "" {
		options = append(options, tika.WithOCR(cfg.Language))
	}

	return tika.New(cfg.URL, options...)
}
