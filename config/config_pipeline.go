package config

import (
	"errors"
	"strings"
	"time"

	"github.com/adrianliechti/joborder/pkg/customer"
	"github.com/adrianliechti/joborder/pkg/extractor/pdf"
	"github.com/adrianliechti/joborder/pkg/pipeline"
)

type pipelineConfig struct {
	Timeout  string `yaml:"timeout"`
	Attempts *uint  `yaml:"attempts"`

	Sniff *bool `yaml:"sniff"`
}

type vendorConfig struct {
	Brand   string   `yaml:"brand"`
	Phrases []string `yaml:"phrases"`
}

func (cfg *Config) registerPipeline(f *configFile) error {
	config := f.Pipeline

	if config == nil {
		config = &pipelineConfig{}
	}

	timeout, err := parseDuration(config.Timeout, 60*time.Second)

	if err != nil {
		return err
	}

	cfg.timeout = timeout
	cfg.attempts = 2
	cfg.sniff = true

	if config.Attempts != nil {
		if *config.Attempts == 0 {
			return errors.New("pipeline attempts must be positive")
		}

		cfg.attempts = *config.Attempts
	}

	if config.Sniff != nil {
		cfg.sniff = *config.Sniff
	}

	return nil
}

func (cfg *Config) registerVendor(f *configFile) error {
	var options []customer.Option

	if f.Vendor != nil {
		if f.Vendor.Brand != "" {
			options = append(options, customer.WithBrand(strings.ToLower(f.Vendor.Brand)))
		}

		if len(f.Vendor.Phrases) > 0 {
			options = append(options, customer.WithPhrases(f.Vendor.Phrases...))
		}
	}

	cfg.Resolver = customer.New(options...)

	return nil
}

// Pipeline assembles a pipeline over all configured extractors. The backend
// id selects a single output backend; empty uses the configured chain.
func (cfg *Config) Pipeline(backendID string) (*pipeline.Pipeline, error) {
	e, err := cfg.Extractor("")

	if err != nil {
		return nil, err
	}

	b, err := cfg.Backend(backendID)

	if err != nil {
		return nil, err
	}

	options := []pipeline.Option{
		pipeline.WithResolver(cfg.Resolver),
		pipeline.WithUsage(cfg.Usage),
	}

	if cfg.sniff {
		sniffer, err := pdf.New()

		if err != nil {
			return nil, err
		}

		options = append(options, pipeline.WithSniffer(sniffer))
	}

	return pipeline.New(e, cfg.Registry, b, options...)
}
