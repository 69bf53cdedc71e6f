package config

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/customer"
	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/otel"
	"github.com/adrianliechti/joborder/pkg/session"

	"github.com/viant/afs"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Usage *otel.Usage

	Sessions   session.Store
	SessionTTL time.Duration

	Registry *layout.Registry
	Resolver *customer.Resolver

	fs afs.Service

	timeout  time.Duration
	attempts uint
	sniff    bool

	extractors map[string]extractor.Provider
	backends   map[string]backend.Renderer
}

func Parse(ctx context.Context, path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",

		Usage: otel.NewUsage(),

		fs: afs.New(),
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerPipeline(file); err != nil {
		return nil, err
	}

	if err := c.registerVendor(file); err != nil {
		return nil, err
	}

	if err := c.registerExtractors(ctx, file); err != nil {
		return nil, err
	}

	if err := c.registerBackends(file); err != nil {
		return nil, err
	}

	if err := c.registerTemplates(ctx, file); err != nil {
		return nil, err
	}

	if err := c.registerSessions(ctx, file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Pipeline *pipelineConfig `yaml:"pipeline"`
	Vendor   *vendorConfig   `yaml:"vendor"`

	Extractors yaml.Node `yaml:"extractors"`
	Backends   yaml.Node `yaml:"backends"`

	Templates map[string]templateConfig `yaml:"templates"`

	Sessions *sessionConfig `yaml:"sessions"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parseData(data)
}

func parseData(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

func parseDuration(val string, fallback time.Duration) (time.Duration, error) {
	if val == "" {
		return fallback, nil
	}

	return time.ParseDuration(val)
}
