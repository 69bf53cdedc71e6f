package config

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/joborder/pkg/session"
	"github.com/adrianliechti/joborder/pkg/session/memory"
	"github.com/adrianliechti/joborder/pkg/session/postgres"
	"github.com/adrianliechti/joborder/pkg/session/sqlite"
)

type sessionConfig struct {
	Type string `yaml:"type"`

	Path  string `yaml:"path"`
	URL   string `yaml:"url"`
	Table string `yaml:"table"`

	TTL string `yaml:"ttl"`
}

func (cfg *Config) registerSessions(ctx context.Context, f *configFile) error {
	config := f.Sessions

	if config == nil {
		config = &sessionConfig{}
	}

	ttl, err := parseDuration(config.TTL, session.DefaultTTL)

	if err != nil {
		return err
	}

	cfg.SessionTTL = ttl

	store, err := createSessions(ctx, *config)

	if err != nil {
		return err
	}

	cfg.Sessions = store

	return nil
}

func createSessions(ctx context.Context, cfg sessionConfig) (session.Store, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "memory":
		return memory.New(), nil

	case "sqlite":
		if cfg.Path == "" {
			return nil, errors.New("sqlite sessions require a path")
		}

		return sqlite.New(ctx, cfg.Path)

	case "postgres":
		var options []postgres.Option

		if cfg.Table != "" {
			options = append(options, postgres.WithTable(cfg.Table))
		}

		return postgres.New(ctx, cfg.URL, options...)

	default:
		return nil, errors.New("invalid session type: " + cfg.Type)
	}
}
