package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/adrianliechti/joborder/pkg/layout"
)

type templateConfig struct {
	Layout     string `yaml:"layout"`
	Background string `yaml:"background"`
}

// registerTemplates loads one layout per variant. Layout and background are
// URLs resolved through afs, so templates may live on disk or in a bucket.
func (cfg *Config) registerTemplates(ctx context.Context, f *configFile) error {
	if len(f.Templates) == 0 {
		return errors.New("no templates configured")
	}

	var names []string

	for name := range f.Templates {
		names = append(names, name)
	}

	slices.Sort(names)

	var layouts []*layout.Layout

	for _, name := range names {
		config := f.Templates[name]

		if config.Layout == "" {
			return fmt.Errorf("template %s: missing layout", name)
		}

		l, err := layout.Load(ctx, cfg.fs, config.Layout)

		if err != nil {
			return fmt.Errorf("template %s: %w", name, err)
		}

		l.Name = name
		l.Background = config.Background

		layouts = append(layouts, l)
	}

	registry, err := layout.NewRegistry(layouts...)

	if err != nil {
		return err
	}

	cfg.Registry = registry

	return nil
}
