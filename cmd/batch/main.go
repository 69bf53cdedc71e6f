package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/adrianliechti/joborder/config"
	"github.com/adrianliechti/joborder/pkg/otel"

	"github.com/fatih/color"
	"github.com/viant/afs"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	inputFlag := flag.String("input", ".", "directory or bucket url with documents")
	outputFlag := flag.String("output", "output", "directory or bucket url for job orders")
	backendFlag := flag.String("backend", "", "output backend id (default: configured chain)")
	templateFlag := flag.String("template", "auto", "template variant")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := otel.Setup(ctx, "joborder-batch")

	if err != nil {
		color.Red("failed to set up telemetry: %v", err)
		os.Exit(1)
	}

	defer shutdown(context.Background())

	cfg, err := config.Parse(ctx, *configFlag)

	if err != nil {
		color.Red("failed to load config: %v", err)
		os.Exit(1)
	}

	p, err := cfg.Pipeline(*backendFlag)

	if err != nil {
		color.Red("failed to create pipeline: %v", err)
		os.Exit(1)
	}

	b := &batch{
		fs:       afs.New(),
		pipeline: p,

		template: *templateFlag,
	}

	summary, err := b.Run(ctx, *inputFlag, *outputFlag)

	if err != nil {
		color.Red("batch failed: %v", err)
		os.Exit(1)
	}

	color.Green("✓ Generated %d job orders", summary.Succeeded)

	if summary.Failed > 0 {
		color.Yellow("! %d documents failed", summary.Failed)
		os.Exit(2)
	}
}
