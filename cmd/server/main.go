package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/joborder/config"
	"github.com/adrianliechti/joborder/pkg/otel"
	"github.com/adrianliechti/joborder/server"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "joborder")

	if err != nil {
		panic(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Parse(ctx, *configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
