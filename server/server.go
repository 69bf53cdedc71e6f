package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/joborder/config"
	"github.com/adrianliechti/joborder/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config
	http.Handler

	api *api.Handler
}

type pruner interface {
	Prune(ctx context.Context) (int, error)
}

func New(cfg *config.Config) (*Server, error) {
	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	mux := chi.NewMux()

	s := &Server{
		Config:  cfg,
		Handler: mux,

		api: h,
	}

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	s.api.Attach(mux)

	return s, nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	go s.prune(ctx)

	srv := &http.Server{
		Addr:    s.Address,
		Handler: otelhttp.NewHandler(s.Handler, "http"),

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server listening", "address", s.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// prune drops expired sessions in the background for stores that support it.
func (s *Server) prune(ctx context.Context) {
	p, ok := s.Sessions.(pruner)

	if !ok {
		return
	}

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			count, err := p.Prune(ctx)

			if err != nil {
				slog.WarnContext(ctx, "session cleanup failed", "error", err)
				continue
			}

			if count > 0 {
				slog.InfoContext(ctx, "expired sessions removed", "count", count)
			}
		}
	}
}
