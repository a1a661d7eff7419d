package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"chartbox/internal/platform/config"
	"chartbox/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the listener and the root router
type Server struct {
	router Router
	srv    *stdhttp.Server
}

// NewServer builds the API server from service config (reads API_PORT)
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	return &Server{
		router: AdaptChi(mux),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router is the mounting surface for the API
func (s *Server) Router() Router { return s.router }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until the listener fails or ctx is canceled; cancellation
// drains in-flight requests before returning
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.srv.Addr).Msg("http listening")

	done := make(chan error, 1)
	go func() { done <- s.srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		drain, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(drain)
	case err := <-done:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
