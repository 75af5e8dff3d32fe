// Copyright 2025 The Conjugueur Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP API over a loaded conjugation data
// set. The data set is constructed before the server starts and is never
// mutated afterwards, so handlers read it without locking.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	conjugueur "github.com/conjugueur/conjugueur"
	"github.com/conjugueur/conjugueur/internal/config"
	"github.com/conjugueur/conjugueur/internal/server/middleware"
)

// Server is the conjugation API server.
type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger
	http   *http.Server
}

// New creates a Server serving the given data set.
func New(cfg *config.Config, logger *slog.Logger, data *conjugueur.Conjugueur) *Server {
	h := &handler{data: data}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/verb/{name}", h.verb)
	mux.HandleFunc("GET /api/t/{name}", h.template)
	mux.HandleFunc("GET /api/search", h.search)
	mux.HandleFunc("GET /healthz", h.health)
	mux.Handle("GET /", spaHandler())

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return &Server{
		cfg:    cfg.Server,
		logger: logger,
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      chain(mux),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Run serves requests until ctx is canceled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	s.logger.Info("server exited")
	return nil
}
