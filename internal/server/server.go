// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

// SettingsSource returns the current settings document. It is called per
// request; implementations must be safe for concurrent use.
type SettingsSource func() *settings.Settings

// Server is the admin HTTP server.
type Server struct {
	http   *http.Server
	log    *logger.Logger
	source SettingsSource
}

// NewServer builds an admin server listening on addr.
func NewServer(addr string, source SettingsSource, log *logger.Logger) *Server {
	s := &Server{
		log:    log,
		source: source,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// RunServer serves until Shutdown is called or the listener fails.
func (s *Server) RunServer() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("admin server listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("admin server: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("admin server shutdown: %w", err)
	}

	return nil
}
