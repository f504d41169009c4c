package infra

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HTTPServer owns the API server's lifecycle. All timeouts come from
// configuration; there is no request cancellation below this layer, so the
// write timeout is the only bound on a slow storage round trip.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the server for the configured port and handler.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
	}
}

// Addr returns the listen address the server binds to.
func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

// Start serves requests until Shutdown is called. A graceful close is part
// of normal operation and is not reported as an error.
func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests until
// the context expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
