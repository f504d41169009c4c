package infra

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func testServerConfig() *Config {
	return &Config{
		Port:             "5000",
		HTTPReadTimeout:  15 * time.Second,
		HTTPWriteTimeout: 30 * time.Second,
		HTTPIdleTimeout:  60 * time.Second,
	}
}

func TestNewHTTPServerAddr(t *testing.T) {
	srv := NewHTTPServer(testServerConfig(), http.NewServeMux())
	if srv.Addr() != ":5000" {
		t.Fatalf("Addr() = %q, want %q", srv.Addr(), ":5000")
	}
}

func TestStartAfterShutdownIsNotAnError(t *testing.T) {
	srv := NewHTTPServer(testServerConfig(), http.NewServeMux())

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	// The underlying server reports ErrServerClosed immediately; Start must
	// treat that as a normal stop.
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() after shutdown = %v, want nil", err)
	}
}
