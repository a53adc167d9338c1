// Package server builds the HTTP and gRPC servers the service listens on.
package server

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/abgdnv/inventory/internal/platform/config"
	"github.com/abgdnv/inventory/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHTTPServer creates an HTTP server listening on every interface at cfg.Port.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a chi router with request id, access log and panic recovery middleware.
// Duplicate and trailing slashes are normalized so /products/ routes like /products.
func NewChiRouter(logger *slog.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(
		web.RequestID,
		web.StructuredLogger(logger),
		web.Recoverer(logger),
		middleware.CleanPath,
		middleware.StripSlashes,
	)
	return mux
}
