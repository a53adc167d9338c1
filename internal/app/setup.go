// Package app contains the application setup for the inventory service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/inventory/internal/config"
	platformcfg "github.com/abgdnv/inventory/internal/platform/config"
	"github.com/abgdnv/inventory/internal/platform/messaging"
	"github.com/abgdnv/inventory/internal/platform/server"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	grpcImpl "github.com/abgdnv/inventory/internal/transport/grpc"
	"github.com/abgdnv/inventory/internal/transport/rest"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
)

const httpOperation = "inventory-http"

type Dependencies struct {
	UnitMeasureService service.UnitMeasureService
	ProductService     service.ProductService
	SaleService        service.SaleService
	Store              *store.PgStore
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	Logger         *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, metricsHandler http.Handler, logger *slog.Logger) *Dependencies {
	pgStore := store.NewPgStore(dbPool)

	return &Dependencies{
		UnitMeasureService: service.NewUnitMeasures(pgStore),
		ProductService:     service.NewProducts(pgStore),
		SaleService:        service.NewSales(pgStore, pgStore, publisher),
		Store:              pgStore,
		MetricsHandler:     metricsHandler,
		Logger:             logger,
	}
}

// SetupHttpHandler initializes the routes and middleware of the inventory service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return otelhttp.NewHandler(mux, httpOperation)
}

// wireRoutes sets up the HTTP routes for the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.UnitMeasureService, deps.ProductService, deps.SaleService, deps.Store, deps.Logger)
	handler.RegisterRoutes(mux)
	if deps.MetricsHandler != nil {
		mux.Handle("/metrics", deps.MetricsHandler)
	}
}

// SetupHttpServer creates and configures an HTTP server for the inventory service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, SetupHttpHandler(deps))
}

// SetupGrpcServer initializes the gRPC server with the health service backed by a database checker.
func SetupGrpcServer(deps *Dependencies, cfg platformcfg.GrpcServerConfig) (*grpc.Server, *grpcImpl.HealthChecker) {
	checker := grpcImpl.NewHealthChecker(deps.Store, cfg.HealthInterval, deps.Logger)
	return server.NewGRPCServer(deps.Logger, cfg.ReflectionEnabled, checker.Register), checker
}
