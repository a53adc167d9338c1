// Package main runs the inventory service: REST API, gRPC health and optional pprof server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/abgdnv/inventory/internal/app"
	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/platform/bootstrap"
	"github.com/abgdnv/inventory/internal/platform/config/configloader"
	"github.com/abgdnv/inventory/internal/platform/messaging"
	platformnats "github.com/abgdnv/inventory/internal/platform/nats"
	"github.com/abgdnv/inventory/internal/platform/telemetry"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
)

const serviceName = "inventory"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run loads the configuration, connects the dependencies and serves until ctx is cancelled.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	g, gCtx := errgroup.WithContext(ctx)
	lc := lifecycle{g: g, ctx: gCtx, timeout: cfg.Shutdown.Timeout, logger: logger}

	if cfg.Telemetry.Traces.Enabled {
		tracerProvider, err := telemetry.NewTracerProvider(ctx, serviceName, cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("failed to create tracer provider: %w", err)
		}
		lc.onShutdown("tracer provider", tracerProvider.Shutdown)
	}

	var metricsHandler http.Handler
	if cfg.Telemetry.Metrics.Enabled {
		meterProvider, handler, err := telemetry.NewMeterProvider(serviceName)
		if err != nil {
			return fmt.Errorf("failed to create meter provider: %w", err)
		}
		metricsHandler = handler
		lc.onShutdown("meter provider", meterProvider.Shutdown)
	}

	if cfg.Database.Migrate {
		if err := store.Migrate(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("Database migrations applied")
	}

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database connection pool: %w", err)
	}
	defer dbPool.Close()
	logger.Info("Successfully connected to the database!")

	publisher, closePublisher, err := newPublisher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	deps := app.SetupDependencies(dbPool, publisher, metricsHandler, logger)

	lc.serveHTTP("HTTP server", app.SetupHttpServer(deps, cfg))

	grpcServer, healthChecker := app.SetupGrpcServer(deps, cfg.GRPC)
	g.Go(func() error {
		grpcAddr := ":" + cfg.GRPC.Port
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC port: %w", err)
		}
		logger.Info("gRPC server listening", slog.String("addr", grpcAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		return healthChecker.Run(gCtx)
	})
	lc.onShutdown("gRPC server", func(ctx context.Context) error {
		healthChecker.Shutdown()
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
			return nil
		case <-ctx.Done():
			logger.Warn("gRPC server graceful stop timed out. Forcing stop.")
			grpcServer.Stop()
			return fmt.Errorf("grpc server graceful stop timed out")
		}
	})

	if cfg.PProf.Enabled {
		// nil handler serves http.DefaultServeMux, where net/http/pprof registers itself
		lc.serveHTTP("pprof server", &http.Server{Addr: cfg.PProf.Addr, ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// lifecycle runs components in an errgroup and stops them, each within timeout, once ctx is done.
type lifecycle struct {
	g       *errgroup.Group
	ctx     context.Context
	timeout time.Duration
	logger  *slog.Logger
}

func (l lifecycle) serveHTTP(name string, srv *http.Server) {
	l.g.Go(func() error {
		l.logger.Info(name+" listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	})
	l.onShutdown(name, srv.Shutdown)
}

func (l lifecycle) onShutdown(name string, stop func(context.Context) error) {
	l.g.Go(func() error {
		<-l.ctx.Done()
		l.logger.Info("Shutting down " + name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		if err := stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down %s: %w", name, err)
		}
		l.logger.Info(name + " stopped")
		return nil
	})
}

// newPublisher connects to NATS JetStream when enabled and guards it with a circuit breaker.
// With NATS disabled events are discarded.
func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Nats.Enabled {
		logger.Info("NATS disabled, sale events will not be published")
		return messaging.NoopPublisher{}, func() {}, nil
	}

	nc, err := platformnats.NewClient(cfg.Nats.Url, cfg.Nats.Timeout, platformnats.ConnectionLogging(serviceName, logger)...)
	if err != nil {
		return nil, nil, err
	}
	js, err := platformnats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	streamCtx, cancel := context.WithTimeout(ctx, cfg.Nats.Timeout)
	defer cancel()
	if err := platformnats.EnsureStream(streamCtx, js, cfg.Nats.Stream, messaging.SalesSubjects); err != nil {
		nc.Close()
		return nil, nil, err
	}
	logger.Info("Connected to NATS", slog.String("url", cfg.Nats.Url), slog.String("stream", cfg.Nats.Stream))

	publisher := messaging.NewBreakerPublisher(
		platformnats.NewNatsPublisher(js),
		"nats-publisher",
		cfg.Nats.CircuitBreaker.ConsecutiveFailures,
		gobreaker.Settings{Timeout: cfg.Nats.CircuitBreaker.OpenTimeout},
	)
	closeFn := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("Failed to drain NATS connection", slog.String("error", err.Error()))
		}
	}
	return publisher, closeFn, nil
}
