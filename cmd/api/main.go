package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azizul-haque1/plate-share-server/docs"
	"github.com/Azizul-haque1/plate-share-server/internal/config"
	handlers "github.com/Azizul-haque1/plate-share-server/internal/http/handler"
	"github.com/Azizul-haque1/plate-share-server/internal/http/middleware"
	"github.com/Azizul-haque1/plate-share-server/internal/logging"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
	"github.com/Azizul-haque1/plate-share-server/internal/storage"
	"github.com/Azizul-haque1/plate-share-server/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

// @title Plate Share API
// @version 1.0
// @description Surplus food sharing: listings, featured items and food requests.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.SettingsFromEnv(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			logger.Warn("store close", "error", err)
		}
	}()

	var objStore storage.Storage = storage.Disabled{}
	if cfg.MinIO.Enabled() {
		if objStore, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
			return err
		}
	} else {
		logger.Info("object storage disabled, photo endpoints will answer 503")
	}

	svcs := handlers.Services{
		Listing:  service.NewListingService(st.foods, cfg.FeaturedLimit),
		Foods:    service.NewFoodService(st.foods, objStore),
		Requests: service.NewRequestService(st.requests),
	}

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:      "plate-share-server",
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(fiberrecover.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(middleware.Logger(logger))
	app.Use(prom.Handler())

	handlers.RegisterRoutes(app, st.pinger, prometheus.DefaultGatherer, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	logger.Info("listening", "port", cfg.Port, "store_backend", cfg.StoreBackend)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
