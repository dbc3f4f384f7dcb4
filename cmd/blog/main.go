// @title           Victor Bona Blog API
// @version         1.0
// @description     +1 counter, health and Prometheus endpoints of the blog server.

// @contact.name   Victor Bona
// @contact.email  victor@victorbona.dev

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"

	_ "blog-v0/docs" // Swagger docs

	apiserver "blog-v0/internal/api"
	apimiddleware "blog-v0/internal/api/middleware"
	configapp "blog-v0/internal/config/application"
	contentapp "blog-v0/internal/content/application"
	contentinfra "blog-v0/internal/content/infrastructure"
	"blog-v0/internal/infrastructure/database"
	"blog-v0/internal/infrastructure/logger"
	metricsapp "blog-v0/internal/metrics/application"
	metricsinfra "blog-v0/internal/metrics/infrastructure"
	plusoneapp "blog-v0/internal/plusone/application"
	plusonedomain "blog-v0/internal/plusone/domain"
	plusoneinfra "blog-v0/internal/plusone/infrastructure"
	"blog-v0/internal/schema"
	sharedlogger "blog-v0/internal/shared/logger"
	taggingapp "blog-v0/internal/tagging/application"
	tagginginfra "blog-v0/internal/tagging/infrastructure"
	"blog-v0/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func newApp() *cli.App {
	return &cli.App{
		Name:  "blog",
		Usage: "personal blog server with request metrics and +1 counters",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Usage: "HTTP port (BLOG_PORT)"},
					&cli.StringFlag{Name: "database-url", Usage: "SQLite path or postgres:// URL (DATABASE_URL)"},
					&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR (BLOG_LOG_LEVEL)"},
					&cli.StringFlag{Name: "log-format", Usage: "text or json (BLOG_LOG_FORMAT)"},
					&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path (BLOG_LOG_OUTPUT)"},
					&cli.StringFlag{Name: "content-dir", Usage: "directory with posts/, articles.yaml and projects.yaml (BLOG_CONTENT_DIR)"},
					&cli.BoolFlag{Name: "dev", Usage: "enable development mode with Swagger UI (BLOG_DEV_MODE)"},
					&cli.StringFlag{Name: "env-file", Usage: "path to a .env file", Value: ".env"},
				},
				Action: serve,
			},
		},
	}
}

func serve(c *cli.Context) error {
	// .env is read before anything else so it can feed the logger settings
	bootLogger := logger.DefaultLogger()
	configapp.LoadEnvFile(bootLogger, c.String("env-file"))

	runtimeCfg := configapp.LoadRuntimeConfig(configapp.Flags{
		Port:        c.String("port"),
		DatabaseURL: c.String("database-url"),
		LogLevel:    c.String("log-level"),
		LogFormat:   c.String("log-format"),
		LogOutput:   c.String("log-output"),
		ContentDir:  c.String("content-dir"),
		DevMode:     c.Bool("dev"),
	})

	appLogger := logger.New(runtimeCfg.LogLevel, runtimeCfg.LogFormat, runtimeCfg.LogOutput)
	logger.SetDefaultLogger(appLogger)

	if err := runtimeCfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", "err", err)
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger.Info("Starting blog",
		"version", runtimeCfg.ServiceVersion,
		"port", runtimeCfg.Port,
		"dev_mode", runtimeCfg.DevMode,
	)

	sigCtx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Tracing
	tracer, err := telemetry.Setup(sigCtx, appLogger, telemetry.Config{
		Endpoint:       runtimeCfg.OTLPEndpoint,
		SamplerRatio:   runtimeCfg.SamplerRatio,
		ServiceName:    runtimeCfg.ServiceName,
		ServiceVersion: runtimeCfg.ServiceVersion,
	})
	if err != nil {
		appLogger.Error("Failed to set up tracing", "err", err)
		return fmt.Errorf("failed to set up tracing: %w", err)
	}

	// Metrics
	registry := metricsinfra.Default(runtimeCfg.ServiceName)

	// Like store
	likeRepo, closeStore, err := openLikeStore(sigCtx, appLogger, runtimeCfg, registry.Registerer())
	if err != nil {
		shutdownTracer(appLogger, tracer)
		return err
	}
	defer closeStore()

	// Content
	appLogger.Debug("Loading content", "dir", runtimeCfg.ContentDir)
	contentService := contentapp.NewService(appLogger, contentinfra.NewFSRepository(os.DirFS(runtimeCfg.ContentDir)))
	if err := contentService.Load(sigCtx); err != nil {
		appLogger.Error("Failed to load content", "dir", runtimeCfg.ContentDir, "err", err)
		shutdownTracer(appLogger, tracer)
		return err
	}

	var tracerProvider trace.TracerProvider
	if tracer.Enabled() {
		tracerProvider = tracer
	}

	var limiter *apimiddleware.LimiterStore
	if runtimeCfg.PlusOneRPS > 0 {
		limiter = apimiddleware.NewLimiterStore(runtimeCfg.PlusOneRPS, runtimeCfg.PlusOneBurst)
		limiter.StartJanitor(sigCtx, 2*time.Minute)
	}

	site := runtimeCfg.Site()

	appLogger.Debug("Initializing API server")
	apiServer, err := apiserver.NewServer(appLogger, runtimeCfg, apiserver.Dependencies{
		Content:  contentService,
		PlusOne:  plusoneapp.NewService(appLogger, likeRepo, runtimeCfg.StoreTimeout),
		Recorder: metricsapp.NewRecorder(appLogger, registry),
		Gatherer: registry.Gatherer(),
		Tagger: taggingapp.NewTagger(
			site.ReferrerDomains(),
			tagginginfra.NewUserAgentParser(),
			tagginginfra.NewBotDetector(),
		),
		Tracer:  tracerProvider,
		Limiter: limiter,
	})
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		shutdownTracer(appLogger, tracer)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	// Start API server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("Blog started successfully, waiting for shutdown signal")

	return waitAndShutdown(sigCtx, appLogger, serverErrChan, apiServer, tracer)
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// waitAndShutdown blocks until ctx is cancelled or the server fails, then
// stops the server (signal case only) and flushes the tracer in both cases.
func waitAndShutdown(ctx context.Context, appLogger sharedlogger.Logger, serverErr <-chan error, server, tracer shutdowner) error {
	var runErr error

	select {
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("API server shutdown error: %w", err)
		}
	case err := <-serverErr:
		appLogger.Error("Server error received", "err", err)
		runErr = err
	}

	if err := shutdownTracer(appLogger, tracer); err != nil {
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		appLogger.Info("Graceful shutdown completed")
	}
	return runErr
}

// shutdownTracer flushes pending spans with a fresh timeout
func shutdownTracer(appLogger sharedlogger.Logger, tracer shutdowner) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := tracer.Shutdown(ctx); err != nil {
		appLogger.Error("Tracer shutdown error", "err", err)
		return fmt.Errorf("tracer shutdown error: %w", err)
	}
	return nil
}

// openLikeStore picks Redis when BLOG_REDIS_ADDR is set, otherwise the SQL
// database behind DATABASE_URL.
func openLikeStore(ctx context.Context, appLogger *logger.Logger, cfg *configapp.RuntimeConfig, reg prometheus.Registerer) (plusonedomain.Repository, func(), error) {
	if cfg.RedisAddr != "" {
		appLogger.Debug("Connecting to redis", "addr", cfg.RedisAddr)
		client, err := plusoneinfra.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			appLogger.Error("Failed to connect to redis", "err", err)
			return nil, nil, err
		}
		return plusoneinfra.NewRedisRepository(client), func() { client.Close() }, nil
	}

	dialect := database.DialectFor(cfg.DatabaseURL)
	appLogger.Debug("Connecting to database", "dialect", dialect)
	db, dialect, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		appLogger.Error("Failed to connect to database", "err", err)
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	appLogger.Debug("Initializing database schema")
	if err := schema.Apply(ctx, db, dialect); err != nil {
		db.Close()
		appLogger.Error("Failed to initialize schema", "err", err)
		return nil, nil, err
	}
	appLogger.Debug("Database schema initialized")

	if err := reg.Register(collectors.NewDBStatsCollector(db, string(dialect))); err != nil {
		appLogger.Warn("Failed to register database stats collector", "err", err)
	}

	return plusoneinfra.NewSQLRepository(db, dialect), func() { db.Close() }, nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
