package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	api "blog-v0/internal/api/application"
	"blog-v0/internal/api/handlers"
	apimiddleware "blog-v0/internal/api/middleware"
	configapp "blog-v0/internal/config/application"
	contentapp "blog-v0/internal/content/application"
	metricsapp "blog-v0/internal/metrics/application"
	plusoneapp "blog-v0/internal/plusone/application"
	sharedlogger "blog-v0/internal/shared/logger"
	"blog-v0/internal/shared/validation"
)

// Dependencies are the application services the server routes to
type Dependencies struct {
	Content  *contentapp.Service
	PlusOne  *plusoneapp.Service
	Recorder *metricsapp.Recorder
	Gatherer prometheus.Gatherer
	Tagger   apimiddleware.RequestTagger
	// Optional
	Tracer  trace.TracerProvider
	Limiter *apimiddleware.LimiterStore
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	deps Dependencies,
) (*Server, error) {
	site := runtimeCfg.Site()
	if err := validation.Check(context.Background(), &site, "site"); err != nil {
		return nil, err
	}
	if deps.Content == nil || deps.PlusOne == nil || deps.Recorder == nil || deps.Gatherer == nil || deps.Tagger == nil {
		return nil, fmt.Errorf("server dependencies are incomplete")
	}

	// Initialize handlers
	pageHandler, err := handlers.NewPageHandler(site, deps.Content, deps.Recorder)
	if err != nil {
		return nil, err
	}
	feedHandler := handlers.NewFeedHandler(contentapp.NewFeeds(site, deps.Content))
	plusOneHandler := handlers.NewPlusOneHandler(deps.PlusOne)
	metricsHandler := handlers.NewMetricsHandler(api.NewMetricsService(deps.Gatherer))

	// Setup chi router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// HTTP logging middleware - need concrete slog.Logger for httplog
	// Type assert to infrastructure logger to get underlying slog.Logger
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:             slog.LevelDebug,
		Schema:            httplog.SchemaECS.Concise(true),
		LogRequestHeaders: []string{}, // Log no headers by default to reduce verbosity
	}))
	r.Use(handlers.RequestLogger(slogLogger))
	r.Use(middleware.StripSlashes)

	// Classification only; recording happens when a page renders
	r.Use(apimiddleware.Tagging(deps.Tagger))

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
		})
	}

	r.Get("/health", handlers.Health)
	r.With(apimiddleware.BearerTokenAuth(runtimeCfg.MetricsToken)).Get("/metrics", metricsHandler.Scrape)

	r.Route("/api/plusone", func(r chi.Router) {
		r.Get("/{slug}", plusOneHandler.GetCount)
		r.With(apimiddleware.RateLimit(deps.Limiter)).Post("/{slug}", plusOneHandler.Increment)
	})

	// Feeds
	r.Get("/sitemap.xml", feedHandler.Sitemap)
	r.Get("/rss", feedHandler.RSS)
	r.Get("/robots.txt", feedHandler.Robots)
	r.Get("/llms.txt", feedHandler.LLMsTxt)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/blog", pageHandler.BlogIndex)
	r.Get("/blog/{slug}", pageHandler.BlogPost)
	r.Get("/blog/tag/{tag}", pageHandler.Tag)
	r.Get("/articles", pageHandler.Articles)
	r.Get("/articles/{slug}", pageHandler.Article)
	r.Get("/projects", pageHandler.Projects)
	r.NotFound(pageHandler.NotFound)

	var handler http.Handler = r
	if deps.Tracer != nil {
		handler = otelhttp.NewHandler(r, "blog",
			otelhttp.WithTracerProvider(deps.Tracer),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "HTTP " + r.Method
			}),
		)
	}

	httpServer := &http.Server{
		Addr:         ":" + runtimeCfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"port", runtimeCfg.Port,
		"dev_mode", runtimeCfg.DevMode,
		"metrics_auth", runtimeCfg.MetricsToken != "",
		"plusone_rate_limit", deps.Limiter != nil,
		"middleware", []string{"RequestID", "RealIP", "Recoverer", "httplog", "StripSlashes", "Tagging"},
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
