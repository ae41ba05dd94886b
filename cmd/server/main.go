package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/config"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/handlers"
	custommw "github.com/vdhanush11/medical-billing-denial-analysis/internal/middleware"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	e := buildServer(cfg)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server",
			"address", address,
			"environment", cfg.Server.Environment,
		)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// setupLogger configures the process-wide slog handler.
func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}

	var handler slog.Handler
	if cfg.Logging.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// buildServer wires the service graph and the route table.
func buildServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware order matters: the trace ID must exist before anything
	// that logs, and panics must be caught before the rate limiter runs.
	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dM", cfg.Upload.MaxFileSizeMB*2)))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, custommw.TraceIDHeader},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"trace_id", custommw.GetTraceID(c),
			)
			return nil
		},
	}))

	datasetRepo := repositories.NewDatasetRepository()
	metrics := services.NewPrometheusMetrics()
	ingestLog := services.NewIngestLogger(slog.Default())
	loader := services.NewLoaderService()
	classifier := services.NewRootCauseClassifier()
	analyzer := services.NewAnalysisService(classifier)
	recommender := services.NewRecommendationService()
	datasetService := services.NewDatasetService(
		loader,
		analyzer,
		datasetRepo,
		metrics,
		ingestLog,
		cfg.Upload.MaxFileSizeBytes(),
	)

	healthHandler := handlers.NewHealthCheckHandler()
	datasetHandler := handlers.NewDatasetHandler(datasetService)
	reportHandler := handlers.NewReportHandler(datasetService, recommender)
	chartHandler := handlers.NewChartHandler(datasetService)
	dashboardHandler := handlers.NewDashboardHandler(cfg.Upload.DashboardHTML)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/", dashboardHandler.RedirectToDashboard)
	e.GET("/dashboard", dashboardHandler.ServeDashboard)
	e.GET("/dashboard/datasets/:id/charts", chartHandler.RenderCharts)

	api := e.Group("/api/v1")
	api.POST("/datasets", datasetHandler.UploadDataset)
	api.GET("/datasets", datasetHandler.ListDatasets)
	api.GET("/datasets/latest", datasetHandler.GetLatestDataset)
	api.GET("/datasets/:id", datasetHandler.GetDataset)
	api.DELETE("/datasets/:id", datasetHandler.DeleteDataset)
	api.GET("/datasets/:id/report", reportHandler.GetReport)
	api.GET("/datasets/:id/summaries/:group", reportHandler.GetSummaryTable)
	api.GET("/datasets/:id/root-causes", reportHandler.GetRootCauses)
	api.GET("/datasets/:id/recommendations", reportHandler.GetRecommendations)
	api.GET("/datasets/:id/claims", reportHandler.ListClaims)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(datasetService, ingestLog)
		api.POST("/dev/sample-dataset", devHandler.GenerateSampleDataset)
		slog.Info("Development endpoints enabled")
	}

	return e
}
