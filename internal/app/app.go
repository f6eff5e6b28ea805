package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lre-analytics/internal/analytics"
	"lre-analytics/internal/builders"
	"lre-analytics/internal/events"
	internalhttp "lre-analytics/internal/http"
	"lre-analytics/internal/models"
	"lre-analytics/internal/percentiles"
	"lre-analytics/internal/reporting"
	"lre-analytics/internal/shared/configs"
	"lre-analytics/internal/shared/filestorages"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/sources"
	"lre-analytics/internal/stores"
	"lre-analytics/internal/streams"
)

const appName = "lre-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	reportJobQueue    *streams.PartitionedQueue[events.ReportRequestedEvent]
	reportJobConsumer streams.ReportJobConsumer
	backgroundCtx     context.Context
	backgroundCancel  context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Initialize report storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage, stores.CacheOptions{
		TTL:      time.Duration(config.ReportCache.TTLSeconds) * time.Second,
		Capacity: config.ReportCache.Capacity,
	})

	// Initialize analytics
	analyticsService, err := NewAnalyticsService(config)
	if err != nil {
		return nil, err
	}

	// Initialize stream queue and consumer
	reportJobQueue := streams.NewPartitionedQueue[events.ReportRequestedEvent](config.Queue.Partitions, config.Queue.Buffer)
	reportBuilder := builders.NewReportBuilder(analyticsService, reportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	reportJobConsumer := streams.NewReportJobConsumer(reportJobQueue, reportBuilder, consumerLogger)

	// Initialize report service
	reportJobProducer := streams.NewReportJobProducer(reportJobQueue)
	reportService := reporting.NewReportService(reportStore, reportJobProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		server:            server,
		reportJobQueue:    reportJobQueue,
		reportJobConsumer: reportJobConsumer,
	}, nil
}

// NewAnalyticsService builds the analytics service of config, shared by the server and the CLI.
func NewAnalyticsService(config *configs.Config) (analytics.AnalyticsService, error) {
	catalog, err := sources.NewCatalog(sources.Config{
		Driver:     config.Source.Driver,
		RunsDir:    config.Source.RunsDir,
		FileFormat: config.Source.FileFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize run catalog: %w", err)
	}

	opts, err := AnalyticsOptions(config.Analytics)
	if err != nil {
		return nil, err
	}
	return analytics.NewAnalyticsService(catalog, opts), nil
}

// AnalyticsOptions maps the analytics config section to service options.
func AnalyticsOptions(cfg configs.AnalyticsConfig) (analytics.Options, error) {
	strategy, err := models.NewStrategyFromString(cfg.Strategy)
	if err != nil {
		return analytics.Options{}, fmt.Errorf("failed to initialize strategy: %w", err)
	}
	if err := analytics.ValidateTargets(cfg.Percentiles); err != nil {
		return analytics.Options{}, fmt.Errorf("failed to initialize percentiles: %w", err)
	}

	return analytics.Options{
		BatchSize:       cfg.BatchSize,
		Strategy:        strategy,
		Percentiles:     cfg.Percentiles,
		ExactMinSamples: cfg.ExactMinSamples,
		Digest: percentiles.DigestConfig{
			Kind:               models.SketchKind(cfg.Digest.Kind),
			Compression:        cfg.Digest.Compression,
			RelativeAccuracy:   cfg.Digest.RelativeAccuracy,
			SignificantFigures: cfg.Digest.SignificantFigures,
			HDRScale:           cfg.Digest.HDRScale,
			HDRMax:             cfg.Digest.HDRMax,
		},
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, source=%s:%s, strategy=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Source.Driver,
			app.config.Source.RunsDir,
			app.config.Analytics.Strategy)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.reportJobConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Drain report jobs within what is left of the shutdown deadline
	app.stopBackground(ctx)

	return nil
}

// stopBackground closes the report job queue and waits for the report in flight on each
// partition. The consumers' context is cancelled only when ctx expires first, so a report
// finishing inside the deadline is saved as completed instead of failed.
func (app *App) stopBackground(ctx context.Context) {
	app.reportJobQueue.Close()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		app.reportJobConsumer.Stop()
	}()

	select {
	case <-stopped:
		app.appLogger.Info().Msg("Background consumers stopped")
	case <-ctx.Done():
		app.appLogger.Warn().Err(ctx.Err()).Msg("Shutdown deadline reached, cancelling background consumers")
		if app.backgroundCancel != nil {
			app.backgroundCancel()
		}
		<-stopped
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
}
