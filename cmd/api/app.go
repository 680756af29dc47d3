package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"silo-weather/internal/config"
	"silo-weather/internal/metrics"
	"silo-weather/internal/providers/silo"
	"silo-weather/internal/stations"
	"silo-weather/internal/timezone"
	"silo-weather/internal/weather"

	_ "silo-weather/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	collector      *metrics.Collector
	stationService stations.Service
	weatherService weather.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	collector := metrics.NewCollector("silo_weather")

	// One provider client serves both services, with every outbound
	// request instrumented.
	client := silo.NewClientWithBaseURL(
		cfg.Provider.BaseURL,
		&http.Client{
			Timeout:   cfg.Provider.Timeout(),
			Transport: collector.InstrumentTransport(nil),
		},
		logger,
	)

	tzSvc, err := timezone.NewService(logger)
	if err != nil {
		return nil, err
	}
	stationSvc := stations.NewServiceWithProviders(client, tzSvc, logger)
	weatherSvc := weather.NewServiceWithProviders(client, stationSvc, logger)

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		collector:      collector,
		stationService: stationSvc,
		weatherService: weatherSvc,
	}

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(requestLogMiddleware(logger))
	router.Use(metricsMiddleware(collector))

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
