package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	v1 := app.router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", app.handleHealth)

	// Variable catalog
	v1.GET("/variables", app.handleListVariables)

	// Station registry endpoints
	v1.GET("/stations", app.handleListStations)
	v1.GET("/stations/search", app.handleSearchStations)
	v1.GET("/stations/nearby", app.handleNearbyStations)
	v1.GET("/stations/:id", app.handleStationDetails)

	// Weather data endpoints
	v1.GET("/weather", app.handleGetWeatherData)
	v1.GET("/weather/station/:station", app.handleGetStationData)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(app.collector.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
