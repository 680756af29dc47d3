package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"silo-weather/internal/stations"
)

// ListStationsInput defines the query parameters for the station listing endpoint
type ListStationsInput struct {
	Sort string `form:"sort"` // name (default), id or state
}

// handleListStations godoc
// @Summary List all stations
// @Description Retrieve the full station registry, roughly 8000 stations
// @Tags stations
// @Produce json
// @Param sort query string false "Sort field" Enums(name, id, state) default(name)
// @Success 200 {array} types.Station
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stations [get]
func (app *App) handleListStations(c *gin.Context) {
	var input ListStationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sortBy, err := stations.ParseSortOption(input.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := app.stationService.ListAll(sortBy)
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// SearchStationsInput defines the query parameters for the station search endpoint
type SearchStationsInput struct {
	Query string `form:"q" binding:"required"` // Station name text, sanitized to a wildcard fragment
}

// handleSearchStations godoc
// @Summary Search stations by name
// @Description Run a wildcard name search against the station registry. An empty list is a valid answer
// @Tags stations
// @Produce json
// @Param q query string true "Station name text" example(Adel (Waite))
// @Success 200 {array} types.Station
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stations/search [get]
func (app *App) handleSearchStations(c *gin.Context) {
	var input SearchStationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, err := app.stationService.SearchByName(input.Query)
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// NearbyStationsInput defines the query parameters for the nearby stations endpoint
type NearbyStationsInput struct {
	Station  string  `form:"station" binding:"required"`   // Station id or name to center on
	RadiusKm float64 `form:"radius_km" binding:"required"` // Search radius in kilometers
	Sort     string  `form:"sort"`                         // name, id, state or distance (default)
}

// handleNearbyStations godoc
// @Summary List stations near a station
// @Description List stations within a radius of the identified station, each with its distance in kilometers. Zero results is an error
// @Tags stations
// @Produce json
// @Param station query string true "Station id or name" example(23031)
// @Param radius_km query number true "Search radius in kilometers" example(25)
// @Param sort query string false "Sort field" Enums(name, id, state, distance) default(distance)
// @Success 200 {array} types.Station
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stations/nearby [get]
func (app *App) handleNearbyStations(c *gin.Context) {
	var input NearbyStationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sortBy := stations.SortByDistance
	if input.Sort != "" {
		var err error
		sortBy, err = stations.ParseSortOption(input.Sort)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	list, err := app.stationService.ListNearby(input.Station, input.RadiusKm, sortBy)
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// handleStationDetails godoc
// @Summary Get station details
// @Description Retrieve the registry record for one station, identified by id or name, enriched with its IANA timezone
// @Tags stations
// @Produce json
// @Param id path string true "Station id or name" example(23031)
// @Success 200 {object} types.StationDetails
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /stations/{id} [get]
func (app *App) handleStationDetails(c *gin.Context) {
	details, err := app.stationService.GetDetails(c.Param("id"))
	if err != nil {
		app.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
