package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"silo-weather/internal/providers/silo"
	"silo-weather/internal/stations"
	"silo-weather/internal/weather"
)

// statusForError maps sentinel errors onto HTTP status codes: local
// validation problems are the client's fault, provider failures are a
// bad gateway, anything unrecognized is internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, stations.ErrStationNotFound):
		return http.StatusNotFound
	case errors.Is(err, stations.ErrAmbiguousStation):
		return http.StatusConflict
	case errors.Is(err, stations.ErrInvalidSortOption),
		errors.Is(err, stations.ErrNoStationsInRadius),
		errors.Is(err, weather.ErrOutsideCoverage),
		errors.Is(err, weather.ErrDateOrder),
		errors.Is(err, weather.ErrBeforeEarliestDate),
		errors.Is(err, weather.ErrUnknownVariable):
		return http.StatusBadRequest
	case errors.Is(err, silo.ErrInvalidDates),
		errors.Is(err, silo.ErrInvalidCoordinates),
		errors.Is(err, silo.ErrInvalidStation),
		errors.Is(err, silo.ErrConnectionFailed),
		errors.Is(err, silo.ErrServerFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its mapped status. Details of internal
// errors stay in the logs.
func (app *App) writeError(c *gin.Context, err error) {
	status := statusForError(err)

	switch {
	case status == http.StatusInternalServerError:
		app.logger.Error("request failed",
			"request_id", c.GetString(contextRequestID),
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	case status == http.StatusBadGateway:
		app.logger.Error("provider request failed",
			"request_id", c.GetString(contextRequestID),
			"path", c.Request.URL.Path,
			"error", err,
		)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
