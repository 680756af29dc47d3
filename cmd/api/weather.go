package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"silo-weather/internal/types"
	"silo-weather/internal/weather"
)

const (
	queryDateFormat = "2006-01-02"

	namesPretty  = "pretty"
	namesMachine = "machine"

	formatJSON = "json"
	formatCSV  = "csv"
)

// GetWeatherDataInput defines the query parameters for the coordinate weather endpoint
type GetWeatherDataInput struct {
	Latitude  float64 `form:"lat" binding:"required"`   // Latitude in decimal degrees
	Longitude float64 `form:"lon" binding:"required"`   // Longitude in decimal degrees
	Start     string  `form:"start" binding:"required"` // First date, YYYY-MM-DD
	Finish    string  `form:"finish"`                   // Last date, YYYY-MM-DD, default today
	Variables string  `form:"variables"`                // Comma separated variable keys, default all
	Names     string  `form:"names"`                    // Column naming: pretty (default) or machine
	Format    string  `form:"format"`                   // Response format: json (default) or csv
}

// handleGetWeatherData godoc
// @Summary Get weather data by coordinates
// @Description Retrieve daily weather observations interpolated at a coordinate within the provider's Australian coverage grid
// @Tags weather
// @Produce json
// @Produce text/csv
// @Param lat query number true "Latitude in decimal degrees" example(-34.9683)
// @Param lon query number true "Longitude in decimal degrees" example(138.6356)
// @Param start query string true "First date (YYYY-MM-DD)" example(2020-01-01)
// @Param finish query string false "Last date (YYYY-MM-DD), defaults to today" example(2020-01-31)
// @Param variables query string false "Comma separated variable keys, defaults to all" example(rainfall,max_temp)
// @Param names query string false "Column naming" Enums(pretty, machine) default(pretty)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} types.Dataset
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather [get]
func (app *App) handleGetWeatherData(c *gin.Context) {
	var input GetWeatherDataInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := weather.WeatherQuery{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Variables: splitVariablesParam(input.Variables),
	}

	var err error
	if query.Start, err = parseDateParam(input.Start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Finish != "" {
		if query.Finish, err = parseDateParam(input.Finish); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if query.MachineNames, err = parseNamesParam(input.Names); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := parseFormatParam(input.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset, err := app.weatherService.GetWeatherData(query)
	if err != nil {
		app.writeError(c, err)
		return
	}

	app.writeDataset(c, dataset, format, "weather.csv")
}

// GetStationDataInput defines the query parameters for the station weather endpoint
type GetStationDataInput struct {
	Start     string `form:"start" binding:"required"` // First date, YYYY-MM-DD
	Finish    string `form:"finish"`                   // Last date, YYYY-MM-DD, default today
	Variables string `form:"variables"`                // Comma separated variable keys, default all
	Names     string `form:"names"`                    // Column naming: pretty (default) or machine
	Format    string `form:"format"`                   // Response format: json (default) or csv
}

// handleGetStationData godoc
// @Summary Get weather data by station
// @Description Retrieve daily weather observations recorded at a station, identified by id or name. The result has no coordinate columns
// @Tags weather
// @Produce json
// @Produce text/csv
// @Param station path string true "Station id or name" example(23031)
// @Param start query string true "First date (YYYY-MM-DD)" example(2020-01-01)
// @Param finish query string false "Last date (YYYY-MM-DD), defaults to today" example(2020-01-31)
// @Param variables query string false "Comma separated variable keys, defaults to all" example(rainfall,max_temp)
// @Param names query string false "Column naming" Enums(pretty, machine) default(pretty)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} types.Dataset
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/station/{station} [get]
func (app *App) handleGetStationData(c *gin.Context) {
	var input GetStationDataInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := weather.StationQuery{
		Station:   c.Param("station"),
		Variables: splitVariablesParam(input.Variables),
	}

	var err error
	if query.Start, err = parseDateParam(input.Start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Finish != "" {
		if query.Finish, err = parseDateParam(input.Finish); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if query.MachineNames, err = parseNamesParam(input.Names); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := parseFormatParam(input.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset, err := app.weatherService.GetStationData(query)
	if err != nil {
		app.writeError(c, err)
		return
	}

	app.writeDataset(c, dataset, format, "station-data.csv")
}

func parseDateParam(value string) (time.Time, error) {
	t, err := time.Parse(queryDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return t, nil
}

func splitVariablesParam(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}

func parseNamesParam(value string) (bool, error) {
	switch value {
	case "", namesPretty:
		return false, nil
	case namesMachine:
		return true, nil
	default:
		return false, fmt.Errorf("invalid names option %q, want %s or %s", value, namesPretty, namesMachine)
	}
}

func parseFormatParam(value string) (string, error) {
	switch value {
	case "", formatJSON:
		return formatJSON, nil
	case formatCSV:
		return formatCSV, nil
	default:
		return "", fmt.Errorf("invalid format %q, want %s or %s", value, formatJSON, formatCSV)
	}
}

// writeDataset renders the dataset as JSON or as a CSV attachment.
func (app *App) writeDataset(c *gin.Context, dataset *types.Dataset, format, filename string) {
	if format == formatCSV {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := dataset.WriteCSV(c.Writer); err != nil {
			app.logger.Error("failed to stream csv", "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, dataset)
}
