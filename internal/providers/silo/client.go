// Package silo is the HTTP client for the SILO gridded climate data
// service: URL construction for data-drill (coordinate) and patched-point
// (station) queries, station registry lookups, and parsing of the
// delimited-text responses into datasets.
package silo

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"silo-weather/internal/types"
	"silo-weather/internal/variables"
)

// API docs: https://www.longpaddock.qld.gov.au/silo/api-documentation/
// Sample request: https://www.longpaddock.qld.gov.au/cgi-bin/silo/DataDrillDataset.php?format=csv&lat=-34.9683&lon=138.6356&start=20200101&finish=20200131&comment=RX
const (
	// DefaultBaseURL is the provider's cgi-bin root; the two dataset
	// resources hang off it.
	DefaultBaseURL = "https://www.longpaddock.qld.gov.au/cgi-bin/silo"

	dataDrillResource    = "DataDrillDataset.php"
	patchedPointResource = "PatchedPointDataset.php"

	// DefaultTimeout bounds a single blocking request. The service can be
	// slow on large date ranges.
	DefaultTimeout = 60 * time.Second

	// The provider expects these on every request. They are public
	// placeholder values published in its API docs, not secrets.
	requestUsername = "apirequest@silo-weather.example"
	requestPassword = "apirequest"

	csvFormat = "csv"
)

// Client talks to the SILO service. It is stateless and safe for
// concurrent use; every call issues exactly one blocking GET with no
// retries and no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient returns a client against the production endpoint.
func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, &http.Client{Timeout: DefaultTimeout}, logger)
}

// NewClientWithBaseURL wires a custom endpoint and HTTP client. The config
// layer uses it to apply configured timeouts; tests use it to point the
// client at a local server.
func NewClientWithBaseURL(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "silo-client"),
	}
}

// DataDrillURL builds a coordinate (gridded interpolation) query URL.
//
// It performs no validation: malformed dates, out-of-range coordinates and
// unknown variable keys all still produce a well-formed URL. Garbage in,
// garbage out; validation belongs to the caller.
func (c *Client) DataDrillURL(latitude, longitude float64, start, finish string, variableKeys []string) (string, error) {
	extra := url.Values{}
	extra.Set("lat", formatCoord(latitude))
	extra.Set("lon", formatCoord(longitude))
	return c.dataURL(dataDrillResource, start, finish, variableKeys, extra)
}

// PatchedPointURL builds a station (observed data) query URL. Same
// garbage-in, garbage-out contract as DataDrillURL.
func (c *Client) PatchedPointURL(stationID int, start, finish string, variableKeys []string) (string, error) {
	extra := url.Values{}
	extra.Set("station", strconv.Itoa(stationID))
	return c.dataURL(patchedPointResource, start, finish, variableKeys, extra)
}

// StationSearchURL builds a registry name search. The fragment is sent as
// given; sanitization is the registry's business.
func (c *Client) StationSearchURL(nameFrag string) (string, error) {
	params := url.Values{}
	params.Set("format", "name")
	params.Set("nameFrag", nameFrag)
	return c.registryURL(params)
}

// NearbyStationsURL builds a registry proximity query.
func (c *Client) NearbyStationsURL(stationID int, radiusKm float64) (string, error) {
	params := url.Values{}
	params.Set("format", "near")
	params.Set("station", strconv.Itoa(stationID))
	params.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	return c.registryURL(params)
}

// StationByIDURL builds a single-station detail query.
func (c *Client) StationByIDURL(stationID int) (string, error) {
	params := url.Values{}
	params.Set("format", "id")
	params.Set("station", strconv.Itoa(stationID))
	return c.registryURL(params)
}

func (c *Client) dataURL(resource, start, finish string, variableKeys []string, extra url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(resource)

	q := u.Query()
	q.Set("format", csvFormat)
	q.Set("username", requestUsername)
	q.Set("password", requestPassword)
	q.Set("start", stripDateSeparators(start))
	q.Set("finish", stripDateSeparators(finish))
	q.Set("comment", variables.Codes(variableKeys))
	for key, vals := range extra {
		q.Set(key, vals[0])
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) registryURL(params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(patchedPointResource)

	q := u.Query()
	q.Set("username", requestUsername)
	q.Set("password", requestPassword)
	for key, vals := range params {
		q.Set(key, vals[0])
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// GetDataDrill fetches and normalizes gridded weather data for a
// coordinate point.
func (c *Client) GetDataDrill(latitude, longitude float64, start, finish string, variableKeys []string) (*types.Dataset, error) {
	u, err := c.DataDrillURL(latitude, longitude, start, finish, variableKeys)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch(u)
	if err != nil {
		return nil, err
	}
	return ParseWeatherData(body)
}

// GetPatchedPoint fetches and normalizes observed weather data for a
// station.
func (c *Client) GetPatchedPoint(stationID int, start, finish string, variableKeys []string) (*types.Dataset, error) {
	u, err := c.PatchedPointURL(stationID, start, finish, variableKeys)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch(u)
	if err != nil {
		return nil, err
	}
	return ParseWeatherData(body)
}

// SearchStations runs a registry name search. Zero matches is a valid
// empty result.
func (c *Client) SearchStations(nameFrag string) ([]types.Station, error) {
	u, err := c.StationSearchURL(nameFrag)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch(u)
	if err != nil {
		return nil, err
	}
	return ParseStations(body)
}

// NearbyStations lists stations within radiusKm of a station. Zero matches
// is returned as an empty slice; whether that is an error is the caller's
// call.
func (c *Client) NearbyStations(stationID int, radiusKm float64) ([]types.Station, error) {
	u, err := c.NearbyStationsURL(stationID, radiusKm)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch(u)
	if err != nil {
		return nil, err
	}
	return ParseStations(body)
}

// StationByID fetches the registry record for one station.
func (c *Client) StationByID(stationID int) (types.Station, error) {
	u, err := c.StationByIDURL(stationID)
	if err != nil {
		return types.Station{}, err
	}
	body, err := c.fetch(u)
	if err != nil {
		return types.Station{}, err
	}
	stations, err := ParseStations(body)
	if err != nil {
		return types.Station{}, err
	}
	if len(stations) == 0 {
		return types.Station{}, fmt.Errorf("no station record returned for id %d", stationID)
	}
	return stations[0], nil
}

// fetch issues one blocking GET and returns the raw body. Transport
// failures wrap ErrConnectionFailed; non-200 responses go through the same
// error-page classification as 200 bodies, because the provider reports
// most domain errors on 200 pages.
func (c *Client) fetch(u string) (string, error) {
	c.logger.Debug("requesting", "url", u)

	resp, err := c.httpClient.Get(u)
	if err != nil {
		c.logger.Error("request failed", "url", u, "error", err)
		return "", fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrConnectionFailed, err)
	}
	body := string(raw)

	if resp.StatusCode != http.StatusOK {
		if err := classify(body); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrServerFailure, resp.StatusCode, snippet(body))
	}
	return body, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stripDateSeparators turns ISO dates into the provider's compact YYYYMMDD
// form. Anything without separators passes through unchanged.
func stripDateSeparators(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
