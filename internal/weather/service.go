// Package weather is the retrieval facade: it validates queries, hands
// them to the provider client and shapes the returned dataset.
package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"silo-weather/internal/config"
	"silo-weather/internal/providers/silo"
	"silo-weather/internal/stations"
	"silo-weather/internal/types"
	"silo-weather/internal/variables"
)

var (
	ErrOutsideCoverage    = errors.New("coordinates are outside the provider coverage area")
	ErrDateOrder          = errors.New("start date is after the finish date")
	ErrBeforeEarliestDate = errors.New("start date predates the earliest provider record")
	ErrUnknownVariable    = errors.New("unknown weather variable")
)

// DataProvider is the slice of the provider client the facade calls.
type DataProvider interface {
	GetDataDrill(latitude, longitude float64, start, finish string, variableKeys []string) (*types.Dataset, error)
	GetPatchedPoint(stationID int, start, finish string, variableKeys []string) (*types.Dataset, error)
}

// StationResolver turns a station identifier into a numeric id.
type StationResolver interface {
	Resolve(identifier string) (int, error)
}

type Service interface {
	// GetWeatherData retrieves daily observations interpolated at a
	// coordinate. Every validation failure happens before any network
	// traffic.
	GetWeatherData(query WeatherQuery) (*types.Dataset, error)

	// GetStationData retrieves daily observations recorded at a station.
	// The identifier is resolved first, so station resolution failures
	// surface here too. Coordinates play no part, so the coverage box is
	// not checked and the result carries no Latitude/Longitude columns.
	GetStationData(query StationQuery) (*types.Dataset, error)
}

type retrievalService struct {
	provider DataProvider
	registry StationResolver
	logger   *slog.Logger
}

func NewService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	client := silo.NewClientWithBaseURL(
		cfg.Provider.BaseURL,
		&http.Client{Timeout: cfg.Provider.Timeout()},
		logger,
	)
	registry, err := stations.NewService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create station registry: %w", err)
	}
	return NewServiceWithProviders(client, registry, logger), nil
}

func NewServiceWithProviders(provider DataProvider, registry StationResolver, logger *slog.Logger) Service {
	return &retrievalService{
		provider: provider,
		registry: registry,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *retrievalService) GetWeatherData(query WeatherQuery) (*types.Dataset, error) {
	if query.Latitude < MinLatitude || query.Latitude > MaxLatitude {
		return nil, fmt.Errorf("%w: latitude %v is outside %v to %v",
			ErrOutsideCoverage, query.Latitude, MinLatitude, MaxLatitude)
	}
	if query.Longitude < MinLongitude || query.Longitude > MaxLongitude {
		return nil, fmt.Errorf("%w: longitude %v is outside %v to %v",
			ErrOutsideCoverage, query.Longitude, MinLongitude, MaxLongitude)
	}

	start, finish, err := checkDates(query.Start, query.Finish)
	if err != nil {
		return nil, err
	}
	keys, err := checkVariables(query.Variables)
	if err != nil {
		return nil, err
	}

	point := types.NewCoords(query.Latitude, query.Longitude).Rounded(coordinateDecimals)

	s.logger.Debug("running data drill query",
		"latitude", point.Latitude,
		"longitude", point.Longitude,
		"start", start,
		"finish", finish,
		"variables", len(keys),
	)

	dataset, err := s.provider.GetDataDrill(point.Latitude, point.Longitude, start, finish, keys)
	if err != nil {
		s.logger.Error("data drill query failed", "error", err)
		return nil, fmt.Errorf("failed to retrieve weather data: %w", err)
	}

	applyNameStyle(dataset, query.MachineNames)
	return dataset, nil
}

func (s *retrievalService) GetStationData(query StationQuery) (*types.Dataset, error) {
	stationID, err := s.registry.Resolve(query.Station)
	if err != nil {
		return nil, err
	}

	start, finish, err := checkDates(query.Start, query.Finish)
	if err != nil {
		return nil, err
	}
	keys, err := checkVariables(query.Variables)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("running patched point query",
		"station", stationID,
		"start", start,
		"finish", finish,
		"variables", len(keys),
	)

	dataset, err := s.provider.GetPatchedPoint(stationID, start, finish, keys)
	if err != nil {
		s.logger.Error("patched point query failed", "station", stationID, "error", err)
		return nil, fmt.Errorf("failed to retrieve station data: %w", err)
	}

	applyNameStyle(dataset, query.MachineNames)
	return dataset, nil
}

// checkDates applies the shared date rules and returns both dates in the
// provider request format. A zero finish date means today.
func checkDates(start, finish time.Time) (string, string, error) {
	if finish.IsZero() {
		finish = time.Now()
	}
	if start.After(finish) {
		return "", "", fmt.Errorf("%w: %s is after %s",
			ErrDateOrder, start.Format(requestDateFormat), finish.Format(requestDateFormat))
	}
	if start.Before(earliestDate) {
		return "", "", fmt.Errorf("%w: %s predates %s",
			ErrBeforeEarliestDate, start.Format(requestDateFormat), earliestDate.Format(requestDateFormat))
	}
	return start.Format(requestDateFormat), finish.Format(requestDateFormat), nil
}

// checkVariables validates the requested keys against the catalog,
// failing on the first unknown key. An empty request means all of them.
func checkVariables(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return variables.Keys(), nil
	}
	for _, key := range keys {
		if !variables.IsValid(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, key)
		}
	}
	return keys, nil
}

func applyNameStyle(dataset *types.Dataset, machineNames bool) {
	if machineNames {
		dataset.RenameAll(types.MachineName)
	}
}
