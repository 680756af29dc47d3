// Package stations is the station registry: it resolves free-text or
// numeric station identifiers against the provider's catalog of physical
// weather stations and serves listing, search and proximity queries.
package stations

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"silo-weather/internal/config"
	"silo-weather/internal/providers/silo"
	"silo-weather/internal/timezone"
	"silo-weather/internal/types"
)

var (
	// ErrStationNotFound means a name search matched nothing.
	ErrStationNotFound = errors.New("station not found")

	// ErrAmbiguousStation means a name search matched more than one
	// station; the caller has to narrow the name or use the numeric id.
	ErrAmbiguousStation = errors.New("ambiguous station name")

	// ErrInvalidSortOption means the sort key is not valid for the call.
	ErrInvalidSortOption = errors.New("invalid sort option")

	// ErrNoStationsInRadius means a proximity query came back empty,
	// which points at a bad station id or radius rather than a
	// legitimately empty answer.
	ErrNoStationsInRadius = errors.New("no data returned, check the station id and radius")
)

const (
	// referenceStationID is Alice Springs Airport, near the continental
	// center. The full listing is a proximity query around it with a
	// radius that covers the whole grid.
	referenceStationID = 15590
	listAllRadiusKm    = 10000

	// The server only matches name fragments up to this length.
	maxNameFragLen = 10
)

// RegistryProvider is the slice of the provider client the registry needs.
type RegistryProvider interface {
	SearchStations(nameFrag string) ([]types.Station, error)
	NearbyStations(stationID int, radiusKm float64) ([]types.Station, error)
	StationByID(stationID int) (types.Station, error)
}

// TimezoneResolver derives an IANA timezone name from coordinates.
type TimezoneResolver interface {
	Lookup(latitude, longitude float64) (string, error)
}

type Service interface {
	// Resolve turns a station identifier into a numeric id. Numeric text
	// passes through unchecked; validity of a number is only discovered
	// when a data query fails. Free text must match exactly one station.
	Resolve(identifier string) (int, error)

	// SearchByName runs a wildcard name search. Zero matches is a valid
	// empty result.
	SearchByName(text string) ([]types.Station, error)

	// ListAll retrieves the full registry. Sorting by distance is not
	// valid here.
	ListAll(sortBy SortOption) ([]types.Station, error)

	// ListNearby lists stations within radiusKm of the identified
	// station. Zero results is an error.
	ListNearby(identifier string, radiusKm float64, sortBy SortOption) ([]types.Station, error)

	// GetDetails fetches the registry record for one station, enriched
	// with the local timezone when it can be derived.
	GetDetails(identifier string) (types.StationDetails, error)
}

type registryService struct {
	provider RegistryProvider
	tz       TimezoneResolver
	logger   *slog.Logger
}

// NewService wires the registry against the real provider endpoint.
func NewService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	client := silo.NewClientWithBaseURL(
		cfg.Provider.BaseURL,
		&http.Client{Timeout: cfg.Provider.Timeout()},
		logger,
	)
	tzSvc, err := timezone.NewService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewServiceWithProviders(client, tzSvc, logger), nil
}

// NewServiceWithProviders injects the provider and timezone dependencies,
// used by tests and by callers that share one client.
func NewServiceWithProviders(provider RegistryProvider, tz TimezoneResolver, logger *slog.Logger) Service {
	return &registryService{
		provider: provider,
		tz:       tz,
		logger:   logger.With("component", "station-registry"),
	}
}

func (s *registryService) Resolve(identifier string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(identifier)); err == nil {
		return id, nil
	}

	matches, err := s.SearchByName(identifier)
	if err != nil {
		return 0, err
	}
	switch len(matches) {
	case 1:
		s.logger.Debug("resolved station name", "identifier", identifier, "station", matches[0].ID)
		return matches[0].ID, nil
	case 0:
		return 0, fmt.Errorf("%w: nothing matches %q", ErrStationNotFound, identifier)
	default:
		return 0, fmt.Errorf("%w: %q matches %s", ErrAmbiguousStation, identifier, candidateList(matches))
	}
}

func (s *registryService) SearchByName(text string) ([]types.Station, error) {
	frag := SanitizeNameFragment(text)
	if frag == "" {
		// Nothing searchable survived sanitization; that matches nothing.
		return []types.Station{}, nil
	}

	stations, err := s.provider.SearchStations(frag)
	if err != nil {
		return nil, fmt.Errorf("station name search failed: %w", err)
	}
	return stations, nil
}

func (s *registryService) ListAll(sortBy SortOption) ([]types.Station, error) {
	if sortBy != SortByName && sortBy != SortByID && sortBy != SortByState {
		return nil, fmt.Errorf("%w: %q is not valid for a full listing", ErrInvalidSortOption, sortBy.String())
	}

	stations, err := s.provider.NearbyStations(referenceStationID, listAllRadiusKm)
	if err != nil {
		return nil, fmt.Errorf("station listing failed: %w", err)
	}

	// The full listing is a proximity query in disguise; distances to the
	// reference station mean nothing to the caller.
	for i := range stations {
		stations[i].DistanceKm = nil
	}
	sortStations(stations, sortBy)
	return stations, nil
}

func (s *registryService) ListNearby(identifier string, radiusKm float64, sortBy SortOption) ([]types.Station, error) {
	id, err := s.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	stations, err := s.provider.NearbyStations(id, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("station proximity query failed: %w", err)
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: nothing within %g km of station %d", ErrNoStationsInRadius, radiusKm, id)
	}

	sortStations(stations, sortBy)
	return stations, nil
}

func (s *registryService) GetDetails(identifier string) (types.StationDetails, error) {
	id, err := s.Resolve(identifier)
	if err != nil {
		return types.StationDetails{}, err
	}

	station, err := s.provider.StationByID(id)
	if err != nil {
		return types.StationDetails{}, fmt.Errorf("station detail fetch failed: %w", err)
	}

	details := types.StationDetails{Station: station}
	if s.tz != nil {
		name, err := s.tz.Lookup(station.Latitude, station.Longitude)
		if err != nil {
			// The timezone is an annotation, not part of the contract.
			s.logger.Warn("could not resolve station timezone",
				"station", station.ID,
				"error", err,
			)
		} else {
			details.Timezone = name
		}
	}
	return details, nil
}

// SanitizeNameFragment prepares free text for the server-side name search:
// every run of whitespace, punctuation or explicit wildcards collapses to a
// single underscore wildcard, and the result is cut to the fragment length
// the server actually matches on.
func SanitizeNameFragment(text string) string {
	var b strings.Builder
	pending := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}

	frag := []rune(b.String())
	if len(frag) > maxNameFragLen {
		frag = frag[:maxNameFragLen]
	}
	return string(frag)
}

func candidateList(stations []types.Station) string {
	const maxListed = 5

	names := make([]string, 0, maxListed+1)
	for i, st := range stations {
		if i == maxListed {
			names = append(names, fmt.Sprintf("and %d more", len(stations)-maxListed))
			break
		}
		names = append(names, fmt.Sprintf("%d %s", st.ID, st.Name))
	}
	return strings.Join(names, ", ")
}

func sortStations(stations []types.Station, sortBy SortOption) {
	switch sortBy {
	case SortByID:
		sort.SliceStable(stations, func(i, j int) bool {
			return stations[i].ID < stations[j].ID
		})
	case SortByState:
		sort.SliceStable(stations, func(i, j int) bool {
			if stations[i].State != stations[j].State {
				return stations[i].State < stations[j].State
			}
			return stations[i].Name < stations[j].Name
		})
	case SortByDistance:
		sort.SliceStable(stations, func(i, j int) bool {
			return distanceOf(stations[i]) < distanceOf(stations[j])
		})
	default:
		sort.SliceStable(stations, func(i, j int) bool {
			return strings.ToLower(stations[i].Name) < strings.ToLower(stations[j].Name)
		})
	}
}

func distanceOf(s types.Station) float64 {
	if s.DistanceKm == nil {
		return math.MaxFloat64
	}
	return *s.DistanceKm
}
