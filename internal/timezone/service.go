// Package timezone derives IANA timezone names from coordinates. Station
// records carry no timezone of their own, so the registry uses this to
// annotate station details.
package timezone

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service resolves coordinates to an IANA timezone name such as
// "Australia/Adelaide" or "Australia/Darwin".
type Service interface {
	Lookup(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	logger *slog.Logger
}

// The finder loads its full polygon index into memory, so every service
// instance shares one copy.
var loadFinder = sync.OnceValues(func() (tzf.F, error) {
	return tzf.NewDefaultFinder()
})

// NewService returns a timezone service backed by the shared finder.
func NewService(logger *slog.Logger) (Service, error) {
	finder, err := loadFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &service{
		finder: finder,
		logger: logger.With("component", "timezone"),
	}, nil
}

func (s *service) Lookup(latitude, longitude float64) (string, error) {
	// tzf takes longitude first.
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone found for lat=%g, lon=%g", latitude, longitude)
	}
	s.logger.Debug("resolved timezone", "lat", latitude, "lon", longitude, "timezone", name)
	return name, nil
}
