package types

// Station is one physical weather station as registered by the provider.
// Stations are fetched fresh on every query and never cached; identity is ID.
type Station struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	State      string   `json:"state"`
	Elevation  *float64 `json:"elevation,omitempty"`   // meters, absent when the provider omits it
	DistanceKm *float64 `json:"distance_km,omitempty"` // populated on proximity queries only
}

// Coords returns the station's position.
func (s Station) Coords() Coords {
	return NewCoords(s.Latitude, s.Longitude)
}

// StationDetails is a single station record enriched with locally derived
// metadata.
type StationDetails struct {
	Station
	Timezone string `json:"timezone,omitempty"` // IANA name, empty when unresolvable
}
