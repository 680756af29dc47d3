package types

import (
	"fmt"
	"math"
)

// Coords is a latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Rounded returns the pair rounded to the given number of decimal places.
// The provider rejects coordinates carrying excessive precision, so queries
// round to four places before going on the wire.
func (c Coords) Rounded(places int) Coords {
	f := math.Pow(10, float64(places))
	return Coords{
		Latitude:  math.Round(c.Latitude*f) / f,
		Longitude: math.Round(c.Longitude*f) / f,
	}
}

func (c Coords) String() string {
	return fmt.Sprintf("(%g, %g)", c.Latitude, c.Longitude)
}
