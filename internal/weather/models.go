package weather

import "time"

// Coverage box for coordinate queries. It traces the provider's gridded
// raster extent, which reaches over parts of Indonesia and Papua New
// Guinea, not Australia's political boundary.
const (
	MinLatitude  = -44.53
	MaxLatitude  = -9.98
	MinLongitude = 111.98
	MaxLongitude = 156.27
)

// coordinateDecimals is the precision sent to the provider; requests with
// more decimal places than its grid resolution come back rejected.
const coordinateDecimals = 4

// requestDateFormat is the calendar-date layout used in queries.
const requestDateFormat = "2006-01-02"

// earliestDate is the first date with provider records.
var earliestDate = time.Date(1889, time.January, 1, 0, 0, 0, 0, time.UTC)

// WeatherQuery describes a coordinate-based retrieval. A zero Finish
// means today. An empty Variables slice means every catalog variable.
type WeatherQuery struct {
	Latitude     float64
	Longitude    float64
	Start        time.Time
	Finish       time.Time
	Variables    []string
	MachineNames bool
}

// StationQuery describes a station-based retrieval. Station may be a
// numeric id or a station name.
type StationQuery struct {
	Station      string
	Start        time.Time
	Finish       time.Time
	Variables    []string
	MachineNames bool
}
