package silo

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"silo-weather/internal/types"
	"silo-weather/internal/variables"
)

// Canonical column names produced by the normalization pipeline.
const (
	ColumnDate      = "Date"
	ColumnLatitude  = "Latitude"
	ColumnLongitude = "Longitude"
	ColumnElevation = "Elevation (m)"
)

const (
	sourceColumnSuffix = "_source"
	rawMetadataField   = "metadata"
)

// The point's elevation is buried in the free-text metadata field, with
// either decimal separator.
var elevationPattern = regexp.MustCompile(`(?i)elevation\s*=\s*([0-9]+(?:[.,][0-9]+)?)`)

// ParseWeatherData normalizes a raw comma-delimited weather response into a
// dataset:
//
//  1. classify error pages (priority order, first match wins)
//  2. parse the delimited table
//  3. drop provenance ("_source") columns
//  4. pull elevation out of the metadata field into an Elevation (m)
//     column replicated on every row, then drop the metadata field
//  5. rename to canonical column names, unknown fields pass through
//  6. reorder to Date, Latitude, Longitude, Elevation (m), then variables
//     in catalog order, then anything unrecognized
//  7. drop rows with an empty date (the provider pads date ranges shorter
//     than about four days with blank rows)
//
// It operates on an already-fetched body, so the pipeline is testable
// without a network.
func ParseWeatherData(raw string) (*types.Dataset, error) {
	if err := classify(raw); err != nil {
		return nil, err
	}

	header, rows, err := parseDelimited(raw, ',')
	if err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrServerFailure)
	}

	ds, err := tableToDataset(header, rows)
	if err != nil {
		return nil, fmt.Errorf("malformed weather response: %w", err)
	}

	dropSourceColumns(ds)
	extractElevation(ds)
	renameCanonical(ds)
	ds = reorderCanonical(ds)

	if dates, ok := ds.Column(ColumnDate); ok {
		ds = ds.FilterRows(func(i int) bool { return dates[i] != "" })
	}
	return ds, nil
}

// ParseStations reads a pipe-delimited station registry response. An empty
// body or a header with no rows is a valid empty result.
func ParseStations(raw string) ([]types.Station, error) {
	if err := classify(raw); err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return []types.Station{}, nil
	}

	header, rows, err := parseDelimited(raw, '|')
	if err != nil {
		return nil, fmt.Errorf("failed to parse station response: %w", err)
	}

	cols := stationColumnIndex(header)
	if cols.id < 0 || cols.name < 0 {
		return nil, fmt.Errorf("station response has no station number/name columns (header %v)", header)
	}

	stations := make([]types.Station, 0, len(rows))
	for _, row := range rows {
		cell := func(i int) string {
			if i >= 0 && i < len(row) {
				return row[i]
			}
			return ""
		}

		// Decorative separator lines and padding rows have no usable id.
		id, err := strconv.Atoi(cell(cols.id))
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(cell(cols.lat), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(cell(cols.lon), 64)
		if err != nil {
			continue
		}

		s := types.Station{
			ID:        id,
			Name:      cell(cols.name),
			Latitude:  lat,
			Longitude: lon,
			State:     cell(cols.state),
		}
		if v := cell(cols.elev); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.Elevation = &f
			}
		}
		if cols.dist >= 0 {
			if f, err := strconv.ParseFloat(cell(cols.dist), 64); err == nil {
				s.DistanceKm = &f
			}
		}
		stations = append(stations, s)
	}
	return stations, nil
}

// parseDelimited reads a delimited table with a header row, trimming the
// provider's space padding from every cell. Empty input returns no header.
func parseDelimited(raw string, comma rune) (header []string, rows [][]string, err error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records[0], records[1:], nil
}

func tableToDataset(header []string, rows [][]string) (*types.Dataset, error) {
	ds := types.NewDataset()
	for j, name := range header {
		col := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				col[i] = row[j]
			}
		}
		if err := ds.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// dropSourceColumns removes the provenance/quality-flag columns the
// provider emits alongside each variable.
func dropSourceColumns(ds *types.Dataset) {
	for _, name := range ds.Columns() {
		if strings.HasSuffix(name, sourceColumnSuffix) {
			ds.DropColumn(name)
		}
	}
}

// extractElevation materializes the Elevation (m) column from the metadata
// field. Elevation is a property of the queried point, so one extracted
// value is replicated on every row; when no value is found the column is
// present but blank. The raw metadata field is dropped either way.
func extractElevation(ds *types.Dataset) {
	elevation := ""
	if meta, ok := ds.Column(rawMetadataField); ok {
		for _, cell := range meta {
			if m := elevationPattern.FindStringSubmatch(cell); m != nil {
				elevation = strings.ReplaceAll(m[1], ",", ".")
				break
			}
		}
		ds.DropColumn(rawMetadataField)
	}

	values := make([]string, ds.Len())
	for i := range values {
		values[i] = elevation
	}
	_ = ds.AddColumn(ColumnElevation, values)
}

// renameCanonical maps raw provider field names onto the canonical schema.
// Fields the catalog does not recognize pass through untouched.
func renameCanonical(ds *types.Dataset) {
	for _, name := range ds.Columns() {
		switch {
		case isDateHeader(name):
			_ = ds.Rename(name, ColumnDate)
		case strings.EqualFold(name, "latitude"):
			_ = ds.Rename(name, ColumnLatitude)
		case strings.EqualFold(name, "longitude"):
			_ = ds.Rename(name, ColumnLongitude)
		default:
			if v, ok := variables.ByProviderField(name); ok {
				_ = ds.Rename(name, v.Label)
			}
		}
	}
}

// isDateHeader matches the provider's date column, which is titled with a
// literal format placeholder on CSV output.
func isDateHeader(name string) bool {
	return strings.EqualFold(name, "date") || strings.EqualFold(name, "YYYY-MM-DD")
}

// reorderCanonical rebuilds the dataset in canonical column order: the
// fixed leaders that are present, then variables in catalog order, then
// unrecognized columns in their response order.
func reorderCanonical(ds *types.Dataset) *types.Dataset {
	seen := make(map[string]bool)
	order := make([]string, 0, ds.Width())

	for _, name := range []string{ColumnDate, ColumnLatitude, ColumnLongitude, ColumnElevation} {
		if ds.HasColumn(name) && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	for _, v := range variables.All() {
		if ds.HasColumn(v.Label) && !seen[v.Label] {
			order = append(order, v.Label)
			seen[v.Label] = true
		}
	}
	for _, name := range ds.Columns() {
		if !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}

	out, err := ds.Select(order...)
	if err != nil {
		// Order was derived from the dataset's own columns.
		return ds
	}
	return out
}

// stationColumns maps the semantic station fields onto response column
// positions; -1 marks an absent column.
type stationColumns struct {
	id, name, lat, lon, state, elev, dist int
}

// stationColumnIndex matches the registry header tolerantly: the provider
// abbreviates ("Latitud", "Stat", "Elevat.") and the distance column only
// appears on proximity queries.
func stationColumnIndex(header []string) stationColumns {
	cols := stationColumns{id: -1, name: -1, lat: -1, lon: -1, state: -1, elev: -1, dist: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case key == "number" || key == "station" || key == "station number" || key == "station id":
			cols.id = i
		case strings.HasPrefix(key, "station name") || key == "name":
			cols.name = i
		case strings.HasPrefix(key, "latitud"):
			cols.lat = i
		case strings.HasPrefix(key, "longitud"):
			cols.lon = i
		case strings.HasPrefix(key, "elevat"):
			cols.elev = i
		case strings.HasPrefix(key, "dist"):
			cols.dist = i
		case strings.HasPrefix(key, "stat"):
			cols.state = i
		}
	}
	return cols
}
