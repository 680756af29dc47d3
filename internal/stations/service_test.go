package stations

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"silo-weather/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(f float64) *float64 { return &f }

// fakeProvider serves canned registry data and records every call, so
// tests can assert that no network round-trip happens where none should.
type fakeProvider struct {
	searchResults map[string][]types.Station
	nearbyResults []types.Station
	byID          map[int]types.Station

	searchCalls []string
	nearbyCalls []int
	searchErr   error
	nearbyErr   error
}

func (f *fakeProvider) SearchStations(nameFrag string) ([]types.Station, error) {
	f.searchCalls = append(f.searchCalls, nameFrag)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults[nameFrag], nil
}

func (f *fakeProvider) NearbyStations(stationID int, radiusKm float64) ([]types.Station, error) {
	f.nearbyCalls = append(f.nearbyCalls, stationID)
	if f.nearbyErr != nil {
		return nil, f.nearbyErr
	}
	return f.nearbyResults, nil
}

func (f *fakeProvider) StationByID(stationID int) (types.Station, error) {
	s, ok := f.byID[stationID]
	if !ok {
		return types.Station{}, errors.New("no station record")
	}
	return s, nil
}

type fakeTimezone struct {
	name string
	err  error
}

func (f *fakeTimezone) Lookup(latitude, longitude float64) (string, error) {
	return f.name, f.err
}

var adelaideStations = []types.Station{
	{ID: 23000, Name: "ADELAIDE (GLEN OSMOND)", Latitude: -34.9494, Longitude: 138.6478, State: "SA"},
	{ID: 23031, Name: "ADELAIDE (WAITE INSTITUTE)", Latitude: -34.9683, Longitude: 138.6356, State: "SA"},
	{ID: 23090, Name: "ADELAIDE (KENT TOWN)", Latitude: -34.9211, Longitude: 138.6216, State: "SA"},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantID     int
		wantErr    error
		wantSearch bool
	}{
		{
			name:       "numeric id passes through without a lookup",
			identifier: "23031",
			wantID:     23031,
		},
		{
			name:       "unknown numeric id still passes through",
			identifier: "999999",
			wantID:     999999,
		},
		{
			name:       "numeric id with spaces",
			identifier: "  23031 ",
			wantID:     23031,
		},
		{
			name:       "unique name match",
			identifier: "Adel (Waite)",
			wantID:     23031,
			wantSearch: true,
		},
		{
			name:       "ambiguous name",
			identifier: "ADEL",
			wantErr:    ErrAmbiguousStation,
			wantSearch: true,
		},
		{
			name:       "no match",
			identifier: "XYZ",
			wantErr:    ErrStationNotFound,
			wantSearch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{
				searchResults: map[string][]types.Station{
					"Adel_Waite": {adelaideStations[1]},
					"ADEL":       adelaideStations,
				},
			}
			svc := NewServiceWithProviders(provider, nil, testLogger())

			id, err := svc.Resolve(tt.identifier)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.identifier, err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Resolve(%q): %v", tt.identifier, err)
				}
				if id != tt.wantID {
					t.Errorf("Resolve(%q) = %d, want %d", tt.identifier, id, tt.wantID)
				}
			}

			if tt.wantSearch && len(provider.searchCalls) == 0 {
				t.Error("expected a name search, none happened")
			}
			if !tt.wantSearch && len(provider.searchCalls) != 0 {
				t.Errorf("numeric resolution must not hit the server, got calls %v", provider.searchCalls)
			}
		})
	}
}

func TestSanitizeNameFragment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation and spaces collapse to one wildcard",
			input: "Adel (Waite)",
			want:  "Adel_Waite",
		},
		{
			name:  "plain prefix unchanged",
			input: "ADEL",
			want:  "ADEL",
		},
		{
			name:  "explicit wildcards collapse too",
			input: "Mount**Barker",
			want:  "Mount_Bark",
		},
		{
			name:  "truncated to the fragment limit",
			input: "Coonabarabran",
			want:  "Coonabarab",
		},
		{
			name:  "leading and trailing separators trimmed",
			input: "(Waite)",
			want:  "Waite",
		},
		{
			name:  "only separators leaves nothing",
			input: "* * *",
			want:  "",
		},
		{
			name:  "mixed runs",
			input: "a - b..c",
			want:  "a_b_c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeNameFragment(tt.input); got != tt.want {
				t.Errorf("SanitizeNameFragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearchByNameEmptyIsValid(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewServiceWithProviders(provider, nil, testLogger())

	matches, err := svc.SearchByName("XYZ")
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}

	// Fully unsanitizable input never reaches the server.
	provider.searchCalls = nil
	if _, err := svc.SearchByName("***"); err != nil {
		t.Fatalf("SearchByName(***): %v", err)
	}
	if len(provider.searchCalls) != 0 {
		t.Errorf("empty fragment searched the server: %v", provider.searchCalls)
	}
}

func TestListAll(t *testing.T) {
	provider := &fakeProvider{
		nearbyResults: []types.Station{
			{ID: 23090, Name: "ADELAIDE (KENT TOWN)", State: "SA", DistanceKm: ptr(5.3)},
			{ID: 23000, Name: "ADELAIDE (GLEN OSMOND)", State: "SA", DistanceKm: ptr(2.2)},
			{ID: 15590, Name: "ALICE SPRINGS AIRPORT", State: "NT", DistanceKm: ptr(0.0)},
		},
	}
	svc := NewServiceWithProviders(provider, nil, testLogger())

	stations, err := svc.ListAll(SortByID)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(provider.nearbyCalls) != 1 || provider.nearbyCalls[0] != referenceStationID {
		t.Errorf("nearby calls = %v, want one call around station %d", provider.nearbyCalls, referenceStationID)
	}

	wantOrder := []int{15590, 23000, 23090}
	for i, want := range wantOrder {
		if stations[i].ID != want {
			t.Errorf("stations[%d].ID = %d, want %d", i, stations[i].ID, want)
		}
	}
	for _, s := range stations {
		if s.DistanceKm != nil {
			t.Errorf("station %d kept its distance column", s.ID)
		}
	}
}

func TestListAllRejectsDistanceSort(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewServiceWithProviders(provider, nil, testLogger())

	_, err := svc.ListAll(SortByDistance)
	if !errors.Is(err, ErrInvalidSortOption) {
		t.Fatalf("error = %v, want ErrInvalidSortOption", err)
	}
	if len(provider.nearbyCalls) != 0 {
		t.Error("invalid sort option still hit the server")
	}
}

func TestListNearby(t *testing.T) {
	provider := &fakeProvider{
		nearbyResults: []types.Station{
			{ID: 23090, Name: "ADELAIDE (KENT TOWN)", State: "SA", DistanceKm: ptr(5.3)},
			{ID: 23031, Name: "ADELAIDE (WAITE INSTITUTE)", State: "SA", DistanceKm: ptr(0.0)},
			{ID: 23000, Name: "ADELAIDE (GLEN OSMOND)", State: "SA", DistanceKm: ptr(2.2)},
		},
	}
	svc := NewServiceWithProviders(provider, nil, testLogger())

	stations, err := svc.ListNearby("23031", 10, SortByDistance)
	if err != nil {
		t.Fatalf("ListNearby: %v", err)
	}
	wantOrder := []int{23031, 23000, 23090}
	for i, want := range wantOrder {
		if stations[i].ID != want {
			t.Errorf("stations[%d].ID = %d, want %d", i, stations[i].ID, want)
		}
	}
}

func TestListNearbyEmptyIsError(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewServiceWithProviders(provider, nil, testLogger())

	_, err := svc.ListNearby("23031", 0.001, SortByDistance)
	if !errors.Is(err, ErrNoStationsInRadius) {
		t.Errorf("error = %v, want ErrNoStationsInRadius", err)
	}
}

func TestGetDetails(t *testing.T) {
	provider := &fakeProvider{
		byID: map[int]types.Station{
			23031: {ID: 23031, Name: "ADELAIDE (WAITE INSTITUTE)", Latitude: -34.9683, Longitude: 138.6356, State: "SA", Elevation: ptr(115.0)},
		},
	}

	t.Run("timezone enrichment", func(t *testing.T) {
		svc := NewServiceWithProviders(provider, &fakeTimezone{name: "Australia/Adelaide"}, testLogger())
		details, err := svc.GetDetails("23031")
		if err != nil {
			t.Fatalf("GetDetails: %v", err)
		}
		if details.ID != 23031 {
			t.Errorf("ID = %d, want 23031", details.ID)
		}
		if details.Timezone != "Australia/Adelaide" {
			t.Errorf("Timezone = %q, want Australia/Adelaide", details.Timezone)
		}
	})

	t.Run("timezone failure does not fail the call", func(t *testing.T) {
		svc := NewServiceWithProviders(provider, &fakeTimezone{err: errors.New("no polygon")}, testLogger())
		details, err := svc.GetDetails("23031")
		if err != nil {
			t.Fatalf("GetDetails: %v", err)
		}
		if details.Timezone != "" {
			t.Errorf("Timezone = %q, want empty", details.Timezone)
		}
	})

	t.Run("no resolver configured", func(t *testing.T) {
		svc := NewServiceWithProviders(provider, nil, testLogger())
		if _, err := svc.GetDetails("23031"); err != nil {
			t.Fatalf("GetDetails: %v", err)
		}
	})
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortOption
		wantErr bool
	}{
		{
			name:  "empty means name",
			input: "",
			want:  SortByName,
		},
		{
			name:  "name",
			input: "name",
			want:  SortByName,
		},
		{
			name:  "id uppercased",
			input: "ID",
			want:  SortByID,
		},
		{
			name:  "state padded",
			input: " state ",
			want:  SortByState,
		},
		{
			name:  "distance",
			input: "distance",
			want:  SortByDistance,
		},
		{
			name:    "unknown",
			input:   "elevation",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortOption(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSortOption) {
					t.Fatalf("error = %v, want ErrInvalidSortOption", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSortOption(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSortOption(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
