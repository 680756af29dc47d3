package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func buildDataset(t *testing.T, cols map[string][]string, order []string) *Dataset {
	t.Helper()
	d := NewDataset()
	for _, name := range order {
		if err := d.AddColumn(name, cols[name]); err != nil {
			t.Fatalf("AddColumn(%q): %v", name, err)
		}
	}
	return d
}

func TestDatasetAddColumn(t *testing.T) {
	d := NewDataset()
	if err := d.AddColumn("a", []string{"1", "2"}); err != nil {
		t.Fatalf("AddColumn(a): %v", err)
	}
	if d.Len() != 2 || d.Width() != 1 {
		t.Errorf("Len/Width = %d/%d, want 2/1", d.Len(), d.Width())
	}

	if err := d.AddColumn("a", []string{"3", "4"}); err == nil {
		t.Error("adding a duplicate column name did not fail")
	}
	if err := d.AddColumn("b", []string{"3"}); err == nil {
		t.Error("adding a short column did not fail")
	}
	if err := d.AddColumn("b", []string{"3", "4"}); err != nil {
		t.Errorf("AddColumn(b): %v", err)
	}
}

func TestDatasetSelect(t *testing.T) {
	d := buildDataset(t, map[string][]string{
		"a": {"1", "2"},
		"b": {"3", "4"},
		"c": {"5", "6"},
	}, []string{"a", "b", "c"})

	out, err := d.Select("c", "a")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	got := strings.Join(out.Columns(), ",")
	if got != "c,a" {
		t.Errorf("Select columns = %q, want %q", got, "c,a")
	}
	if out.Len() != 2 {
		t.Errorf("Select Len = %d, want 2", out.Len())
	}
	row := out.Row(0)
	if row[0] != "5" || row[1] != "1" {
		t.Errorf("Select Row(0) = %v, want [5 1]", row)
	}

	if _, err := d.Select("a", "missing"); err == nil {
		t.Error("Select with unknown column did not fail")
	}
}

func TestDatasetRename(t *testing.T) {
	d := buildDataset(t, map[string][]string{
		"a": {"1"},
		"b": {"2"},
	}, []string{"a", "b"})

	if err := d.Rename("a", "x"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if !d.HasColumn("x") || d.HasColumn("a") {
		t.Errorf("after rename, columns = %v", d.Columns())
	}
	if err := d.Rename("missing", "y"); err == nil {
		t.Error("renaming a missing column did not fail")
	}
	if err := d.Rename("x", "b"); err == nil {
		t.Error("renaming onto an existing column did not fail")
	}
	if err := d.Rename("b", "b"); err != nil {
		t.Errorf("same-name rename should be a no-op, got %v", err)
	}
}

func TestDatasetFilterRows(t *testing.T) {
	d := buildDataset(t, map[string][]string{
		"date": {"2020-01-01", "", "2020-01-03"},
		"rain": {"0.0", "1.2", "3.4"},
	}, []string{"date", "rain"})

	dates, _ := d.Column("date")
	out := d.FilterRows(func(i int) bool { return dates[i] != "" })

	if out.Len() != 2 {
		t.Fatalf("filtered Len = %d, want 2", out.Len())
	}
	rain, _ := out.Column("rain")
	if rain[0] != "0.0" || rain[1] != "3.4" {
		t.Errorf("filtered rain = %v, want [0.0 3.4]", rain)
	}
	// The original is untouched.
	if d.Len() != 3 {
		t.Errorf("source Len changed to %d", d.Len())
	}
}

func TestDatasetWriteDelimited(t *testing.T) {
	d := buildDataset(t, map[string][]string{
		"Date":          {"2020-01-01", "2020-01-02"},
		"Rainfall (mm)": {"0.0", "4.2"},
	}, []string{"Date", "Rainfall (mm)"})

	var csvOut strings.Builder
	if err := d.WriteCSV(&csvOut); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	wantCSV := "Date,Rainfall (mm)\n2020-01-01,0.0\n2020-01-02,4.2\n"
	if csvOut.String() != wantCSV {
		t.Errorf("WriteCSV = %q, want %q", csvOut.String(), wantCSV)
	}

	var pipeOut strings.Builder
	if err := d.WriteDelimited(&pipeOut, '|'); err != nil {
		t.Fatalf("WriteDelimited: %v", err)
	}
	if !strings.HasPrefix(pipeOut.String(), "Date|Rainfall (mm)\n") {
		t.Errorf("WriteDelimited header = %q", pipeOut.String())
	}
}

func TestDatasetMarshalJSON(t *testing.T) {
	d := buildDataset(t, map[string][]string{
		"Date": {"2020-01-01"},
		"Rain": {"0.4"},
	}, []string{"Date", "Rain"})

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"columns":["Date","Rain"],"rows":[["2020-01-01","0.4"]]}`
	if string(raw) != want {
		t.Errorf("MarshalJSON = %s, want %s", raw, want)
	}
}

func TestDatasetEqual(t *testing.T) {
	a := buildDataset(t, map[string][]string{"x": {"1"}}, []string{"x"})
	b := buildDataset(t, map[string][]string{"x": {"1"}}, []string{"x"})
	c := buildDataset(t, map[string][]string{"x": {"2"}}, []string{"x"})

	if !a.Equal(b) {
		t.Error("identical datasets reported unequal")
	}
	if a.Equal(c) {
		t.Error("different cell values reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil comparison reported equal")
	}
}

func TestMachineName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "label with units",
			input: "Rainfall (mm)",
			want:  "rainfall_mm",
		},
		{
			name:  "elevation",
			input: "Elevation (m)",
			want:  "elevation_m",
		},
		{
			name:  "percent sign dropped at end",
			input: "Relative Humidity at Minimum Temperature (%)",
			want:  "relative_humidity_at_minimum_temperature",
		},
		{
			name:  "plain word",
			input: "Date",
			want:  "date",
		},
		{
			name:  "apostrophes and hyphens",
			input: "Morton's Wet-environment Areal Potential Evapotranspiration (mm)",
			want:  "morton_s_wet_environment_areal_potential_evapotranspiration_mm",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MachineName(tt.input)
			if got != tt.want {
				t.Errorf("MachineName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := MachineName(got); again != got {
				t.Errorf("MachineName not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCoordsRounded(t *testing.T) {
	c := NewCoords(-34.96834219, 138.63562501)
	r := c.Rounded(4)
	if r.Latitude != -34.9683 || r.Longitude != 138.6356 {
		t.Errorf("Rounded(4) = %v, want (-34.9683, 138.6356)", r)
	}
	// Already-rounded values pass through unchanged.
	if again := r.Rounded(4); again != r {
		t.Errorf("Rounded not stable: %v -> %v", r, again)
	}
}
