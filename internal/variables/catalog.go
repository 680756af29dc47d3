// Package variables holds the fixed catalog of weather variables offered by
// the SILO climate data service, keyed three ways: by stable identifier, by
// the provider's raw output field name, and by the single-letter code used
// when requesting data.
package variables

import "strings"

// Variable describes one weather variable offered by the provider.
type Variable struct {
	Key           string `json:"key"`            // stable identifier, e.g. "rainfall"
	Label         string `json:"label"`          // display name with units, e.g. "Rainfall (mm)"
	Description   string `json:"description"`    // long-form description
	ProviderField string `json:"provider_field"` // field name in the provider's raw output
	ProviderCode  string `json:"provider_code"`  // single-letter request code
}

// Catalog order defines the canonical column order of retrieved datasets.
var catalog = []Variable{
	{
		Key:           "rainfall",
		Label:         "Rainfall (mm)",
		Description:   "Daily rainfall (mm)",
		ProviderField: "daily_rain",
		ProviderCode:  "R",
	},
	{
		Key:           "min_temp",
		Label:         "Minimum Temperature (degC)",
		Description:   "Minimum temperature (degrees Celsius)",
		ProviderField: "min_temp",
		ProviderCode:  "N",
	},
	{
		Key:           "max_temp",
		Label:         "Maximum Temperature (degC)",
		Description:   "Maximum temperature (degrees Celsius)",
		ProviderField: "max_temp",
		ProviderCode:  "X",
	},
	{
		Key:           "humidity_tmin",
		Label:         "Relative Humidity at Minimum Temperature (%)",
		Description:   "Relative humidity at the time of minimum temperature (%)",
		ProviderField: "rh_tmin",
		ProviderCode:  "G",
	},
	{
		Key:           "humidity_tmax",
		Label:         "Relative Humidity at Maximum Temperature (%)",
		Description:   "Relative humidity at the time of maximum temperature (%)",
		ProviderField: "rh_tmax",
		ProviderCode:  "H",
	},
	{
		Key:           "solar_exposure",
		Label:         "Solar Exposure (MJ/m2)",
		Description:   "Solar exposure, consisting of both direct and diffuse components (MJ/m2)",
		ProviderField: "radiation",
		ProviderCode:  "V",
	},
	{
		Key:           "mean_sea_level_pressure",
		Label:         "Mean Pressure at Sea Level (hPa)",
		Description:   "Mean pressure at sea level (hPa)",
		ProviderField: "mslp",
		ProviderCode:  "M",
	},
	{
		Key:           "vapour_pressure",
		Label:         "Vapour Pressure (hPa)",
		Description:   "Vapour pressure (hPa)",
		ProviderField: "vp",
		ProviderCode:  "J",
	},
	{
		Key:           "vapour_pressure_deficit",
		Label:         "Vapour Pressure Deficit (hPa)",
		Description:   "Vapour pressure deficit (hPa)",
		ProviderField: "vp_deficit",
		ProviderCode:  "D",
	},
	{
		Key:           "evaporation",
		Label:         "Evaporation (mm)",
		Description:   "Class A pan evaporation (mm)",
		ProviderField: "evap_pan",
		ProviderCode:  "C",
	},
	{
		Key:           "evaporation_morton_lake",
		Label:         "Morton's Shallow Lake Evaporation (mm)",
		Description:   "Morton's shallow lake evaporation (mm)",
		ProviderField: "evap_morton_lake",
		ProviderCode:  "L",
	},
	{
		Key:           "evapotranspiration_fao56",
		Label:         "FAO56 Short Crop Evapotranspiration (mm)",
		Description:   "FAO56 short crop evapotranspiration (mm)",
		ProviderField: "et_short_crop",
		ProviderCode:  "F",
	},
	{
		Key:           "evapotranspiration_asce",
		Label:         "ASCE Tall Crop Evapotranspiration (mm)",
		Description:   "ASCE tall crop evapotranspiration (mm)",
		ProviderField: "et_tall_crop",
		ProviderCode:  "T",
	},
	{
		Key:           "evapotranspiration_morton_areal",
		Label:         "Morton's Areal Actual Evapotranspiration (mm)",
		Description:   "Morton's areal actual evapotranspiration (mm)",
		ProviderField: "et_morton_actual",
		ProviderCode:  "A",
	},
	{
		Key:           "evapotranspiration_morton_point",
		Label:         "Morton's Point Potential Evapotranspiration (mm)",
		Description:   "Morton's point potential evapotranspiration (mm)",
		ProviderField: "et_morton_potential",
		ProviderCode:  "P",
	},
	{
		Key:           "evapotranspiration_morton_wet",
		Label:         "Morton's Wet-environment Areal Potential Evapotranspiration (mm)",
		Description:   "Morton's wet-environment areal potential evapotranspiration (mm)",
		ProviderField: "et_morton_wet",
		ProviderCode:  "W",
	},
}

var (
	byKey           = make(map[string]Variable, len(catalog))
	byProviderField = make(map[string]Variable, len(catalog))
)

func init() {
	for _, v := range catalog {
		byKey[v.Key] = v
		byProviderField[v.ProviderField] = v
	}
}

// All returns every variable in canonical order.
func All() []Variable {
	out := make([]Variable, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns every variable key in canonical order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, v := range catalog {
		keys[i] = v.Key
	}
	return keys
}

// Labels returns every display label in canonical order.
func Labels() []string {
	labels := make([]string, len(catalog))
	for i, v := range catalog {
		labels[i] = v.Label
	}
	return labels
}

// ByKey looks up a variable by its stable key.
func ByKey(key string) (Variable, bool) {
	v, ok := byKey[key]
	return v, ok
}

// ByProviderField looks up a variable by the field name the provider uses in
// its raw output.
func ByProviderField(field string) (Variable, bool) {
	v, ok := byProviderField[field]
	return v, ok
}

// IsValid reports whether key names a known variable.
func IsValid(key string) bool {
	_, ok := byKey[key]
	return ok
}

// Codes concatenates the single-letter provider codes for the given keys, in
// the order given. Duplicate keys repeat their code; unknown keys contribute
// nothing.
func Codes(keys []string) string {
	var b strings.Builder
	for _, k := range keys {
		if v, ok := byKey[k]; ok {
			b.WriteString(v.ProviderCode)
		}
	}
	return b.String()
}
