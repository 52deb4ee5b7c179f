package openmeteo

import "fmt"

// fieldSpec declares the mapping between an internal record field and the
// provider-side name ("alias") used both in outgoing requests and in the
// per-field arrays of the response. A spec without an alias is local-only
// and never requested.
type fieldSpec struct {
	field    string
	alias    string
	required bool
}

// Shared base of all three record variants.
var baseFields = []fieldSpec{
	{field: "time", alias: "time", required: true},
	{field: "weather_code", alias: "weather_code", required: true},
}

var currentFields = append(baseFields[:len(baseFields):len(baseFields)],
	fieldSpec{field: "temperature", alias: "temperature_2m", required: true},
	fieldSpec{field: "apparent_temperature", alias: "apparent_temperature"},
	fieldSpec{field: "wind_speed", alias: "wind_speed_10m", required: true},
	fieldSpec{field: "wind_direction", alias: "wind_direction_10m"},
	fieldSpec{field: "relative_humidity", alias: "relative_humidity_2m", required: true},
	fieldSpec{field: "is_day", alias: "is_day", required: true},
)

var dailyFields = append(baseFields[:len(baseFields):len(baseFields)],
	fieldSpec{field: "temperature_max", alias: "temperature_2m_max", required: true},
	fieldSpec{field: "temperature_min", alias: "temperature_2m_min", required: true},
	fieldSpec{field: "apparent_temperature_max", alias: "apparent_temperature_max"},
	fieldSpec{field: "apparent_temperature_min", alias: "apparent_temperature_min"},
	fieldSpec{field: "wind_speed_max", alias: "wind_speed_10m_max"},
	fieldSpec{field: "precipitation_probability_max", alias: "precipitation_probability_max", required: true},
	fieldSpec{field: "precipitation_sum", alias: "precipitation_sum"},
	fieldSpec{field: "sunrise", alias: "sunrise", required: true},
	fieldSpec{field: "sunset", alias: "sunset", required: true},
)

var hourlyFields = append(baseFields[:len(baseFields):len(baseFields)],
	fieldSpec{field: "temperature", alias: "temperature_2m", required: true},
	fieldSpec{field: "apparent_temperature", alias: "apparent_temperature"},
	fieldSpec{field: "wind_speed", alias: "wind_speed_10m"},
	fieldSpec{field: "relative_humidity", alias: "relative_humidity_2m"},
	fieldSpec{field: "precipitation_probability", alias: "precipitation_probability"},
	fieldSpec{field: "cloud_cover", alias: "cloud_cover"},
)

// requestFields returns the provider-side names to request for a variant, in
// declaration order. The order is part of the outgoing query string, so it
// must be stable.
func requestFields(specs []fieldSpec) []string {
	fields := make([]string, 0, len(specs))
	for _, s := range specs {
		if s.alias != "" {
			fields = append(fields, s.alias)
		}
	}
	return fields
}

// checkRequired verifies that every required alias is present in the row
// before typed extraction begins.
func checkRequired(specs []fieldSpec, r row) error {
	for _, s := range specs {
		if !s.required {
			continue
		}
		if v, ok := r[s.alias]; !ok || v == nil {
			return fmt.Errorf("missing required field %q (%s)", s.alias, s.field)
		}
	}
	return nil
}
