package openmeteo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"wthr/internal/forecast"
	"wthr/internal/location"
)

// Provider range limits for the forecast window.
const (
	minForecastDays  = 1
	maxForecastDays  = 16
	minForecastHours = 1
	maxForecastHours = 168
)

// RequestOptions are pass-through transport settings for a forecast request.
// Units must come from the provider's allowed-value sets; the zero value
// leaves the provider defaults in place.
type RequestOptions struct {
	Timezone        string `validate:"-"`
	TemperatureUnit string `validate:"omitempty,oneof=celsius fahrenheit"`
	WindSpeedUnit   string `validate:"omitempty,oneof=kmh ms mph knots"`
}

var validate = validator.New()

// ComposeParams builds the complete query parameter set for one forecast
// call. The blocks implied by the selection kind get their field lists from
// the schema; out-of-range day/hour counts are clamped to the provider
// limits, never rejected.
func ComposeParams(loc location.Location, sel forecast.Selection, opts RequestOptions) (url.Values, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid request options: %w", err)
	}

	tz := opts.Timezone
	if tz == "" {
		tz = "auto"
	}

	q := url.Values{}
	q.Set("latitude", formatCoord(loc.Latitude))
	q.Set("longitude", formatCoord(loc.Longitude))
	q.Set("timezone", tz)
	if opts.TemperatureUnit != "" {
		q.Set("temperature_unit", opts.TemperatureUnit)
	}
	if opts.WindSpeedUnit != "" {
		q.Set("wind_speed_unit", opts.WindSpeedUnit)
	}

	if sel.Kind.HasCurrent() {
		q.Set("current", strings.Join(requestFields(currentFields), ","))
	}
	if sel.Kind.HasDaily() {
		q.Set("daily", strings.Join(requestFields(dailyFields), ","))
		q.Set("forecast_days", strconv.Itoa(clamp(sel.Days, minForecastDays, maxForecastDays)))
	}
	if sel.Kind.HasHourly() {
		q.Set("hourly", strings.Join(requestFields(hourlyFields), ","))
		q.Set("forecast_hours", strconv.Itoa(clamp(sel.Hours, minForecastHours, maxForecastHours)))
	}

	return q, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
