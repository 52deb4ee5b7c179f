package weather

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"wthr/internal/config"
	"wthr/internal/forecast"
	"wthr/internal/location"
	"wthr/internal/providers/openmeteo"
)

type mockProvider struct {
	payload string
	err     error
	params  url.Values
}

func (m *mockProvider) Forecast(params url.Values) (*openmeteo.ForecastAPIResponse, error) {
	m.params = params
	if m.err != nil {
		return nil, m.err
	}
	var raw openmeteo.ForecastAPIResponse
	if err := json.Unmarshal([]byte(m.payload), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Timezone: "auto"}
}

func TestGetWeatherCurrent(t *testing.T) {
	provider := &mockProvider{payload: `{
		"current": {
			"time": "2025-06-01T14:00",
			"weather_code": 0,
			"temperature_2m": 21.0,
			"wind_speed_10m": 3.4,
			"relative_humidity_2m": 40,
			"is_day": 1
		}
	}`}
	svc := NewServiceWithProvider(provider, testConfig(), testLogger())

	loc := location.New("Moscow, Russia", 55.7504, 37.6175)
	w, err := svc.GetWeather(loc, forecast.Selection{Kind: forecast.KindCurrent})
	if err != nil {
		t.Fatalf("GetWeather() error = %v", err)
	}

	if w.LocationName != "Moscow, Russia" {
		t.Errorf("LocationName = %q", w.LocationName)
	}
	if w.Current == nil || w.Current.Temperature != 21.0 {
		t.Errorf("Current = %+v", w.Current)
	}
	if w.Daily != nil || w.Hourly != nil {
		t.Error("daily/hourly branches populated for a current-only request")
	}

	// The provider saw exactly the current-block parameters.
	if !provider.params.Has("current") {
		t.Error("provider params missing the current field list")
	}
	if provider.params.Has("daily") || provider.params.Has("hourly") {
		t.Errorf("provider params carry unrequested blocks: %v", provider.params)
	}
}

func TestGetWeatherPassesClampedCounts(t *testing.T) {
	provider := &mockProvider{payload: `{}`}
	svc := NewServiceWithProvider(provider, testConfig(), testLogger())

	loc := location.New("Moscow, Russia", 55.7504, 37.6175)
	_, err := svc.GetWeather(loc, forecast.Selection{Kind: forecast.KindMixed, Days: 99, Hours: 500})
	if err != nil {
		t.Fatalf("GetWeather() error = %v", err)
	}

	if got := provider.params.Get("forecast_days"); got != "16" {
		t.Errorf("forecast_days = %q, want 16", got)
	}
	if got := provider.params.Get("forecast_hours"); got != "168" {
		t.Errorf("forecast_hours = %q, want 168", got)
	}
}

func TestGetWeatherProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("boom")}
	svc := NewServiceWithProvider(provider, testConfig(), testLogger())

	loc := location.New("Moscow, Russia", 55.7504, 37.6175)
	if _, err := svc.GetWeather(loc, forecast.Selection{Kind: forecast.KindCurrent}); err == nil {
		t.Error("expected an error from the provider")
	}
}

func TestGetWeatherMalformedResponse(t *testing.T) {
	provider := &mockProvider{payload: `{
		"current": {"time": "2025-06-01T14:00", "weather_code": 0}
	}`}
	svc := NewServiceWithProvider(provider, testConfig(), testLogger())

	loc := location.New("Moscow, Russia", 55.7504, 37.6175)
	if _, err := svc.GetWeather(loc, forecast.Selection{Kind: forecast.KindCurrent}); err == nil {
		t.Error("expected an error for a malformed response")
	}
}
