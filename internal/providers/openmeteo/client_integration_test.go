//go:build integration

package openmeteo

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"wthr/internal/forecast"
	"wthr/internal/location"
	"wthr/internal/transport"
)

func TestClient_Forecast_Integration(t *testing.T) {
	loc := location.New("Moscow, Russia", 55.7504, 37.6175)
	sel := forecast.Selection{Kind: forecast.KindMixed, Days: 2, Hours: 6}

	params, err := ComposeParams(loc, sel, RequestOptions{})
	if err != nil {
		t.Fatalf("Failed to compose params: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(transport.NewClient(logger))

	t.Logf("Making API call to Open-Meteo Forecast API...")
	t.Logf("Params: %s", params.Encode())

	resp, err := client.Forecast(params)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Latitude < loc.Latitude-1 || resp.Latitude > loc.Latitude+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", loc.Latitude, resp.Latitude)
	}

	w, err := ParseForecast(resp, sel.Kind, loc.DisplayName)
	if err != nil {
		t.Fatalf("Failed to parse forecast: %v", err)
	}

	if w.Current == nil {
		t.Error("No current conditions in response")
	}
	if len(w.Daily) == 0 || len(w.Daily) > 2 {
		t.Errorf("Daily record count = %d, want 1-2", len(w.Daily))
	}
	if len(w.Hourly) == 0 || len(w.Hourly) > 6 {
		t.Errorf("Hourly record count = %d, want 1-6", len(w.Hourly))
	}
}
