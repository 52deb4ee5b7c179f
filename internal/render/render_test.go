package render

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"wthr/internal/forecast"
)

func init() {
	// Deterministic output regardless of TTY detection.
	color.NoColor = true
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{"clear sky", 0, "Clear sky"},
		{"thunderstorm", 95, "Thunderstorm"},
		{"unknown code falls back", 42, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.code).Description; got != tt.expected {
				t.Errorf("Describe(%d) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func sampleWeather() *forecast.Weather {
	at := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	hourly := make([]forecast.Hourly, 24)
	for i := range hourly {
		hourly[i] = forecast.Hourly{
			Time:        at.Add(time.Duration(i) * time.Hour),
			WeatherCode: 1,
			Temperature: 15 + float64(i),
		}
	}
	return &forecast.Weather{
		LocationName: "Moscow, Russia",
		Current: &forecast.Current{
			Time:             at,
			WeatherCode:      3,
			Temperature:      18.4,
			WindSpeed:        12.3,
			RelativeHumidity: 55,
			IsDay:            true,
		},
		Daily: []forecast.Daily{
			{
				Time:           at,
				WeatherCode:    61,
				TemperatureMax: 19.0,
				TemperatureMin: 11.5,
				Sunrise:        at.Add(-10 * time.Hour),
				Sunset:         at.Add(7 * time.Hour),
			},
		},
		Hourly: hourly,
	}
}

func TestWeatherRendersRequestedSections(t *testing.T) {
	var b strings.Builder
	Weather(&b, sampleWeather(), forecast.Selection{Kind: forecast.KindMixed, Days: 4, Hours: 6})
	out := b.String()

	for _, want := range []string{
		"Moscow, Russia",
		"Current weather",
		"Overcast",
		"01.06.2025",
		"Hourly forecast",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWeatherLimitsHourlyRows(t *testing.T) {
	var b strings.Builder
	Weather(&b, sampleWeather(), forecast.Selection{Kind: forecast.KindHourly, Hours: 6})
	out := b.String()

	// Hour 6 (20:00) is past the limit; hour 5 (19:00) is the last shown.
	if !strings.Contains(out, "19:00") {
		t.Errorf("output missing the last requested hour:\n%s", out)
	}
	if strings.Contains(out, "20:00") {
		t.Errorf("output contains hours past the requested count:\n%s", out)
	}
}

func TestWeatherSkipsUnpopulatedBranches(t *testing.T) {
	w := sampleWeather()
	w.Current = nil
	w.Hourly = nil

	var b strings.Builder
	Weather(&b, w, forecast.Selection{Kind: forecast.KindDaily, Days: 4})
	out := b.String()

	if strings.Contains(out, "Current weather") {
		t.Error("current section rendered without data")
	}
	if strings.Contains(out, "Hourly forecast") {
		t.Error("hourly section rendered without data")
	}
	if !strings.Contains(out, "01.06.2025") {
		t.Error("daily section missing")
	}
}

func TestNotice(t *testing.T) {
	var b strings.Builder
	Notice(&b, `Location "nowhere" not found`)
	out := b.String()

	if !strings.Contains(out, `Location "nowhere" not found`) {
		t.Errorf("notice missing the message:\n%s", out)
	}
	if !strings.Contains(out, "╭─") || !strings.Contains(out, "╰─") {
		t.Errorf("notice missing the border:\n%s", out)
	}
}
