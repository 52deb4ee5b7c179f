package weather

import (
	"fmt"
	"log/slog"
	"net/url"

	"wthr/internal/config"
	"wthr/internal/forecast"
	"wthr/internal/location"
	"wthr/internal/providers/openmeteo"
	"wthr/internal/transport"
)

// ForecastProvider performs one forecast call with a composed parameter set.
type ForecastProvider interface {
	Forecast(params url.Values) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetWeather(loc location.Location, sel forecast.Selection) (*forecast.Weather, error)
}

type weatherService struct {
	provider ForecastProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewService creates a weather service backed by the real Open-Meteo client.
func NewService(t *transport.Client, cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewClient(t), cfg, logger)
}

// NewServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider ForecastProvider, cfg *config.Config, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "weather-service"),
	}
}

// GetWeather composes the provider request for the resolved location and
// selection, performs it, and parses the response into the typed aggregate.
func (s *weatherService) GetWeather(loc location.Location, sel forecast.Selection) (*forecast.Weather, error) {
	opts := openmeteo.RequestOptions{
		Timezone:        s.cfg.Timezone,
		TemperatureUnit: s.cfg.TemperatureUnit,
		WindSpeedUnit:   s.cfg.WindSpeedUnit,
	}

	params, err := openmeteo.ComposeParams(loc, sel, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compose forecast request: %w", err)
	}

	s.logger.Debug("requesting forecast",
		"location", loc.DisplayName,
		"kind", sel.Kind.String(),
		"days", sel.Days,
		"hours", sel.Hours,
	)

	raw, err := s.provider.Forecast(params)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	w, err := openmeteo.ParseForecast(raw, sel.Kind, loc.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}
	return w, nil
}
