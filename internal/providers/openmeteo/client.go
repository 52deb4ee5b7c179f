package openmeteo

import (
	"fmt"
	"net/url"

	"wthr/internal/transport"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=55.75&longitude=37.62&current=time,weather_code,temperature_2m,apparent_temperature,wind_speed_10m,wind_direction_10m,relative_humidity_2m,is_day&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type Client struct {
	http    *transport.Client
	baseURL string
}

func NewClient(t *transport.Client) *Client {
	return &Client{
		http:    t,
		baseURL: baseForecastURL,
	}
}

// Forecast performs one forecast call with a fully composed parameter set.
func (c *Client) Forecast(params url.Values) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = params.Encode()

	var apiResp ForecastAPIResponse
	if err := c.http.GetJSON(u.String(), &apiResp); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	return &apiResp, nil
}
