package forecast

import "time"

// Current is the current-conditions record.
type Current struct {
	Time                time.Time
	WeatherCode         int
	Temperature         float64
	ApparentTemperature *float64
	WindSpeed           float64
	WindDirection       *int
	RelativeHumidity    int
	IsDay               bool
}

// Daily is one day of the daily forecast.
type Daily struct {
	Time                        time.Time
	WeatherCode                 int
	TemperatureMax              float64
	TemperatureMin              float64
	ApparentTemperatureMax      *float64
	ApparentTemperatureMin      *float64
	WindSpeedMax                *float64
	PrecipitationProbabilityMax int
	PrecipitationSum            *float64
	Sunrise                     time.Time
	Sunset                      time.Time
}

// Hourly is one hour of the hourly forecast.
type Hourly struct {
	Time                     time.Time
	WeatherCode              int
	Temperature              float64
	ApparentTemperature      *float64
	WindSpeed                *float64
	RelativeHumidity         *int
	PrecipitationProbability *int
	CloudCover               *int
}

// Weather is the aggregate result of one forecast cycle. Only the branches
// implied by the requested Kind are populated; Daily and Hourly preserve the
// chronological order returned by the provider.
type Weather struct {
	LocationName string
	Current      *Current
	Daily        []Daily
	Hourly       []Hourly
}
