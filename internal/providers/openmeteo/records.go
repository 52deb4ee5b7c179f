package openmeteo

import (
	"wthr/internal/forecast"
)

// The record constructors translate one provider-aliased row into a typed
// domain record. Any missing or mistyped required field fails the record.

func newCurrent(r row) (forecast.Current, error) {
	var c forecast.Current
	if err := checkRequired(currentFields, r); err != nil {
		return c, err
	}

	var err error
	if c.Time, err = r.time("time"); err != nil {
		return c, err
	}
	if c.WeatherCode, err = r.int("weather_code"); err != nil {
		return c, err
	}
	if c.Temperature, err = r.float("temperature_2m"); err != nil {
		return c, err
	}
	if c.WindSpeed, err = r.float("wind_speed_10m"); err != nil {
		return c, err
	}
	if c.RelativeHumidity, err = r.int("relative_humidity_2m"); err != nil {
		return c, err
	}
	if c.IsDay, err = r.flag("is_day"); err != nil {
		return c, err
	}
	c.ApparentTemperature = r.optFloat("apparent_temperature")
	c.WindDirection = r.optInt("wind_direction_10m")
	return c, nil
}

func newDaily(r row) (forecast.Daily, error) {
	var d forecast.Daily
	if err := checkRequired(dailyFields, r); err != nil {
		return d, err
	}

	var err error
	if d.Time, err = r.time("time"); err != nil {
		return d, err
	}
	if d.WeatherCode, err = r.int("weather_code"); err != nil {
		return d, err
	}
	if d.TemperatureMax, err = r.float("temperature_2m_max"); err != nil {
		return d, err
	}
	if d.TemperatureMin, err = r.float("temperature_2m_min"); err != nil {
		return d, err
	}
	if d.PrecipitationProbabilityMax, err = r.int("precipitation_probability_max"); err != nil {
		return d, err
	}
	if d.Sunrise, err = r.time("sunrise"); err != nil {
		return d, err
	}
	if d.Sunset, err = r.time("sunset"); err != nil {
		return d, err
	}
	d.ApparentTemperatureMax = r.optFloat("apparent_temperature_max")
	d.ApparentTemperatureMin = r.optFloat("apparent_temperature_min")
	d.WindSpeedMax = r.optFloat("wind_speed_10m_max")
	d.PrecipitationSum = r.optFloat("precipitation_sum")
	return d, nil
}

func newHourly(r row) (forecast.Hourly, error) {
	var h forecast.Hourly
	if err := checkRequired(hourlyFields, r); err != nil {
		return h, err
	}

	var err error
	if h.Time, err = r.time("time"); err != nil {
		return h, err
	}
	if h.WeatherCode, err = r.int("weather_code"); err != nil {
		return h, err
	}
	if h.Temperature, err = r.float("temperature_2m"); err != nil {
		return h, err
	}
	h.ApparentTemperature = r.optFloat("apparent_temperature")
	h.WindSpeed = r.optFloat("wind_speed_10m")
	h.RelativeHumidity = r.optInt("relative_humidity_2m")
	h.PrecipitationProbability = r.optInt("precipitation_probability")
	h.CloudCover = r.optInt("cloud_cover")
	return h, nil
}
