package openmeteo

import (
	"fmt"

	"wthr/internal/forecast"
)

// ParseForecast builds the typed Weather aggregate from a raw response. A
// block is extracted only when the requested kind implies it AND the provider
// actually returned it; a provider omission leaves that branch unset rather
// than failing the parse. A malformed record anywhere fails the whole parse.
func ParseForecast(raw *ForecastAPIResponse, kind forecast.Kind, displayName string) (*forecast.Weather, error) {
	w := &forecast.Weather{LocationName: displayName}

	if kind.HasCurrent() && raw.Current != nil {
		current, err := newCurrent(row(raw.Current))
		if err != nil {
			return nil, fmt.Errorf("current block: %w", err)
		}
		w.Current = &current
	}

	if kind.HasDaily() && raw.Daily != nil {
		rows := normalizeTimeSeries(raw.Daily)
		w.Daily = make([]forecast.Daily, 0, len(rows))
		for i, r := range rows {
			day, err := newDaily(r)
			if err != nil {
				return nil, fmt.Errorf("daily record %d: %w", i, err)
			}
			w.Daily = append(w.Daily, day)
		}
	}

	if kind.HasHourly() && raw.Hourly != nil {
		rows := normalizeTimeSeries(raw.Hourly)
		w.Hourly = make([]forecast.Hourly, 0, len(rows))
		for i, r := range rows {
			hour, err := newHourly(r)
			if err != nil {
				return nil, fmt.Errorf("hourly record %d: %w", i, err)
			}
			w.Hourly = append(w.Hourly, hour)
		}
	}

	return w, nil
}
