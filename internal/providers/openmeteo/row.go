package openmeteo

import (
	"fmt"
	"time"
)

// row is one flat record keyed by provider alias: either the current block
// as-is, or one index of a normalized daily/hourly block.
type row map[string]any

// Layouts open-meteo uses with timeformat=iso8601 (the default): minute
// resolution for current/hourly/sun times, bare dates for daily steps.
var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func (r row) float(alias string) (float64, error) {
	v, ok := r[alias]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required field %q", alias)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q: expected number, got %T", alias, v)
	}
	return f, nil
}

func (r row) int(alias string) (int, error) {
	f, err := r.float(alias)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (r row) optFloat(alias string) *float64 {
	v, ok := r[alias]
	if !ok || v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

func (r row) optInt(alias string) *int {
	f := r.optFloat(alias)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func (r row) time(alias string) (time.Time, error) {
	v, ok := r[alias]
	if !ok || v == nil {
		return time.Time{}, fmt.Errorf("missing required field %q", alias)
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("field %q: expected timestamp string, got %T", alias, v)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("field %q: unrecognized timestamp %q", alias, s)
}

// flag reads a 0/1 numeric field as a bool.
func (r row) flag(alias string) (bool, error) {
	f, err := r.float(alias)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}
