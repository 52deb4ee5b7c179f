package openmeteo

import (
	"reflect"
	"testing"
)

func TestNormalizeTimeSeries(t *testing.T) {
	tests := []struct {
		name     string
		block    map[string]any
		expected []row
	}{
		{
			name: "aligned arrays become one row per index",
			block: map[string]any{
				"time":           []any{"t0", "t1"},
				"weather_code":   []any{1.0, 2.0},
				"temperature_2m": []any{10.0, 12.0},
			},
			expected: []row{
				{"time": "t0", "weather_code": 1.0, "temperature_2m": 10.0},
				{"time": "t1", "weather_code": 2.0, "temperature_2m": 12.0},
			},
		},
		{
			name:     "empty block yields no rows",
			block:    map[string]any{},
			expected: nil,
		},
		{
			name:     "nil block yields no rows",
			block:    nil,
			expected: nil,
		},
		{
			name:     "block without a time array yields no rows",
			block:    map[string]any{"foo": []any{1.0, 2.0}},
			expected: nil,
		},
		{
			name:     "time that is not an array yields no rows",
			block:    map[string]any{"time": "t0"},
			expected: nil,
		},
		{
			name: "short arrays drop out of trailing rows",
			block: map[string]any{
				"time": []any{"t0", "t1"},
				"x":    []any{5.0},
			},
			expected: []row{
				{"time": "t0", "x": 5.0},
				{"time": "t1"},
			},
		},
		{
			name: "scalar fields are skipped entirely",
			block: map[string]any{
				"time":  []any{"t0"},
				"units": "celsius",
			},
			expected: []row{
				{"time": "t0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTimeSeries(tt.block)
			if len(got) != len(tt.expected) {
				t.Fatalf("normalizeTimeSeries() returned %d rows, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if !reflect.DeepEqual(got[i], tt.expected[i]) {
					t.Errorf("row %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
