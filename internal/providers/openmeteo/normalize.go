package openmeteo

// normalizeTimeSeries converts a column-oriented block
//
//	{"time": [t0, t1], "weather_code": [c0, c1]}
//
// into one row per index
//
//	[{"time": t0, "weather_code": c0}, {"time": t1, "weather_code": c1}]
//
// The "time" array sets the record count. A field whose array is shorter
// than "time" is simply absent from the trailing rows. An empty block or a
// block without a "time" array yields no rows.
func normalizeTimeSeries(block map[string]any) []row {
	if len(block) == 0 {
		return nil
	}
	times, ok := block["time"].([]any)
	if !ok {
		return nil
	}

	rows := make([]row, 0, len(times))
	for i := range times {
		item := row{}
		for alias, v := range block {
			values, ok := v.([]any)
			if ok && len(values) > i {
				item[alias] = values[i]
			}
		}
		rows = append(rows, item)
	}
	return rows
}
