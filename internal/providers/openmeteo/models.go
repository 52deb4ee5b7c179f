package openmeteo

// ForecastAPIResponse is the raw shape of the /v1/forecast payload. The
// current block is a single flat object; daily and hourly are column-oriented
// (each field is a full array indexed by time-step), so they stay untyped
// until normalization.
type ForecastAPIResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Elevation float64        `json:"elevation"`
	Current   map[string]any `json:"current"`
	Daily     map[string]any `json:"daily"`
	Hourly    map[string]any `json:"hourly"`
}
