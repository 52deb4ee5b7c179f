package render

// Info is the presentation of one WMO weather interpretation code.
type Info struct {
	Emoji       string
	Description string
}

// weatherCodes maps WMO codes to emoji and description.
// https://open-meteo.com/en/docs#weather_variable_documentation
var weatherCodes = map[int]Info{
	0:  {"☀️", "Clear sky"},
	1:  {"🌤️", "Mainly clear"},
	2:  {"⛅", "Partly cloudy"},
	3:  {"☁️", "Overcast"},
	45: {"🌫️", "Fog"},
	48: {"🌫️", "Depositing rime fog"},
	51: {"🌦️", "Light drizzle"},
	53: {"🌦️", "Drizzle"},
	55: {"🌦️", "Dense drizzle"},
	61: {"🌧️", "Light rain"},
	63: {"🌧️", "Rain"},
	65: {"🌧️", "Heavy rain"},
	71: {"🌨️", "Light snow"},
	73: {"🌨️", "Snow"},
	75: {"🌨️", "Heavy snow"},
	77: {"❄️", "Snow grains"},
	80: {"🌦️", "Rain showers"},
	81: {"🌧️", "Heavy rain showers"},
	82: {"⛈️", "Violent rain showers"},
	95: {"⛈️", "Thunderstorm"},
	96: {"⛈️", "Thunderstorm with hail"},
	99: {"⛈️", "Thunderstorm with heavy hail"},
}

// Describe returns the presentation for a weather code, with a fallback for
// codes outside the table.
func Describe(code int) Info {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return Info{"❓", "Unknown"}
}
