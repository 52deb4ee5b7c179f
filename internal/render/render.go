package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"wthr/internal/forecast"
)

// Weather writes the full report: a header with the place name, then the
// populated branches of the aggregate, in current/daily/hourly order. Daily
// panels and hourly rows are limited to the requested counts.
func Weather(out io.Writer, w *forecast.Weather, sel forecast.Selection) {
	panel(out, "🌐", w.LocationName)

	if w.Current != nil {
		panel(out, "📍 Current weather", currentBody(w.Current))
	}

	if len(w.Daily) > 0 && sel.Days > 0 {
		days := w.Daily
		if len(days) > sel.Days {
			days = days[:sel.Days]
		}
		for _, day := range days {
			panel(out, "📅 "+day.Time.Format("02.01.2006"), dailyBody(day))
		}
	}

	if len(w.Hourly) > 0 && sel.Hours > 0 {
		panel(out, "⏰ Hourly forecast", hourlyBody(w.Hourly, sel.Hours))
	}
}

// Notice writes a single short bordered message, e.g. "location not found".
func Notice(out io.Writer, msg string) {
	panel(out, "", msg)
}

// panel draws a left-anchored rounded border around the body. No right edge,
// so ANSI color codes never break the alignment.
func panel(out io.Writer, title string, body string) {
	if title != "" {
		fmt.Fprintf(out, "╭─ %s\n", title)
	} else {
		fmt.Fprintln(out, "╭─")
	}
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		fmt.Fprintf(out, "│ %s\n", line)
	}
	fmt.Fprintln(out, "╰─")
}

func currentBody(c *forecast.Current) string {
	var b strings.Builder

	info := Describe(c.WeatherCode)
	fmt.Fprintf(&b, "%s %s\n\n", info.Emoji, weatherColor(c.WeatherCode).Sprint(info.Description))

	dayNight := "Night"
	if c.IsDay {
		dayNight = "Day"
	}
	fmt.Fprintf(&b, "%-14s%s (%s)\n", "Time", c.Time.Format("15:04"), dayNight)
	fmt.Fprintf(&b, "%-14s%s\n", "Temperature", colorizeTemp(c.Temperature))
	if c.ApparentTemperature != nil {
		fmt.Fprintf(&b, "%-14s%s\n", "Feels like", colorizeTemp(*c.ApparentTemperature))
	}
	wind := fmt.Sprintf("%.1f", c.WindSpeed)
	if c.WindDirection != nil {
		wind += fmt.Sprintf(" (%d°)", *c.WindDirection)
	}
	fmt.Fprintf(&b, "%-14s%s\n", "Wind", wind)
	fmt.Fprintf(&b, "%-14s%d%%\n", "Humidity", c.RelativeHumidity)

	return b.String()
}

func dailyBody(d forecast.Daily) string {
	var b strings.Builder

	info := Describe(d.WeatherCode)
	fmt.Fprintf(&b, "%s %s\n\n", info.Emoji, weatherColor(d.WeatherCode).Sprint(info.Description))

	fmt.Fprintf(&b, "%-14s%s, %s\n", "Date", d.Time.Format("Monday"), d.Time.Format("02.01.2006"))
	fmt.Fprintf(&b, "%-14s%s\n", "Min", colorizeTemp(d.TemperatureMin))
	fmt.Fprintf(&b, "%-14s%s\n", "Max", colorizeTemp(d.TemperatureMax))
	if d.ApparentTemperatureMin != nil {
		fmt.Fprintf(&b, "%-14s%s\n", "Feels (min)", colorizeTemp(*d.ApparentTemperatureMin))
	}
	if d.ApparentTemperatureMax != nil {
		fmt.Fprintf(&b, "%-14s%s\n", "Feels (max)", colorizeTemp(*d.ApparentTemperatureMax))
	}
	precip := fmt.Sprintf("%d%%", d.PrecipitationProbabilityMax)
	if d.PrecipitationSum != nil && *d.PrecipitationSum > 0 {
		precip += fmt.Sprintf(" (%.1f mm)", *d.PrecipitationSum)
	}
	fmt.Fprintf(&b, "%-14s%s\n", "Precipitation", precip)
	if d.WindSpeedMax != nil {
		fmt.Fprintf(&b, "%-14s%.1f\n", "Wind (max)", *d.WindSpeedMax)
	}
	fmt.Fprintf(&b, "%-14s%s — %s\n", "Sun", d.Sunrise.Format("15:04"), d.Sunset.Format("15:04"))

	return b.String()
}

func hourlyBody(hours []forecast.Hourly, limit int) string {
	if len(hours) > limit {
		hours = hours[:limit]
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tWeather\tTemp\tWind\tHumidity\tPrecip")
	for _, h := range hours {
		info := Describe(h.WeatherCode)
		fmt.Fprintf(tw, "%s\t%s %s\t%.0f°\t%s\t%s\t%s\n",
			h.Time.Format("15:04"),
			info.Emoji,
			info.Description,
			h.Temperature,
			optFloatCell(h.WindSpeed, "%.1f"),
			optIntCell(h.RelativeHumidity, "%d%%"),
			optIntCell(h.PrecipitationProbability, "%d%%"),
		)
	}
	_ = tw.Flush()
	return b.String()
}

func optFloatCell(v *float64, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}

func optIntCell(v *int, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}

// colorizeTemp renders a temperature with a color bucket from hot to cold.
func colorizeTemp(t float64) string {
	return tempColor(t).Sprintf("%.0f°", t)
}

func tempColor(t float64) *color.Color {
	switch {
	case t >= 30:
		return color.New(color.FgRed, color.Bold)
	case t >= 20:
		return color.New(color.FgHiYellow)
	case t >= 10:
		return color.New(color.FgYellow)
	case t >= 0:
		return color.New(color.FgGreen)
	case t >= -10:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func weatherColor(code int) *color.Color {
	switch {
	case code <= 1:
		return color.New(color.FgYellow)
	case code <= 3:
		return color.New(color.FgWhite)
	case code == 45 || code == 48:
		return color.New(color.FgHiBlack)
	case code >= 50 && code <= 67:
		return color.New(color.FgBlue)
	case code >= 70 && code <= 77:
		return color.New(color.FgCyan)
	case code >= 95:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgWhite)
	}
}
