package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wthr/internal/config"
	"wthr/internal/forecast"
	"wthr/internal/location"
	"wthr/internal/render"
	"wthr/internal/storage"
	"wthr/internal/transport"
	"wthr/internal/weather"
)

var (
	dailyFlag  bool
	daysFlag   int
	hourlyFlag bool
	hoursFlag  int
	mixedFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "wthr [location]",
	Short: "Look up the weather forecast for a place",
	Long: `Look up the weather forecast for a place.

Three forecast types are available:
  1. Current conditions (default): temperature, wind, humidity right now.
  2. Daily forecast (-d, --days): min/max temperature, precipitation, sun.
  3. Hourly forecast (-H, --hours): conditions for the next hours.

With no type given only current conditions are shown. A bare -d shows 4
days, a bare -H shows 12 hours. Combining daily and hourly signals, or
passing --mixed, shows all three types at once.

With no location argument the configured default location is used, or you
are prompted for one.`,
	Version:      "0.1.0",
	Args:         cobra.ArbitraryArgs,
	RunE:         runWeather,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&dailyFlag, "daily", "d", false, "show the daily forecast")
	rootCmd.Flags().IntVar(&daysFlag, "days", 0, "number of days to show (1-16, default 4)")
	rootCmd.Flags().BoolVarP(&hourlyFlag, "hourly", "H", false, "show the hourly forecast")
	rootCmd.Flags().IntVar(&hoursFlag, "hours", 0, "number of hours to show (1-168, default 12)")
	rootCmd.Flags().BoolVarP(&mixedFlag, "mixed", "m", false, "show all three forecast types")
}

func runWeather(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		name = cfg.DefaultLocation
	}
	if name == "" {
		name, err = promptLocation(cmd)
		if err != nil {
			return err
		}
	}

	sel := forecast.Resolve(forecast.Intent{
		Daily:  dailyFlag,
		Days:   daysFlag,
		Hourly: hourlyFlag,
		Hours:  hoursFlag,
		Mixed:  mixedFlag,
	})

	cachePath, err := storage.DefaultCachePath()
	if err != nil {
		return err
	}

	t := transport.NewClient(logger)
	locSvc := location.NewService(t, storage.NewFileStore(cachePath), logger)

	loc, err := locSvc.Resolve(name)
	if errors.Is(err, location.ErrNotFound) {
		render.Notice(cmd.OutOrStdout(), fmt.Sprintf("Location %q not found", name))
		return nil
	}
	if err != nil {
		return err
	}

	w, err := weather.NewService(t, cfg, logger).GetWeather(loc, sel)
	if err != nil {
		return err
	}

	render.Weather(cmd.OutOrStdout(), w, sel)
	return nil
}

// promptLocation asks on stderr and reads the place name from stdin.
func promptLocation(cmd *cobra.Command) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(os.Stderr, "Enter a location: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read location: %w", err)
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
}
