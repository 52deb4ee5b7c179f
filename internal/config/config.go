package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	DefaultLocation string `mapstructure:"default_location"`
	Timezone        string `mapstructure:"timezone"`
	TemperatureUnit string `mapstructure:"temperature_unit"`
	WindSpeedUnit   string `mapstructure:"wind_speed_unit"`
	Log             LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A .env file is optional
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir, err := Dir(); err == nil {
		viper.AddConfigPath(dir)
	}

	// Set defaults
	viper.SetDefault("default_location", "")
	viper.SetDefault("timezone", "auto")
	viper.SetDefault("temperature_unit", "")
	viper.SetDefault("wind_speed_unit", "")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")

	// Read from environment variables
	viper.SetEnvPrefix("WTHR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Dir returns the per-user config directory for the tool.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config dir: %w", err)
	}
	return filepath.Join(dir, "wthr"), nil
}

// SaveDefaultLocation persists the default location to the config file.
func SaveDefaultLocation(name string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.Set("default_location", name)
	path := viper.ConfigFileUsed()
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ClearDefaultLocation removes the persisted default location.
func ClearDefaultLocation() error {
	return SaveDefaultLocation("")
}

// NewLogger creates a new slog.Logger based on the configuration. Log output
// goes to stderr so rendered output on stdout stays clean.
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
