package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"wthr/internal/providers/openstreetmap"
	"wthr/internal/storage"
	"wthr/internal/transport"
)

// ErrNotFound means geocoding returned no candidates for the given name.
var ErrNotFound = errors.New("location not found")

// Location is an immutable resolved place. Coordinates are rounded to two
// decimal places at creation; that precision is both the cache key precision
// and what gets sent to the forecast provider.
type Location struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func New(displayName string, latitude, longitude float64) Location {
	return Location{
		DisplayName: displayName,
		Latitude:    round2(latitude),
		Longitude:   round2(longitude),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Geocoder resolves a free-text place name to candidate places.
type Geocoder interface {
	Search(query string) ([]openstreetmap.SearchResult, error)
}

// Service resolves place names through the cache first, then the geocoder.
type Service struct {
	geocoder Geocoder
	cache    storage.Store
	logger   *slog.Logger
}

// NewService creates a location service with the real Nominatim client.
func NewService(t *transport.Client, cache storage.Store, logger *slog.Logger) *Service {
	return NewServiceWithProviders(openstreetmap.NewClient(t), cache, logger)
}

// NewServiceWithProviders creates a location service with a custom geocoder.
// This is useful for testing with mock providers.
func NewServiceWithProviders(geocoder Geocoder, cache storage.Store, logger *slog.Logger) *Service {
	return &Service{
		geocoder: geocoder,
		cache:    cache,
		logger:   logger.With("component", "location-service"),
	}
}

// Resolve maps a user-supplied place name to a Location. Cache hits skip the
// geocoder entirely; cache failures are logged and ignored, the cache is
// best-effort.
func (s *Service) Resolve(name string) (Location, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if raw, ok, err := s.cache.Get(key); err != nil {
		s.logger.Warn("location cache read failed", "name", key, "error", err)
	} else if ok {
		var loc Location
		if err := json.Unmarshal(raw, &loc); err == nil {
			s.logger.Debug("location cache hit", "name", key)
			return loc, nil
		}
		s.logger.Warn("discarding unreadable cache entry", "name", key)
	}

	results, err := s.geocoder.Search(name)
	if err != nil {
		return Location{}, fmt.Errorf("failed to geocode %q: %w", name, err)
	}
	if len(results) == 0 {
		return Location{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("bad latitude %q in geocoder response: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("bad longitude %q in geocoder response: %w", results[0].Lon, err)
	}

	loc := New(results[0].DisplayName, lat, lon)
	if err := s.cache.Put(key, loc); err != nil {
		s.logger.Warn("failed to cache location", "name", key, "error", err)
	}
	return loc, nil
}
