//go:build integration

package openstreetmap

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"wthr/internal/transport"
)

func TestClient_Search_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(transport.NewClient(logger))

	t.Logf("Making API call to OpenStreetMap Nominatim API...")

	results, err := client.Search("Moscow")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	rawJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(results) == 0 {
		t.Fatal("No candidates returned")
	}
	if results[0].DisplayName == "" {
		t.Error("Candidate has no display name")
	}
	if results[0].Lat == "" || results[0].Lon == "" {
		t.Error("Candidate has no coordinates")
	}
}
