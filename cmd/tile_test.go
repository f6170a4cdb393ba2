package cmd

import (
	"log/slog"
	"testing"

	"github.com/bgschiller/backsplash/common"
)

func TestPointFromGeoJSON(t *testing.T) {
	defer common.SlogResetLevel(slog.Level(slog.LevelWarn + 1))()

	line := []byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[-87.65,41.85]},"properties":{}}`)
	pt, ok := pointFromGeoJSON(line)
	if !ok {
		t.Fatal("Expected a point")
	}
	if pt.Lon() != -87.65 || pt.Lat() != 41.85 {
		t.Errorf("Expected (-87.65, 41.85), but got %v", pt)
	}

	for _, bad := range []string{
		`{"type":"Feature","geometry":null,"properties":{}}`,
		`not json`,
		`{"geometry":{"type":"Point","coordinates":[]}}`,
	} {
		if _, ok := pointFromGeoJSON([]byte(bad)); ok {
			t.Errorf("Expected no point for %q", bad)
		}
	}
}

func TestParseBBox(t *testing.T) {
	b, err := parseBBox("-105.1514,39.8762,-105.1342,39.8905")
	if err != nil {
		t.Fatal(err)
	}
	if b.Min.Lon() != -105.1514 || b.Min.Lat() != 39.8762 ||
		b.Max.Lon() != -105.1342 || b.Max.Lat() != 39.8905 {
		t.Errorf("Unexpected bound %v", b)
	}

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "1,2,3,4,5"} {
		if _, err := parseBBox(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseLatLon(t *testing.T) {
	pt, err := parseLatLon("41.85", "-87.65")
	if err != nil {
		t.Fatal(err)
	}
	if pt.Lat() != 41.85 || pt.Lon() != -87.65 {
		t.Errorf("Unexpected point %v", pt)
	}

	if _, err := parseLatLon("north", "-87.65"); err == nil {
		t.Error("Expected error for bad latitude")
	}
	if _, err := parseLatLon("41.85", "west"); err == nil {
		t.Error("Expected error for bad longitude")
	}
}
