package tile

import (
	"reflect"
	"testing"
)

func TestCoverage(t *testing.T) {
	tiles := Covering(parkBound, 15)
	report := Coverage(tiles)

	if report.Tiles != 6 {
		t.Errorf("Expected 6 tiles, but got %d", report.Tiles)
	}
	if report.Zoom != 15 {
		t.Errorf("Expected zoom 15, but got %d", report.Zoom)
	}
	if report.ResolutionMin <= 0 {
		t.Errorf("Expected positive resolution, but got %v", report.ResolutionMin)
	}
	if report.ResolutionMin > report.ResolutionMean || report.ResolutionMean > report.ResolutionMax {
		t.Errorf("Expected min <= mean <= max, but got %v <= %v <= %v",
			report.ResolutionMin, report.ResolutionMean, report.ResolutionMax)
	}
}

func TestCoverage_Empty(t *testing.T) {
	if got := Coverage(nil); !reflect.DeepEqual(got, CoverageReport{}) {
		t.Errorf("Expected zero report, but got %v", got)
	}
}
