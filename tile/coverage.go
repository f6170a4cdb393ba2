package tile

import (
	"github.com/montanaflynn/stats"

	"github.com/bgschiller/backsplash/common"
)

// CoverageReport summarizes a set of tiles covering some bound: how many
// there are and the spread of ground resolution across their centers.
type CoverageReport struct {
	Tiles int
	Zoom  ZoomLevel

	// Meters per pixel at tile centers, rounded to 3 places.
	ResolutionMin  float64
	ResolutionMean float64
	ResolutionMax  float64
}

// Coverage reports on tiles, normally the output of Covering.
// Zoom is taken from the first tile; an empty set yields a zero report.
func Coverage(tiles []Tile) CoverageReport {
	if len(tiles) == 0 {
		return CoverageReport{}
	}

	report := CoverageReport{Tiles: len(tiles), Zoom: tiles[0].Zoom}

	resolutions := make([]float64, 0, len(tiles))
	for _, t := range tiles {
		resolutions = append(resolutions, MetersPerPixel(t.Bound().Center(), t.Zoom))
	}

	statsMustFloat := func(fn func() (float64, error)) float64 {
		out, _ := fn()
		return out
	}

	statsData := stats.Float64Data(resolutions)
	report.ResolutionMin = common.DecimalToFixed(statsMustFloat(statsData.Min), 3)
	report.ResolutionMean = common.DecimalToFixed(statsMustFloat(statsData.Mean), 3)
	report.ResolutionMax = common.DecimalToFixed(statsMustFloat(statsData.Max), 3)
	return report
}
