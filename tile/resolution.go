package tile

import (
	"math"

	"github.com/paulmach/orb"
)

// MetersPerPixel returns the ground resolution in meters per pixel at the
// point's latitude and the given zoom.
func MetersPerPixel(pt orb.Point, z ZoomLevel) float64 {
	return EquatorMetersPerPixel * math.Cos(pt.Lat()*math.Pi/180.0) / z.scale()
}

// ZoomForResolution returns the zoom level whose ground resolution at the
// point's latitude best matches metersPerPx: the ideal fractional zoom is
// floored, then clamped to the valid domain. Not an exact inverse of
// MetersPerPixel outside the clamp range; extreme resolutions saturate at
// MinZoom or MaxZoom.
func ZoomForResolution(pt orb.Point, metersPerPx float64) ZoomLevel {
	ideal := math.Log2(EquatorMetersPerPixel * math.Cos(pt.Lat()*math.Pi/180.0) / metersPerPx)
	return ClampZoom(int(math.Floor(ideal)))
}

// ChooseZoom picks the zoom at which b's top edge spans about
// viewportWidthPx pixels. The edge is measured as the great-circle distance
// from the bound's top-left to its top-right corner, and the resolution is
// evaluated at the top-right corner.
func ChooseZoom(b orb.Bound, viewportWidthPx float64) ZoomLevel {
	topRight := b.Max
	widthMeters := HaversineMeters(b.LeftTop(), topRight)
	return ZoomForResolution(topRight, widthMeters/viewportWidthPx)
}
