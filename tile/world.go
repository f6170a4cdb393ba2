package tile

import (
	"math"

	"github.com/paulmach/orb"
)

// mercatorSinLimit bounds sin(latitude) away from ±1 so the projection's
// y value stays finite near the poles. Latitudes beyond about ±89.19°
// clamp and do not round-trip exactly.
const mercatorSinLimit = 0.9999

// WorldCoordinate is a position in the continuous 256×256 spherical-Mercator
// square, zoom-independent. Valid map positions have X and Y in [0, 256).
type WorldCoordinate struct {
	X, Y float64
}

// ToWorld projects a (lon, lat) point onto the world coordinate square.
// Longitude maps linearly; latitude through the Mercator y-function with
// the sine clamp.
func ToWorld(pt orb.Point) WorldCoordinate {
	x := TileSize * (0.5 + pt.Lon()/360.0)

	siny := math.Sin(pt.Lat() * math.Pi / 180.0)
	siny = math.Min(math.Max(siny, -mercatorSinLimit), mercatorSinLimit)

	y := TileSize * (0.5 - math.Log((1+siny)/(1-siny))/(4*math.Pi))
	return WorldCoordinate{X: x, Y: y}
}

// LatLng unprojects the world coordinate back to (lon, lat) degrees.
// Exact algebraic inverse of ToWorld inside the clamp band.
func (w WorldCoordinate) LatLng() orb.Point {
	lon := (w.X/TileSize - 0.5) * 360.0

	// Invert y = 256*(0.5 - ln((1+s)/(1-s))/4π) for s = sin(lat):
	// (1+s)/(1-s) = e^2π / e^(4π·y/256).
	ratio := math.Exp(2*math.Pi - 4*math.Pi*w.Y/TileSize)
	siny := (ratio - 1) / (ratio + 1)
	lat := math.Asin(siny) * 180.0 / math.Pi

	return orb.Point{lon, lat}
}
