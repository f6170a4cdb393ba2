package tile

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the mean radius of the Earth in meters (spherical model).
const EarthRadiusM = 6372800.0

// HaversineMeters returns the great-circle distance between two (lon, lat)
// points in meters. Symmetric in its arguments.
func HaversineMeters(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180.0
	lat2 := b.Lat() * math.Pi / 180.0
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180.0 / 2.0
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180.0 / 2.0

	h := math.Sin(dLat)*math.Sin(dLat) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon)*math.Sin(dLon)
	return 2 * EarthRadiusM * math.Asin(math.Sqrt(h))
}
