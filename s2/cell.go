// Package s2 bridges slippy-map tiles to S2 cell indexing.
package s2

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"

	"github.com/bgschiller/backsplash/tile"
)

/*
https://s2geometry.io/resources/s2cell_statistics.html

level  average area       edge length (approx)
08     1297.17 km2        27-39 km
09     324.29 km2         14-20 km
11     20.27 km2          3-5 km
12     5.07 km2           ~2 km
13     1.27 km2           ~1 km
14     0.32 km2           425-613 m
16     19793.17 m2        106-153 m
17     4948.29 m2         53-77 m
18     1237.07 m2         27-38 m
19     309.27 m2          13-19 m
20     77.32 m2           7-10 m
*/

// CellLevel is an S2 cell level, 0-30.
type CellLevel int

const (
	CellLevel8  CellLevel = 8
	CellLevel9  CellLevel = 9
	CellLevel11 CellLevel = 11
	CellLevel12 CellLevel = 12
	CellLevel13 CellLevel = 13
	CellLevel14 CellLevel = 14
	CellLevel16 CellLevel = 16
	CellLevel17 CellLevel = 17
	CellLevel18 CellLevel = 18
	CellLevel19 CellLevel = 19
	CellLevel20 CellLevel = 20
)

// ZoomCellLevels pairs cell levels with the inclusive slippy zoom range
// at which features indexed at that cell level read well on a map.
var ZoomCellLevels = map[CellLevel][2]tile.ZoomLevel{
	CellLevel8:  {3, 6},
	CellLevel9:  {5, 8},
	CellLevel11: {6, 9},
	CellLevel12: {8, 10},
	CellLevel13: {9, 11},
	CellLevel14: {10, 12},
	CellLevel16: {11, 12},
	CellLevel17: {12, 15},
	CellLevel18: {14, 16},
	CellLevel19: {15, 18},
	CellLevel20: {16, 19},
}

// CellLevelForZoom returns the finest cell level whose zoom range covers z.
// Zooms below every range take the coarsest level, above every range the
// finest.
func CellLevelForZoom(z tile.ZoomLevel) CellLevel {
	best := CellLevel(-1)
	for level, zooms := range ZoomCellLevels {
		if z >= zooms[0] && z <= zooms[1] && level > best {
			best = level
		}
	}
	if best >= 0 {
		return best
	}
	if z < 3 {
		return CellLevel8
	}
	return CellLevel20
}

// CellIDWithLevel returns the cellID truncated to the given level.
// https://docs.s2cell.aliddell.com/en/stable/s2_concepts.html#truncation
func CellIDWithLevel(cellID s2.CellID, level CellLevel) s2.CellID {
	var lsb uint64 = 1 << (2 * (30 - level))
	truncatedCellID := (uint64(cellID) & -lsb) | lsb
	return s2.CellID(truncatedCellID)
}

// CellIDForPoint returns the cell containing the (lon, lat) point at some level.
func CellIDForPoint(pt orb.Point, level CellLevel) s2.CellID {
	leaf := s2.CellIDFromLatLng(s2.LatLngFromDegrees(pt.Lat(), pt.Lon()))
	return CellIDWithLevel(leaf, level)
}

// CellIDForTile returns the cell covering the tile's center, at the level
// matched to the tile's zoom.
func CellIDForTile(t tile.Tile) s2.CellID {
	return CellIDForPoint(t.Bound().Center(), CellLevelForZoom(t.Zoom))
}
