package tile

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Tile indexes one 256×256-pixel tile in the standard tile pyramid.
// Out-of-range pixel inputs yield out-of-range indexes (negative, or past
// 2^zoom-1); they are returned as computed, never flagged.
type Tile struct {
	X, Y int
	Zoom ZoomLevel
}

// Tile floors the pixel coordinate down to its containing tile. The top and
// left tile edges are inclusive, bottom and right exclusive.
func (p PixelCoordinate) Tile() Tile {
	return Tile{
		X:    int(math.Floor(p.X / TileSize)),
		Y:    int(math.Floor(p.Y / TileSize)),
		Zoom: p.Zoom,
	}
}

// PixelBounds returns the pixel-space footprint of the tile.
func (t Tile) PixelBounds() PixelBounds {
	return PixelBounds{
		TopLeft:     PixelCoordinate{X: float64(t.X) * TileSize, Y: float64(t.Y) * TileSize, Zoom: t.Zoom},
		BottomRight: PixelCoordinate{X: float64(t.X+1) * TileSize, Y: float64(t.Y+1) * TileSize, Zoom: t.Zoom},
	}
}

// At returns the tile containing the (lon, lat) point at z.
func At(pt orb.Point, z ZoomLevel) Tile {
	return ToWorld(pt).Pixel(z).Tile()
}

// Bound returns the geodetic bounding box covered by the tile.
func (t Tile) Bound() orb.Bound {
	pb := t.PixelBounds()
	tl := pb.TopLeft.World().LatLng()
	br := pb.BottomRight.World().LatLng()
	return orb.Bound{
		Min: orb.Point{tl.Lon(), br.Lat()},
		Max: orb.Point{br.Lon(), tl.Lat()},
	}
}

// Covering enumerates every tile at z whose footprint intersects b,
// x-major, y-minor. A degenerate point-extent bound yields exactly one
// tile. Bounds spanning the antimeridian are not handled; indexes are
// not wrapped modulo 2^zoom.
func Covering(b orb.Bound, z ZoomLevel) []Tile {
	tl := At(b.LeftTop(), z)
	br := At(b.RightBottom(), z)

	minX, maxX := ordered(tl.X, br.X)
	minY, maxY := ordered(tl.Y, br.Y)

	tiles := make([]Tile, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			tiles = append(tiles, Tile{X: x, Y: y, Zoom: z})
		}
	}
	return tiles
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// MapTile converts to the orb/maptile representation.
// Meaningless for out-of-range indexes.
func (t Tile) MapTile() maptile.Tile {
	return maptile.New(uint32(t.X), uint32(t.Y), maptile.Zoom(t.Zoom))
}
