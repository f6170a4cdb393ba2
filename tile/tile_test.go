package tile

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// Westminster, Colorado; a city-park sized box by Standley Lake.
var parkBound = orb.Bound{
	Min: orb.Point{-105.1514, 39.8762},
	Max: orb.Point{-105.1342, 39.8905},
}

func TestAt(t *testing.T) {
	cases := []struct {
		pt   orb.Point
		zoom ZoomLevel
		want Tile
	}{
		{chicago, 3, Tile{X: 2, Y: 2, Zoom: 3}},
		{orb.Point{-87.65005229999997, 41.850033}, 7, Tile{X: 32, Y: 47, Zoom: 7}},
		{orb.Point{-87.65005229999997, 41.850033}, 14, Tile{X: 4202, Y: 6091, Zoom: 14}},
	}
	for _, c := range cases {
		got := At(c.pt, c.zoom)
		if got != c.want {
			t.Errorf("Expected %v, but got %v", c.want, got)
		}
	}
}

func TestPixelBounds_Containment(t *testing.T) {
	tiles := []Tile{
		{X: 2, Y: 2, Zoom: 3},
		{X: 0, Y: 0, Zoom: 1},
		{X: 4202, Y: 6091, Zoom: 14},
		{X: 524287, Y: 524287, Zoom: 20},
	}
	weights := []float64{0.001, 0.25, 0.5, 0.75, 0.999}
	for _, tc := range tiles {
		pb := tc.PixelBounds()
		for _, wx := range weights {
			for _, wy := range weights {
				p := PixelCoordinate{
					X:    pb.TopLeft.X + wx*(pb.BottomRight.X-pb.TopLeft.X),
					Y:    pb.TopLeft.Y + wy*(pb.BottomRight.Y-pb.TopLeft.Y),
					Zoom: tc.Zoom,
				}
				if got := p.Tile(); got != tc {
					t.Errorf("Expected %v at weights (%v, %v), but got %v", tc, wx, wy, got)
				}
			}
		}
	}
}

func TestBound(t *testing.T) {
	tc := At(chicago, 10)
	b := tc.Bound()
	if b.Min.Lat() >= b.Max.Lat() || b.Min.Lon() >= b.Max.Lon() {
		t.Errorf("Expected a proper bound, but got %v", b)
	}
	if !b.Contains(chicago) {
		t.Errorf("Expected bound %v to contain %v", b, chicago)
	}
	if got := At(b.Center(), 10); got != tc {
		t.Errorf("Expected center of %v to map back, but got %v", tc, got)
	}
}

func TestCovering_DegeneratePoint(t *testing.T) {
	for z := MinZoom; z <= MaxZoom; z++ {
		tiles := Covering(orb.Bound{Min: chicago, Max: chicago}, z)
		if len(tiles) != 1 {
			t.Errorf("Expected 1 tile at zoom %d, but got %d", z, len(tiles))
		}
	}
}

func TestCovering_Park(t *testing.T) {
	cases := []struct {
		zoom ZoomLevel
		want int
	}{
		{10, 1},
		{14, 2},
		{15, 6},
	}
	for _, c := range cases {
		tiles := Covering(parkBound, c.zoom)
		if len(tiles) != c.want {
			t.Errorf("Expected %d tiles at zoom %d, but got %d", c.want, c.zoom, len(tiles))
		}
	}
}

func TestCovering_Ordering(t *testing.T) {
	// A box pinned to the centers of a 2x2 tile block.
	nw := Tile{X: 100, Y: 90, Zoom: 8}
	se := Tile{X: 101, Y: 91, Zoom: 8}
	b := orb.Bound{
		Min: orb.Point{nw.Bound().Center().Lon(), se.Bound().Center().Lat()},
		Max: orb.Point{se.Bound().Center().Lon(), nw.Bound().Center().Lat()},
	}
	expected := []Tile{
		{X: 100, Y: 90, Zoom: 8},
		{X: 100, Y: 91, Zoom: 8},
		{X: 101, Y: 90, Zoom: 8},
		{X: 101, Y: 91, Zoom: 8},
	}
	actual := Covering(b, 8)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}
}

func TestMapTile(t *testing.T) {
	points := []orb.Point{
		{-87.65005229999997, 41.850033},
		{-104.9903, 39.7392},
		{151.2093, -33.8688},
		{-21.9426, 64.1466},
		{18.4241, -33.9249},
	}
	for _, pt := range points {
		for z := ZoomLevel(3); z <= 17; z += 2 {
			got := At(pt, z).MapTile()
			want := maptile.At(pt, maptile.Zoom(z))
			if got != want {
				t.Errorf("Expected %v for %v at zoom %d, but got %v", want, pt, z, got)
			}
		}
	}
}
