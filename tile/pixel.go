package tile

// PixelCoordinate is a world coordinate scaled by 2^zoom. The zoom rides
// on the value itself, so a pixel coordinate is self-describing.
type PixelCoordinate struct {
	X, Y float64
	Zoom ZoomLevel
}

// PixelBounds is an axis-aligned pixel-space box; TopLeft is strictly
// north-west of BottomRight and both carry the same zoom.
type PixelBounds struct {
	TopLeft     PixelCoordinate
	BottomRight PixelCoordinate
}

// Pixel scales the world coordinate into pixel space at z.
func (w WorldCoordinate) Pixel(z ZoomLevel) PixelCoordinate {
	s := z.scale()
	return PixelCoordinate{X: w.X * s, Y: w.Y * s, Zoom: z}
}

// World unscales the pixel coordinate by its own zoom factor.
func (p PixelCoordinate) World() WorldCoordinate {
	s := p.Zoom.scale()
	return WorldCoordinate{X: p.X / s, Y: p.Y / s}
}
