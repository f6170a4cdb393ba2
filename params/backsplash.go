package params

import "github.com/bgschiller/backsplash/tile"

// ConfigName is the basename of the optional CLI config file,
// resolved against $HOME.
const ConfigName = ".backsplash"

var (
	DefaultZoom tile.ZoomLevel = 12

	// DefaultViewportWidth is the assumed on-screen map width in pixels
	// when choosing a zoom for a bounding box.
	DefaultViewportWidth = 1024.0
)
