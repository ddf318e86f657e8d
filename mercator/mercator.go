// Package mercator converts between WGS84 longitude/latitude, spherical
// (web) mercator meters, and the pixel and tile grid of a web map.
package mercator

import "math"

const (
	// EarthRadius is the radius of the sphere used by web mercator, in meters.
	EarthRadius = 6378137.0

	// MaxExtent is the largest absolute web mercator coordinate,
	// reached at 180 degrees longitude and ~85.0511 degrees latitude.
	MaxExtent = 20037508.342789244

	D2R = math.Pi / 180
	R2D = 180 / math.Pi

	// Epsilon is not used by any of the formulas.
	Epsilon = 1e-10

	DefaultTileSize = 256.0

	// ZoomLevels is the number of zoom levels with precomputed constants.
	// Valid zoom levels are 0 up to and including ZoomLevels-1.
	ZoomLevels = 30

	// sine of the latitude is clamped to this to stay away from the poles
	maxSinLat = 0.9999
)

// roundHalfUp rounds x.5 up towards positive infinity, also for negative values.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
