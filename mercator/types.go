package mercator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// GeoPoint is a longitude, latitude pair in degrees.
// When returned by Forward it holds web mercator x, y meters instead.
type GeoPoint struct {
	Lon float64
	Lat float64
}

// PixelPoint is a position in the pixel grid of a zoom level.
// The origin is the top-left of the world, y grows downwards.
type PixelPoint struct {
	X float64
	Y float64
}

// BBox is a west, south, east, north bounding box,
// in degrees or in web mercator meters.
type BBox [4]float64

// NewBBox copies the west, south, east, north values into a BBox.
func NewBBox(values []float64) (BBox, error) {
	var b BBox
	if len(values) != len(b) {
		return b, fmt.Errorf("expected 4 values, got %d: %w", len(values), ErrInvalidBBoxLength)
	}
	copy(b[:], values)
	return b, nil
}

// BBoxFromBound converts an orb bound, with lon/lat or x/y points, into a BBox.
func BBoxFromBound(b orb.Bound) BBox {
	return BBox{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
}

func (b BBox) West() float64  { return b[0] }
func (b BBox) South() float64 { return b[1] }
func (b BBox) East() float64  { return b[2] }
func (b BBox) North() float64 { return b[3] }

// LowerLeft is the west, south corner.
func (b BBox) LowerLeft() GeoPoint {
	return GeoPoint{Lon: b[0], Lat: b[1]}
}

// UpperRight is the east, north corner.
func (b BBox) UpperRight() GeoPoint {
	return GeoPoint{Lon: b[2], Lat: b[3]}
}

// Bound converts the box to an orb bound. The values are not reordered.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b[0], b[1]}, Max: orb.Point{b[2], b[3]}}
}

func (b BBox) String() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// TileRange is an inclusive range of tile indices at a single zoom level.
// The fields are tile units, not coordinates.
type TileRange struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Contains reports whether tile x, y is within the range.
func (r TileRange) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Count is the number of tiles in the range, 0 if the range is empty.
func (r TileRange) Count() int {
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Tiles lists at most limit tiles of the range, row by row.
// Negative tile indices have no orb tile and are skipped.
func (r TileRange) Tiles(zoom int, limit int) maptile.Tiles {
	n := min(r.Count(), limit)
	if n <= 0 {
		return nil
	}
	tiles := make(maptile.Tiles, 0, n)
	for y := max(r.MinY, 0); y <= r.MaxY; y++ {
		for x := max(r.MinX, 0); x <= r.MaxX; x++ {
			if len(tiles) == n {
				return tiles
			}
			tiles = append(tiles, maptile.New(uint32(x), uint32(y), maptile.Zoom(zoom)))
		}
	}
	return tiles
}

// Projection identifies the coordinate system of a BBox or point.
type Projection uint8

const (
	// WGS84 is longitude, latitude in degrees (EPSG:4326).
	WGS84 Projection = iota
	// WebMercator is spherical mercator in meters (EPSG:900913, EPSG:3857).
	WebMercator
)

func (p Projection) String() string {
	switch p {
	case WGS84:
		return "WGS84"
	case WebMercator:
		return "900913"
	default:
		return fmt.Sprintf("Projection(%d)", uint8(p))
	}
}

// ParseProjection parses the common names of the two supported projections.
func ParseProjection(s string) (Projection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WGS84", "EPSG:4326", "4326":
		return WGS84, nil
	case "900913", "EPSG:900913", "EPSG:3857", "3857":
		return WebMercator, nil
	default:
		return WGS84, fmt.Errorf("%q: %w", s, ErrUnknownProjection)
	}
}
