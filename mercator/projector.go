package mercator

import (
	"fmt"
	"math"
)

// Projector converts between geographic coordinates and the pixel and tile grid
// of one tile size. A Projector is immutable and safe for concurrent use.
type Projector struct {
	tileSize float64
	// shared with every other projector of the same tile size
	zc *ZoomConstants
}

type Option func(p *Projector)

// WithTileSize sets the tile size in pixels.
// Sizes that are not positive and finite are ignored.
func WithTileSize(size float64) Option {
	return func(p *Projector) {
		if size > 0 && !math.IsInf(size, 1) {
			p.tileSize = size
		}
	}
}

// New creates a projector, with tile size DefaultTileSize unless configured otherwise.
func New(opts ...Option) *Projector {
	p := &Projector{tileSize: DefaultTileSize}
	for _, opt := range opts {
		opt(p)
	}
	p.zc = zoomConstants(p.tileSize)
	return p
}

func (p *Projector) TileSize() float64 {
	return p.tileSize
}

// Constants returns a copy of the constants table of the tile size.
func (p *Projector) Constants() ZoomConstants {
	return *p.zc
}

func (p *Projector) level(zoom int) (*LevelConstants, error) {
	if zoom < 0 || zoom >= ZoomLevels {
		return nil, fmt.Errorf("zoom %d not in [0, %d]: %w", zoom, ZoomLevels-1, ErrInvalidZoom)
	}
	return &p.zc[zoom], nil
}

// Px converts a lon/lat point to pixel coordinates at the zoom level.
// The result is rounded to whole pixels and clamped to the world size,
// there is no lower clamp.
func (p *Projector) Px(ll GeoPoint, zoom int) (PixelPoint, error) {
	lc, err := p.level(zoom)
	if err != nil {
		return PixelPoint{}, err
	}
	f := math.Min(math.Max(math.Sin(D2R*ll.Lat), -maxSinLat), maxSinLat)
	x := roundHalfUp(lc.OriginOffset + ll.Lon*lc.PixelsPerDegree)
	y := roundHalfUp(lc.OriginOffset + 0.5*math.Log((1+f)/(1-f))*(-lc.PixelsPerRadian))
	if x > lc.WorldSize {
		x = lc.WorldSize
	}
	if y > lc.WorldSize {
		y = lc.WorldSize
	}
	return PixelPoint{X: x, Y: y}, nil
}

// LL converts pixel coordinates at the zoom level to a lon/lat point.
// It is the inverse of Px, without rounding or clamping.
func (p *Projector) LL(px PixelPoint, zoom int) (GeoPoint, error) {
	lc, err := p.level(zoom)
	if err != nil {
		return GeoPoint{}, err
	}
	g := (px.Y - lc.OriginOffset) / (-lc.PixelsPerRadian)
	return GeoPoint{
		Lon: (px.X - lc.OriginOffset) / lc.PixelsPerDegree,
		Lat: R2D * (2*math.Atan(math.Exp(g)) - 0.5*math.Pi),
	}, nil
}

func (p *Projector) Forward(ll GeoPoint) GeoPoint {
	return Forward(ll)
}

func (p *Projector) Inverse(xy GeoPoint) GeoPoint {
	return Inverse(xy)
}

func (p *Projector) ConvertBBox(bbox BBox, to Projection) BBox {
	return ConvertBBox(bbox, to)
}
