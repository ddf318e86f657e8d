package mercator

import "math"

// lastIndex is the highest tile index at the zoom level, used to flip TMS rows.
func lastIndex(zoom int) int {
	return (1 << uint(zoom)) - 1
}

// TileBBox returns the bounding box of tile x, y at the zoom level.
//
// With tms the y index counts rows from the bottom instead of the top.
// The box is in lon/lat degrees, or in web mercator meters if srs is WebMercator.
func (p *Projector) TileBBox(x, y, zoom int, tms bool, srs Projection) (BBox, error) {
	if _, err := p.level(zoom); err != nil {
		return BBox{}, err
	}
	if tms {
		y = lastIndex(zoom) - y
	}
	size := p.tileSize
	ll, err := p.LL(PixelPoint{X: float64(x) * size, Y: float64(y+1) * size}, zoom)
	if err != nil {
		return BBox{}, err
	}
	ur, err := p.LL(PixelPoint{X: float64(x+1) * size, Y: float64(y) * size}, zoom)
	if err != nil {
		return BBox{}, err
	}
	bbox := BBox{ll.Lon, ll.Lat, ur.Lon, ur.Lat}
	if srs == WebMercator {
		return ConvertBBox(bbox, WebMercator), nil
	}
	return bbox, nil
}

// TileRange returns the range of tiles covering the bounding box at the zoom level.
//
// The upper-right pixel is moved back by one before flooring,
// so a box edge exactly on a tile border does not include the next tile.
// minX, minY and maxY are clamped to 0, maxX is not.
// With tms the y range counts rows from the bottom instead of the top.
// If srs is WebMercator the box is in meters, and is converted to lon/lat first.
func (p *Projector) TileRange(bbox BBox, zoom int, tms bool, srs Projection) (TileRange, error) {
	if srs == WebMercator {
		bbox = ConvertBBox(bbox, WGS84)
	}
	pxLL, err := p.Px(bbox.LowerLeft(), zoom)
	if err != nil {
		return TileRange{}, err
	}
	pxUR, err := p.Px(bbox.UpperRight(), zoom)
	if err != nil {
		return TileRange{}, err
	}
	size := p.tileSize
	x0 := int(math.Floor(pxLL.X / size))
	x1 := int(math.Floor((pxUR.X - 1) / size))
	// tile rows grow downwards, north is up
	y0 := int(math.Floor(pxUR.Y / size))
	y1 := int(math.Floor((pxLL.Y - 1) / size))

	r := TileRange{
		MinX: max(min(x0, x1), 0),
		MinY: max(min(y0, y1), 0),
		MaxX: max(x0, x1),
		MaxY: max(y0, y1, 0),
	}
	if tms {
		last := lastIndex(zoom)
		r.MinY, r.MaxY = last-r.MaxY, last-r.MinY
	}
	return r, nil
}
