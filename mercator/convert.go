package mercator

import "math"

// Forward projects a lon/lat point in degrees to web mercator meters.
// Both axes are clamped to MaxExtent, latitudes towards the poles would diverge.
func Forward(ll GeoPoint) GeoPoint {
	x := EarthRadius * ll.Lon * D2R
	y := EarthRadius * math.Log(math.Tan(0.25*math.Pi+0.5*ll.Lat*D2R))
	return GeoPoint{Lon: clampExtent(x), Lat: clampExtent(y)}
}

// Inverse unprojects web mercator meters to a lon/lat point in degrees.
func Inverse(xy GeoPoint) GeoPoint {
	return GeoPoint{
		Lon: xy.Lon * R2D / EarthRadius,
		Lat: (0.5*math.Pi - 2.0*math.Atan(math.Exp(-xy.Lat/EarthRadius))) * R2D,
	}
}

// ConvertBBox converts both corners of the box to the target projection.
// The bbox is expected to be in the other projection, and is not reordered
// if the conversion flips an axis.
func ConvertBBox(bbox BBox, to Projection) BBox {
	conv := Inverse
	if to == WebMercator {
		conv = Forward
	}
	ll := conv(bbox.LowerLeft())
	ur := conv(bbox.UpperRight())
	return BBox{ll.Lon, ll.Lat, ur.Lon, ur.Lat}
}

func clampExtent(v float64) float64 {
	if v > MaxExtent {
		return MaxExtent
	}
	if v < -MaxExtent {
		return -MaxExtent
	}
	return v
}
