package mercator

import "errors"

var (
	ErrInvalidZoom       = errors.New("invalid zoom level")
	ErrInvalidBBoxLength = errors.New("invalid bbox length")
	ErrUnknownProjection = errors.New("unknown projection")
)
