package mercator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ParseBBox parses a "west,south,east,north" bounding box.
// All malformed values are reported, not just the first.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox %q: expected west,south,east,north, got %d values: %w",
			s, len(parts), ErrInvalidBBoxLength)
	}
	var result error
	values := make([]float64, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("bbox value %d %q: %w", i, part, err))
			continue
		}
		values = append(values, v)
	}
	if result != nil {
		return BBox{}, result
	}
	return NewBBox(values)
}
